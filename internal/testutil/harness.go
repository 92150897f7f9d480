package testutil

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/dfaviz/internal/app"
	"github.com/vk/dfaviz/internal/dump"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// PipelineResult holds the outcomes of a full pipeline run.
type PipelineResult struct {
	// DOT is whatever the app wrote to its primary output.
	DOT string
	// LogOutput is the captured diagnostic stream.
	LogOutput string
	// Err is the pipeline error, if any.
	Err error
}

// RunPipeline provides a standardized harness: it feeds an in-memory dump
// through the whole pipeline in dot-only mode and captures both output
// streams. The mutate callback can adjust the default configuration.
func RunPipeline(t *testing.T, dumpSrc string, mutate func(*app.Config)) *PipelineResult {
	t.Helper()

	cfg, err := app.NewConfig(app.Config{
		Format:    dump.FormatText,
		DotOnly:   true,
		Minimize:  true,
		LogFormat: "text",
		LogLevel:  "debug",
	})
	require.NoError(t, err)
	if mutate != nil {
		mutate(cfg)
	}

	var out bytes.Buffer
	logBuffer := &SafeBuffer{}

	testApp := app.NewApp(&out, logBuffer, cfg)
	testApp.SetInput(strings.NewReader(dumpSrc))
	runErr := testApp.Run(context.Background())

	return &PipelineResult{
		DOT:       out.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
	}
}
