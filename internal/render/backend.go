package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vk/dfaviz/internal/ctxlog"
)

// ErrBackendUnavailable reports that the external layout tool is missing.
// Callers recover by emitting the DOT document alone; the condition must
// never be silently dropped.
var ErrBackendUnavailable = errors.New("graph layout backend not available")

// Backend invokes the external Graphviz layout tool on a DOT document.
type Backend struct {
	// Command is the layout executable, normally "dot".
	Command string
}

// NewBackend returns a Backend using the standard dot executable.
func NewBackend() *Backend {
	return &Backend{Command: "dot"}
}

// Render pipes the document through the layout tool, producing an image at
// outPath. The image format follows the output extension, defaulting to
// png. A missing executable surfaces as ErrBackendUnavailable.
func (b *Backend) Render(ctx context.Context, doc, outPath string) error {
	if _, err := exec.LookPath(b.Command); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	format := strings.TrimPrefix(filepath.Ext(outPath), ".")
	if format == "" {
		format = "png"
	}
	ctxlog.FromContext(ctx).Debug("Invoking layout backend.", "command", b.Command, "format", format)

	cmd := exec.CommandContext(ctx, b.Command, "-T"+format, "-o", outPath)
	cmd.Stdin = strings.NewReader(doc)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %v: %s", b.Command, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
