package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLogged checks the captured diagnostic stream for a substring,
// keeping tests resilient to slog's exact record formatting.
func AssertLogged(t *testing.T, result *PipelineResult, substring string) {
	t.Helper()
	require.True(t,
		strings.Contains(result.LogOutput, substring),
		"expected %q in log output:\n%s", substring, result.LogOutput,
	)
}

// AssertNotLogged is the negation of AssertLogged.
func AssertNotLogged(t *testing.T, result *PipelineResult, substring string) {
	t.Helper()
	require.False(t,
		strings.Contains(result.LogOutput, substring),
		"unexpected %q in log output:\n%s", substring, result.LogOutput,
	)
}
