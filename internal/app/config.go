package app

import "github.com/vk/dfaviz/internal/dump"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// DumpPath is the input file; empty means standard input.
	DumpPath string
	// Format selects the dump decoder.
	Format dump.Format

	// OutputPath is where the rendered image is written.
	OutputPath string
	// DotOnly skips the layout backend and writes the DOT document to the
	// primary output.
	DotOnly bool
	// AllStates renders the full declared state range instead of the
	// reachable subset.
	AllStates bool

	// Minimize selects the exact guard minimizer; when false the fallback
	// capability is used.
	Minimize bool
	// VerifyGuards cross-checks every minimized guard with a SAT query.
	VerifyGuards bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = dump.FormatAuto
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "dfa.png"
	}
	return &cfg, nil
}
