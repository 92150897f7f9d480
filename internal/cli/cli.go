package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/dfaviz/internal/app"
	"github.com/vk/dfaviz/internal/dump"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("dfaviz", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
dfaviz - Reconstruct, check and visualize a symbolic DFA dump.

Usage:
  dfaviz [options] [DUMP_PATH]

Arguments:
  DUMP_PATH
    Path to a solver dump (text block, .json or .hcl document).
    When omitted, the dump is read from standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	dumpFlag := flagSet.String("dump", "", "Path to the dump file.")
	dFlag := flagSet.String("d", "", "Path to the dump file (shorthand).")
	formatFlag := flagSet.String("format", "auto", "Dump format. Options: 'auto', 'text', 'json' or 'hcl'.")
	outputFlag := flagSet.String("o", "dfa.png", "Output image path; the extension selects the image format.")
	dotOnlyFlag := flagSet.Bool("dot-only", false, "Write the DOT document to stdout instead of invoking the layout tool.")
	allStatesFlag := flagSet.Bool("all-states", false, "Render all declared states, not just the reachable ones.")
	noMinimizeFlag := flagSet.Bool("no-minimize", false, "Use the non-canonical fallback guard labels instead of exact minimization.")
	verifyFlag := flagSet.Bool("verify-guards", false, "Cross-check every guard label with a SAT query.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *dumpFlag != "" {
		path = *dumpFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Dump path determined.", "path", path)

	format, err := dump.ParseFormat(*formatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'auto', 'text', 'json' or 'hcl'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DumpPath:     path,
		Format:       format,
		OutputPath:   *outputFlag,
		DotOnly:      *dotOnlyFlag,
		AllStates:    *allStatesFlag,
		Minimize:     !*noMinimizeFlag,
		VerifyGuards: *verifyFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
