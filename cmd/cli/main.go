package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/dfaviz/internal/app"
	"github.com/vk/dfaviz/internal/cli"
)

// main is the entrypoint for the dfaviz application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The graph document goes to outW; everything else goes to diagW.
func run(outW, diagW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, diagW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	dfavizApp := app.NewApp(outW, diagW, appConfig)
	return dfavizApp.Run(context.Background())
}
