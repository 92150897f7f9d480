package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/vk/dfaviz/internal/guard"
	"github.com/vk/dfaviz/internal/render"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. The primary graph document goes to outW; all diagnostics go to
// the logger, which writes to a distinct stream.
type App struct {
	outW      io.Writer
	inR       io.Reader
	logger    *slog.Logger
	config    *Config
	minimizer guard.Minimizer
	backend   *render.Backend
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger writing to diagW.
// The guard-minimization capability is fixed here, once, from the config.
func NewApp(outW, diagW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, diagW)
	logger.Debug("Logger configured successfully.")

	minimizer := guard.Minimizer(guard.Exact())
	if !cfg.Minimize {
		minimizer = guard.Fallback()
	}
	logger.Debug("Guard minimization capability selected.", "capability", minimizer.Name())

	return &App{
		outW:      outW,
		inR:       os.Stdin,
		logger:    logger,
		config:    cfg,
		minimizer: minimizer,
		backend:   render.NewBackend(),
	}
}

// SetInput overrides the reader used when no dump path is configured.
// This is primarily for testing.
func (a *App) SetInput(r io.Reader) {
	a.inR = r
}
