package app

import (
	"io"
	"log/slog"

	"github.com/sfluorine/textscroller/internal/engine"
	"github.com/sfluorine/textscroller/internal/locale"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	locale locale.Locale

	// sleep overrides the engine's timer; nil keeps the default.
	sleep engine.SleepFunc
}

// NewApp is the constructor for the main application. Frames are written to
// outW and log records to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loc locale.Locale) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	logger.Debug("Locale detected.", "name", loc.Name, "codeset", loc.Codeset, "utf8", loc.IsUTF8())

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		locale: loc,
	}
}

// Config returns the application's configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
