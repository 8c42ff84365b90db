package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/sfluorine/textscroller/internal/ctxlog"
	"github.com/sfluorine/textscroller/internal/engine"
)

// Run decodes the source text, builds the render engine and runs it. It
// returns nil when ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.Input.String())

	if a.config.Input != InputArgs {
		panic(fmt.Sprintf("input kind %s reached the render stage; only command line text is supported", a.config.Input))
	}

	if a.locale.Err != nil {
		a.logger.Warn("Locale codeset is not supported, falling back to UTF-8.", "locale", a.locale.Name, "error", a.locale.Err)
	}

	opts := []engine.Option{
		engine.WithDelay(a.config.Delay()),
		engine.WithPrintMode(a.config.PrintMode),
		engine.WithSleep(a.sleep),
	}
	if !a.locale.IsUTF8() {
		opts = append(opts, engine.WithEncoder(a.locale.Encoder()))
	}

	text := a.locale.Decode(a.config.SourceText)
	eng := engine.New(a.outW, text, opts...)
	a.logger.Debug("Engine initialized.", "lines", len(eng.Lines()), "delay", a.config.Delay())

	a.probeTerminal(eng.Lines())

	err := eng.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		a.logger.Debug("App.Run method finished.", "frames", eng.Frames())
		return nil
	}
	if err != nil {
		return fmt.Errorf("render loop failed: %w", err)
	}
	return nil
}
