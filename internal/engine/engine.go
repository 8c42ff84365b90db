package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sfluorine/textscroller/internal/ctxlog"
	"github.com/sfluorine/textscroller/internal/marquee"
	"golang.org/x/text/encoding"
)

const (
	// DefaultDelayMilliseconds is the pause between two frames when none is configured.
	DefaultDelayMilliseconds = 600
	DefaultDelay             = DefaultDelayMilliseconds * time.Millisecond
)

// SleepFunc blocks for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Option configures an Engine.
type Option func(*Engine)

// WithDelay sets the pause between frames. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d < 0 {
			d = 0
		}
		e.delay = d
	}
}

// WithPrintMode sets the line terminator style.
func WithPrintMode(m PrintMode) Option {
	return func(e *Engine) {
		e.mode = m
	}
}

// WithEncoder converts every written line from UTF-8 with enc.
func WithEncoder(enc *encoding.Encoder) Option {
	return func(e *Engine) {
		e.enc = enc
	}
}

// WithSleep replaces the timer used between frames.
func WithSleep(fn SleepFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.sleep = fn
		}
	}
}

// Engine renders and rotates a fixed set of lines.
type Engine struct {
	out    *bufio.Writer
	enc    *encoding.Encoder
	lines  []*marquee.Line
	delay  time.Duration
	mode   PrintMode
	sleep  SleepFunc
	frames uint64
}

// New splits text into lines and prepares an Engine writing to out.
func New(out io.Writer, text string, opts ...Option) *Engine {
	e := &Engine{
		out:   bufio.NewWriter(out),
		lines: marquee.NewLines(text),
		delay: DefaultDelay,
		mode:  PrintNewline,
		sleep: Sleep,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Lines returns the lines in rendering order.
func (e *Engine) Lines() []*marquee.Line {
	return e.lines
}

// Frames returns how many frames have been rendered.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Frame writes every line once, then rotates all of them by one cell.
func (e *Engine) Frame() error {
	term := e.mode.terminator()
	for i, l := range e.lines {
		s := l.String() + term
		if e.enc != nil {
			encoded, err := e.enc.String(s)
			if err != nil {
				return fmt.Errorf("failed to encode line %d: %w", i, err)
			}
			s = encoded
		}
		if _, err := e.out.WriteString(s); err != nil {
			return fmt.Errorf("failed to write line %d: %w", i, err)
		}
		// Each line is flushed on its own so a frame is never held back.
		if err := e.out.Flush(); err != nil {
			return fmt.Errorf("failed to flush line %d: %w", i, err)
		}
	}

	for _, l := range e.lines {
		l.Rotate()
	}
	e.frames++
	return nil
}

// Run renders frames until ctx is cancelled or writing fails.
func (e *Engine) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Engine loop started.", "lines", len(e.lines), "delay", e.delay, "mode", e.mode.String())
	if len(e.lines) == 0 {
		logger.Warn("No lines to display, the loop will only sleep.")
	}

	for {
		if err := e.Frame(); err != nil {
			return err
		}
		logger.Debug("Frame rendered.", "frame", e.frames)

		if err := e.sleep(ctx, e.delay); err != nil {
			logger.Debug("Engine loop stopped.", "frames", e.frames, "reason", err)
			return err
		}
	}
}

// Sleep is the default SleepFunc. A zero delay still observes cancellation.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
