package app

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sfluorine/textscroller/internal/engine"
)

// InputKind tells where the text to display comes from.
type InputKind int

const (
	// InputArgs takes the text from the command line arguments.
	InputArgs InputKind = iota
	// InputFile reads the text from a file. Not implemented.
	InputFile
	// InputFileWatch reads the text from a file and follows changes. Not implemented.
	InputFileWatch
)

func (k InputKind) String() string {
	switch k {
	case InputArgs:
		return "args"
	case InputFile:
		return "file"
	case InputFileWatch:
		return "file-watch"
	default:
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
}

const (
	DefaultDelayMilliseconds = engine.DefaultDelayMilliseconds
	DefaultLogLevel          = "warn"
	DefaultLogFormat         = "text"
)

// MaxDelayMilliseconds is the largest delay that still fits in a time.Duration.
const MaxDelayMilliseconds int64 = math.MaxInt64 / int64(time.Millisecond)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DelayMilliseconds int
	PrintMode         engine.PrintMode
	Input             InputKind
	FilePath          string // set for InputFile and InputFileWatch
	SourceText        string

	LogLevel  string
	LogFormat string
}

// NewConfig validates cfg and fills in defaults for the logging fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DelayMilliseconds < 0 {
		return nil, fmt.Errorf("delay must not be negative, got %d", cfg.DelayMilliseconds)
	}
	if int64(cfg.DelayMilliseconds) > MaxDelayMilliseconds {
		return nil, fmt.Errorf("delay %d is out of range", cfg.DelayMilliseconds)
	}

	switch cfg.PrintMode {
	case engine.PrintNewline, engine.PrintInline:
	default:
		return nil, fmt.Errorf("unknown print mode %s", cfg.PrintMode)
	}

	switch cfg.Input {
	case InputArgs:
	case InputFile, InputFileWatch:
		if cfg.FilePath == "" {
			return nil, errors.New("FilePath is required for file input")
		}
	default:
		return nil, fmt.Errorf("unknown input kind %s", cfg.Input)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}

// Delay returns the pause between frames.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMilliseconds) * time.Millisecond
}
