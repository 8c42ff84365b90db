package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sfluorine/textscroller/internal/app"
	"github.com/sfluorine/textscroller/internal/engine"
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

const usageFormat = `usage: %s [<options>] [<text to show>]
options:   -h              Display usage
           -d <amount>     Delay the output in millisecond (default %d)
           -n <true/false> Print newline (default true)
           -f <file>       Read text from file
           -w <file>       Read text from file and watch for changes`

// Usage returns the usage block for program.
func Usage(program string) string {
	return fmt.Sprintf(usageFormat, program, app.DefaultDelayMilliseconds)
}

// usageError builds the exit error for every invalid invocation. A non-empty
// reason is printed as an "error:" line above the usage block.
func usageError(program, reason string) *ExitError {
	msg := Usage(program)
	if reason != "" {
		msg = "error: " + reason + "\n" + msg
	}
	return &ExitError{Code: 1, Message: msg}
}

// Parse consumes args left to right. Flags take their value from the next
// token; every other token is literal text, joined with single spaces. Any
// invalid input, and -h, yields an *ExitError with code 1.
func Parse(program string, args []string) (*app.Config, error) {
	slog.Debug("CLI parser started.", "args", len(args))

	cfg := app.Config{
		DelayMilliseconds: app.DefaultDelayMilliseconds,
		PrintMode:         engine.PrintNewline,
		Input:             app.InputArgs,
	}
	var words []string

	for i := 0; i < len(args); i++ {
		token := args[i]
		switch token {
		case "-h":
			slog.Debug("Help requested, printing usage.")
			return nil, usageError(program, "")

		case "-d":
			value, ok := next(args, &i)
			if !ok {
				return nil, usageError(program, "please specify an argument for -d")
			}
			ms, err := parseDelay(value)
			if err != nil {
				slog.Debug("Rejected delay value.", "value", value, "error", err)
				return nil, usageError(program, "please specify a valid argument for -d")
			}
			cfg.DelayMilliseconds = ms

		case "-n":
			value, ok := next(args, &i)
			if !ok {
				return nil, usageError(program, "please specify an argument for -n")
			}
			switch value {
			case "true":
				cfg.PrintMode = engine.PrintNewline
			case "false":
				cfg.PrintMode = engine.PrintInline
			default:
				return nil, usageError(program, "please specify a valid argument for -n")
			}

		case "-f", "-w":
			value, ok := next(args, &i)
			if !ok {
				return nil, usageError(program, "please specify an argument for "+token)
			}
			cfg.Input = app.InputFile
			if token == "-w" {
				cfg.Input = app.InputFileWatch
			}
			cfg.FilePath = value

		default:
			words = append(words, token)
		}
	}
	slog.Debug("Arguments parsed successfully.", "words", len(words), "input", cfg.Input.String())

	if cfg.Input == app.InputArgs && len(words) == 0 {
		slog.Debug("No text provided, printing usage.")
		return nil, usageError(program, "")
	}
	cfg.SourceText = strings.Join(words, " ")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, usageError(program, err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "delay_ms", config.DelayMilliseconds, "mode", config.PrintMode.String())
	return config, nil
}

// next advances *i to the value token of the flag at *i.
func next(args []string, i *int) (string, bool) {
	if *i+1 >= len(args) {
		return "", false
	}
	*i++
	return args[*i], true
}

// parseDelay accepts only a whole base-10 number. Unlike strtol it rejects
// a numeric prefix followed by other characters, and surrounding spaces.
func parseDelay(value string) (int, error) {
	ms, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if ms < 0 {
		return 0, fmt.Errorf("negative delay %d", ms)
	}
	if int64(ms) > app.MaxDelayMilliseconds {
		return 0, fmt.Errorf("delay %d out of range", ms)
	}
	return ms, nil
}
