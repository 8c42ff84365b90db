package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sfluorine/textscroller/internal/app"
	"github.com/sfluorine/textscroller/internal/cli"
	"github.com/sfluorine/textscroller/internal/locale"
)

// main is the entrypoint for the textscroller application.
func main() {
	// Use a minimal logger until the app configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args, os.Getenv); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. argv includes the program name.
func run(ctx context.Context, outW, errW io.Writer, argv []string, getenv func(string) string) (err error) {
	program := "textscroller"
	if len(argv) > 0 {
		program = argv[0]
		argv = argv[1:]
	}

	// The locale is resolved once, before anything is decoded.
	loc := locale.Detect(getenv)

	appConfig, err := cli.Parse(program, argv)
	if err != nil {
		return err
	}

	// Unreachable states panic; turn them into an error so the process still
	// exits with a message and status 1.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	return app.NewApp(outW, errW, appConfig, loc).Run(ctx)
}
