package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/minigrep/internal/app"
	"github.com/specialistvlad/minigrep/internal/cli"
)

// main is the entrypoint for the minigrep application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args, os.Environ()); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Matches go to outW, usage text and logs to errW.
func run(outW, errW io.Writer, args, environ []string) error {
	res, shouldExit, err := cli.Parse(args, errW, environ)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	minigrep := app.NewApp(outW, errW, res.App)
	return minigrep.Run(context.Background(), res.Search)
}
