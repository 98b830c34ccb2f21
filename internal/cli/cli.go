package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/minigrep/internal/app"
	"github.com/specialistvlad/minigrep/internal/config"
	"github.com/specialistvlad/minigrep/internal/profile"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the error that caused the exit, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Result is everything a successful Parse resolves.
type Result struct {
	App    *app.Config
	Search config.Config
}

// Parse processes the full argument vector (program name first) and the
// process environment in os.Environ form. It returns the resolved Result, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer, environ []string) (*Result, bool, error) {
	slog.Debug("CLI parser started.")

	program := "minigrep"
	var rest []string
	if len(args) > 0 {
		program, rest = args[0], args[1:]
	}

	flagSet := flag.NewFlagSet("minigrep", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
minigrep - search a file for lines containing a query.

Usage:
  minigrep [options] QUERY FILE

Arguments:
  QUERY
    Text to look for. Matching is plain substring containment.
  FILE
    Path to a UTF-8 text file.

Environment:
  IGNORE_CASE
    When set (to any value, even empty), matching ignores case.

Options:
`)
		flagSet.PrintDefaults()
	}

	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error' (default 'warn').")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json' (default 'text').")
	profileFlag := flagSet.String("profile", "", "Path to an HCL profile providing default options.")

	if err := flagSet.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error(), Err: err}
	}
	slog.Debug("Flags parsed successfully.", "positional", flagSet.NArg())

	env := environMap(environ)

	appConfig := app.Config{}
	if *profileFlag != "" {
		p, err := profile.Load(*profileFlag, env)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error(), Err: err}
		}
		slog.Debug("Profile loaded.", "path", *profileFlag)
		appConfig.LogLevel = p.LogLevel
		appConfig.LogFormat = p.LogFormat
	}
	if *logLevelFlag != "" {
		appConfig.LogLevel = strings.ToLower(*logLevelFlag)
	}
	if *logFormatFlag != "" {
		appConfig.LogFormat = strings.ToLower(*logFormatFlag)
	}

	resolved, err := app.NewConfig(appConfig)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error(), Err: err}
	}

	positional := append([]string{program}, flagSet.Args()...)
	searchConfig, err := config.Build(positional, config.MapLookup(env))
	if err != nil {
		return nil, false, &ExitError{
			Code:    2,
			Message: fmt.Sprintf("Problem parsing arguments: %v\n\nUsage: minigrep [options] QUERY FILE", err),
			Err:     err,
		}
	}

	slog.Debug("CLI parser finished successfully.", "log_level", resolved.LogLevel, "log_format", resolved.LogFormat)
	return &Result{App: resolved, Search: searchConfig}, false, nil
}

// environMap turns os.Environ-style "KEY=value" pairs into a map. Entries
// without '=' are ignored; for duplicate keys the first one wins, as in
// os.LookupEnv.
func environMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		if _, seen := env[name]; !seen {
			env[name] = value
		}
	}
	return env
}
