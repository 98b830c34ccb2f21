package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/minigrep/internal/ctxlog"
)

// App runs a single search. It is not safe for concurrent use; build one per
// invocation.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	state  State
}

// NewApp returns an App that writes matches to outW and logs to logW.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig, logW)
	logger.Debug("Logger configured successfully.", "level", appConfig.LogLevel, "format", appConfig.LogFormat)

	return &App{
		outW:   outW,
		logger: logger,
		state:  Idle,
	}
}

// State returns the lifecycle state reached by the last call to Run.
func (a *App) State() State {
	return a.state
}

// Logger returns the App's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) transition(ctx context.Context, to State) {
	ctxlog.FromContext(ctx).Debug("State transition.", "from", a.state, "to", to)
	a.state = to
}
