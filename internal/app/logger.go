package app

import (
	"io"
	"log/slog"
)

// levels maps the accepted -log-level values onto slog levels.
var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds an isolated logger writing to w. It never touches the
// global slog default, so several Apps can coexist in one test binary.
func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	level, ok := levels[cfg.LogLevel]
	if !ok {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
