package app

import (
	"bufio"
	"context"
	"os"
	"unicode/utf8"

	"github.com/specialistvlad/minigrep/internal/config"
	"github.com/specialistvlad/minigrep/internal/ctxlog"
	"github.com/specialistvlad/minigrep/internal/search"
)

// Run searches the file named by cfg and writes each matching line to the
// App's output. Nothing is written when the file cannot be loaded.
func (a *App) Run(ctx context.Context, cfg config.Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "query", cfg.Query(), "file", cfg.FilePath())
	a.logger.Debug("Search mode resolved.", "ignore_case", cfg.IgnoreCase())
	a.transition(ctx, ConfigBuilt)

	contents, err := loadContent(ctx, cfg.FilePath())
	if err != nil {
		a.transition(ctx, Failed)
		return err
	}
	a.transition(ctx, ContentLoaded)

	out := bufio.NewWriter(a.outW)
	matches := 0
	for line := range search.For(cfg.IgnoreCase())(cfg.Query(), contents) {
		// Output is best effort; a broken stdout is the caller's concern.
		_, _ = out.WriteString(line)
		_ = out.WriteByte('\n')
		matches++
	}
	a.transition(ctx, Searched)
	_ = out.Flush()

	a.logger.Debug("App.Run method finished.", "matches", matches)
	a.transition(ctx, Done)
	return nil
}

// loadContent reads the whole file and checks that it decodes as UTF-8.
func loadContent(ctx context.Context, path string) (string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading file.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IOError{Path: path, Err: ErrInvalidEncoding}
	}

	logger.Debug("File loaded.", "path", path, "bytes", len(data))
	return string(data), nil
}
