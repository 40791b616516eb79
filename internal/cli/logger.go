package cli

import (
	"io"
	"log/slog"
	"os"
)

// newLocalLogger logs in-process services to stderr in verbose mode only
func newLocalLogger() *slog.Logger {
	if !cfg.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
