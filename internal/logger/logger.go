// Package logger configures the structured logger shared by the CLI and the
// parsing packages. Verbose mode lowers the level to Debug so extractor tier
// decisions become visible on stderr.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New builds a text logger writing to w. A nil writer means stderr.
func New(verbose bool, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup builds a logger and installs it as the slog default
func Setup(verbose bool, w io.Writer) *slog.Logger {
	l := New(verbose, w)
	slog.SetDefault(l)
	return l
}
