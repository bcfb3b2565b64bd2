// Package logging builds the structured logger shared by the game.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
)

// New returns a tint-formatted logger writing to w. Colors are disabled
// unless w is a terminal the caller owns.
func New(w io.Writer, level slog.Level, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		AddSource:  level <= slog.LevelDebug,
		TimeFormat: "15:04:05.000",
		NoColor:    !color,
	}))
}

// OpenFile opens (or creates) the log file at path in append mode and
// returns a logger on it plus the file to close on exit. The TUI owns the
// terminal, so the game logs to a file.
func OpenFile(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level, false), f, nil
}

// Stderr returns a logger for CLI subcommands.
func Stderr(level slog.Level) *slog.Logger {
	return New(os.Stderr, level, true)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
