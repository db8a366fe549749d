// Package logging builds the structured logger shared by droidmirror's
// services. Records are JSON, written to a file or stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Log levels accepted in configuration.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

type Options struct {
	Level string
	// File receives the log. Empty means Fallback.
	File     string
	Fallback io.Writer
}

// New returns a JSON logger and a close function for the underlying file.
// Without a file the logger writes to opts.Fallback, or stderr when that is nil.
func New(opts Options) (*slog.Logger, func() error, error) {
	writer := opts.Fallback
	if writer == nil {
		writer = os.Stderr
	}
	closeFn := func() error { return nil }

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writer = file
		closeFn = file.Close
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: ParseLevel(opts.Level)})
	return slog.New(handler), closeFn, nil
}

// ParseLevel converts a level name to slog.Level. Unknown names give INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
