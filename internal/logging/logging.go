// Package logging configures the process-wide slog logger for the
// command line tools.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Init installs a text handler writing to w at the given level as the
// default logger and returns it.
func Init(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel parses a level name. Unknown names select info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
