package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a structured logger writing to w. format can be "json" or
// "text". In stdio transport mode w must be stderr since stdout carries the
// protocol stream.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
