// Package logging builds the service-wide structured logger. All components
// log through slog with JSON output so pipeline stages, store operations and
// HTTP access lines share one format.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a JSON logger writing to w, tagged with the service name. A
// nil writer defaults to stdout; tests pass a buffer instead.
func New(w io.Writer, service, level string) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: Level(level),
	})
	return slog.New(handler).With("service", service)
}

// Level maps the LOG_LEVEL config value to a slog level. Unknown values fall
// back to info rather than failing startup.
func Level(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
