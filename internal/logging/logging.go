// Package logging builds the structured loggers used across the server.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvVarLogLevel overrides the configured level when set.
const EnvVarLogLevel = "LOG_LEVEL"

// New returns a JSON logger writing to stderr, tagged with module and version.
// Source locations are only added at debug level.
func New(module, version, level string) *slog.Logger {
	return NewWithWriter(os.Stderr, module, version, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, module, version, level string) *slog.Logger {
	if env := os.Getenv(EnvVarLogLevel); env != "" {
		level = env
	}
	lev := ParseLevel(level)

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	})).With("module", module, "version", version)
}

// ParseLevel converts "debug", "info", "warn"/"warning" or "error" into a
// slog.Level. Anything else is info.
func ParseLevel(level string) slog.Level {
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

// Discard returns a logger that drops everything; handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
