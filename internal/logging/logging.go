// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable holding the default log level.
const EnvLevel = "VITALVISION_LOG_LEVEL"

var level = new(slog.LevelVar)

// ParseLevel maps DEBUG, INFO, WARN and ERROR (any case) to a slog level.
// The empty string is INFO.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "INFO":
		return slog.LevelInfo, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Configure installs a TextHandler writing to w as the default logger and
// returns it. Unknown level strings fall back to INFO.
func Configure(w io.Writer, lvl string) *slog.Logger {
	parsed, err := ParseLevel(lvl)
	level.Set(parsed)
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if err != nil {
		logger.Warn("falling back to INFO", "err", err)
	}
	return logger
}

// OpenFile returns a logger appending to the file at path, for use while the
// terminal UI owns the screen. An empty path drops every record. The returned
// func closes the file.
func OpenFile(path, lvl string) (*slog.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	parsed, _ := ParseLevel(lvl)
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: parsed}))
	return logger, f.Close, nil
}

// SetLevel changes the level of the logger installed by Configure.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
