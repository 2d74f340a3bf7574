package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// ParseLevel maps a config value to a slog level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Dir returns ~/.uptask/logs
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".uptask", "logs"), nil
}

// Init initializes the logging system, writing logs to ~/.uptask/logs/uptask.log
// Uses text format for human readability. The returned closer flushes the file.
func Init(level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logDir, err := Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	logPath := filepath.Join(logDir, "uptask.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	Setup(file, lvl)
	return file, nil
}

// Setup points the default logger at w
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)

	return Logger
}

// Discard returns a logger that drops everything, for tests and --quiet runs
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
