package logging

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)
	defer log.SetOutput(os.Stderr)

	var buf bytes.Buffer
	logger := Setup(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "key", "task:1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info line written above warn level: %s", out)
	}
	if !strings.Contains(out, "key=task:1") {
		t.Errorf("Expected key/value attribute, got %s", out)
	}
}
