package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/uptask/internal/models"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "uptask")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %s, want %s", cfg.APIURL, DefaultAPIURL)
	}
	if cfg.TokenStore != TokenStoreSQLite {
		t.Errorf("TokenStore = %s, want sqlite", cfg.TokenStore)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Quit key = %s, want q", cfg.KeyMappings.Quit)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	writeConfig(t, `api_url: https://uptask.example.com/api
timeout: 3s
token_store: memory
key_mappings:
  quit: "x"
theme:
  preset: monochrome
  completed: "#00FF00"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.APIURL != "https://uptask.example.com/api" {
		t.Errorf("APIURL = %s", cfg.APIURL)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %s, want 3s", cfg.Timeout)
	}
	if cfg.TokenStore != TokenStoreMemory {
		t.Errorf("TokenStore = %s, want memory", cfg.TokenStore)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.NextTask != "j" {
		t.Errorf("NextTask key = %s, want default j", cfg.KeyMappings.NextTask)
	}
	if cfg.Theme.StatusColor(models.StatusCompleted) != "#00FF00" {
		t.Errorf("Completed color = %s", cfg.Theme.StatusColor(models.StatusCompleted))
	}
	if cfg.Theme.Accent != "#FFFFFF" {
		t.Errorf("Accent = %s, want monochrome preset", cfg.Theme.Accent)
	}
}

func TestEnvOverrides(t *testing.T) {
	writeConfig(t, "api_url: https://file.example.com\n")
	t.Setenv("UPTASK_API_URL", "https://env.example.com")
	t.Setenv("UPTASK_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.APIURL != "https://env.example.com" {
		t.Errorf("APIURL = %s, want env override", cfg.APIURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
}

func TestInvalidTokenStore(t *testing.T) {
	writeConfig(t, "token_store: keychain\n")

	_, err := Load()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.APIURL = "https://saved.example.com/api"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.APIURL != cfg.APIURL {
		t.Errorf("APIURL = %s, want %s", loaded.APIURL, cfg.APIURL)
	}
	if loaded.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", loaded.Timeout, DefaultTimeout)
	}
}

func TestStatusColorUnknown(t *testing.T) {
	theme := ThemePreset("default")
	if got := theme.StatusColor("archived"); got != theme.Subtle {
		t.Errorf("Unknown status color = %s, want subtle", got)
	}
}
