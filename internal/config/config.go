package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Token store backends
const (
	TokenStoreSQLite = "sqlite"
	TokenStoreMemory = "memory"
)

const (
	DefaultAPIURL   = "http://localhost:4000/api"
	DefaultTimeout  = 15 * time.Second
	DefaultLogLevel = "info"
)

// Config represents the application configuration
type Config struct {
	APIURL      string        `yaml:"api_url"`
	Timeout     time.Duration `yaml:"timeout"`
	TokenStore  string        `yaml:"token_store"`
	LogLevel    string        `yaml:"log_level"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	Theme       Theme         `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		config.applyEnv()
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		config.applyEnv()
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	config.applyEnv()
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns where Load and Save look for the config file
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "uptask", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "uptask", "config.yaml"), nil
}

// applyEnv lets UPTASK_* variables override file values
func (c *Config) applyEnv() {
	if v := os.Getenv("UPTASK_API_URL"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("UPTASK_TOKEN_STORE"); v != "" {
		c.TokenStore = v
	}
	if v := os.Getenv("UPTASK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.TokenStore == "" {
		c.TokenStore = TokenStoreSQLite
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.Theme.ApplyDefaults()
}

// Validate rejects values no component can use
func (c *Config) Validate() error {
	switch c.TokenStore {
	case TokenStoreSQLite, TokenStoreMemory:
	default:
		return fmt.Errorf("%w: token_store %q", ErrInvalidConfig, c.TokenStore)
	}
	return nil
}
