// Package config loads the podassess tool configuration from YAML, with
// defaults that work without any config file at all.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// apiKeyEnv is the environment variable consulted for the store access
// key. The key never lives in the config file.
const apiKeyEnv = "PODASSESS_API_KEY"

// RemoteConfig configures the shared question-bank store client.
type RemoteConfig struct {
	// BinID is the store document id holding the question bank.
	BinID string `yaml:"bin_id"`

	// BaseURL overrides the store endpoint (mainly for testing).
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each store request.
	Timeout time.Duration `yaml:"timeout"`

	// MaxRetries is the attempt count per store operation.
	MaxRetries int `yaml:"max_retries"`
}

// Config represents podassess configuration options.
type Config struct {
	// LogLevel sets logging verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// BankFile is a local question-bank CSV used instead of the
	// embedded dataset when set.
	BankFile string `yaml:"bank_file"`

	// SessionDB is the path of the SQLite session database.
	SessionDB string `yaml:"session_db"`

	// CacheDir holds the local backup of the store document.
	CacheDir string `yaml:"cache_dir"`

	// PassingScore is the target average carried into published
	// documents.
	PassingScore float64 `yaml:"passing_score"`

	// Remote configures the shared store client.
	Remote RemoteConfig `yaml:"remote"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		SessionDB:    ".podassess/sessions.db",
		CacheDir:     ".podassess",
		PassingScore: 4.0,
		Remote: RemoteConfig{
			Timeout:    10 * time.Second,
			MaxRetries: 3,
		},
	}
}

// APIKey returns the store access key from the environment, empty when
// unset.
func APIKey() string {
	return os.Getenv(apiKeyEnv)
}

// LoadConfig loads configuration from the specified file path. A missing
// file returns the defaults without error; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration values for consistency.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Remote.Timeout < 0 {
		return fmt.Errorf("remote.timeout must not be negative")
	}
	if c.Remote.MaxRetries < 0 {
		return fmt.Errorf("remote.max_retries must not be negative")
	}
	if c.PassingScore < 0 || c.PassingScore > 6 {
		return fmt.Errorf("passing_score must be within 0..6")
	}
	return nil
}
