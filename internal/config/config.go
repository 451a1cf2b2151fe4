// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RachaudKeyes/jobly-frontend/internal/api"
	"github.com/RachaudKeyes/jobly-frontend/internal/schemas"
)

// Config represents the CLI configuration. Values come from an optional
// JSON file and from the environment; the environment wins. All fields
// are optional and fall back to defaults.
type Config struct {
	// BaseURL is the Jobly backend address.
	BaseURL string `json:"base_url,omitempty"`
	// TokenDir is the directory holding the persisted session token.
	// Empty means the default location under the user config directory.
	TokenDir string `json:"token_dir,omitempty"`
	// Verbose emits per-request debug traces to stderr.
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file, validating it against
// the config schema first. Returns an error if the file cannot be read,
// fails schema validation, or cannot be parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := schemas.ValidateConfig(data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables:
// JOBLY_BASE_URL and JOBLY_TOKEN_DIR.
func FromEnv() Config {
	return Config{
		BaseURL:  os.Getenv("JOBLY_BASE_URL"),
		TokenDir: os.Getenv("JOBLY_TOKEN_DIR"),
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to layer environment values over a config file, and the
// file over built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.TokenDir == "" {
		result.TokenDir = defaults.TokenDir
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags win.

	return result
}

// Resolve produces the effective configuration: environment over optional
// config file over defaults.
func Resolve(configPath string) (Config, error) {
	cfg := FromEnv()

	if configPath != "" {
		fileCfg, err := LoadConfig(configPath)
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	}

	cfg = cfg.MergeWithDefaults(Config{BaseURL: api.DefaultBaseURL})
	return cfg, nil
}
