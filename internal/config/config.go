// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/profile-harvester/internal/profile"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags.
type Config struct {
	// Output
	OutDir string `json:"out_dir,omitempty"`
	Format string `json:"format,omitempty" validate:"omitempty,oneof=xlsx csv both"`

	// Browser
	Headless  bool   `json:"headless,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`

	// Crawl behavior
	WaitSeconds  int `json:"wait_seconds,omitempty" validate:"min=0"`
	ProbeSeconds int `json:"probe_seconds,omitempty" validate:"min=0"`
	MaxPages     int `json:"max_pages,omitempty" validate:"min=0"`

	// Sinks
	DatabaseURL string `json:"database_url,omitempty"`

	// Page layout overrides; empty fields fall back to the defaults.
	Selectors profile.Selectors `json:"selectors,omitempty"`

	Verbose bool `json:"verbose,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		OutDir:       "data",
		Format:       "xlsx",
		Headless:     true,
		WaitSeconds:  10,
		ProbeSeconds: 3,
	}
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Bool fields are not merged: unset and false cannot be told
// apart, so CLI flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.UserAgent == "" {
		result.UserAgent = defaults.UserAgent
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.WaitSeconds == 0 {
		result.WaitSeconds = defaults.WaitSeconds
	}
	if result.ProbeSeconds == 0 {
		result.ProbeSeconds = defaults.ProbeSeconds
	}
	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}

	result.Selectors = result.Selectors.Merge(defaults.Selectors)

	return result
}
