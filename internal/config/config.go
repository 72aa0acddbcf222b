// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values fall back to Defaults(), which
// reproduces the stock zero-argument behavior.
type Config struct {
	// User is the Credly user whose badges are synced.
	User string `json:"user,omitempty" validate:"omitempty,min=1"`
	// BaseURL is the credentialing service root, overridable for tests.
	BaseURL string `json:"base_url,omitempty" validate:"omitempty,url"`
	// Readme is the path of the document to patch.
	Readme string `json:"readme,omitempty"`
	// StartMarker and EndMarker delimit the replaceable README region.
	StartMarker string `json:"start_marker,omitempty"`
	EndMarker   string `json:"end_marker,omitempty"`
	// IssuerOrder lists issuers shown first, in order. Unlisted issuers
	// appear after them, sorted alphabetically.
	IssuerOrder []string `json:"issuer_order,omitempty"`
	// Verbose prints a summary of fetched badge groups.
	Verbose bool `json:"verbose,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		User:        "arash",
		BaseURL:     "https://www.credly.com",
		Readme:      "README.md",
		StartMarker: "<!-- CREDLY_BADGES_START -->",
		EndMarker:   "<!-- CREDLY_BADGES_END -->",
		IssuerOrder: []string{"The Linux Foundation", "IBM", "Isovalent"},
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.StartMarker != "" && c.StartMarker == c.EndMarker {
		return fmt.Errorf("config error: 'start_marker' and 'end_marker' must differ")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values on top of the built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.User == "" {
		result.User = defaults.User
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.Readme == "" {
		result.Readme = defaults.Readme
	}
	if result.StartMarker == "" {
		result.StartMarker = defaults.StartMarker
	}
	if result.EndMarker == "" {
		result.EndMarker = defaults.EndMarker
	}
	if result.IssuerOrder == nil {
		result.IssuerOrder = defaults.IssuerOrder
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// BadgesURL builds the badges.json endpoint for the configured user.
func (c *Config) BadgesURL() string {
	return fmt.Sprintf("%s/users/%s/badges.json", strings.TrimSuffix(c.BaseURL, "/"), c.User)
}
