// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Environment variables that override config file values
const (
	EnvCatalogPath = "RESUME_PARSER_CATALOG"
	EnvDatabaseURL = "DATABASE_URL"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultWorkers is the batch concurrency used when none is configured
const DefaultWorkers = 4

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	CatalogPath string `json:"catalog_path,omitempty"` // Skills catalog JSON; empty uses the built-in catalog

	// Output
	Format          string `json:"format,omitempty" validate:"omitempty,oneof=text json"` // text or json
	MaxSectionChars int    `json:"max_section_chars,omitempty" validate:"gte=0"`          // Cap on raw section text kept in reports (0 = unlimited)

	// Behavior
	Workers     int    `json:"workers,omitempty" validate:"gte=0,lte=64"`       // Concurrent documents in batch mode
	Verbose     bool   `json:"verbose,omitempty"`                               // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty" validate:"omitempty,url"` // PostgreSQL connection URL for the report archive
}

// Defaults returns the values used for anything neither the config file nor flags set
func Defaults() Config {
	return Config{
		Format:  FormatText,
		Workers: DefaultWorkers,
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ConfigError{
				Field:   jsonName(fe.Field()),
				Message: fmt.Sprintf("failed '%s' check (value %v)", fe.Tag(), fe.Value()),
				Cause:   err,
			}
		}
		return &ConfigError{Message: "invalid configuration", Cause: err}
	}

	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return &ConfigError{Field: "catalog_path", Message: fmt.Sprintf("file not found: %s", c.CatalogPath), Cause: err}
		}
	}

	return nil
}

// jsonName maps a struct field name to its JSON key
func jsonName(field string) string {
	switch field {
	case "CatalogPath":
		return "catalog_path"
	case "MaxSectionChars":
		return "max_section_chars"
	case "DatabaseURL":
		return "database_url"
	default:
		return strings.ToLower(field)
	}
}

// ApplyEnv overrides fields from environment variables that are set
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvCatalogPath)); v != "" {
		c.CatalogPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDatabaseURL)); v != "" {
		c.DatabaseURL = v
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.MaxSectionChars == 0 {
		result.MaxSectionChars = defaults.MaxSectionChars
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
