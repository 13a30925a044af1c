package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/skills"
	"github.com/spf13/cobra"
)

// settings is the resolved configuration for the running command
var settings = config.Defaults()

// loadSettings merges the config file, environment and root flags
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Step 2: Environment overrides the file
	cfg.ApplyEnv()

	// Step 3: Flags override both, only when explicitly set
	if cmd.Flags().Changed("catalog") {
		cfg.CatalogPath = rootCatalogPath
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rootVerbose
	}

	// Step 4: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// overrideFormat applies a command's --format flag when it was set
func overrideFormat(cmd *cobra.Command, format string) error {
	if !cmd.Flags().Changed("format") {
		return nil
	}
	if format != config.FormatText && format != config.FormatJSON {
		return fmt.Errorf("invalid --format %q (want %s or %s)", format, config.FormatText, config.FormatJSON)
	}
	settings.Format = format
	return nil
}

// overrideDatabaseURL applies a command's --database-url flag when it was set
func overrideDatabaseURL(cmd *cobra.Command, url string) {
	if cmd.Flags().Changed("database-url") {
		settings.DatabaseURL = url
	}
}

// loadCatalog loads the configured catalog, or the built-in one
func loadCatalog() (*skills.Catalog, error) {
	return skills.LoadCatalog(settings.CatalogPath)
}

// newAnalyzer wires the document reader and skills matcher
func newAnalyzer() (*pipeline.Analyzer, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return pipeline.NewAnalyzer(ingestion.NewReader(), skills.NewMatcher(catalog), pipeline.Options{
		MaxSectionChars: settings.MaxSectionChars,
	}), nil
}

// writeJSON writes v as indented JSON to path, creating parent directories
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// printJSON writes v as indented JSON to stdout
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(data))
	return nil
}

// validateOutput checks a written report against its schema.
// Output validation is a safety check, so failures only warn.
func validateOutput(path string, validate func([]byte) error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if err := validate(data); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
	}
}
