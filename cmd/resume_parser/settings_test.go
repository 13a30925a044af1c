package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputNames(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		expected []string
	}{
		{"Distinct", []string{"a/jane.pdf", "b/john.docx"}, []string{"jane.json", "john.json"}},
		{"Same base name", []string{"a/cv.pdf", "b/cv.pdf", "c/cv.txt"}, []string{"cv.json", "cv-1.json", "cv-2.json"}},
		{"Hidden file", []string{".pdf"}, []string{"resume.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, outputNames(tt.paths))
		})
	}
}

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name      string
		subMode   string
		role      string
		expected  string
		expectErr string
	}{
		{"General ignores role", "general", "backend_engineer", "", ""},
		{"Role", "role", "backend_engineer", "backend_engineer", ""},
		{"Role without role", "role", "", "", "--role is required"},
		{"Unknown sub-mode", "everything", "", "", "invalid --sub-mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := resolveRole(tt.subMode, tt.role)
			if tt.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, role)
		})
	}
}

func TestLoadSettings(t *testing.T) {
	t.Setenv(config.EnvCatalogPath, "")
	t.Setenv(config.EnvDatabaseURL, "")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"format": "json", "workers": 8}`), 0644))

	rootConfigPath = configPath
	defer func() { rootConfigPath = "" }()

	cfg, err := loadSettings(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, 8, cfg.Workers)
	assert.Empty(t, cfg.CatalogPath)
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`{}`), 0644))
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"catalog_path": "missing.json"}`), 0644))

	t.Setenv(config.EnvCatalogPath, catalogPath)
	t.Setenv(config.EnvDatabaseURL, "")

	rootConfigPath = configPath
	defer func() { rootConfigPath = "" }()

	cfg, err := loadSettings(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, catalogPath, cfg.CatalogPath)
	assert.Equal(t, config.DefaultWorkers, cfg.Workers)
	assert.Equal(t, config.FormatText, cfg.Format)
}

func TestLoadSettings_InvalidConfig(t *testing.T) {
	t.Setenv(config.EnvCatalogPath, "")
	t.Setenv(config.EnvDatabaseURL, "")

	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"format": "yaml"}`), 0644))

	rootConfigPath = configPath
	defer func() { rootConfigPath = "" }()

	_, err := loadSettings(rootCmd)
	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "format", cfgErr.Field)
}

func TestWriteJSON_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "report.json")

	require.NoError(t, writeJSON(path, map[string]int{"a": 1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, string(data))
}
