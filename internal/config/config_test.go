package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"catalog_path": "catalog.json",
		"format": "json",
		"workers": 8,
		"max_section_chars": 2000,
		"database_url": "postgres://localhost:5432/resumes",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "catalog.json", cfg.CatalogPath)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 2000, cfg.MaxSectionChars)
	assert.Equal(t, "postgres://localhost:5432/resumes", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	catalog := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(catalog, []byte(`{}`), 0644))

	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{name: "zero value", cfg: Config{}},
		{name: "defaults", cfg: Defaults()},
		{name: "existing catalog", cfg: Config{CatalogPath: catalog, Format: FormatJSON}},
		{name: "bad format", cfg: Config{Format: "yaml"}, wantField: "format"},
		{name: "negative workers", cfg: Config{Workers: -1}, wantField: "workers"},
		{name: "too many workers", cfg: Config{Workers: 1000}, wantField: "workers"},
		{name: "negative section cap", cfg: Config{MaxSectionChars: -5}, wantField: "max_section_chars"},
		{name: "bad database url", cfg: Config{DatabaseURL: "not a url"}, wantField: "database_url"},
		{name: "missing catalog", cfg: Config{CatalogPath: "/nonexistent/catalog.json"}, wantField: "catalog_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvCatalogPath, " /etc/resume/catalog.json ")
	t.Setenv(EnvDatabaseURL, "postgres://db/resumes")

	cfg := Config{CatalogPath: "from-file.json", Format: FormatJSON}
	cfg.ApplyEnv()

	assert.Equal(t, "/etc/resume/catalog.json", cfg.CatalogPath)
	assert.Equal(t, "postgres://db/resumes", cfg.DatabaseURL)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestApplyEnv_UnsetKeepsValues(t *testing.T) {
	t.Setenv(EnvCatalogPath, "")
	t.Setenv(EnvDatabaseURL, "")

	cfg := Config{CatalogPath: "from-file.json", DatabaseURL: "postgres://file/db"}
	cfg.ApplyEnv()

	assert.Equal(t, "from-file.json", cfg.CatalogPath)
	assert.Equal(t, "postgres://file/db", cfg.DatabaseURL)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		CatalogPath:     "default.json",
		Format:          FormatText,
		Workers:         4,
		MaxSectionChars: 500,
		DatabaseURL:     "postgres://default/db",
	}

	partial := Config{
		Format:  FormatJSON,
		Workers: 2,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, FormatJSON, merged.Format)
	assert.Equal(t, 2, merged.Workers)

	// Default values should fill in empty fields
	assert.Equal(t, "default.json", merged.CatalogPath)
	assert.Equal(t, 500, merged.MaxSectionChars)
	assert.Equal(t, "postgres://default/db", merged.DatabaseURL)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Format: FormatJSON, Verbose: true}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, FormatJSON, merged.Format)
	assert.True(t, merged.Verbose)
	assert.Zero(t, merged.Workers)
}
