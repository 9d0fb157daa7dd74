package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultIsValid(t *testing.T) {
	cfg := GetDefault()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "5000", cfg.API.ListenPort)
	assert.Equal(t, SourceStatic, cfg.Catalog.Source)
	assert.Equal(t, 8, cfg.Tasks.MaxParallelTasksAllowed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{
			name:   "file source with path",
			mutate: func(c *Config) { c.Catalog.Source = SourceFile; c.Catalog.Path = "catalog.yaml" },
		},
		{
			name:        "file source without path",
			mutate:      func(c *Config) { c.Catalog.Source = SourceFile },
			expectError: true,
		},
		{
			name:        "github source without owner",
			mutate:      func(c *Config) { c.Catalog.Source = SourceGithub },
			expectError: true,
		},
		{
			name:   "github source with owner",
			mutate: func(c *Config) { c.Catalog.Source = SourceGithub; c.Github.Owner = "octocat" },
		},
		{
			name:        "unknown source",
			mutate:      func(c *Config) { c.Catalog.Source = "sqlite" },
			expectError: true,
		},
		{
			name:        "no parallel tasks",
			mutate:      func(c *Config) { c.Tasks.MaxParallelTasksAllowed = 0 },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefault()
			tt.mutate(cfg)

			if tt.expectError {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DASHBOARD_LISTEN_PORT", "8081")
	t.Setenv("DASHBOARD_CATALOG_SOURCE", "github")
	t.Setenv("GITHUB_OWNER", "octocat")
	t.Setenv("DASHBOARD_LOG_LEVEL", "warn")

	cfg := GetDefault()
	require.NoError(t, ApplyEnv(cfg))

	assert.Equal(t, "8081", cfg.API.ListenPort)
	assert.Equal(t, SourceGithub, cfg.Catalog.Source)
	assert.Equal(t, "octocat", cfg.Github.Owner)
	assert.Equal(t, "warn", cfg.Logs.Level)
	// untouched values keep their defaults
	assert.Equal(t, 8, cfg.Tasks.MaxParallelTasksAllowed)
}

func TestApplyEnvInvalidValue(t *testing.T) {
	t.Setenv("DASHBOARD_TASKS_MAX_PARALLEL", "many")

	err := ApplyEnv(GetDefault())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(previous) })
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, GetDefault().API, cfg.API)
	assert.Equal(t, GetDefault().Catalog, cfg.Catalog)
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DASHBOARD_CATALOG_SOURCE", "file")

	_, err := Load()
	assert.Error(t, err)
}

func TestFindConfigFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.toml"), []byte("[API]\nListenPort = \"9000\"\n"), 0o600))
	chdir(t, dir)

	path, err := findConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("config", "config.toml"), path)
}
