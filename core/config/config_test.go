package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"country-db/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, "http", cfg.Sources.Mode)
	assert.Contains(t, cfg.Sources.WikipediaURL, "wikipedia.org")
	assert.Equal(t, 300, cfg.Build.CacheTTLSeconds)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SOURCES_MODE", "storage")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "storage", cfg.Sources.Mode)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BUILD_CORRECTIONS_FILE=corrections.yaml\n"), 0o600)
	require.NoError(t, err)
	t.Cleanup(func() { os.Unsetenv("BUILD_CORRECTIONS_FILE") })

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "corrections.yaml", cfg.Build.CorrectionsFile)
}
