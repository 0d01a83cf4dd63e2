package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"reach-estimator/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "https://graph.facebook.com", cfg.Graph.Endpoint)
	assert.Equal(t, "v2.0", cfg.Graph.Version)
	assert.Equal(t, 30, cfg.Graph.TimeoutSeconds)
	assert.Equal(t, 1, cfg.Targeting.Concurrency)
	assert.False(t, cfg.Targeting.ValidateKeywords)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("GRAPH_ACCESS_TOKEN", "secret")
	t.Setenv("GRAPH_AD_ACCOUNT", "act_10150585630710217")
	t.Setenv("TARGETING_CONCURRENCY", "4")
	t.Setenv("TARGETING_VALIDATE_KEYWORDS", "true")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Graph.AccessToken)
	assert.Equal(t, "act_10150585630710217", cfg.Graph.AdAccount)
	assert.Equal(t, 4, cfg.Targeting.Concurrency)
	assert.True(t, cfg.Targeting.ValidateKeywords)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9090\nLOG_LEVEL=debug\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}
