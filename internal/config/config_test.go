package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithDefaultsNoFile(t *testing.T) {
	cfg, err := LoadWithDefaults("")
	require.NoError(t, err)

	assert.Equal(t, "stake-engine", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 100.0, cfg.Staking.DefaultBankroll)
	assert.Equal(t, 100, cfg.Simulation.Iterations)
	assert.Equal(t, 20, cfg.Simulation.MaxIndependentEdges)
	assert.Equal(t, "local", cfg.Converter.Mode)
	assert.True(t, cfg.Converter.CacheEnabled)

	assert.NoError(t, Validate(cfg))
}

func TestLoadWithDefaultsAppliesFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  log_level: debug
staking:
  default_bankroll: 2500
simulation:
  iterations: 5000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 2500.0, cfg.Staking.DefaultBankroll)
	assert.Equal(t, 5000, cfg.Simulation.Iterations)
	// Untouched sections keep their defaults.
	assert.Equal(t, "local", cfg.Converter.Mode)
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("TEST_CONVERTER_KEY", "secret-from-env")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  name: stake-engine
  environment: production
  log_level: info
staking:
  default_bankroll: 100
simulation:
  iterations: 100
  max_independent_edges: 20
converter:
  mode: local
  api_key: ${TEST_CONVERTER_KEY}
  timeout_seconds: 10
  rate_limit: 10
  cache_ttl_seconds: 300
  cache_max_size: 1000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-from-env", cfg.Converter.APIKey)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	cfg, err := LoadWithDefaults("")
	require.NoError(t, err)

	cfg.App.Environment = "sandbox"
	assert.Error(t, Validate(cfg))
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg, err := LoadWithDefaults("")
	require.NoError(t, err)

	cfg.App.LogLevel = "verbose"
	assert.Error(t, Validate(cfg))
}

func TestValidateHTTPModeRequiresURL(t *testing.T) {
	cfg, err := LoadWithDefaults("")
	require.NoError(t, err)

	cfg.Converter.Mode = "http"
	cfg.Converter.URL = ""
	assert.Error(t, Validate(cfg))

	cfg.Converter.URL = "http://normalizer.internal:8080"
	assert.NoError(t, Validate(cfg))
}

func TestValidateRejectsNegativeBankrollDefault(t *testing.T) {
	cfg, err := LoadWithDefaults("")
	require.NoError(t, err)

	cfg.Staking.DefaultBankroll = -5
	assert.Error(t, Validate(cfg))
}

func TestOverlaySecretsOnConfig(t *testing.T) {
	cfg, err := LoadWithDefaults("")
	require.NoError(t, err)

	overlaySecretsOnConfig(cfg, &SecretsOverlay{ConverterAPIKey: "from-secrets-manager"})
	assert.Equal(t, "from-secrets-manager", cfg.Converter.APIKey)

	overlaySecretsOnConfig(cfg, &SecretsOverlay{})
	assert.Equal(t, "from-secrets-manager", cfg.Converter.APIKey)
}
