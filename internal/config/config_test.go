package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfigCoversAllProviders(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Len(t, cfg.Providers.Entries, 8)
	for _, name := range []string{
		"metoffice", "openweather", "accuweather", "tomorrowio",
		"stormglass", "weatherapi", "weatherbit", "bbc",
	} {
		entry, ok := cfg.Providers.Entries[name]
		require.True(t, ok, "missing provider %s", name)
		assert.True(t, entry.Enabled)
		assert.NotEmpty(t, entry.BaseURL)
	}

	assert.Equal(t, 10, cfg.Providers.Timeout)
	assert.NotEmpty(t, cfg.Geocoding.PostcodeBaseURL)
	assert.NotEmpty(t, cfg.Geocoding.NominatimBaseURL)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9191
logging:
  level: debug
providers:
  timeout: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Providers.Timeout)
	// Untouched keys keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSetAndGetConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.Port = 12345
	SetConfig(cfg)

	assert.Equal(t, 12345, GetConfig().Server.Port)
}
