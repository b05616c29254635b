package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weathermux/weathermux/internal/config"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"accuweather", "bbc", "metoffice", "openweather",
		"stormglass", "tomorrowio", "weatherapi", "weatherbit",
	}, Names())
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("openweather"))
	assert.False(t, Supported("darksky"))
}

func TestNewUnknownProvider(t *testing.T) {
	_, ok := New("darksky", config.ProviderConfig{}, Deps{})
	assert.False(t, ok)
}

func TestNewFillsDefaults(t *testing.T) {
	adapter, ok := New("openweather", config.ProviderConfig{BaseURL: "http://example.invalid"}, Deps{})
	require.True(t, ok)
	assert.Equal(t, "openweather", adapter.Name())
}
