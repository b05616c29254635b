package provider

import (
	"net/http"
	"sort"
	"time"

	"github.com/weathermux/weathermux/internal/config"
	"go.uber.org/zap"
)

// Deps carries the shared collaborators every adapter constructor may
// draw on.
type Deps struct {
	Client   *http.Client
	Resolver Geocoder
	Logger   *zap.Logger
}

// Constructor builds one adapter from its configuration.
type Constructor func(cfg config.ProviderConfig, deps Deps) Adapter

// registry is the static table of supported providers. Adding a provider
// means adding a line here; there is no runtime discovery.
var registry = map[string]Constructor{
	"metoffice":   NewMetOffice,
	"openweather": NewOpenWeather,
	"accuweather": NewAccuWeather,
	"tomorrowio":  NewTomorrowIO,
	"stormglass":  NewStormGlass,
	"weatherapi":  NewWeatherAPI,
	"weatherbit":  NewWeatherbit,
	"bbc":         NewBBC,
}

// Names returns the supported provider identifiers in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported reports whether name identifies a registered provider.
func Supported(name string) bool {
	_, ok := registry[name]
	return ok
}

// New constructs the named adapter, filling in defaults for any missing
// dependency.
func New(name string, cfg config.ProviderConfig, deps Deps) (Adapter, bool) {
	ctor, ok := registry[name]
	if !ok {
		return nil, false
	}
	if deps.Client == nil {
		deps.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return ctor(cfg, deps), true
}
