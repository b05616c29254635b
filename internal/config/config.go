package config

import (
	"sync/atomic"
)

var configValue atomic.Value

func GetConfig() *Config {
	return configValue.Load().(*Config)
}

func SetConfig(cfg *Config) {
	configValue.Store(cfg)
}

type Config struct {
	Version     string          `mapstructure:"version"`
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Providers   ProvidersConfig `mapstructure:"providers"`
	Geocoding   GeocodingConfig `mapstructure:"geocoding"`
	Logging     LoggingConfig   `mapstructure:"logging"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port         int    `mapstructure:"port"`
	Host         string `mapstructure:"host"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	IdleTimeout  int    `mapstructure:"idle_timeout"`
}

type ProvidersConfig struct {
	// Timeout bounds each provider's HTTP round trips, in seconds.
	Timeout int                       `mapstructure:"timeout"`
	Entries map[string]ProviderConfig `mapstructure:"entries"`
}

type ProviderConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type GeocodingConfig struct {
	PostcodeBaseURL  string `mapstructure:"postcode_base_url"`
	NominatimBaseURL string `mapstructure:"nominatim_base_url"`
	UserAgent        string `mapstructure:"user_agent"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Version:     "1.0.0",
		Environment: "development",
		Server: ServerConfig{
			Port:         8080,
			Host:         "0.0.0.0",
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  60,
		},
		Providers: ProvidersConfig{
			Timeout: 10,
			Entries: map[string]ProviderConfig{
				"metoffice": {
					Enabled: true,
					BaseURL: "http://datapoint.metoffice.gov.uk/public/data",
				},
				"openweather": {
					Enabled: true,
					BaseURL: "https://api.openweathermap.org/data/2.5/onecall",
				},
				"accuweather": {
					Enabled: true,
					BaseURL: "http://dataservice.accuweather.com",
				},
				"tomorrowio": {
					Enabled: true,
					BaseURL: "https://api.tomorrow.io/v4/timelines",
				},
				"stormglass": {
					Enabled: true,
					BaseURL: "https://api.stormglass.io/v2",
				},
				"weatherapi": {
					Enabled: true,
					BaseURL: "http://api.weatherapi.com/v1",
				},
				"weatherbit": {
					Enabled: true,
					BaseURL: "http://api.weatherbit.io/v2.0",
				},
				"bbc": {
					Enabled: true,
					BaseURL: "https://weather-broker-cdn.api.bbci.co.uk/en/forecast/rss/3day/2643123",
				},
			},
		},
		Geocoding: GeocodingConfig{
			PostcodeBaseURL:  "https://api.zippopotam.us",
			NominatimBaseURL: "https://nominatim.openstreetmap.org",
			UserAgent:        "weathermux",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "",
		},
		Telemetry: TelemetryConfig{
			Enabled:  false,
			Endpoint: "tempo:4317",
		},
	}
}
