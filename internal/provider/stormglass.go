package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/weathermux/weathermux/internal/config"
	"github.com/weathermux/weathermux/internal/forecast"
	"go.uber.org/zap"
)

const stormGlassName = "stormglass"

// stormGlassSources are the upstream meteorological models StormGlass
// aggregates. One raw hour expands into one record per source.
var stormGlassSources = []string{"dwd", "noaa", "sg"}

var stormGlassParams = []string{
	"airTemperature", "gust", "humidity", "visibility",
	"windDirection", "windSpeed",
}

// StormGlass adapts the StormGlass point-forecast API. Its output is the
// provider-specific grouped variant: a record sequence per upstream
// source rather than one flat sequence. A source missing a reading for
// an hour gets the no-data sentinel; measurements StormGlass does not
// carry at all (feels-like, UV, weather type, precipitation probability)
// stay nil.
type StormGlass struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

func NewStormGlass(cfg config.ProviderConfig, deps Deps) Adapter {
	return &StormGlass{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  deps.Client,
		logger:  deps.Logger.With(zap.String("provider", stormGlassName)),
	}
}

func (s *StormGlass) Name() string { return stormGlassName }

type stormGlassPayload struct {
	Hours []struct {
		Time           string             `json:"time"`
		AirTemperature map[string]float64 `json:"airTemperature"`
		WindSpeed      map[string]float64 `json:"windSpeed"`
		WindDirection  map[string]float64 `json:"windDirection"`
		Gust           map[string]float64 `json:"gust"`
		Humidity       map[string]float64 `json:"humidity"`
		Visibility     map[string]float64 `json:"visibility"`
	} `json:"hours"`
	Meta struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"meta"`
}

func (s *StormGlass) FetchByCoordinate(ctx context.Context, lat, lon float64) (Result, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lng", fmt.Sprintf("%f", lon))
	q.Set("params", strings.Join(stormGlassParams, ","))

	headers := map[string]string{"Authorization": s.apiKey}

	var payload stormGlassPayload
	u := s.baseURL + "/weather/point?" + q.Encode()
	if err := getJSON(ctx, s.client, stormGlassName, u, headers, &payload); err != nil {
		return Result{}, err
	}

	grouped := make(map[string][]forecast.Record, len(stormGlassSources))
	for _, source := range stormGlassSources {
		grouped[source] = make([]forecast.Record, 0, len(payload.Hours))
	}

	for _, hourly := range payload.Hours {
		ts, err := time.Parse(time.RFC3339, hourly.Time)
		if err != nil {
			return Result{}, forecast.DataError(stormGlassName, "unexpected hour time %q", hourly.Time)
		}

		for _, source := range stormGlassSources {
			grouped[source] = append(grouped[source], forecast.Record{
				Location:            forecast.Coordinate{Latitude: payload.Meta.Lat, Longitude: payload.Meta.Lng},
				PlaceName:           nil,
				Timestamp:           ts,
				TemperatureC:        sourceValue(hourly.AirTemperature, source),
				FeelsLikeC:          nil,
				WindSpeed:           sourceValue(hourly.WindSpeed, source),
				WindSpeedUnit:       forecast.UnitKPH,
				WindGust:            forecast.Float(sourceValue(hourly.Gust, source)),
				WindDirection:       forecast.WindDirectionAbbrev(sourceValue(hourly.WindDirection, source)),
				RelativeHumidityPct: forecast.Float(sourceValue(hourly.Humidity, source)),
				VisibilityCategory:  forecast.VisibilityCategory(sourceValue(hourly.Visibility, source)),
				UVIndex:             nil,
				WeatherType:         nil,
				PrecipProbability:   nil,
			})
		}
	}
	return Result{Grouped: grouped}, nil
}

// sourceValue reads one source's reading for an hour, defaulting to the
// no-data sentinel when that source did not report.
func sourceValue(values map[string]float64, source string) float64 {
	if v, ok := values[source]; ok {
		return v
	}
	return forecast.NoDataValue
}
