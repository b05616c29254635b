package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/weathermux/weathermux/internal/config"
	"github.com/weathermux/weathermux/internal/forecast"
	"go.uber.org/zap"
)

const openWeatherName = "openweather"

// OpenWeather adapts the OpenWeatherMap One Call endpoint, which accepts
// raw coordinates. The current observation and the hourly forecast are
// normalized as one combined sequence. Gust and precipitation
// probability are frequently missing upstream and default to the no-data
// sentinel rather than nil, distinguishing "not supplied for this hour"
// from "provider has no such measurement".
type OpenWeather struct {
	baseURL string
	apiKey  string
	exclude string
	client  *http.Client
	logger  *zap.Logger
}

func NewOpenWeather(cfg config.ProviderConfig, deps Deps) Adapter {
	return &OpenWeather{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		exclude: "minutely",
		client:  deps.Client,
		logger:  deps.Logger.With(zap.String("provider", openWeatherName)),
	}
}

func (o *OpenWeather) Name() string { return openWeatherName }

type openWeatherEntry struct {
	Dt         int64    `json:"dt"`
	Temp       float64  `json:"temp"`
	FeelsLike  float64  `json:"feels_like"`
	WindSpeed  float64  `json:"wind_speed"`
	WindDeg    float64  `json:"wind_deg"`
	WindGust   *float64 `json:"wind_gust"`
	Humidity   float64  `json:"humidity"`
	Visibility float64  `json:"visibility"`
	UVI        float64  `json:"uvi"`
	Weather    []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Pop *float64 `json:"pop"`
}

type openWeatherPayload struct {
	Lat     float64            `json:"lat"`
	Lon     float64            `json:"lon"`
	Current openWeatherEntry   `json:"current"`
	Hourly  []openWeatherEntry `json:"hourly"`
}

func (o *OpenWeather) FetchByCoordinate(ctx context.Context, lat, lon float64) (Result, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("exclude", o.exclude)
	q.Set("appid", o.apiKey)
	q.Set("units", "metric")

	var payload openWeatherPayload
	if err := getJSON(ctx, o.client, openWeatherName, o.baseURL+"?"+q.Encode(), nil, &payload); err != nil {
		return Result{}, err
	}

	entries := append([]openWeatherEntry{payload.Current}, payload.Hourly...)
	records := make([]forecast.Record, 0, len(entries))
	for _, hourly := range entries {
		if len(hourly.Weather) == 0 {
			return Result{}, forecast.DataError(openWeatherName, "entry at %d has no weather block", hourly.Dt)
		}

		uv, ok := forecast.LookupUV(int(hourly.UVI))
		if !ok {
			return Result{}, forecast.DataError(openWeatherName, "unknown UV index %v", hourly.UVI)
		}

		gust := float64(forecast.NoDataValue)
		if hourly.WindGust != nil {
			gust = *hourly.WindGust
		}
		pop := float64(forecast.NoDataValue)
		if hourly.Pop != nil {
			pop = *hourly.Pop
		}

		records = append(records, forecast.Record{
			Location:            forecast.Coordinate{Latitude: payload.Lat, Longitude: payload.Lon},
			PlaceName:           nil,
			Timestamp:           time.Unix(hourly.Dt, 0).UTC(),
			TemperatureC:        hourly.Temp,
			FeelsLikeC:          forecast.Float(hourly.FeelsLike),
			WindSpeed:           hourly.WindSpeed,
			WindSpeedUnit:       forecast.UnitMPH,
			WindGust:            forecast.Float(gust),
			WindDirection:       forecast.WindDirectionAbbrev(hourly.WindDeg),
			RelativeHumidityPct: forecast.Float(hourly.Humidity),
			VisibilityCategory:  forecast.VisibilityCategory(hourly.Visibility),
			UVIndex:             &uv,
			WeatherType:         forecast.String(hourly.Weather[0].Description),
			PrecipProbability:   forecast.Float(pop),
		})
	}

	o.logger.Debug("Normalized forecast", zap.Int("records", len(records)))
	return Result{Records: records}, nil
}
