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

const accuWeatherName = "accuweather"

// AccuWeather adapts the AccuWeather 12-hour hourly forecast. The API is
// keyed by AccuWeather's own location codes, so every coordinate fetch
// first resolves a location key via the geoposition endpoint. Postcode
// and city lookups are overridden to geocode first and then run the same
// location-key resolution, mirroring the upstream flow.
type AccuWeather struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

func NewAccuWeather(cfg config.ProviderConfig, deps Deps) Adapter {
	return &AccuWeather{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  deps.Client,
		logger:  deps.Logger.With(zap.String("provider", accuWeatherName)),
	}
}

func (a *AccuWeather) Name() string { return accuWeatherName }

func (a *AccuWeather) commonParams() url.Values {
	q := url.Values{}
	q.Set("apikey", a.apiKey)
	q.Set("language", "en-us")
	q.Set("details", "true")
	q.Set("metric", "true")
	return q
}

func (a *AccuWeather) locationKey(ctx context.Context, lat, lon float64) (string, error) {
	q := a.commonParams()
	q.Set("q", fmt.Sprintf("%f,%f", lat, lon))

	var payload struct {
		Key string `json:"Key"`
	}
	u := fmt.Sprintf("%s/locations/v1/cities/geoposition/search?%s", a.baseURL, q.Encode())
	if err := getJSON(ctx, a.client, accuWeatherName, u, nil, &payload); err != nil {
		return "", err
	}
	if payload.Key == "" {
		return "", forecast.DataError(accuWeatherName, "geoposition search returned no location key")
	}
	return payload.Key, nil
}

type accuWeatherHour struct {
	EpochDateTime int64 `json:"EpochDateTime"`
	Temperature   struct {
		Value float64 `json:"Value"`
	} `json:"Temperature"`
	RealFeelTemperature struct {
		Value float64 `json:"Value"`
	} `json:"RealFeelTemperature"`
	Wind struct {
		Speed struct {
			Value float64 `json:"Value"`
		} `json:"Speed"`
		Direction struct {
			Localized string `json:"Localized"`
		} `json:"Direction"`
	} `json:"Wind"`
	WindGust struct {
		Speed struct {
			Value float64 `json:"Value"`
		} `json:"Speed"`
	} `json:"WindGust"`
	RelativeHumidity float64 `json:"RelativeHumidity"`
	Visibility       struct {
		Value float64 `json:"Value"`
	} `json:"Visibility"`
	UVIndex                  int     `json:"UVIndex"`
	WeatherIcon              int     `json:"WeatherIcon"`
	PrecipitationProbability float64 `json:"PrecipitationProbability"`
}

func (a *AccuWeather) FetchByCoordinate(ctx context.Context, lat, lon float64) (Result, error) {
	key, err := a.locationKey(ctx, lat, lon)
	if err != nil {
		return Result{}, err
	}

	u := fmt.Sprintf("%s/forecasts/v1/hourly/12hour/%s?%s", a.baseURL, key, a.commonParams().Encode())
	var hours []accuWeatherHour
	if err := getJSON(ctx, a.client, accuWeatherName, u, nil, &hours); err != nil {
		return Result{}, err
	}

	records := make([]forecast.Record, 0, len(hours))
	for _, hourly := range hours {
		uv, ok := forecast.LookupUV(hourly.UVIndex)
		if !ok {
			return Result{}, forecast.DataError(accuWeatherName, "unknown UV index %d", hourly.UVIndex)
		}
		weatherType, ok := forecast.AccuWeatherIcons[hourly.WeatherIcon]
		if !ok {
			return Result{}, forecast.DataError(accuWeatherName, "unknown weather icon %d", hourly.WeatherIcon)
		}

		records = append(records, forecast.Record{
			Location:      forecast.Coordinate{Latitude: lat, Longitude: lon},
			PlaceName:     nil,
			Timestamp:     time.Unix(hourly.EpochDateTime, 0).UTC(),
			TemperatureC:  hourly.Temperature.Value,
			FeelsLikeC:    forecast.Float(hourly.RealFeelTemperature.Value),
			WindSpeed:     hourly.Wind.Speed.Value,
			WindSpeedUnit: forecast.UnitKPH,
			WindGust:      forecast.Float(hourly.WindGust.Speed.Value),
			WindDirection: hourly.Wind.Direction.Localized,
			RelativeHumidityPct: forecast.Float(hourly.RelativeHumidity),
			// Visibility arrives in km and the bucketing works in metres.
			VisibilityCategory: forecast.VisibilityCategory(hourly.Visibility.Value * 1000),
			UVIndex:            &uv,
			WeatherType:        forecast.String(weatherType),
			PrecipProbability:  forecast.Float(hourly.PrecipitationProbability),
		})
	}
	return Result{Records: records}, nil
}

// FetchByPostcode geocodes the postcode and pushes the coordinate through
// AccuWeather's own location-key resolution.
func (a *AccuWeather) FetchByPostcode(ctx context.Context, g Geocoder, countryCode, postcode string) (Result, error) {
	coord, err := g.ResolvePostcode(ctx, countryCode, postcode)
	if err != nil {
		return Result{}, err
	}
	return a.FetchByCoordinate(ctx, coord.Latitude, coord.Longitude)
}

// FetchByCityCountry geocodes the pair and pushes the coordinate through
// AccuWeather's own location-key resolution.
func (a *AccuWeather) FetchByCityCountry(ctx context.Context, g Geocoder, city, country string) (Result, error) {
	coord, err := g.ResolveCityCountry(ctx, city, country)
	if err != nil {
		return Result{}, err
	}
	return a.FetchByCoordinate(ctx, coord.Latitude, coord.Longitude)
}
