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

const weatherAPIName = "weatherapi"

// WeatherAPI adapts weatherapi.com's multi-day hourly forecast. The
// place name is the location's name, region and country concatenated
// with no separator; that matches the behaviour existing consumers see
// and is kept as is.
type WeatherAPI struct {
	baseURL string
	apiKey  string
	days    int
	client  *http.Client
	logger  *zap.Logger
}

func NewWeatherAPI(cfg config.ProviderConfig, deps Deps) Adapter {
	return &WeatherAPI{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		days:    5,
		client:  deps.Client,
		logger:  deps.Logger.With(zap.String("provider", weatherAPIName)),
	}
}

func (w *WeatherAPI) Name() string { return weatherAPIName }

type weatherAPIPayload struct {
	Location struct {
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		Name    string  `json:"name"`
		Region  string  `json:"region"`
		Country string  `json:"country"`
	} `json:"location"`
	Forecast struct {
		ForecastDay []struct {
			Hour []struct {
				TimeEpoch    int64   `json:"time_epoch"`
				TempC        float64 `json:"temp_c"`
				FeelsLikeC   float64 `json:"feelslike_c"`
				WindKph      float64 `json:"wind_kph"`
				WindDir      string  `json:"wind_dir"`
				GustKph      float64 `json:"gust_kph"`
				Humidity     float64 `json:"humidity"`
				VisKm        float64 `json:"vis_km"`
				UV           float64 `json:"uv"`
				Condition    struct {
					Text string `json:"text"`
				} `json:"condition"`
				ChanceOfRain float64 `json:"chance_of_rain"`
			} `json:"hour"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

func (w *WeatherAPI) FetchByCoordinate(ctx context.Context, lat, lon float64) (Result, error) {
	q := url.Values{}
	q.Set("key", w.apiKey)
	q.Set("q", fmt.Sprintf("%f,%f", lat, lon))
	q.Set("days", fmt.Sprintf("%d", w.days))
	q.Set("aqi", "no")
	q.Set("alerts", "no")

	var payload weatherAPIPayload
	u := w.baseURL + "/forecast.json?" + q.Encode()
	if err := getJSON(ctx, w.client, weatherAPIName, u, nil, &payload); err != nil {
		return Result{}, err
	}

	loc := payload.Location
	placeName := loc.Name + loc.Region + loc.Country

	var records []forecast.Record
	for _, day := range payload.Forecast.ForecastDay {
		for _, hourly := range day.Hour {
			uv, ok := forecast.LookupUV(int(hourly.UV))
			if !ok {
				return Result{}, forecast.DataError(weatherAPIName, "unknown UV index %v", hourly.UV)
			}

			records = append(records, forecast.Record{
				Location:            forecast.Coordinate{Latitude: loc.Lat, Longitude: loc.Lon},
				PlaceName:           forecast.String(placeName),
				Timestamp:           time.Unix(hourly.TimeEpoch, 0).UTC(),
				TemperatureC:        hourly.TempC,
				FeelsLikeC:          forecast.Float(hourly.FeelsLikeC),
				WindSpeed:           hourly.WindKph,
				WindSpeedUnit:       forecast.UnitKPH,
				WindGust:            forecast.Float(hourly.GustKph),
				WindDirection:       hourly.WindDir,
				RelativeHumidityPct: forecast.Float(hourly.Humidity),
				VisibilityCategory:  forecast.VisibilityCategory(hourly.VisKm * 1000),
				UVIndex:             &uv,
				WeatherType:         forecast.String(hourly.Condition.Text),
				PrecipProbability:   forecast.Float(hourly.ChanceOfRain),
			})
		}
	}
	return Result{Records: records}, nil
}
