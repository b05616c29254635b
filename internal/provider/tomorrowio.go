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

const tomorrowIOName = "tomorrowio"

var tomorrowIOFields = []string{
	"temperature", "temperatureApparent", "windSpeed", "windGust",
	"windDirection", "humidity", "visibility", "weatherCode",
	"precipitationProbability",
}

// TomorrowIO adapts the Tomorrow.io timelines API at a 1h timestep.
// Weather conditions and wind directions arrive as numbers; timestamps
// are ISO-8601 with an explicit offset.
type TomorrowIO struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

func NewTomorrowIO(cfg config.ProviderConfig, deps Deps) Adapter {
	return &TomorrowIO{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  deps.Client,
		logger:  deps.Logger.With(zap.String("provider", tomorrowIOName)),
	}
}

func (t *TomorrowIO) Name() string { return tomorrowIOName }

type tomorrowIOPayload struct {
	Data struct {
		Timelines []struct {
			Intervals []struct {
				StartTime string `json:"startTime"`
				Values    struct {
					Temperature              float64 `json:"temperature"`
					TemperatureApparent      float64 `json:"temperatureApparent"`
					WindSpeed                float64 `json:"windSpeed"`
					WindGust                 float64 `json:"windGust"`
					WindDirection            float64 `json:"windDirection"`
					Humidity                 float64 `json:"humidity"`
					Visibility               float64 `json:"visibility"`
					WeatherCode              int     `json:"weatherCode"`
					PrecipitationProbability float64 `json:"precipitationProbability"`
				} `json:"values"`
			} `json:"intervals"`
		} `json:"timelines"`
	} `json:"data"`
}

func (t *TomorrowIO) FetchByCoordinate(ctx context.Context, lat, lon float64) (Result, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lon))
	q.Set("fields", strings.Join(tomorrowIOFields, ","))
	q.Set("timesteps", "1h")
	q.Set("units", "metric")
	q.Set("apikey", t.apiKey)

	var payload tomorrowIOPayload
	if err := getJSON(ctx, t.client, tomorrowIOName, t.baseURL+"?"+q.Encode(), nil, &payload); err != nil {
		return Result{}, err
	}

	if len(payload.Data.Timelines) == 0 {
		return Result{}, forecast.DataError(tomorrowIOName, "response carries no timelines")
	}

	intervals := payload.Data.Timelines[0].Intervals
	records := make([]forecast.Record, 0, len(intervals))
	for _, interval := range intervals {
		ts, err := time.Parse(time.RFC3339, interval.StartTime)
		if err != nil {
			return Result{}, forecast.DataError(tomorrowIOName, "unexpected interval time %q", interval.StartTime)
		}

		v := interval.Values
		weatherType, ok := forecast.TomorrowIOWeatherCodes[v.WeatherCode]
		if !ok {
			return Result{}, forecast.DataError(tomorrowIOName, "unknown weather code %d", v.WeatherCode)
		}

		records = append(records, forecast.Record{
			Location:            forecast.Coordinate{Latitude: lat, Longitude: lon},
			PlaceName:           nil,
			Timestamp:           ts,
			TemperatureC:        v.Temperature,
			FeelsLikeC:          forecast.Float(v.TemperatureApparent),
			WindSpeed:           v.WindSpeed,
			WindSpeedUnit:       forecast.UnitKPH,
			WindGust:            forecast.Float(v.WindGust),
			WindDirection:       forecast.WindDirectionAbbrev(v.WindDirection),
			RelativeHumidityPct: forecast.Float(v.Humidity),
			VisibilityCategory:  forecast.VisibilityCategory(v.Visibility),
			UVIndex:             nil,
			WeatherType:         forecast.String(weatherType),
			PrecipProbability:   forecast.Float(v.PrecipitationProbability),
		})
	}
	return Result{Records: records}, nil
}
