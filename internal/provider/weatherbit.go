package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/weathermux/weathermux/internal/config"
	"github.com/weathermux/weathermux/internal/forecast"
	"go.uber.org/zap"
)

const weatherbitName = "weatherbit"

// Weatherbit adapts the Weatherbit hourly forecast. Timestamps arrive in
// station-local time with no offset. Wind direction is Weatherbit's full
// compass name and resolves through its own name table, not the degree
// bucketing. Humidity is not carried by this feed.
type Weatherbit struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

func NewWeatherbit(cfg config.ProviderConfig, deps Deps) Adapter {
	return &Weatherbit{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  deps.Client,
		logger:  deps.Logger.With(zap.String("provider", weatherbitName)),
	}
}

func (w *Weatherbit) Name() string { return weatherbitName }

type weatherbitPayload struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	CityName string  `json:"city_name"`
	Data     []struct {
		TimestampLocal string  `json:"timestamp_local"`
		Temp           float64 `json:"temp"`
		AppTemp        float64 `json:"app_temp"`
		WindSpd        float64 `json:"wind_spd"`
		WindCdirFull   string  `json:"wind_cdir_full"`
		WindGustSpd    float64 `json:"wind_gust_spd"`
		Vis            float64 `json:"vis"`
		UV             float64 `json:"uv"`
		Weather        struct {
			Code int `json:"code"`
		} `json:"weather"`
		Pop float64 `json:"pop"`
	} `json:"data"`
}

func (w *Weatherbit) FetchByCoordinate(ctx context.Context, lat, lon float64) (Result, error) {
	q := url.Values{}
	q.Set("lang", "en")
	q.Set("key", w.apiKey)
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))

	var payload weatherbitPayload
	u := w.baseURL + "/forecast/hourly?" + q.Encode()
	if err := getJSON(ctx, w.client, weatherbitName, u, nil, &payload); err != nil {
		return Result{}, err
	}

	records := make([]forecast.Record, 0, len(payload.Data))
	for _, hourly := range payload.Data {
		// timestamp_local has no zone designator; it is the station's
		// wall-clock time.
		ts, err := time.Parse("2006-01-02T15:04:05", hourly.TimestampLocal)
		if err != nil {
			return Result{}, forecast.DataError(weatherbitName, "unexpected local timestamp %q", hourly.TimestampLocal)
		}

		direction, ok := forecast.WeatherbitCompassNames[hourly.WindCdirFull]
		if !ok {
			return Result{}, forecast.DataError(weatherbitName, "unknown wind direction %q", hourly.WindCdirFull)
		}
		weatherType, ok := forecast.WeatherbitWeatherCodes[strconv.Itoa(hourly.Weather.Code)]
		if !ok {
			return Result{}, forecast.DataError(weatherbitName, "unknown weather code %d", hourly.Weather.Code)
		}
		uv, ok := forecast.LookupUV(int(hourly.UV))
		if !ok {
			return Result{}, forecast.DataError(weatherbitName, "unknown UV index %v", hourly.UV)
		}

		records = append(records, forecast.Record{
			Location:            forecast.Coordinate{Latitude: payload.Lat, Longitude: payload.Lon},
			PlaceName:           forecast.String(payload.CityName),
			Timestamp:           ts,
			TemperatureC:        hourly.Temp,
			FeelsLikeC:          forecast.Float(hourly.AppTemp),
			WindSpeed:           hourly.WindSpd,
			WindSpeedUnit:       forecast.UnitKPH,
			WindGust:            forecast.Float(hourly.WindGustSpd),
			WindDirection:       direction,
			RelativeHumidityPct: nil,
			VisibilityCategory:  forecast.VisibilityCategory(hourly.Vis * 1000),
			UVIndex:             &uv,
			WeatherType:         forecast.String(weatherType),
			PrecipProbability:   forecast.Float(hourly.Pop),
		})
	}
	return Result{Records: records}, nil
}
