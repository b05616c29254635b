package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weathermux/weathermux/internal/config"
	"github.com/weathermux/weathermux/internal/forecast"
)

const weatherAPIBody = `{
	"location": {"lat": 52.47, "lon": -1.97, "name": "Birmingham", "region": "West Midlands", "country": "United Kingdom"},
	"forecast": {
		"forecastday": [{
			"hour": [{
				"time_epoch": 1700000000,
				"temp_c": 9.0,
				"feelslike_c": 6.8,
				"wind_kph": 15.1,
				"wind_dir": "WSW",
				"gust_kph": 24.5,
				"humidity": 80,
				"vis_km": 10.0,
				"uv": 1,
				"condition": {"text": "Overcast"},
				"chance_of_rain": 45
			}]
		}]
	}
}`

func TestWeatherAPIFetchByCoordinate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast.json", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("days"))
		assert.Equal(t, "no", r.URL.Query().Get("aqi"))
		w.Write([]byte(weatherAPIBody))
	}))
	defer srv.Close()

	adapter := NewWeatherAPI(config.ProviderConfig{BaseURL: srv.URL, APIKey: "test-key"}, testDeps(srv))
	res, err := adapter.FetchByCoordinate(context.Background(), 52.47, -1.97)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	rec := res.Records[0]
	// Name, region and country are joined with no separator.
	assert.Equal(t, "BirminghamWest MidlandsUnited Kingdom", *rec.PlaceName)
	assert.InDelta(t, 9.0, rec.TemperatureC, 1e-9)
	assert.Equal(t, forecast.UnitKPH, rec.WindSpeedUnit)
	assert.Equal(t, "WSW", rec.WindDirection)
	// 10.0 km is exactly 10000 m, the first value of the Good band.
	assert.Equal(t, "Good", rec.VisibilityCategory)
	assert.Equal(t, "Overcast", *rec.WeatherType)
	require.NotNil(t, rec.UVIndex)
	assert.Equal(t, 1, rec.UVIndex.Code)
	assert.InDelta(t, 45, *rec.PrecipProbability, 1e-9)
	assert.Equal(t, int64(1700000000), rec.Timestamp.Unix())
}

func TestWeatherAPIUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	adapter := NewWeatherAPI(config.ProviderConfig{BaseURL: srv.URL}, testDeps(srv))
	_, err := adapter.FetchByCoordinate(context.Background(), 0, 0)
	var fe *forecast.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, forecast.KindProviderFetch, fe.Kind)
	assert.Equal(t, "weatherapi", fe.Provider)
}
