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
	"go.uber.org/zap"
)

func testDeps(srv *httptest.Server) Deps {
	return Deps{
		Client: srv.Client(),
		Logger: zap.NewNop(),
	}
}

const openWeatherBody = `{
	"lat": 52.47,
	"lon": -1.97,
	"current": {
		"dt": 1700000000,
		"temp": 9.5,
		"feels_like": 7.2,
		"wind_speed": 4.1,
		"wind_deg": 350,
		"wind_gust": 8.8,
		"humidity": 81,
		"visibility": 10000,
		"uvi": 1,
		"weather": [{"description": "overcast clouds"}]
	},
	"hourly": [{
		"dt": 1700003600,
		"temp": 10.1,
		"feels_like": 8.0,
		"wind_speed": 5.0,
		"wind_deg": 46,
		"humidity": 78,
		"visibility": 3500,
		"uvi": 2,
		"weather": [{"description": "light rain"}],
		"pop": 0.4
	}]
}`

func TestOpenWeatherFetchByCoordinate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "minutely", r.URL.Query().Get("exclude"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		w.Write([]byte(openWeatherBody))
	}))
	defer srv.Close()

	adapter := NewOpenWeather(config.ProviderConfig{BaseURL: srv.URL, APIKey: "test-key"}, testDeps(srv))
	res, err := adapter.FetchByCoordinate(context.Background(), 52.47, -1.97)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	current := res.Records[0]
	assert.InDelta(t, 9.5, current.TemperatureC, 1e-9)
	assert.Equal(t, forecast.UnitMPH, current.WindSpeedUnit)
	assert.Equal(t, "N", current.WindDirection)
	assert.Equal(t, "Moderate", current.VisibilityCategory)
	require.NotNil(t, current.UVIndex)
	assert.Equal(t, 1, current.UVIndex.Code)
	assert.Equal(t, "Low exposure. No protection required. You can safely stay outside", current.UVIndex.Description)
	require.NotNil(t, current.WindGust)
	assert.InDelta(t, 8.8, *current.WindGust, 1e-9)
	// The current block never carries pop; it reads as measured-but-missing.
	require.NotNil(t, current.PrecipProbability)
	assert.EqualValues(t, forecast.NoDataValue, *current.PrecipProbability)
	assert.Nil(t, current.PlaceName)

	hour := res.Records[1]
	assert.Equal(t, "NE", hour.WindDirection)
	assert.Equal(t, "Poor", hour.VisibilityCategory)
	require.NotNil(t, hour.WindGust)
	assert.EqualValues(t, forecast.NoDataValue, *hour.WindGust)
	require.NotNil(t, hour.PrecipProbability)
	assert.InDelta(t, 0.4, *hour.PrecipProbability, 1e-9)
	assert.Equal(t, "light rain", *hour.WeatherType)
	assert.Equal(t, int64(1700003600), hour.Timestamp.Unix())
}

func TestOpenWeatherMissingWeatherBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"lat":0,"lon":0,"current":{"dt":1700000000,"uvi":0,"weather":[]},"hourly":[]}`))
	}))
	defer srv.Close()

	adapter := NewOpenWeather(config.ProviderConfig{BaseURL: srv.URL}, testDeps(srv))
	_, err := adapter.FetchByCoordinate(context.Background(), 0, 0)
	var fe *forecast.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, forecast.KindProviderData, fe.Kind)
}

func TestOpenWeatherUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	adapter := NewOpenWeather(config.ProviderConfig{BaseURL: srv.URL}, testDeps(srv))
	_, err := adapter.FetchByCoordinate(context.Background(), 0, 0)
	var fe *forecast.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, forecast.KindProviderFetch, fe.Kind)
	assert.Equal(t, "openweather", fe.Provider)
}
