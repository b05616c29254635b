package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weathermux/weathermux/internal/config"
	"github.com/weathermux/weathermux/internal/forecast"
)

const tomorrowIOBody = `{
	"data": {
		"timelines": [{
			"intervals": [{
				"startTime": "2024-01-02T15:00:00Z",
				"values": {
					"temperature": 7.5,
					"temperatureApparent": 4.2,
					"windSpeed": 6.0,
					"windGust": 11.2,
					"windDirection": 200,
					"humidity": 88,
					"visibility": 12000,
					"weatherCode": 4200,
					"precipitationProbability": 60
				}
			}]
		}]
	}
}`

func TestTomorrowIOFetchByCoordinate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1h", r.URL.Query().Get("timesteps"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Contains(t, r.URL.Query().Get("fields"), "weatherCode")
		w.Write([]byte(tomorrowIOBody))
	}))
	defer srv.Close()

	adapter := NewTomorrowIO(config.ProviderConfig{BaseURL: srv.URL, APIKey: "test-key"}, testDeps(srv))
	res, err := adapter.FetchByCoordinate(context.Background(), 52.47, -1.97)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	rec := res.Records[0]
	assert.Equal(t, time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC), rec.Timestamp.UTC())
	assert.InDelta(t, 7.5, rec.TemperatureC, 1e-9)
	assert.Equal(t, forecast.UnitKPH, rec.WindSpeedUnit)
	assert.Equal(t, "S", rec.WindDirection)
	assert.Equal(t, "Light rain", *rec.WeatherType)
	assert.Nil(t, rec.UVIndex)
	assert.InDelta(t, 60, *rec.PrecipProbability, 1e-9)
}

func TestTomorrowIOUnknownWeatherCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"timelines":[{"intervals":[{"startTime":"2024-01-02T15:00:00Z","values":{"weatherCode":9999}}]}]}}`))
	}))
	defer srv.Close()

	adapter := NewTomorrowIO(config.ProviderConfig{BaseURL: srv.URL}, testDeps(srv))
	_, err := adapter.FetchByCoordinate(context.Background(), 0, 0)
	var fe *forecast.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, forecast.KindProviderData, fe.Kind)
}

func TestTomorrowIONoTimelines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"timelines":[]}}`))
	}))
	defer srv.Close()

	adapter := NewTomorrowIO(config.ProviderConfig{BaseURL: srv.URL}, testDeps(srv))
	_, err := adapter.FetchByCoordinate(context.Background(), 0, 0)
	var fe *forecast.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, forecast.KindProviderData, fe.Kind)
}
