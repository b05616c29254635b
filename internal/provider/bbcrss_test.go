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

const bbcFeedBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>BBC Weather - Forecast for Birmingham, GB</title>
    <item>
      <title>Today: Light Cloud, Minimum Temperature: 4C</title>
      <description>Maximum Temperature: 9C, Wind Direction: West South Westerly</description>
    </item>
    <item>
      <title>Tomorrow: Drizzle, Minimum Temperature: 5C</title>
      <description>Maximum Temperature: 10C, Wind Direction: South Westerly</description>
    </item>
  </channel>
</rss>`

func TestBBCFetchByCoordinate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(bbcFeedBody))
	}))
	defer srv.Close()

	adapter := NewBBC(config.ProviderConfig{BaseURL: srv.URL}, testDeps(srv))
	res, err := adapter.FetchByCoordinate(context.Background(), 52.47, -1.97)
	require.NoError(t, err)
	require.NotNil(t, res.Feed)

	assert.Equal(t, "BBC Weather - Forecast for Birmingham, GB", res.Feed.Title)
	require.Len(t, res.Feed.Items, 2)
	assert.Equal(t, "Today: Light Cloud, Minimum Temperature: 4C", res.Feed.Items[0].Title)
	assert.Contains(t, res.Feed.Items[1].Description, "South Westerly")
	assert.Nil(t, res.Records)
}

func TestBBCUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	adapter := NewBBC(config.ProviderConfig{BaseURL: srv.URL}, testDeps(srv))
	_, err := adapter.FetchByCoordinate(context.Background(), 0, 0)
	var fe *forecast.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, forecast.KindProviderFetch, fe.Kind)
}

func TestBBCMalformedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not xml at all`))
	}))
	defer srv.Close()

	adapter := NewBBC(config.ProviderConfig{BaseURL: srv.URL}, testDeps(srv))
	_, err := adapter.FetchByCoordinate(context.Background(), 0, 0)
	var fe *forecast.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, forecast.KindProviderData, fe.Kind)
}
