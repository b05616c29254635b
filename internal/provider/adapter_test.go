package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weathermux/weathermux/internal/forecast"
)

type stubAdapter struct {
	name    string
	lastLat float64
	lastLon float64
	result  Result
	err     error
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) FetchByCoordinate(ctx context.Context, lat, lon float64) (Result, error) {
	s.lastLat, s.lastLon = lat, lon
	return s.result, s.err
}

type stubGeocoder struct {
	coord forecast.Coordinate
	err   error

	postcodeCalls int
	cityCalls     int
}

func (s *stubGeocoder) ResolvePostcode(ctx context.Context, countryCode, postcode string) (forecast.Coordinate, error) {
	s.postcodeCalls++
	return s.coord, s.err
}

func (s *stubGeocoder) ResolveCityCountry(ctx context.Context, city, country string) (forecast.Coordinate, error) {
	s.cityCalls++
	return s.coord, s.err
}

func TestFetchByPostcodeComposesGeocoder(t *testing.T) {
	adapter := &stubAdapter{name: "stub", result: Result{Records: []forecast.Record{{}}}}
	g := &stubGeocoder{coord: forecast.Coordinate{Latitude: 51.5, Longitude: -0.1}}

	res, err := FetchByPostcode(context.Background(), adapter, g, "GB", "SW1A 1AA")
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
	assert.Equal(t, 1, g.postcodeCalls)
	assert.InDelta(t, 51.5, adapter.lastLat, 1e-9)
	assert.InDelta(t, -0.1, adapter.lastLon, 1e-9)
}

func TestFetchByPostcodeResolutionFailure(t *testing.T) {
	adapter := &stubAdapter{name: "stub"}
	g := &stubGeocoder{err: forecast.NewError(forecast.KindPostcodeNotFound, "", "no such postcode", nil)}

	_, err := FetchByPostcode(context.Background(), adapter, g, "GB", "ZZ99 9ZZ")
	var fe *forecast.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, forecast.KindPostcodeNotFound, fe.Kind)
	assert.Zero(t, adapter.lastLat)
}

func TestFetchByCityCountryComposesGeocoder(t *testing.T) {
	adapter := &stubAdapter{name: "stub"}
	g := &stubGeocoder{coord: forecast.Coordinate{Latitude: 48.85, Longitude: 2.35}}

	_, err := FetchByCityCountry(context.Background(), adapter, g, "Paris", "fr")
	require.NoError(t, err)
	assert.Equal(t, 1, g.cityCalls)
	assert.InDelta(t, 48.85, adapter.lastLat, 1e-9)
}

type overridingAdapter struct {
	stubAdapter
	postcodeCalls int
}

func (o *overridingAdapter) FetchByPostcode(ctx context.Context, g Geocoder, countryCode, postcode string) (Result, error) {
	o.postcodeCalls++
	return o.result, o.err
}

func TestFetchByPostcodePrefersAdapterOverride(t *testing.T) {
	adapter := &overridingAdapter{}
	g := &stubGeocoder{}

	_, err := FetchByPostcode(context.Background(), adapter, g, "GB", "SW1A 1AA")
	require.NoError(t, err)
	assert.Equal(t, 1, adapter.postcodeCalls)
	// The override owns its geocoding; the shared path must not resolve.
	assert.Equal(t, 0, g.postcodeCalls)
}
