// Package provider contains one adapter per external weather API. Each
// adapter fetches its provider's raw data and normalizes it into the
// canonical forecast records; the capability set is the Adapter interface
// plus the free postcode/city entry points composing the geocoding
// resolver with the coordinate path.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/weathermux/weathermux/internal/forecast"
)

// Result is one provider's normalized output. Exactly one of Records,
// Grouped or Feed is set on success; Grouped is the multi-source variant
// (one record list per upstream model) and Feed is the raw-syndication
// variant of the least-normalized provider.
type Result struct {
	Records []forecast.Record            `json:"records,omitempty"`
	Grouped map[string][]forecast.Record `json:"sources,omitempty"`
	Feed    *forecast.FeedSummary        `json:"feed,omitempty"`
	Err     *forecast.Error              `json:"error,omitempty"`
}

// Adapter is the per-provider fetch-and-normalize contract. Adapters are
// stateless apart from credentials and construction-time caches, so one
// instance may serve concurrent fetches.
type Adapter interface {
	Name() string
	FetchByCoordinate(ctx context.Context, lat, lon float64) (Result, error)
}

// Geocoder resolves non-coordinate locations. Satisfied by *geo.Resolver.
type Geocoder interface {
	ResolvePostcode(ctx context.Context, countryCode, postcode string) (forecast.Coordinate, error)
	ResolveCityCountry(ctx context.Context, city, country string) (forecast.Coordinate, error)
}

// PostcodeFetcher is implemented by adapters that route postcodes through
// their own location lookup instead of the shared composition.
type PostcodeFetcher interface {
	FetchByPostcode(ctx context.Context, g Geocoder, countryCode, postcode string) (Result, error)
}

// CityCountryFetcher is the city/country analogue of PostcodeFetcher.
type CityCountryFetcher interface {
	FetchByCityCountry(ctx context.Context, g Geocoder, city, country string) (Result, error)
}

// FetchByPostcode resolves the postcode once and feeds the coordinate
// path, unless the adapter carries its own postcode handling.
func FetchByPostcode(ctx context.Context, a Adapter, g Geocoder, countryCode, postcode string) (Result, error) {
	if pf, ok := a.(PostcodeFetcher); ok {
		return pf.FetchByPostcode(ctx, g, countryCode, postcode)
	}
	coord, err := g.ResolvePostcode(ctx, countryCode, postcode)
	if err != nil {
		return Result{}, err
	}
	return a.FetchByCoordinate(ctx, coord.Latitude, coord.Longitude)
}

// FetchByCityCountry resolves the city/country pair once and feeds the
// coordinate path.
func FetchByCityCountry(ctx context.Context, a Adapter, g Geocoder, city, country string) (Result, error) {
	if cf, ok := a.(CityCountryFetcher); ok {
		return cf.FetchByCityCountry(ctx, g, city, country)
	}
	coord, err := g.ResolveCityCountry(ctx, city, country)
	if err != nil {
		return Result{}, err
	}
	return a.FetchByCoordinate(ctx, coord.Latitude, coord.Longitude)
}

// getJSON performs one provider GET and decodes the JSON body. Transport
// and non-2xx failures are fetch errors; an undecodable body is a data
// error.
func getJSON(ctx context.Context, client *http.Client, name, rawURL string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return forecast.FetchError(name, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return forecast.FetchError(name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return forecast.FetchError(name, fmt.Errorf("request failed with status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return forecast.DataError(name, "decoding response: %v", err)
	}
	return nil
}
