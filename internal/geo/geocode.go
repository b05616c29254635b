package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/weathermux/weathermux/internal/forecast"
	"go.uber.org/zap"
)

// Resolver turns postal codes and city/country pairs into coordinates
// using external geocoding sources. Lookups are blocking, with no retry.
type Resolver struct {
	client       *http.Client
	postcodeURL  string
	nominatimURL string
	userAgent    string
	logger       *zap.Logger
}

// ResolverConfig carries the geocoding endpoints. Empty fields fall back
// to the public services.
type ResolverConfig struct {
	PostcodeBaseURL  string
	NominatimBaseURL string
	UserAgent        string
}

func NewResolver(cfg ResolverConfig, logger *zap.Logger) *Resolver {
	r := &Resolver{
		client:       &http.Client{Timeout: 10 * time.Second},
		postcodeURL:  cfg.PostcodeBaseURL,
		nominatimURL: cfg.NominatimBaseURL,
		userAgent:    cfg.UserAgent,
		logger:       logger,
	}
	if r.postcodeURL == "" {
		r.postcodeURL = "https://api.zippopotam.us"
	}
	if r.nominatimURL == "" {
		r.nominatimURL = "https://nominatim.openstreetmap.org"
	}
	if r.userAgent == "" {
		r.userAgent = "weathermux"
	}
	return r
}

// ResolvePostcode returns the coordinate nearest to the given postal code.
// The country code must be one of the supported set.
func (r *Resolver) ResolvePostcode(ctx context.Context, countryCode, postcode string) (forecast.Coordinate, error) {
	cc := strings.ToUpper(strings.TrimSpace(countryCode))
	if !SupportedCountries[cc] {
		return forecast.Coordinate{}, forecast.NewError(
			forecast.KindInvalidCountryCode, "",
			fmt.Sprintf("country code %q is not supported", countryCode), nil)
	}

	u := fmt.Sprintf("%s/%s/%s", r.postcodeURL, strings.ToLower(cc), url.PathEscape(strings.TrimSpace(postcode)))
	var payload struct {
		Places []struct {
			Latitude  string `json:"latitude"`
			Longitude string `json:"longitude"`
		} `json:"places"`
	}
	if err := r.getJSON(ctx, u, &payload); err != nil {
		return forecast.Coordinate{}, forecast.NewError(
			forecast.KindPostcodeNotFound, "",
			fmt.Sprintf("could not geocode postcode %q: %v", postcode, err), err)
	}

	if len(payload.Places) == 0 {
		return forecast.Coordinate{}, forecast.NewError(
			forecast.KindPostcodeNotFound, "",
			fmt.Sprintf("no location for postcode %q in %s", postcode, cc), nil)
	}

	lat, errLat := strconv.ParseFloat(payload.Places[0].Latitude, 64)
	lon, errLon := strconv.ParseFloat(payload.Places[0].Longitude, 64)
	if errLat != nil || errLon != nil || math.IsNaN(lat) || math.IsNaN(lon) {
		return forecast.Coordinate{}, forecast.NewError(
			forecast.KindPostcodeNotFound, "",
			fmt.Sprintf("postcode %q resolved to a non-numeric coordinate", postcode), nil)
	}

	r.logger.Debug("resolved postcode",
		zap.String("country", cc),
		zap.String("postcode", postcode),
		zap.Float64("lat", lat),
		zap.Float64("lon", lon))

	return forecast.Coordinate{Latitude: lat, Longitude: lon}, nil
}

// ResolveCityCountry returns the coordinate of a city/country pair.
func (r *Resolver) ResolveCityCountry(ctx context.Context, city, country string) (forecast.Coordinate, error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("%s, %s", city, country))
	q.Set("format", "json")
	q.Set("limit", "1")

	var payload []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	u := fmt.Sprintf("%s/search?%s", r.nominatimURL, q.Encode())
	if err := r.getJSON(ctx, u, &payload); err != nil {
		return forecast.Coordinate{}, forecast.NewError(
			forecast.KindPlaceNotFound, "",
			fmt.Sprintf("could not geocode %q, %q: %v", city, country, err), err)
	}

	if len(payload) == 0 {
		return forecast.Coordinate{}, forecast.NewError(
			forecast.KindPlaceNotFound, "",
			fmt.Sprintf("no location for %q, %q", city, country), nil)
	}

	lat, errLat := strconv.ParseFloat(payload[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(payload[0].Lon, 64)
	if errLat != nil || errLon != nil {
		return forecast.Coordinate{}, forecast.NewError(
			forecast.KindPlaceNotFound, "",
			fmt.Sprintf("%q, %q resolved to a non-numeric coordinate", city, country), nil)
	}

	return forecast.Coordinate{Latitude: lat, Longitude: lon}, nil
}

func (r *Resolver) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoding request failed with status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
