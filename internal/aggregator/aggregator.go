package aggregator

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/weathermux/weathermux/internal/config"
	"github.com/weathermux/weathermux/internal/forecast"
	"github.com/weathermux/weathermux/internal/geo"
	"github.com/weathermux/weathermux/internal/provider"
	"github.com/weathermux/weathermux/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Aggregator fans one location query out to every registered provider
// adapter concurrently and joins the per-provider results. A provider's
// failure is recorded as its own error entry and never disturbs a
// sibling's result.
type Aggregator struct {
	adapters map[string]provider.Adapter
	resolver provider.Geocoder
	logger   *zap.Logger
	tele     *telemetry.Telemetry
}

func New(adapters map[string]provider.Adapter, resolver provider.Geocoder, logger *zap.Logger, tele *telemetry.Telemetry) *Aggregator {
	return &Aggregator{
		adapters: adapters,
		resolver: resolver,
		logger:   logger,
		tele:     tele,
	}
}

// FromConfig builds the aggregator with every enabled provider from the
// static registry.
func FromConfig(cfg *config.Config, logger *zap.Logger, tele *telemetry.Telemetry) *Aggregator {
	client := &http.Client{
		Timeout: time.Duration(cfg.Providers.Timeout) * time.Second,
	}
	resolver := geo.NewResolver(geo.ResolverConfig{
		PostcodeBaseURL:  cfg.Geocoding.PostcodeBaseURL,
		NominatimBaseURL: cfg.Geocoding.NominatimBaseURL,
		UserAgent:        cfg.Geocoding.UserAgent,
	}, logger)

	deps := provider.Deps{
		Client:   client,
		Resolver: resolver,
		Logger:   logger,
	}

	adapters := make(map[string]provider.Adapter)
	for name, pcfg := range cfg.Providers.Entries {
		if !pcfg.Enabled {
			continue
		}
		adapter, ok := provider.New(name, pcfg, deps)
		if !ok {
			logger.Warn("Unknown provider in configuration", zap.String("provider", name))
			continue
		}
		adapters[name] = adapter
		logger.Info("Registered weather provider", zap.String("provider", name))
	}

	return New(adapters, resolver, logger, tele)
}

// Names returns the registered provider identifiers in sorted order.
func (a *Aggregator) Names() []string {
	names := make([]string, 0, len(a.adapters))
	for name := range a.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the named provider is registered.
func (a *Aggregator) Has(name string) bool {
	_, ok := a.adapters[name]
	return ok
}

// FetchAll dispatches one fetch-and-normalize per registered provider
// concurrently and returns a result keyed by provider name. Passing
// names restricts the fan-out to that subset; otherwise every registered
// provider is queried. The returned map holds an entry for every
// dispatched provider, success or failure.
func (a *Aggregator) FetchAll(ctx context.Context, lat, lon float64, names ...string) map[string]provider.Result {
	tracer := a.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "aggregator.FetchAll")
	defer span.End()

	selected := a.selectAdapters(names)

	span.SetAttributes(
		attribute.Float64("lat", lat),
		attribute.Float64("lon", lon),
		attribute.Int("providers", len(selected)),
	)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]provider.Result, len(selected))
	)

	for name, adapter := range selected {
		wg.Add(1)
		go func(name string, adapter provider.Adapter) {
			defer wg.Done()

			ctx, span := tracer.Start(ctx, "provider.fetch")
			span.SetAttributes(attribute.String("provider", name))
			defer span.End()

			res, err := adapter.FetchByCoordinate(ctx, lat, lon)
			if err != nil {
				a.logger.Warn("Provider fetch failed",
					zap.String("provider", name),
					zap.Error(err))
				span.SetAttributes(attribute.Bool("success", false))
				res = provider.Result{Err: forecast.AsError(name, err)}
			} else {
				span.SetAttributes(attribute.Bool("success", true))
			}

			mu.Lock()
			results[name] = res
			mu.Unlock()
		}(name, adapter)
	}

	wg.Wait()

	a.logger.Info("Fan-out complete",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Int("providers", len(results)))

	return results
}

// FetchAllByPostcode resolves the postcode once and fans the coordinate
// out to every provider. A resolution failure fails the whole request.
func (a *Aggregator) FetchAllByPostcode(ctx context.Context, countryCode, postcode string, names ...string) (map[string]provider.Result, error) {
	coord, err := a.resolver.ResolvePostcode(ctx, countryCode, postcode)
	if err != nil {
		return nil, err
	}
	return a.FetchAll(ctx, coord.Latitude, coord.Longitude, names...), nil
}

// FetchAllByCityCountry resolves the city/country pair once and fans the
// coordinate out to every provider.
func (a *Aggregator) FetchAllByCityCountry(ctx context.Context, city, country string, names ...string) (map[string]provider.Result, error) {
	coord, err := a.resolver.ResolveCityCountry(ctx, city, country)
	if err != nil {
		return nil, err
	}
	return a.FetchAll(ctx, coord.Latitude, coord.Longitude, names...), nil
}

func (a *Aggregator) selectAdapters(names []string) map[string]provider.Adapter {
	if len(names) == 0 {
		return a.adapters
	}
	selected := make(map[string]provider.Adapter, len(names))
	for _, name := range names {
		if adapter, ok := a.adapters[name]; ok {
			selected[name] = adapter
		}
	}
	return selected
}
