package provider

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/weathermux/weathermux/internal/config"
	"github.com/weathermux/weathermux/internal/forecast"
	"github.com/weathermux/weathermux/internal/geo"
	"go.uber.org/zap"
)

const metOfficeName = "metoffice"

// MetOffice adapts the Met Office DataPoint 3-hourly forecast. DataPoint
// only serves discrete sites, so the full site list is fetched once at
// construction and the nearest site to the query coordinate is selected
// per fetch. The site table is read-only after construction.
type MetOffice struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	logger   *zap.Logger
	stations []geo.Station
	loadErr  error
}

func NewMetOffice(cfg config.ProviderConfig, deps Deps) Adapter {
	m := &MetOffice{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  deps.Client,
		logger:  deps.Logger.With(zap.String("provider", metOfficeName)),
	}
	m.stations, m.loadErr = m.loadStations()
	if m.loadErr != nil {
		m.logger.Warn("Site list unavailable, fetches will fail until restart", zap.Error(m.loadErr))
	} else {
		m.logger.Debug("Loaded site list", zap.Int("stations", len(m.stations)))
	}
	return m
}

func (m *MetOffice) Name() string { return metOfficeName }

type metOfficeSiteList struct {
	Locations struct {
		Location []struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			Latitude  string `json:"latitude"`
			Longitude string `json:"longitude"`
		} `json:"Location"`
	} `json:"Locations"`
}

func (m *MetOffice) loadStations() ([]geo.Station, error) {
	url := fmt.Sprintf("%s/val/wxfcs/all/json/sitelist?key=%s", m.baseURL, m.apiKey)

	var payload metOfficeSiteList
	if err := getJSON(context.Background(), m.client, metOfficeName, url, nil, &payload); err != nil {
		return nil, err
	}

	stations := make([]geo.Station, 0, len(payload.Locations.Location))
	for _, loc := range payload.Locations.Location {
		lat, errLat := strconv.ParseFloat(loc.Latitude, 64)
		lon, errLon := strconv.ParseFloat(loc.Longitude, 64)
		if errLat != nil || errLon != nil {
			continue
		}
		stations = append(stations, geo.Station{
			ID:        loc.ID,
			Name:      loc.Name,
			Latitude:  lat,
			Longitude: lon,
		})
	}
	return stations, nil
}

type metOfficeForecast struct {
	SiteRep struct {
		DV struct {
			Location struct {
				Lat    string `json:"lat"`
				Lon    string `json:"lon"`
				Name   string `json:"name"`
				Period []struct {
					Value string             `json:"value"`
					Rep   []map[string]string `json:"Rep"`
				} `json:"Period"`
			} `json:"Location"`
		} `json:"DV"`
	} `json:"SiteRep"`
}

func (m *MetOffice) FetchByCoordinate(ctx context.Context, lat, lon float64) (Result, error) {
	if m.loadErr != nil {
		return Result{}, forecast.NewError(forecast.KindStationNotFound, metOfficeName,
			"station list unavailable", m.loadErr)
	}

	station, err := geo.NearestStation(lat, lon, m.stations)
	if err != nil {
		return Result{}, forecast.NewError(forecast.KindStationNotFound, metOfficeName,
			"no station near query coordinate", err)
	}

	url := fmt.Sprintf("%s/val/wxfcs/all/json/%s?res=3hourly&key=%s", m.baseURL, station.ID, m.apiKey)
	var payload metOfficeForecast
	if err := getJSON(ctx, m.client, metOfficeName, url, nil, &payload); err != nil {
		return Result{}, err
	}

	records, err := m.normalize(payload)
	if err != nil {
		return Result{}, err
	}
	return Result{Records: records}, nil
}

func (m *MetOffice) normalize(payload metOfficeForecast) ([]forecast.Record, error) {
	loc := payload.SiteRep.DV.Location
	lat, errLat := strconv.ParseFloat(loc.Lat, 64)
	lon, errLon := strconv.ParseFloat(loc.Lon, 64)
	if errLat != nil || errLon != nil {
		return nil, forecast.DataError(metOfficeName, "site coordinates are not numeric: %q,%q", loc.Lat, loc.Lon)
	}

	var records []forecast.Record
	for _, day := range loc.Period {
		// Period values look like "2024-01-02Z"; each Rep carries its
		// minute offset into that day under "$". The two are summed
		// into one absolute timestamp.
		dayStart, err := time.Parse("2006-01-02Z", day.Value)
		if err != nil {
			return nil, forecast.DataError(metOfficeName, "unexpected period value %q", day.Value)
		}

		for _, rep := range day.Rep {
			minutes, err := strconv.Atoi(rep["$"])
			if err != nil {
				return nil, forecast.DataError(metOfficeName, "unexpected minute offset %q", rep["$"])
			}

			visibility, ok := forecast.MetOfficeVisibilityCodes[rep["V"]]
			if !ok {
				return nil, forecast.DataError(metOfficeName, "unknown visibility code %q", rep["V"])
			}
			weatherType, ok := forecast.MetOfficeWeatherCodes[rep["W"]]
			if !ok {
				return nil, forecast.DataError(metOfficeName, "unknown weather code %q", rep["W"])
			}
			uvCode, err := strconv.Atoi(rep["U"])
			if err != nil {
				return nil, forecast.DataError(metOfficeName, "unexpected UV code %q", rep["U"])
			}
			uv, ok := forecast.LookupUV(uvCode)
			if !ok {
				return nil, forecast.DataError(metOfficeName, "unknown UV code %d", uvCode)
			}

			temp, err := parseRepFloat(rep, "T")
			if err != nil {
				return nil, err
			}
			feels, err := parseRepFloat(rep, "F")
			if err != nil {
				return nil, err
			}
			gust, err := parseRepFloat(rep, "G")
			if err != nil {
				return nil, err
			}
			humidity, err := parseRepFloat(rep, "H")
			if err != nil {
				return nil, err
			}
			speed, err := parseRepFloat(rep, "S")
			if err != nil {
				return nil, err
			}
			precip, err := parseRepFloat(rep, "Pp")
			if err != nil {
				return nil, err
			}

			records = append(records, forecast.Record{
				Location:            forecast.Coordinate{Latitude: lat, Longitude: lon},
				PlaceName:           forecast.String(loc.Name),
				Timestamp:           dayStart.Add(time.Duration(minutes) * time.Minute),
				TemperatureC:        temp,
				FeelsLikeC:          forecast.Float(feels),
				WindSpeed:           speed,
				WindSpeedUnit:       forecast.UnitMPH,
				WindGust:            forecast.Float(gust),
				WindDirection:       rep["D"],
				RelativeHumidityPct: forecast.Float(humidity),
				VisibilityCategory:  visibility,
				UVIndex:             &uv,
				WeatherType:         forecast.String(weatherType),
				PrecipProbability:   forecast.Float(precip),
			})
		}
	}
	return records, nil
}

func parseRepFloat(rep map[string]string, key string) (float64, error) {
	v, err := strconv.ParseFloat(rep[key], 64)
	if err != nil {
		return 0, forecast.DataError(metOfficeName, "field %q is not numeric: %q", key, rep[key])
	}
	return v, nil
}
