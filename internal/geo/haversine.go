package geo

import (
	"math"

	"github.com/weathermux/weathermux/internal/forecast"
)

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance in kilometres between two
// points given in decimal degrees.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return c * earthRadiusKm
}

// Station is a discrete reporting point for providers that cannot accept
// arbitrary coordinates.
type Station struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
}

// NearestStation returns the station closest to the query point by
// great-circle distance. Exact ties keep the first station in the
// original listing order.
func NearestStation(lat, lon float64, stations []Station) (Station, error) {
	if len(stations) == 0 {
		return Station{}, forecast.NewError(forecast.KindStationNotFound, "", "station list is empty", nil)
	}

	best := stations[0]
	bestDist := HaversineKm(lat, lon, best.Latitude, best.Longitude)
	for _, s := range stations[1:] {
		d := HaversineKm(lat, lon, s.Latitude, s.Longitude)
		if d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best, nil
}
