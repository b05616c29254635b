package forecast

import "time"

// NoDataValue marks a reading the provider reported but could not supply.
// It is distinct from a nil field, which means the provider does not carry
// that measurement at all. Which providers use which is part of their
// documented behaviour and must not be unified.
const NoDataValue = 99999

// Wind speed units as reported per provider. The unit applies to both
// WindSpeed and WindGust of a record.
const (
	UnitMPH = "mph"
	UnitKPH = "kph"
)

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UVIndex pairs a provider UV code with its exposure description.
type UVIndex struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// Record is the canonical per-timestamp observation every provider is
// normalized into. Every field is present for every provider; a nil
// pointer means the provider does not supply that measurement.
type Record struct {
	Location  Coordinate `json:"location"`
	PlaceName *string    `json:"place_name"`
	Timestamp time.Time  `json:"timestamp"`

	TemperatureC float64  `json:"temperature_c"`
	FeelsLikeC   *float64 `json:"feels_like_temperature_c"`

	WindSpeed     float64  `json:"wind_speed"`
	WindSpeedUnit string   `json:"wind_speed_unit"`
	WindGust      *float64 `json:"wind_gust"`
	WindDirection string   `json:"wind_direction"`

	RelativeHumidityPct *float64 `json:"relative_humidity_pct"`
	VisibilityCategory  string   `json:"visibility_category"`
	UVIndex             *UVIndex `json:"uv_index"`
	WeatherType         *string  `json:"weather_type"`
	PrecipProbability   *float64 `json:"precipitation_probability_pct"`
}

// FeedItem is one entry of a provider's raw syndication feed.
type FeedItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FeedSummary is the output of the feed-based provider, which is not
// normalized into Records and returns its raw text instead.
type FeedSummary struct {
	Title string     `json:"title"`
	Items []FeedItem `json:"items"`
}

// Float returns a pointer to v. Convenience for optional record fields.
func Float(v float64) *float64 { return &v }

// String returns a pointer to s.
func String(s string) *string { return &s }
