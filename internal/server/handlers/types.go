package handlers

import "github.com/weathermux/weathermux/internal/provider"

// CoordinateRequest binds a raw lat/lon forecast query.
type CoordinateRequest struct {
	Lat       float64 `form:"lat" json:"lat" validate:"required,latitude" binding:"required"`
	Lon       float64 `form:"lon" json:"lon" validate:"required,longitude" binding:"required"`
	Providers string  `form:"providers" json:"providers"`
}

// PostcodeRequest binds a postal-code forecast query.
type PostcodeRequest struct {
	Country   string `form:"country" json:"country" binding:"required"`
	Postcode  string `form:"postcode" json:"postcode" binding:"required"`
	Providers string `form:"providers" json:"providers"`
}

// CityRequest binds a city/country forecast query.
type CityRequest struct {
	City      string `form:"city" json:"city" binding:"required"`
	Country   string `form:"country" json:"country" binding:"required"`
	Providers string `form:"providers" json:"providers"`
}

// ForecastResponse maps provider identifier to that provider's records
// or error descriptor. JSON serialization orders keys alphabetically, so
// the provider ordering is deterministic regardless of fetch completion
// order.
type ForecastResponse map[string]provider.Result

// ProvidersResponse lists the registered provider identifiers.
type ProvidersResponse struct {
	Providers []string `json:"providers"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error" validate:"required,min=1,max=500"`
	Code    string `json:"code,omitempty" validate:"omitempty,min=1,max=50"`
	Details string `json:"details,omitempty" validate:"omitempty,max=1000"`
}

// HealthResponse represents health check response with validation
type HealthResponse struct {
	Status    string `json:"status" validate:"required,oneof=ok alive ready degraded unavailable"`
	Uptime    string `json:"uptime" validate:"required"`
	Timestamp string `json:"timestamp,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}
