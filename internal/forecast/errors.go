package forecast

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can serialize it without matching
// on error strings.
type Kind string

const (
	KindInvalidCountryCode Kind = "invalid_country_code"
	KindPostcodeNotFound   Kind = "postcode_not_found"
	KindPlaceNotFound      Kind = "place_not_found"
	KindProviderFetch      Kind = "provider_fetch_error"
	KindProviderData       Kind = "provider_data_error"
	KindStationNotFound    Kind = "station_not_found"
)

// Error is the failure descriptor attached to a single provider result or
// geocoding step. Failures are local: one provider's Error never crosses
// the fan-out boundary into another provider's result.
type Error struct {
	Kind     Kind   `json:"kind"`
	Provider string `json:"provider,omitempty"`
	Message  string `json:"message"`
	cause    error
}

func (e *Error) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s: %s: %s", e.Provider, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// NewError builds an Error wrapping cause (cause may be nil).
func NewError(kind Kind, provider, message string, cause error) *Error {
	return &Error{Kind: kind, Provider: provider, Message: message, cause: cause}
}

// FetchError marks a network or HTTP-level failure talking to a provider.
func FetchError(provider string, cause error) *Error {
	return &Error{Kind: KindProviderFetch, Provider: provider, Message: cause.Error(), cause: cause}
}

// DataError marks a provider response outside the expected shape, or a
// code value missing from its lookup table.
func DataError(provider, format string, args ...any) *Error {
	return &Error{Kind: KindProviderData, Provider: provider, Message: fmt.Sprintf(format, args...)}
}

// AsError coerces any error into an *Error, defaulting unclassified
// failures to a fetch error for the given provider.
func AsError(provider string, err error) *Error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	return FetchError(provider, err)
}
