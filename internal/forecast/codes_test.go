package forecast

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetOfficeWeatherCodesCoverDocumentedRange(t *testing.T) {
	assert.Equal(t, "Not available", MetOfficeWeatherCodes["NA"])
	for i := 0; i <= 30; i++ {
		_, ok := MetOfficeWeatherCodes[strconv.Itoa(i)]
		assert.True(t, ok, "code %d missing", i)
	}
}

func TestMetOfficeVisibilityCodesMapToCanonicalCategories(t *testing.T) {
	want := map[string]string{
		"UN": VisibilityUnknown,
		"VP": VisibilityVeryPoor,
		"PO": VisibilityPoor,
		"MO": VisibilityModerate,
		"GO": VisibilityGood,
		"VG": VisibilityVeryGood,
		"EX": VisibilityExcellent,
	}
	assert.Equal(t, want, MetOfficeVisibilityCodes)
}

func TestLookupUV(t *testing.T) {
	for i := 0; i <= 11; i++ {
		uv, ok := LookupUV(i)
		require.True(t, ok, "uv %d missing", i)
		assert.Equal(t, i, uv.Code)
		assert.NotEmpty(t, uv.Description)
	}

	_, ok := LookupUV(12)
	assert.False(t, ok)
	_, ok = LookupUV(-1)
	assert.False(t, ok)
}

func TestWeatherbitCompassNames(t *testing.T) {
	assert.Equal(t, "N", WeatherbitCompassNames["north"])
	assert.Equal(t, "WSW", WeatherbitCompassNames["west-southwest"])
	assert.Len(t, WeatherbitCompassNames, 16)
}
