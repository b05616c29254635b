package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibilityCategoryThresholds(t *testing.T) {
	cases := []struct {
		metres float64
		want   string
	}{
		{0, VisibilityVeryPoor},
		{999, VisibilityVeryPoor},
		{1000, VisibilityPoor},
		{3999, VisibilityPoor},
		{4000, VisibilityModerate},
		{9999, VisibilityModerate},
		{10000, VisibilityGood},
		{19999, VisibilityGood},
		{20000, VisibilityVeryGood},
		{39999, VisibilityVeryGood},
		{40000, VisibilityExcellent},
		{99999, VisibilityExcellent},
		{100000, VisibilityUnknown},
		{150000, VisibilityUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, VisibilityCategory(tc.metres), "metres=%v", tc.metres)
	}
}

func TestVisibilityCategoryAlwaysReturns(t *testing.T) {
	// Every branch must produce a non-empty category across the whole
	// input range, including the boundaries themselves.
	for m := 0.0; m <= 200000; m += 250 {
		assert.NotEmpty(t, VisibilityCategory(m), "metres=%v", m)
	}
}

func TestWindDirectionAbbrev(t *testing.T) {
	cases := []struct {
		deg  float64
		want string
	}{
		{0, "N"},
		{10, "N"},
		{22.4, "N"},
		{337.5, "N"},
		{359, "N"},
		{360, "N"},
		{22.5, "NE"},
		{44, "NE"},
		{45, "NE"},
		{46, "NE"},
		{67.5, "E"},
		{90, "E"},
		{135, "SE"},
		{157.5, "S"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{337.4, "NW"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, WindDirectionAbbrev(tc.deg), "deg=%v", tc.deg)
	}
}

func TestWindDirectionAbbrevOutOfRange(t *testing.T) {
	assert.Equal(t, "Unknown", WindDirectionAbbrev(-1))
	assert.Equal(t, "Unknown", WindDirectionAbbrev(360.1))
	assert.Equal(t, "Unknown", WindDirectionAbbrev(NoDataValue))
}

func TestWindDirectionAbbrevPartitionsCircle(t *testing.T) {
	// The eight bands must cover the full circle with no gaps.
	for d := 0.0; d < 360; d += 0.5 {
		got := WindDirectionAbbrev(d)
		assert.NotEqual(t, "Unknown", got, "deg=%v", d)
		assert.NotEmpty(t, got, "deg=%v", d)
	}
}
