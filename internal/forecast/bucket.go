package forecast

// VisibilityCategory buckets a visibility distance in metres into the
// canonical categories. Distances at or above 100 km are outside the
// coded scale and report Unknown.
func VisibilityCategory(metres float64) string {
	switch {
	case metres < 1000:
		return VisibilityVeryPoor
	case metres < 4000:
		return VisibilityPoor
	case metres < 10000:
		return VisibilityModerate
	case metres < 20000:
		return VisibilityGood
	case metres < 40000:
		return VisibilityVeryGood
	case metres < 100000:
		return VisibilityExcellent
	default:
		return VisibilityUnknown
	}
}

// WindDirectionAbbrev buckets a compass bearing into one of the eight
// principal directions. Each band is 45 degrees centered on its
// direction, so N covers [337.5,360) as well as [0,22.5). Bearings
// outside [0,360] report Unknown; 360 is treated as 0.
func WindDirectionAbbrev(degrees float64) string {
	if degrees < 0 || degrees > 360 {
		return "Unknown"
	}
	if degrees == 360 {
		degrees = 0
	}
	switch {
	case degrees < 22.5 || degrees >= 337.5:
		return "N"
	case degrees < 67.5:
		return "NE"
	case degrees < 112.5:
		return "E"
	case degrees < 157.5:
		return "SE"
	case degrees < 202.5:
		return "S"
	case degrees < 247.5:
		return "SW"
	case degrees < 292.5:
		return "W"
	default:
		return "NW"
	}
}
