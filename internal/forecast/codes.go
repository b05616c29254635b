package forecast

// Static code tables driving normalization. All maps here are read-only
// after package init and safe to share across concurrent fetches. A code
// missing from its table is a data error for the provider that produced
// it, never a silent blank.

// Canonical visibility categories.
const (
	VisibilityUnknown   = "Unknown"
	VisibilityVeryPoor  = "Very poor"
	VisibilityPoor      = "Poor"
	VisibilityModerate  = "Moderate"
	VisibilityGood      = "Good"
	VisibilityVeryGood  = "Very good"
	VisibilityExcellent = "Excellent"
)

// MetOfficeWeatherCodes maps DataPoint significant-weather codes to text.
var MetOfficeWeatherCodes = map[string]string{
	"NA": "Not available",
	"0":  "Clear night",
	"1":  "Sunny day",
	"2":  "Partly cloudy (night)",
	"3":  "Partly cloudy (day)",
	"4":  "Not used",
	"5":  "Mist",
	"6":  "Fog",
	"7":  "Cloudy",
	"8":  "Overcast",
	"9":  "Light rain shower (night)",
	"10": "Light rain shower (day)",
	"11": "Drizzle",
	"12": "Light rain",
	"13": "Heavy rain shower (night)",
	"14": "Heavy rain shower (day)",
	"15": "Heavy rain",
	"16": "Sleet shower (night)",
	"17": "Sleet shower (day)",
	"18": "Sleet",
	"19": "Hail shower (night)",
	"20": "Hail shower (day)",
	"21": "Hail",
	"22": "Light snow shower (night)",
	"23": "Light snow shower (day)",
	"24": "Light snow",
	"25": "Heavy snow shower (night)",
	"26": "Heavy snow shower (day)",
	"27": "Heavy snow",
	"28": "Thunder shower (night)",
	"29": "Thunder shower (day)",
	"30": "Thunder",
}

// MetOfficeVisibilityCodes maps DataPoint visibility codes to the
// canonical categories.
var MetOfficeVisibilityCodes = map[string]string{
	"UN": VisibilityUnknown,
	"VP": VisibilityVeryPoor,
	"PO": VisibilityPoor,
	"MO": VisibilityModerate,
	"GO": VisibilityGood,
	"VG": VisibilityVeryGood,
	"EX": VisibilityExcellent,
}

// UVDescriptions maps a UV index to WHO exposure guidance. Indexes above
// 11 are not coded and resolve as lookup misses.
var UVDescriptions = map[int]string{
	0:  "Low exposure. No protection required. You can safely stay outside",
	1:  "Low exposure. No protection required. You can safely stay outside",
	2:  "Low exposure. No protection required. You can safely stay outside",
	3:  "Moderate exposure. Seek shade during midday hours, cover up and wear sunscreen",
	4:  "Moderate exposure. Seek shade during midday hours, cover up and wear sunscreen",
	5:  "Moderate exposure. Seek shade during midday hours, cover up and wear sunscreen",
	6:  "High exposure. Seek shade during midday hours, cover up and wear sunscreen",
	7:  "High exposure. Seek shade during midday hours, cover up and wear sunscreen",
	8:  "Very high. Avoid being outside during midday hours. Shirt, sunscreen and hat are essential",
	9:  "Very high. Avoid being outside during midday hours. Shirt, sunscreen and hat are essential",
	10: "Very high. Avoid being outside during midday hours. Shirt, sunscreen and hat are essential",
	11: "Extreme. Avoid being outside during midday hours. Shirt, sunscreen and hat essential.",
}

// LookupUV resolves a UV index into the canonical UVIndex pair.
func LookupUV(code int) (UVIndex, bool) {
	desc, ok := UVDescriptions[code]
	if !ok {
		return UVIndex{}, false
	}
	return UVIndex{Code: code, Description: desc}, true
}

// AccuWeatherIcons maps AccuWeather WeatherIcon numbers to phrases.
// Numbers 20, 27 and 28 are unassigned upstream.
var AccuWeatherIcons = map[int]string{
	1:  "Sunny",
	2:  "Mostly sunny",
	3:  "Partly sunny",
	4:  "Intermittent clouds",
	5:  "Hazy sunshine",
	6:  "Mostly cloudy",
	7:  "Cloudy",
	8:  "Dreary (overcast)",
	11: "Fog",
	12: "Showers",
	13: "Mostly cloudy with showers",
	14: "Partly sunny with showers",
	15: "Thunderstorms",
	16: "Mostly cloudy with thunderstorms",
	17: "Partly sunny with thunderstorms",
	18: "Rain",
	19: "Flurries",
	21: "Partly sunny with flurries",
	22: "Snow",
	23: "Mostly cloudy with snow",
	24: "Ice",
	25: "Sleet",
	26: "Freezing rain",
	29: "Rain and snow",
	30: "Hot",
	31: "Cold",
	32: "Windy",
	33: "Clear (night)",
	34: "Mostly clear (night)",
	35: "Partly cloudy (night)",
	36: "Intermittent clouds (night)",
	37: "Hazy moonlight",
	38: "Mostly cloudy (night)",
	39: "Partly cloudy with showers (night)",
	40: "Mostly cloudy with showers (night)",
	41: "Partly cloudy with thunderstorms (night)",
	42: "Mostly cloudy with thunderstorms (night)",
	43: "Mostly cloudy with flurries (night)",
	44: "Mostly cloudy with snow (night)",
}

// TomorrowIOWeatherCodes maps Tomorrow.io numeric weatherCode values.
var TomorrowIOWeatherCodes = map[int]string{
	0:    "Unknown",
	1000: "Clear",
	1100: "Mostly clear",
	1101: "Partly cloudy",
	1102: "Mostly cloudy",
	1001: "Cloudy",
	2000: "Fog",
	2100: "Light fog",
	4000: "Drizzle",
	4001: "Rain",
	4200: "Light rain",
	4201: "Heavy rain",
	5000: "Snow",
	5001: "Flurries",
	5100: "Light snow",
	5101: "Heavy snow",
	6000: "Freezing drizzle",
	6001: "Freezing rain",
	6200: "Light freezing rain",
	6201: "Heavy freezing rain",
	7000: "Ice pellets",
	7101: "Heavy ice pellets",
	7102: "Light ice pellets",
	8000: "Thunderstorm",
}

// WeatherbitWeatherCodes maps Weatherbit condition codes to descriptions.
var WeatherbitWeatherCodes = map[string]string{
	"200": "Thunderstorm with light rain",
	"201": "Thunderstorm with rain",
	"202": "Thunderstorm with heavy rain",
	"230": "Thunderstorm with light drizzle",
	"231": "Thunderstorm with drizzle",
	"232": "Thunderstorm with heavy drizzle",
	"233": "Thunderstorm with hail",
	"300": "Light drizzle",
	"301": "Drizzle",
	"302": "Heavy drizzle",
	"500": "Light rain",
	"501": "Moderate rain",
	"502": "Heavy rain",
	"511": "Freezing rain",
	"520": "Light shower rain",
	"521": "Shower rain",
	"522": "Heavy shower rain",
	"600": "Light snow",
	"601": "Snow",
	"602": "Heavy snow",
	"610": "Mix snow/rain",
	"611": "Sleet",
	"612": "Heavy sleet",
	"621": "Snow shower",
	"622": "Heavy snow shower",
	"623": "Flurries",
	"700": "Mist",
	"711": "Smoke",
	"721": "Haze",
	"731": "Sand/dust",
	"741": "Fog",
	"751": "Freezing fog",
	"800": "Clear sky",
	"801": "Few clouds",
	"802": "Scattered clouds",
	"803": "Broken clouds",
	"804": "Overcast clouds",
	"900": "Unknown precipitation",
}

// WeatherbitCompassNames maps Weatherbit's full wind-direction names
// (wind_cdir_full) to compass abbreviations. This table is distinct from
// the degree-bucketing in WindDirectionAbbrev.
var WeatherbitCompassNames = map[string]string{
	"north":           "N",
	"north-northeast": "NNE",
	"northeast":       "NE",
	"east-northeast":  "ENE",
	"east":            "E",
	"east-southeast":  "ESE",
	"southeast":       "SE",
	"south-southeast": "SSE",
	"south":           "S",
	"south-southwest": "SSW",
	"southwest":       "SW",
	"west-southwest":  "WSW",
	"west":            "W",
	"west-northwest":  "WNW",
	"northwest":       "NW",
	"north-northwest": "NNW",
}
