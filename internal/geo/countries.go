package geo

// SupportedCountries is the set of ISO 3166-1 alpha-2 codes the postal
// geocoding source carries data for. Postcode resolution rejects any
// country outside this set before touching the network.
var SupportedCountries = map[string]bool{
	"AD": true, "AR": true, "AS": true, "AT": true, "AU": true, "AX": true,
	"BD": true, "BE": true, "BG": true, "BM": true, "BR": true, "BY": true,
	"CA": true, "CH": true, "CL": true, "CO": true, "CR": true, "CZ": true,
	"DE": true, "DK": true, "DO": true, "DZ": true, "EE": true, "ES": true,
	"FI": true, "FM": true, "FO": true, "FR": true, "GB": true, "GF": true,
	"GG": true, "GL": true, "GP": true, "GT": true, "GU": true, "HR": true,
	"HU": true, "IE": true, "IM": true, "IN": true, "IS": true, "IT": true,
	"JE": true, "JP": true, "KR": true, "LI": true, "LK": true, "LT": true,
	"LU": true, "LV": true, "MC": true, "MD": true, "MH": true, "MK": true,
	"MP": true, "MQ": true, "MT": true, "MW": true, "MX": true, "MY": true,
	"NC": true, "NL": true, "NO": true, "NZ": true, "PH": true, "PK": true,
	"PL": true, "PM": true, "PR": true, "PT": true, "PW": true, "RE": true,
	"RO": true, "RS": true, "RU": true, "SE": true, "SG": true, "SI": true,
	"SJ": true, "SK": true, "SM": true, "TH": true, "TR": true, "UA": true,
	"US": true, "UY": true, "VA": true, "VI": true, "WF": true, "YT": true,
	"ZA": true,
}
