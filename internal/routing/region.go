package routing

import "strings"

// euCountries is the fixed EU membership set used for region derivation.
var euCountries = map[string]struct{}{
	"DE": {}, "FR": {}, "ES": {}, "IT": {}, "NL": {}, "BE": {}, "PT": {},
	"IE": {}, "AT": {}, "FI": {}, "GR": {}, "SE": {}, "DK": {}, "PL": {},
	"CZ": {}, "HU": {}, "RO": {}, "BG": {}, "SK": {}, "SI": {}, "HR": {},
	"LT": {}, "LV": {}, "EE": {}, "LU": {}, "CY": {}, "MT": {},
}

// RegionOf derives the coarse region bucket for a destination country code.
// ZA and US map to themselves, EU members map to "EU", and any other code is
// returned unchanged. Total and strict: no partial matching.
func RegionOf(country string) string {
	country = strings.ToUpper(country)
	if country == "ZA" || country == "US" {
		return country
	}
	if _, ok := euCountries[country]; ok {
		return "EU"
	}
	return country
}
