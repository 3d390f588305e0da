package locator

import (
	"strings"

	"github.com/pariz/gountries"
)

var countryCodeQuery = gountries.New()

// NormalizeAlpha2Code returns an uppercased 2-letter ISO3166 code. API
// uses some codes which are not in ISO3166: XX and ZZ for unknown
// countries, EU and AP for regions. For them an empty string is
// returned. Obsolete codes are mapped to actual ones.
func NormalizeAlpha2Code(alpha2 string) string {
	alpha2 = strings.ToUpper(strings.TrimSpace(alpha2))

	if len(alpha2) != 2 {
		return ""
	}

	switch alpha2 {
	case "XX", "ZZ", "AP", "EU":
		return ""
	case "YU":
		return "CS"
	case "FX":
		return "FR"
	case "UK":
		return "GB"
	default:
		return alpha2
	}
}

// CountryDetails returns ISO3166 data about a country of the location.
// If country is unknown, false is returned.
func (l *Location) CountryDetails() (gountries.Country, bool) {
	country, ok := countryCodeQuery.Countries[NormalizeAlpha2Code(l.CountryCode)]

	return country, ok
}

func (l *Location) fillCountryDetails() {
	if country, ok := l.CountryDetails(); ok {
		l.Alpha3Code = country.Codes.Alpha3
	}
}
