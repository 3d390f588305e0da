package locator

import (
	"strings"
)

// Precision defines a granularity of location data.
type Precision uint8

const (
	// PrecisionCity asks for full location data: country, region, city,
	// zip code, coordinates and timezone.
	PrecisionCity Precision = iota + 1

	// PrecisionCountry asks for country data only.
	PrecisionCountry
)

func (p Precision) String() string {
	switch p {
	case PrecisionCity:
		return "city"
	case PrecisionCountry:
		return "country"
	}

	return "unknown"
}

// MarshalText is here to render precision as a string in JSON
// documents.
func (p Precision) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, invalidConfigurationf("unknown precision %d", p)
	}

	return []byte(p.String()), nil
}

func (p *Precision) UnmarshalText(text []byte) error {
	value, err := ParsePrecision(string(text))
	if err != nil {
		return err
	}

	*p = value

	return nil
}

func (p Precision) valid() bool {
	return p == PrecisionCity || p == PrecisionCountry
}

// ParsePrecision converts a name of precision into a value. Names are
// case insensitive.
func ParsePrecision(name string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "city":
		return PrecisionCity, nil
	case "country":
		return PrecisionCountry, nil
	}

	return 0, invalidConfigurationf("unknown precision %q", name)
}

// Location is a geolocation of a single address. Locations of country
// precision have only CountryCode and CountryName fields set.
type Location struct {
	IPAddress      string    `json:"ip_address"`
	Precision      Precision `json:"precision"`
	CountryCode    string    `json:"country_code"`
	CountryName    string    `json:"country_name"`
	Alpha3Code     string    `json:"alpha3_code,omitempty"`
	RegionName     string    `json:"region_name,omitempty"`
	City           string    `json:"city,omitempty"`
	ZipCode        string    `json:"zip_code,omitempty"`
	Latitude       float64   `json:"latitude,omitempty"`
	Longitude      float64   `json:"longitude,omitempty"`
	TimezoneOffset float64   `json:"timezone_offset,omitempty"`
}

// Entry is a pair of normalized address and its location. Location is
// nil if address was not resolved.
type Entry struct {
	Address  string    `json:"address"`
	Location *Location `json:"location"`
}
