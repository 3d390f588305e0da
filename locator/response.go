package locator

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

const statusOK = "OK"

// textValue is a scalar which API may send either as a string or as a
// number.
type textValue string

func (t *textValue) UnmarshalJSON(b []byte) error {
	var v interface{}

	if err := json.Unmarshal(b, &v); err != nil {
		return errors.Annotate(err, "cannot unmarshal value")
	}

	switch vv := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = textValue(vv)
	case float64:
		*t = textValue(strconv.FormatFloat(vv, 'f', -1, 64))
	default:
		return errors.Errorf("unexpected value %v", v)
	}

	return nil
}

func (t textValue) float() (float64, error) {
	value := strings.TrimSpace(string(t))
	if value == "" {
		return 0, nil
	}

	rv, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Annotatef(err, "incorrect number %q", value)
	}

	return rv, nil
}

type lookupResponse struct {
	Locations []lookupResponseLocation `json:"Locations"`
}

type lookupResponseLocation struct {
	IP            string    `json:"Ip"`
	Status        string    `json:"Status"`
	CountryCode   string    `json:"CountryCode"`
	CountryName   string    `json:"CountryName"`
	RegionName    string    `json:"RegionName"`
	City          string    `json:"City"`
	ZipPostalCode string    `json:"ZipPostalCode"`
	Latitude      textValue `json:"Latitude"`
	Longitude     textValue `json:"Longitude"`
	Timezone      textValue `json:"Timezone"`
}

func (l lookupResponseLocation) OK() bool {
	return l.Status == statusOK
}

// decodeLookupResponse reads a document and checks that it has exactly
// expected number of locations.
func decodeLookupResponse(body io.Reader, expected int) (*lookupResponse, error) {
	resp := &lookupResponse{}
	decoder := json.NewDecoder(bufio.NewReader(body))

	if err := decoder.Decode(resp); err != nil {
		if err == io.EOF {
			return nil, errors.Annotate(ErrUnexpectedResponse, "empty body")
		}

		return nil, errors.Annotate(err, "cannot parse a response")
	}

	if len(resp.Locations) != expected {
		return nil, errors.Annotatef(ErrUnexpectedResponse,
			"expected %d locations, got %d", expected, len(resp.Locations))
	}

	return resp, nil
}

// newLocation copies fields of the response into Location. Only fields
// relevant for the given precision are taken.
func newLocation(data lookupResponseLocation, precision Precision) (*Location, error) {
	rv := &Location{
		IPAddress:   data.IP,
		Precision:   precision,
		CountryCode: data.CountryCode,
		CountryName: data.CountryName,
	}

	rv.fillCountryDetails()

	if precision != PrecisionCity {
		return rv, nil
	}

	latitude, err := data.Latitude.float()
	if err != nil {
		return nil, errors.Annotate(err, "incorrect latitude")
	}

	longitude, err := data.Longitude.float()
	if err != nil {
		return nil, errors.Annotate(err, "incorrect longitude")
	}

	timezone, err := data.Timezone.float()
	if err != nil {
		return nil, errors.Annotate(err, "incorrect timezone")
	}

	rv.RegionName = data.RegionName
	rv.City = data.City
	rv.ZipCode = data.ZipPostalCode
	rv.Latitude = latitude
	rv.Longitude = longitude
	rv.TimezoneOffset = timezone

	return rv, nil
}
