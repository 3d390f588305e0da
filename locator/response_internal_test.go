package locator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

const responseCity = `{"Locations": [{
	"Ip": "74.125.45.100",
	"Status": "OK",
	"CountryCode": "US",
	"CountryName": "United States",
	"RegionCode": "06",
	"RegionName": "California",
	"City": "Mountain View",
	"ZipPostalCode": "94043",
	"Latitude": "37.4192",
	"Longitude": -122.057,
	"Timezone": "-8"
}]}`

func TestTextValue(t *testing.T) {
	values := struct {
		A textValue `json:"a"`
		B textValue `json:"b"`
		C textValue `json:"c"`
	}{}

	assert.NoError(t, json.Unmarshal([]byte(`{"a": "1.5", "b": 2, "c": null}`), &values))
	assert.Equal(t, textValue("1.5"), values.A)
	assert.Equal(t, textValue("2"), values.B)
	assert.Equal(t, textValue(""), values.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a": [1]}`), &values))
}

func TestTextValueFloat(t *testing.T) {
	value, err := textValue(" -3.5 ").float()
	assert.NoError(t, err)
	assert.InDelta(t, -3.5, value, 1e-9)

	value, err = textValue("").float()
	assert.NoError(t, err)
	assert.Zero(t, value)

	_, err = textValue("north").float()
	assert.Error(t, err)
}

func TestDecodeLookupResponse(t *testing.T) {
	resp, err := decodeLookupResponse(strings.NewReader(responseCity), 1)

	assert.NoError(t, err)
	assert.Len(t, resp.Locations, 1)
	assert.True(t, resp.Locations[0].OK())
}

func TestDecodeLookupResponseMismatch(t *testing.T) {
	_, err := decodeLookupResponse(strings.NewReader(responseCity), 2)

	assert.Equal(t, ErrUnexpectedResponse, errors.Cause(err))
}

func TestDecodeLookupResponseEmpty(t *testing.T) {
	_, err := decodeLookupResponse(strings.NewReader(""), 1)

	assert.Equal(t, ErrUnexpectedResponse, errors.Cause(err))

	_, err = decodeLookupResponse(strings.NewReader("{["), 1)

	assert.Error(t, err)
}

func TestNewLocationCity(t *testing.T) {
	resp, _ := decodeLookupResponse(strings.NewReader(responseCity), 1)
	location, err := newLocation(resp.Locations[0], PrecisionCity)

	assert.NoError(t, err)
	assert.Equal(t, "74.125.45.100", location.IPAddress)
	assert.Equal(t, PrecisionCity, location.Precision)
	assert.Equal(t, "US", location.CountryCode)
	assert.Equal(t, "United States", location.CountryName)
	assert.Equal(t, "California", location.RegionName)
	assert.Equal(t, "Mountain View", location.City)
	assert.Equal(t, "94043", location.ZipCode)
	assert.InDelta(t, 37.4192, location.Latitude, 1e-6)
	assert.InDelta(t, -122.057, location.Longitude, 1e-6)
	assert.InDelta(t, -8, location.TimezoneOffset, 1e-6)
}

func TestNewLocationCountry(t *testing.T) {
	resp, _ := decodeLookupResponse(strings.NewReader(responseCity), 1)
	location, err := newLocation(resp.Locations[0], PrecisionCountry)

	assert.NoError(t, err)
	assert.Equal(t, &Location{
		IPAddress:   "74.125.45.100",
		Precision:   PrecisionCountry,
		CountryCode: "US",
		CountryName: "United States",
		Alpha3Code:  "USA",
	}, location)
}

func TestNewLocationBadNumber(t *testing.T) {
	_, err := newLocation(lookupResponseLocation{
		IP:       "1.1.1.1",
		Status:   statusOK,
		Latitude: "north",
	}, PrecisionCity)

	assert.Error(t, err)
}
