package locator_test

import (
	"testing"

	"github.com/9seconds/geolocator/locator"
	"github.com/stretchr/testify/suite"
)

type CountryTestSuite struct {
	suite.Suite
}

func (suite *CountryTestSuite) TestNormalizeAlpha2Code() {
	suite.Equal("RU", locator.NormalizeAlpha2Code("ru"))
	suite.Equal("", locator.NormalizeAlpha2Code("zz"))
	suite.Equal("", locator.NormalizeAlpha2Code("XX"))
	suite.Equal("", locator.NormalizeAlpha2Code("Eu"))
	suite.Equal("", locator.NormalizeAlpha2Code("RUS"))
	suite.Equal("FR", locator.NormalizeAlpha2Code("FX"))
	suite.Equal("GB", locator.NormalizeAlpha2Code(" UK"))
}

func (suite *CountryTestSuite) TestDetails() {
	location := locator.Location{CountryCode: "ru"}
	country, ok := location.CountryDetails()

	suite.True(ok)
	suite.Equal("Russia", country.Name.BaseLang.Common)
	suite.Equal("RUS", country.Codes.Alpha3)
}

func (suite *CountryTestSuite) TestUnknown() {
	location := locator.Location{CountryCode: "XX"}
	_, ok := location.CountryDetails()

	suite.False(ok)
}

func TestCountry(t *testing.T) {
	suite.Run(t, &CountryTestSuite{})
}
