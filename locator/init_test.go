package locator_test

import (
	"github.com/9seconds/geolocator/locator"
	"github.com/stretchr/testify/mock"
)

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) LookupError(endpoint string, err error) {
	m.Called(endpoint, err)
}

func (m *LoggerMock) ResolveError(address, status string, precision locator.Precision) {
	m.Called(address, status, precision)
}
