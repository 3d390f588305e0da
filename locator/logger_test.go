package locator_test

import (
	"errors"
	"testing"

	"github.com/9seconds/geolocator/locator"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestLogrusLoggerResolveError(t *testing.T) {
	logger, hook := test.NewNullLogger()

	locator.NewLogrusLogger(logger).ResolveError("1.2.3.4", "INVALID", locator.PrecisionCountry)

	entry := hook.LastEntry()

	assert.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "1.2.3.4", entry.Data["address"])
	assert.Equal(t, "INVALID", entry.Data["status"])
	assert.Equal(t, "country", entry.Data["precision"])
}

func TestLogrusLoggerLookupError(t *testing.T) {
	logger, hook := test.NewNullLogger()

	locator.NewLogrusLogger(logger).LookupError("http://ipinfodb.com/ip_query2.php", errors.New("timeout"))

	entry := hook.LastEntry()

	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "http://ipinfodb.com/ip_query2.php", entry.Data["endpoint"])
	assert.Equal(t, "timeout", entry.Data["error"])
}
