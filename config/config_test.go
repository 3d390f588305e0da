package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/9seconds/geolocator/locator"
)

func TestConfigOk(t *testing.T) {
	text := `listen = "0.0.0.0:9000"
		precision = "country"
		use_backup_first = true
		primary_host = "http://mirror.example.com/api/"
		backup_host = "https://backup.example.com/"
		user_agent = "test-agent"

		[timeouts]
		connect = "500ms"
		transfer = "10s"`

	conf, err := Parse(strings.NewReader(text))
	assert.Nil(t, err)
	assert.NotNil(t, conf)

	assert.Equal(t, conf.Listen, "0.0.0.0:9000")
	assert.Equal(t, conf.PrimaryHost, "http://mirror.example.com/api/")
	assert.Equal(t, conf.BackupHost, "https://backup.example.com/")
	assert.Equal(t, conf.UserAgent, "test-agent")

	lconf, err := conf.LocatorConfig()
	assert.Nil(t, err)
	assert.Equal(t, lconf.Precision(), locator.PrecisionCountry)
	assert.True(t, lconf.UseBackupFirst())
	assert.Equal(t, lconf.ConnectTimeout(), 500*time.Millisecond)
	assert.Equal(t, lconf.TransferTimeout(), 10*time.Second)

	opts, err := conf.Options()
	assert.Nil(t, err)
	assert.Len(t, opts, 3)
}

func TestConfigDefaults(t *testing.T) {
	conf, err := Parse(strings.NewReader(""))
	assert.Nil(t, err)
	assert.NotNil(t, conf)

	assert.Equal(t, conf.Listen, DefaultListen)
	assert.Equal(t, conf.PrimaryHost, locator.DefaultPrimaryHost)
	assert.Equal(t, conf.BackupHost, locator.DefaultBackupHost)

	lconf, err := conf.LocatorConfig()
	assert.Nil(t, err)
	assert.Equal(t, lconf, locator.DefaultConfig())
}

func TestUnknownPrecision(t *testing.T) {
	_, err := Parse(strings.NewReader(`precision = "street"`))

	assert.True(t, locator.IsInvalidConfiguration(err))
}

func TestNonBooleanBackupFlag(t *testing.T) {
	_, err := Parse(strings.NewReader(`use_backup_first = "yes"`))

	assert.True(t, locator.IsInvalidConfiguration(err))
}

func TestNegativeTimeout(t *testing.T) {
	text := `[timeouts]
		connect = "-1s"`

	_, err := Parse(strings.NewReader(text))

	assert.True(t, locator.IsInvalidConfiguration(err))
}

func TestIncorrectTimeout(t *testing.T) {
	text := `[timeouts]
		transfer = "soon"`

	_, err := Parse(strings.NewReader(text))

	assert.NotNil(t, err)
}

func TestIncorrectListen(t *testing.T) {
	_, err := Parse(strings.NewReader(`listen = "localhost"`))

	assert.True(t, locator.IsInvalidConfiguration(err))
}

func TestIncorrectHost(t *testing.T) {
	_, err := Parse(strings.NewReader(`primary_host = "ipinfodb.com"`))

	assert.True(t, locator.IsInvalidConfiguration(err))
}
