package config

import (
	"io"
	"io/ioutil"
	"net"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"

	"github.com/9seconds/geolocator/locator"
)

const DefaultListen = "127.0.0.1:8080"

type duration struct {
	time.Duration
}

func (dur *duration) UnmarshalText(text []byte) (err error) {
	dur.Duration, err = time.ParseDuration(string(text))
	return
}

type Timeouts struct {
	Connect  *duration `toml:"connect"`
	Transfer *duration `toml:"transfer"`
}

type Config struct {
	Listen         string   `toml:"listen"`
	Precision      string   `toml:"precision"`
	UseBackupFirst bool     `toml:"use_backup_first"`
	PrimaryHost    string   `toml:"primary_host"`
	BackupHost     string   `toml:"backup_host"`
	UserAgent      string   `toml:"user_agent"`
	Timeouts       Timeouts `toml:"timeouts"`
}

// LocatorConfig builds a validated lookup configuration.
func (c *Config) LocatorConfig() (locator.Config, error) {
	conf := locator.DefaultConfig().WithUseBackupFirst(c.UseBackupFirst)

	precision, err := locator.ParsePrecision(c.Precision)
	if err != nil {
		return conf, errors.Trace(err)
	}

	if conf, err = conf.WithPrecision(precision); err != nil {
		return conf, errors.Trace(err)
	}

	if c.Timeouts.Connect != nil {
		conf, err = conf.WithTimeout(locator.ConnectTimeout, c.Timeouts.Connect.Seconds())
		if err != nil {
			return conf, errors.Trace(err)
		}
	}

	if c.Timeouts.Transfer != nil {
		conf, err = conf.WithTimeout(locator.TransferTimeout, c.Timeouts.Transfer.Seconds())
		if err != nil {
			return conf, errors.Trace(err)
		}
	}

	return conf, nil
}

// Options converts config into client options.
func (c *Config) Options() ([]locator.Option, error) {
	conf, err := c.LocatorConfig()
	if err != nil {
		return nil, err
	}

	return []locator.Option{
		locator.WithConfig(conf),
		locator.WithHosts(c.PrimaryHost, c.BackupHost),
		locator.WithUserAgent(c.UserAgent),
	}, nil
}

// Default returns a config which is used if no file is given.
func Default() *Config {
	return &Config{
		Listen:      DefaultListen,
		Precision:   locator.DefaultPrecision.String(),
		PrimaryHost: locator.DefaultPrimaryHost,
		BackupHost:  locator.DefaultBackupHost,
		UserAgent:   locator.DefaultUserAgent,
	}
}

func Parse(file io.Reader) (*Config, error) {
	conf := Default()

	buf, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot read config file")
	}

	if _, err := toml.Decode(string(buf), conf); err != nil {
		return nil, errors.Annotatef(locator.ErrInvalidConfiguration,
			"Cannot parse config file: %v", err)
	}

	if err = validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid value")
	}

	return conf, nil
}

func validate(conf *Config) error {
	if _, _, err := net.SplitHostPort(conf.Listen); err != nil {
		return errors.Annotatef(locator.ErrInvalidConfiguration,
			"Incorrect host:port for listen %s", conf.Listen)
	}

	for _, v := range []string{conf.PrimaryHost, conf.BackupHost} {
		parsed, err := url.Parse(v)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return errors.Annotatef(locator.ErrInvalidConfiguration,
				"Incorrect host %s", v)
		}
	}

	if conf.UserAgent == "" {
		return errors.Annotate(locator.ErrInvalidConfiguration, "Empty user agent")
	}

	if _, err := conf.LocatorConfig(); err != nil {
		return err
	}

	return nil
}
