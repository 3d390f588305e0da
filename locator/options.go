package locator

import (
	"net/http"
)

const (
	DefaultPrimaryHost = "http://ipinfodb.com/"
	DefaultBackupHost  = "http://backup.ipinfodb.com/"
	DefaultUserAgent   = "geolocator"

	pathCity    = "ip_query2.php"
	pathCountry = "ip_query2_country.php"
)

// Option customizes a Client.
type Option func(*Client)

// WithConfig sets an initial configuration. It is validated by
// NewClient.
func WithConfig(conf Config) Option {
	return func(c *Client) {
		c.config = conf
	}
}

// WithHosts overrides primary and backup hosts. Hosts are base URLs,
// endpoint paths are appended to them.
func WithHosts(primary, backup string) Option {
	return func(c *Client) {
		c.primaryHost = primary
		c.backupHost = backup
	}
}

// WithTransport sets a round tripper for all requests. If it is set,
// connect timeout has to be handled by the transport itself.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithAddresses adds initial addresses. Addresses which do not fit
// into the set are dropped.
func WithAddresses(addresses ...string) Option {
	return func(c *Client) {
		for _, v := range addresses {
			c.addresses.Add(v)
		}
	}
}
