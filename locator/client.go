package locator

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/juju/errors"
)

// State of the client data.
type State uint8

const (
	// StateDirty means that addresses or configuration were changed
	// since the last lookup. Next read triggers a lookup.
	StateDirty State = iota

	// StateLookedUp means that a lookup has succeeded and its results
	// are stored in the address set. Some addresses may still be
	// unresolved.
	StateLookedUp
)

func (s State) String() string {
	switch s {
	case StateDirty:
		return "dirty"
	case StateLookedUp:
		return "looked_up"
	}

	return "unknown"
}

// Client resolves a set of addresses using ipinfodb.com API.
type Client struct {
	addresses   AddressSet
	config      Config
	state       State
	primaryHost string
	backupHost  string
	userAgent   string
	transport   http.RoundTripper
	logger      Logger
}

// attemptResult is an outcome of a single request to an endpoint.
type attemptResult struct {
	response *lookupResponse
	err      error
}

func (a attemptResult) ok() bool {
	return a.err == nil
}

func (c *Client) State() State {
	return c.state
}

// HasData tells if addresses have fetched data.
func (c *Client) HasData() bool {
	return c.state == StateLookedUp
}

// AttemptedLookup tells if a lookup was performed for the current
// addresses and configuration.
func (c *Client) AttemptedLookup() bool {
	return c.state == StateLookedUp
}

func (c *Client) Config() Config {
	return c.config
}

// AddAddress adds a new address to resolve. It returns false if client
// already has MaxAddresses addresses.
func (c *Client) AddAddress(raw string) bool {
	if !c.addresses.Add(raw) {
		return false
	}

	c.invalidate()

	return true
}

func (c *Client) AddressCount() int {
	return c.addresses.Len()
}

// Addresses returns normalized addresses in order of insertion.
func (c *Client) Addresses() []string {
	return c.addresses.Keys()
}

// SingleAddress returns an address if client has exactly one.
func (c *Client) SingleAddress() (string, bool) {
	return c.addresses.SingleKey()
}

// Locations returns locations of all addresses, performing a lookup if
// necessary.
func (c *Client) Locations(ctx context.Context) ([]Entry, error) {
	if err := c.ensureData(ctx); err != nil {
		return nil, err
	}

	return c.addresses.All(), nil
}

// Location returns a location of the given address, performing a
// lookup if necessary. It returns nil location if address is unknown
// or API could not resolve it.
func (c *Client) Location(ctx context.Context, raw string) (*Location, error) {
	if err := c.ensureData(ctx); err != nil {
		return nil, err
	}

	return c.addresses.Get(raw), nil
}

// SetUseBackupFirst swaps primary and backup servers. Fetched data
// remains valid: both servers serve the same data.
func (c *Client) SetUseBackupFirst(value bool) {
	c.config = c.config.WithUseBackupFirst(value)
}

// SetTimeout sets a timeout in seconds. Fetched data is invalidated.
func (c *Client) SetTimeout(kind TimeoutKind, seconds float64) error {
	conf, err := c.config.WithTimeout(kind, seconds)
	if err != nil {
		return err
	}

	c.config = conf
	c.invalidate()

	return nil
}

// SetPrecision sets a lookup precision. Fetched data is invalidated.
func (c *Client) SetPrecision(precision Precision) error {
	conf, err := c.config.WithPrecision(precision)
	if err != nil {
		return err
	}

	c.config = conf
	c.invalidate()

	return nil
}

// Lookup resolves all addresses. It tries the first endpoint and, if
// it fails, the second one. If both fail, an error is returned and
// previously fetched data is kept intact.
func (c *Client) Lookup(ctx context.Context) error {
	if c.addresses.Len() == 0 {
		c.state = StateLookedUp

		return nil
	}

	conf := c.config
	endpoint, backupEndpoint := c.endpoints(conf)
	query := c.queryString()

	result := c.attempt(ctx, conf, endpoint, query)
	if !result.ok() {
		c.logger.LookupError(endpoint, result.err)

		backupResult := c.attempt(ctx, conf, backupEndpoint, query)
		if !backupResult.ok() {
			return errors.Annotatef(backupResult.err, "primary endpoint has failed (%v)", result.err)
		}

		result = backupResult
	}

	c.addresses.setLocations(c.parseLocations(result.response, conf.Precision()))
	c.state = StateLookedUp

	return nil
}

func (c *Client) ensureData(ctx context.Context) error {
	if c.state == StateLookedUp {
		return nil
	}

	return c.Lookup(ctx)
}

func (c *Client) invalidate() {
	c.state = StateDirty
}

func (c *Client) endpoints(conf Config) (string, string) {
	path := pathCity
	if conf.Precision() == PrecisionCountry {
		path = pathCountry
	}

	endpoint := c.primaryHost + path
	backupEndpoint := c.backupHost + path

	if conf.UseBackupFirst() {
		return backupEndpoint, endpoint
	}

	return endpoint, backupEndpoint
}

func (c *Client) queryString() string {
	keys := c.addresses.Keys()

	for i, v := range keys {
		keys[i] = url.QueryEscape(v)
	}

	return "ip=" + strings.Join(keys, ",") + "&output=json"
}

func (c *Client) attempt(ctx context.Context, conf Config, endpoint, query string) attemptResult {
	fail := func(err error) attemptResult {
		return attemptResult{
			err: &LookupError{Endpoint: endpoint, Err: err},
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query, nil)
	if err != nil {
		return fail(errors.Annotate(err, "cannot build a request"))
	}

	req.Header.Set("Accept", "application/json")

	client := NewHTTPClient(c.transport, c.userAgent,
		conf.ConnectTimeout(), conf.TransferTimeout())

	resp, err := client.Do(req)
	if err != nil {
		return fail(errors.Annotate(err, "cannot send a request"))
	}

	defer resp.Body.Close()

	decoded, err := decodeLookupResponse(resp.Body, c.addresses.Len())
	if err != nil {
		return fail(err)
	}

	return attemptResult{response: decoded}
}

// parseLocations maps response locations onto addresses by position.
func (c *Client) parseLocations(resp *lookupResponse, precision Precision) []*Location {
	rv := make([]*Location, len(resp.Locations))

	for i, v := range resp.Locations {
		if !v.OK() {
			c.logger.ResolveError(v.IP, v.Status, precision)

			continue
		}

		location, err := newLocation(v, precision)
		if err != nil {
			c.logger.ResolveError(v.IP, err.Error(), precision)

			continue
		}

		rv[i] = location
	}

	return rv
}

// NewClient creates a new client. By default it has city precision,
// 2 seconds of connect timeout, 3 seconds of transfer timeout and goes
// to the primary server first.
func NewClient(opts ...Option) (*Client, error) {
	rv := &Client{
		config:      DefaultConfig(),
		primaryHost: DefaultPrimaryHost,
		backupHost:  DefaultBackupHost,
		userAgent:   DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(rv)
	}

	if !rv.config.Precision().valid() {
		return nil, invalidConfigurationf("unknown precision %d", rv.config.Precision())
	}

	if rv.config.ConnectTimeout() < 0 || rv.config.TransferTimeout() < 0 {
		return nil, invalidConfigurationf("negative timeout")
	}

	if rv.logger == nil {
		rv.logger = NewLogrusLogger(nil)
	}

	for _, v := range []*string{&rv.primaryHost, &rv.backupHost} {
		parsed, err := url.Parse(*v)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return nil, errors.Annotatef(ErrInvalidConfiguration, "incorrect host %q", *v)
		}

		if !strings.HasSuffix(*v, "/") {
			*v += "/"
		}
	}

	return rv, nil
}
