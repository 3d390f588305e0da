package locator

import (
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"time"

	"github.com/juju/errors"
)

// HTTPClient is an interface of the transport used by Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

type httpClient struct {
	userAgent string
	client    *http.Client
}

// Do sends a request and checks a status of the response. Responses
// with non-2xx status are returned as errors, their bodies are
// drained and closed.
func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		if resp != nil {
			io.Copy(ioutil.Discard, resp.Body) // nolint: errcheck
			resp.Body.Close()
		}

		return nil, errors.Trace(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(ioutil.Discard, resp.Body) // nolint: errcheck
		resp.Body.Close()

		return nil, errors.Errorf("netloc has responded with %s", resp.Status)
	}

	return resp, nil
}

// NewHTTPClient prepares a client with given timeouts.
//
// connectTimeout limits a time to dial a remote host,
// transferTimeout limits the whole exchange, including reading of
// the response body. Zero values mean no limits.
//
// If transport is nil, a new one is created with a dialer which
// respects connectTimeout. Otherwise transport is used as is and it is
// up to the caller to limit a connection time.
func NewHTTPClient(transport http.RoundTripper,
	userAgent string,
	connectTimeout, transferTimeout time.Duration) HTTPClient {
	if transport == nil {
		dialer := &net.Dialer{
			Timeout:   connectTimeout,
			KeepAlive: 30 * time.Second,
		}
		transport = &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   connectTimeout,
			MaxIdleConns:          1,
			IdleConnTimeout:       10 * time.Second,
			ExpectContinueTimeout: time.Second,
		}
	}

	return httpClient{
		userAgent: userAgent,
		client: &http.Client{
			Transport: transport,
			Timeout:   transferTimeout,
		},
	}
}
