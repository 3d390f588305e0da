package locator

import (
	"github.com/juju/errors"
)

var (
	// ErrInvalidConfiguration is a cause of errors returned by
	// configuration setters if a value is not acceptable. Configuration
	// is not changed in that case.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnexpectedResponse is returned if endpoint has responded with
	// a document which does not match the request: it is empty, has no
	// locations or a number of locations differs from a number of
	// requested addresses.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// LookupError describes a failed attempt to get data from an endpoint.
type LookupError struct {
	Endpoint string
	Err      error
}

func (l *LookupError) Error() string {
	switch {
	case l == nil:
		return ""
	case l.Err == nil:
		return "lookup at " + l.Endpoint + " has failed"
	}

	return "lookup at " + l.Endpoint + " has failed: " + l.Err.Error()
}

func (l *LookupError) Unwrap() error {
	if l == nil {
		return nil
	}

	return l.Err
}

// IsLookupError checks if err was caused by a failed lookup.
func IsLookupError(err error) bool {
	_, ok := errors.Cause(err).(*LookupError)

	return ok
}

// IsInvalidConfiguration checks if err was caused by a rejected
// configuration value.
func IsInvalidConfiguration(err error) bool {
	return errors.Cause(err) == ErrInvalidConfiguration
}

func invalidConfigurationf(format string, args ...interface{}) error {
	return errors.Annotatef(ErrInvalidConfiguration, format, args...)
}
