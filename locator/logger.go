package locator

import (
	log "github.com/sirupsen/logrus"
)

// Logger receives diagnostics of the Client. Implementations must not
// block for long and have no way to fail a lookup.
type Logger interface {
	// LookupError is called when an endpoint has failed and client is
	// going to try another one.
	LookupError(endpoint string, err error)

	// ResolveError is called when API has reported an error for
	// a single address.
	ResolveError(address, status string, precision Precision)
}

type logrusLogger struct {
	logger log.FieldLogger
}

func (l logrusLogger) LookupError(endpoint string, err error) {
	l.logger.WithFields(log.Fields{
		"endpoint": endpoint,
		"error":    err.Error(),
	}).Warn("Endpoint has failed, trying another one.")
}

func (l logrusLogger) ResolveError(address, status string, precision Precision) {
	l.logger.WithFields(log.Fields{
		"address":   address,
		"status":    status,
		"precision": precision.String(),
	}).Warn("API has returned an error for the address.")
}

// NewLogrusLogger makes a Logger which writes into logrus. If logger is
// nil, a standard logrus logger is used.
func NewLogrusLogger(logger log.FieldLogger) Logger {
	if logger == nil {
		logger = log.StandardLogger()
	}

	return logrusLogger{
		logger: logger,
	}
}
