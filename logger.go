package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/9seconds/geolocator/locator"
)

type logger struct {
	lookupLog  *log.Entry
	resolveLog *log.Entry
}

func (l *logger) LookupError(endpoint string, err error) {
	l.lookupLog.WithField("endpoint", endpoint).WithError(err).Warn("Endpoint has failed")
}

func (l *logger) ResolveError(address, status string, precision locator.Precision) {
	l.resolveLog.WithFields(log.Fields{
		"address":   address,
		"status":    status,
		"precision": precision.String(),
	}).Warn("Address was not resolved")
}

func newLogger() locator.Logger {
	return &logger{
		lookupLog:  log.WithField("event_name", "lookup"),
		resolveLog: log.WithField("event_name", "resolve"),
	}
}
