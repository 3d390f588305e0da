package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"

	"github.com/9seconds/geolocator/api"
	"github.com/9seconds/geolocator/config"
	"github.com/9seconds/geolocator/locator"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func loadConfig(file *os.File) (*config.Config, error) {
	if file == nil {
		return config.Default(), nil
	}

	defer file.Close()

	conf, err := config.Parse(file)
	if err != nil {
		return nil, errors.Annotatef(err, "Cannot load config %s", file.Name())
	}

	return conf, nil
}

func makeSettings(conf *config.Config, opts []locator.Option) (*api.Settings, error) {
	lconf, err := conf.LocatorConfig()
	if err != nil {
		return nil, errors.Annotate(err, "Cannot build lookup configuration")
	}

	return &api.Settings{
		Config:  lconf,
		Options: opts,
	}, nil
}

func parseSeconds(value string) (float64, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errors.Annotatef(locator.ErrInvalidConfiguration,
			"Incorrect number of seconds %q", value)
	}

	return seconds, nil
}

func splitBasicAuth(value string) (string, string, error) {
	chunks := strings.SplitN(value, ":", 2)
	if len(chunks) != 2 || chunks[0] == "" {
		return "", "", errors.New("basic auth should be in user:password format")
	}

	return chunks[0], chunks[1], nil
}

func doServe(listen, basicAuth string, settings *api.Settings) error {
	var handler http.Handler = api.MakeServer(settings)

	if basicAuth != "" {
		user, password, err := splitBasicAuth(basicAuth)
		if err != nil {
			return err
		}

		handler = newBasicAuthMiddleware(handler, user, password)
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	srv := &http.Server{
		Addr:    listen,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		srv.Shutdown(shutdownCtx) // nolint: errcheck
	}()

	log.WithField("listen", listen).Info("Start HTTP API.")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Annotate(err, "Cannot start HTTP API")
	}

	return nil
}
