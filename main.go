package main

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/geolocator/locator"
)

const version = "1.0.0"

var (
	app = kingpin.New(
		"geolocator",
		"Client for ipinfodb.com IP geolocation API")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("GEOLOCATOR_DEBUG").
		Bool()
	configFile = app.Flag("config", "Path to the config.").
			Short('c').
			Envar("GEOLOCATOR_CONFIG").
			File()

	lookupCommand = app.Command("lookup", "Resolve IP addresses or hostnames.")
	lookupPrecision = lookupCommand.Flag("precision", "Lookup precision (city or country).").
			Short('p').
			String()
	lookupBackupFirst = lookupCommand.Flag("backup-first", "Query backup server first.").
				Bool()
	lookupConnectTimeout = lookupCommand.Flag("connect-timeout", "Connect timeout in seconds.").
				String()
	lookupTransferTimeout = lookupCommand.Flag("transfer-timeout", "Transfer timeout in seconds.").
				String()
	lookupAddresses = lookupCommand.Arg("address", "Addresses to resolve.").
			Required().
			Strings()

	serveCommand = app.Command("serve", "Run HTTP API.")
	serveListen  = serveCommand.Flag("listen", "Host:port to listen on.").
			Short('l').
			Envar("GEOLOCATOR_LISTEN").
			String()
	serveBasicAuth = serveCommand.Flag("basic-auth", "Protect API with user:password.").
			Envar("GEOLOCATOR_BASIC_AUTH").
			String()
)

func init() {
	app.Version(version)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	conf, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf(err.Error())
	}

	opts, err := conf.Options()
	if err != nil {
		log.Fatalf(err.Error())
	}

	opts = append(opts, locator.WithLogger(newLogger()))

	switch command {
	case lookupCommand.FullCommand():
		err = doLookup(opts)
	case serveCommand.FullCommand():
		if *serveListen != "" {
			conf.Listen = *serveListen
		}

		settings, settingsErr := makeSettings(conf, opts)
		if settingsErr != nil {
			log.Fatalf(settingsErr.Error())
		}

		err = doServe(conf.Listen, *serveBasicAuth, settings)
	}

	if err != nil {
		log.Fatalf(err.Error())
	}
}

func doLookup(opts []locator.Option) error {
	client, err := locator.NewClient(opts...)
	if err != nil {
		return err
	}

	for _, v := range *lookupAddresses {
		if !client.AddAddress(v) {
			log.WithField("address", v).Warnf("Only %d addresses could be resolved at once, skip.",
				locator.MaxAddresses)
		}
	}

	if err := applyLookupFlags(client); err != nil {
		return err
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	entries, err := client.Locations(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(entries)
}

func applyLookupFlags(client *locator.Client) error {
	if *lookupBackupFirst {
		client.SetUseBackupFirst(true)
	}

	if *lookupPrecision != "" {
		precision, err := locator.ParsePrecision(*lookupPrecision)
		if err != nil {
			return err
		}

		if err := client.SetPrecision(precision); err != nil {
			return err
		}
	}

	timeouts := map[locator.TimeoutKind]string{
		locator.ConnectTimeout:  *lookupConnectTimeout,
		locator.TransferTimeout: *lookupTransferTimeout,
	}

	for kind, value := range timeouts {
		if value == "" {
			continue
		}

		seconds, err := parseSeconds(value)
		if err != nil {
			return err
		}

		if err := client.SetTimeout(kind, seconds); err != nil {
			return err
		}
	}

	return nil
}
