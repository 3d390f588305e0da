// Geolocator is a client for ipinfodb.com IP geolocation API.
//
// You give it a list of IP addresses or hostnames and get back
// countries, cities and coordinates. API has 2 servers, primary and
// backup. If one fails, another one is used.
//
// Tool itself is organized into 3 logical parts:
//
// Locator
//
// locator is a main package of the application. It contains the Client
// which keeps a set of addresses, builds batch queries, fails over to
// the backup server and converts API responses into locations.
//
// Config
//
// config package parses TOML configuration: precision, timeouts and
// hosts to use.
//
// API
//
// api package exposes lookups as a small JSON HTTP API. Each request
// uses its own client.
//
// A main package is a CLI which wires all of them: lookup command
// prints locations of given addresses, serve command starts HTTP API.
package main
