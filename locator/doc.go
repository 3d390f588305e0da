// Package locator provides a client for the ipinfodb.com geolocation
// API.
//
// The API resolves up to 25 IP addresses or hostnames in a single
// request. There are two identical servers: primary one and backup.
// Client goes to the primary server first and, if it fails, repeats
// the same request against the backup one. You can swap them with
// SetUseBackupFirst: backup server lives in Europe so it could be
// faster for European installations.
//
// AddressSet
//
// AddressSet keeps addresses to resolve. Addresses are normalized
// (lowercased and trimmed) so "8.8.8.8 " and "8.8.8.8" are the same
// address. Order of insertion is kept: API returns results in the same
// order as addresses were requested.
//
// Client
//
// Client owns an AddressSet and a Config. Results are fetched lazily:
// the first call to Locations or Location performs a lookup, subsequent
// calls return cached data until addresses or configuration are
// changed.
//
// Client is not safe for concurrent use. If you need to resolve
// addresses in parallel, please create several clients.
package locator
