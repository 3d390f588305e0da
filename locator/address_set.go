package locator

import "strings"

// MaxAddresses is a maximal number of addresses which could be
// resolved within a single request.
const MaxAddresses = 25

type address struct {
	key      string
	location *Location
}

// AddressSet is an ordered set of normalized addresses with their
// locations. Zero value is ready to use.
type AddressSet struct {
	addresses []address
	index     map[string]int
}

// Normalize converts a raw address into a key which is used for
// deduplication and lookups.
func Normalize(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

// Add puts a new address into the set. It returns false if set is
// full. Adding an address which is already in the set is a no-op.
func (a *AddressSet) Add(raw string) bool {
	if len(a.addresses) >= MaxAddresses {
		return false
	}

	key := Normalize(raw)

	if _, ok := a.index[key]; ok {
		return true
	}

	if a.index == nil {
		a.index = map[string]int{}
	}

	a.index[key] = len(a.addresses)
	a.addresses = append(a.addresses, address{key: key})

	return true
}

func (a *AddressSet) Len() int {
	return len(a.addresses)
}

// Keys returns normalized addresses in order of insertion.
func (a *AddressSet) Keys() []string {
	rv := make([]string, 0, len(a.addresses))

	for _, v := range a.addresses {
		rv = append(rv, v.key)
	}

	return rv
}

// SingleKey returns the only address of the set. If set has 0 or more
// than 1 address, false is returned.
func (a *AddressSet) SingleKey() (string, bool) {
	if len(a.addresses) != 1 {
		return "", false
	}

	return a.addresses[0].key, true
}

// Get returns a location of the address or nil if address is unknown
// or was not resolved.
func (a *AddressSet) Get(raw string) *Location {
	idx, ok := a.index[Normalize(raw)]
	if !ok {
		return nil
	}

	return a.addresses[idx].location
}

// All returns all addresses with their locations in order of
// insertion.
func (a *AddressSet) All() []Entry {
	rv := make([]Entry, 0, len(a.addresses))

	for _, v := range a.addresses {
		rv = append(rv, Entry{
			Address:  v.key,
			Location: v.location,
		})
	}

	return rv
}

// setLocations replaces locations positionally. A length of locations
// has to match a length of the set.
func (a *AddressSet) setLocations(locations []*Location) {
	for i := range a.addresses {
		a.addresses[i].location = locations[i]
	}
}
