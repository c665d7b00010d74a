package links

import "strings"

// hostSet is a simple map-based set of lowercase host names.
type hostSet struct {
	backingMap map[string]struct{}
}

// newHostSet creates a new hostSet from the specified host names.
func newHostSet(hosts []string) *hostSet {
	set := &hostSet{make(map[string]struct{}, len(hosts))}
	for _, h := range hosts {
		set.backingMap[strings.ToLower(h)] = struct{}{}
	}
	return set
}

// Contains checks if this hostSet contains the specified host, ignoring case.
func (s *hostSet) Contains(host string) bool {
	_, exists := s.backingMap[strings.ToLower(host)]
	return exists
}
