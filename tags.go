package osmpt

import (
	"github.com/paulmach/osm"
)

const (
	stopAreaRole = "stop_area"

	ptVersionKey   = "public_transport:version"
	ptVersionValue = "2"
)

var (
	// See ref.: https://wiki.openstreetmap.org/wiki/Key:cycleway
	busCyclewayTags = map[string]struct{}{
		"share_busway": {},
		"shared_lane":  {},
	}
)

// hasKey checks if key is present in tags. Value could be anything (even empty)
func hasKey(tags osm.Tags, key string) bool {
	for _, tag := range tags {
		if tag.Key == key {
			return true
		}
	}
	return false
}

// hasTag checks if exact pair key=value is present in tags
func hasTag(tags osm.Tags, key, value string) bool {
	for _, tag := range tags {
		if tag.Key == key && tag.Value == value {
			return true
		}
	}
	return false
}

// findInSet checks if any value of given key is in provided set
func findInSet(tags osm.Tags, key string, set map[string]struct{}) bool {
	for _, tag := range tags {
		if tag.Key != key {
			continue
		}
		if _, ok := set[tag.Value]; ok {
			return true
		}
	}
	return false
}
