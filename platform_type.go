package osmpt

import (
	"github.com/paulmach/osm"
)

type PlatformType uint16

const (
	PLATFORM = PlatformType(iota + 1)
	PLATFORM_ENTRY_ONLY
	PLATFORM_EXIT_ONLY
	PLATFORM_UNDEFINED = PlatformType(0)
)

func (iotaIdx PlatformType) String() string {
	return [...]string{"undefined", "platform", "platform_entry_only", "platform_exit_only"}[iotaIdx]
}

var (
	platformTypes = map[string]PlatformType{
		"platform":            PLATFORM,
		"platform_entry_only": PLATFORM_ENTRY_ONLY,
		"platform_exit_only":  PLATFORM_EXIT_ONLY,
	}

	// Keys which may carry platform values. See ref.: https://wiki.openstreetmap.org/wiki/Public_transport
	platformKeys = []string{
		"public_transport",
		"highway",
		"railway",
	}
)

// getPlatformType returns type of platform described by given tags
func getPlatformType(tags osm.Tags) PlatformType {
	for _, key := range platformKeys {
		for _, tag := range tags {
			if tag.Key != key {
				continue
			}
			if found, ok := platformTypes[tag.Value]; ok {
				return found
			}
		}
	}
	return PLATFORM_UNDEFINED
}
