package osmpt

import (
	"github.com/paulmach/osm"
)

// Way Linear OSM entity. Incomplete ways are known by ID only
type Way struct {
	ID         osm.WayID
	TagMap     osm.Tags
	Nodes      []osm.NodeID
	Incomplete bool
}

func newWay(way *osm.Way) *Way {
	prepared := &Way{
		ID:     way.ID,
		TagMap: make(osm.Tags, len(way.Tags)),
		Nodes:  make([]osm.NodeID, 0, len(way.Nodes)),
	}
	copy(prepared.TagMap, way.Tags)
	for _, node := range way.Nodes {
		prepared.Nodes = append(prepared.Nodes, node.ID)
	}
	return prepared
}

func (way *Way) isPlatform() bool {
	return getPlatformType(way.TagMap) != PLATFORM_UNDEFINED
}
