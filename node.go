package osmpt

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

type Node struct {
	ID         osm.NodeID
	TagMap     osm.Tags
	Lon        float64
	Lat        float64
	Incomplete bool
}

func newNode(node *osm.Node) *Node {
	prepared := &Node{
		ID:     node.ID,
		TagMap: make(osm.Tags, len(node.Tags)),
		Lon:    node.Lon,
		Lat:    node.Lat,
	}
	copy(prepared.TagMap, node.Tags)
	return prepared
}

func (node *Node) Point() orb.Point {
	return orb.Point{node.Lon, node.Lat}
}
