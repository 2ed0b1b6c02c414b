package osmpt

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// WayLine returns geometry of way. Every node of way should be loaded
func (data *Dataset) WayLine(way *Way) (orb.LineString, error) {
	if way == nil || way.Incomplete {
		return nil, errors.New("Way is not loaded")
	}
	line := make(orb.LineString, 0, len(way.Nodes))
	for _, nodeID := range way.Nodes {
		node, ok := data.nodes[nodeID]
		if !ok || node.Incomplete {
			return nil, errors.Errorf("No such node '%d'. Way ID: '%d'", nodeID, way.ID)
		}
		line = append(line, node.Point())
	}
	return line, nil
}

// lengthHaversine returns length of line (kilometers)
func lengthHaversine(line orb.LineString) float64 {
	length := 0.0
	for i := 1; i < len(line); i++ {
		length += geo.DistanceHaversine(line[i-1], line[i])
	}
	return length / 1000.0
}

// RouteLength returns summary length of travel path ways of route (kilometers).
//
// Ways without geometry are skipped, number of skipped ways is returned too
func (data *Dataset) RouteLength(relation *Relation) (float64, int, error) {
	_, ways, err := SplitMembers(relation)
	if err != nil {
		return 0, 0, err
	}
	length := 0.0
	skipped := 0
	for _, member := range ways {
		way, err := member.Way()
		if err != nil {
			// Nested relations and unresolved ways have no own geometry
			skipped++
			continue
		}
		line, err := data.WayLine(way)
		if err != nil {
			skipped++
			continue
		}
		length += lengthHaversine(line)
	}
	return length, skipped, nil
}
