package osmpt

import (
	"github.com/paulmach/osm"
)

// Relation OSM relation. Public transport routes are relations with `route` tag
type Relation struct {
	ID         osm.RelationID
	TagMap     osm.Tags
	Members    []Member
	Incomplete bool
}

func (relation *Relation) isRoute() bool {
	return hasKey(relation.TagMap, "route")
}
