package osmpt

import (
	"sort"

	"github.com/paulmach/osm"
)

// Dataset Read-only view of loaded OSM data.
//
// Members which reference entities absent in source data are resolved to
// placeholders marked as incomplete
type Dataset struct {
	nodes     map[osm.NodeID]*Node
	ways      map[osm.WayID]*Way
	relations map[osm.RelationID]*Relation
}

// NewDataset prepares dataset from given OSM objects. Objects of other types (changesets, notes, etc.) are ignored
func NewDataset(objects ...osm.Object) *Dataset {
	data := &Dataset{
		nodes:     make(map[osm.NodeID]*Node),
		ways:      make(map[osm.WayID]*Way),
		relations: make(map[osm.RelationID]*Relation),
	}
	rawRelations := []*osm.Relation{}
	for _, obj := range objects {
		switch v := obj.(type) {
		case *osm.Node:
			data.nodes[v.ID] = newNode(v)
		case *osm.Way:
			data.ways[v.ID] = newWay(v)
		case *osm.Relation:
			relation := &Relation{
				ID:     v.ID,
				TagMap: make(osm.Tags, len(v.Tags)),
			}
			copy(relation.TagMap, v.Tags)
			data.relations[v.ID] = relation
			rawRelations = append(rawRelations, v)
		}
	}
	// Members could reference relations which appear later in source, so resolve them in second pass
	for _, raw := range rawRelations {
		relation := data.relations[raw.ID]
		relation.Members = make([]Member, 0, len(raw.Members))
		for _, member := range raw.Members {
			relation.Members = append(relation.Members, data.resolveMember(member))
		}
	}
	return data
}

func (data *Dataset) resolveMember(member osm.Member) Member {
	switch member.Type {
	case osm.TypeNode:
		id := osm.NodeID(member.Ref)
		node, ok := data.nodes[id]
		if !ok {
			node = &Node{ID: id, Incomplete: true}
			data.nodes[id] = node
		}
		return NewNodeMember(id, member.Role, node)
	case osm.TypeWay:
		id := osm.WayID(member.Ref)
		way, ok := data.ways[id]
		if !ok {
			way = &Way{ID: id, Incomplete: true}
			data.ways[id] = way
		}
		return NewWayMember(id, member.Role, way)
	case osm.TypeRelation:
		id := osm.RelationID(member.Ref)
		relation, ok := data.relations[id]
		if !ok {
			relation = &Relation{ID: id, Incomplete: true}
			data.relations[id] = relation
		}
		return NewRelationMember(id, member.Role, relation)
	default:
		return Member{Type: member.Type, Ref: member.Ref, Role: member.Role}
	}
}

// Node returns node by its ID
func (data *Dataset) Node(id osm.NodeID) (*Node, bool) {
	node, ok := data.nodes[id]
	return node, ok
}

// Way returns way by its ID
func (data *Dataset) Way(id osm.WayID) (*Way, bool) {
	way, ok := data.ways[id]
	return way, ok
}

// Relation returns relation by its ID
func (data *Dataset) Relation(id osm.RelationID) (*Relation, bool) {
	relation, ok := data.relations[id]
	return relation, ok
}

// Routes returns relations having `route` tag ordered by ID
func (data *Dataset) Routes() []*Relation {
	routes := []*Relation{}
	for _, relation := range data.relations {
		if relation.isRoute() {
			routes = append(routes, relation)
		}
	}
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].ID < routes[j].ID
	})
	return routes
}
