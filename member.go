package osmpt

import (
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

var (
	ErrUnresolvedMember  = errors.New("member references entity which is not resolved")
	ErrUnknownMemberType = errors.New("unknown member type")
)

// Member Reference to an entity inside of relation.
//
// Exactly one of resolved entities matches Type. Resolved entity could be nil
// when it hasn't been found in working data set.
type Member struct {
	Type osm.Type
	Ref  int64
	Role string

	node     *Node
	way      *Way
	relation *Relation
}

func NewNodeMember(ref osm.NodeID, role string, node *Node) Member {
	return Member{Type: osm.TypeNode, Ref: int64(ref), Role: role, node: node}
}

func NewWayMember(ref osm.WayID, role string, way *Way) Member {
	return Member{Type: osm.TypeWay, Ref: int64(ref), Role: role, way: way}
}

func NewRelationMember(ref osm.RelationID, role string, relation *Relation) Member {
	return Member{Type: osm.TypeRelation, Ref: int64(ref), Role: role, relation: relation}
}

// Node returns resolved node. Returns error if member is not a node or node is unknown
func (member Member) Node() (*Node, error) {
	if member.Type != osm.TypeNode {
		return nil, errors.Errorf("Member %d has type '%s', not a node", member.Ref, member.Type)
	}
	if member.node == nil {
		return nil, errors.Wrapf(ErrUnresolvedMember, "node %d (role '%s')", member.Ref, member.Role)
	}
	return member.node, nil
}

// Way returns resolved way. Returns error if member is not a way or way is unknown
func (member Member) Way() (*Way, error) {
	if member.Type != osm.TypeWay {
		return nil, errors.Errorf("Member %d has type '%s', not a way", member.Ref, member.Type)
	}
	if member.way == nil {
		return nil, errors.Wrapf(ErrUnresolvedMember, "way %d (role '%s')", member.Ref, member.Role)
	}
	return member.way, nil
}

// Relation returns resolved relation. Returns error if member is not a relation or relation is unknown
func (member Member) Relation() (*Relation, error) {
	if member.Type != osm.TypeRelation {
		return nil, errors.Errorf("Member %d has type '%s', not a relation", member.Ref, member.Type)
	}
	if member.relation == nil {
		return nil, errors.Wrapf(ErrUnresolvedMember, "relation %d (role '%s')", member.Ref, member.Role)
	}
	return member.relation, nil
}

// isIncomplete checks if referenced entity has not been loaded. Unresolved entity is incomplete too
func (member Member) isIncomplete() bool {
	switch member.Type {
	case osm.TypeNode:
		return member.node == nil || member.node.Incomplete
	case osm.TypeWay:
		return member.way == nil || member.way.Incomplete
	case osm.TypeRelation:
		return member.relation == nil || member.relation.Incomplete
	default:
		return true
	}
}

func (member Member) isResolved() bool {
	switch member.Type {
	case osm.TypeNode:
		return member.node != nil
	case osm.TypeWay:
		return member.way != nil
	case osm.TypeRelation:
		return member.relation != nil
	default:
		return false
	}
}
