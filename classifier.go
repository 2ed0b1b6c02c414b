package osmpt

import (
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// IsTwoDirectionRoute Checks if relation is a route of one of following categories: bus, trolleybus, share_taxi, tram, light_rail, subway, train.
//
// Only routes tagged with public_transport:version=2 are considered
func IsTwoDirectionRoute(relation *Relation) bool {
	if relation == nil {
		return false
	}
	if !hasKey(relation.TagMap, "route") || !hasTag(relation.TagMap, ptVersionKey, ptVersionValue) {
		return false
	}
	return GetRouteType(relation) != ROUTE_UNDEFINED
}

// GetRouteType returns type of route. ROUTE_UNDEFINED is returned for routes which can't be validated
func GetRouteType(relation *Relation) RouteType {
	if relation == nil {
		return ROUTE_UNDEFINED
	}
	for _, tag := range relation.TagMap {
		if tag.Key != "route" {
			continue
		}
		if routeType := getRouteType(tag.Value); routeType != ROUTE_UNDEFINED {
			return routeType
		}
	}
	return ROUTE_UNDEFINED
}

// IsStop Checks if member refers to a stop of public transport route.
/*
	Every node is a stop. Relation is a stop only when its role is 'stop_area'.
	Ways are stops when they are tagged as platforms
*/
func IsStop(member Member) (bool, error) {
	switch member.Type {
	case osm.TypeNode:
		return true, nil
	case osm.TypeRelation:
		return member.Role == stopAreaRole, nil
	case osm.TypeWay:
		way, err := member.Way()
		if err != nil {
			return false, errors.Wrap(err, "Can't classify way member")
		}
		return way.isPlatform(), nil
	default:
		return false, errors.Wrapf(ErrUnknownMemberType, "type '%s', ref %d", member.Type, member.Ref)
	}
}

// IsWayMember Checks if member refers to a part of travel path of public transport route
func IsWayMember(member Member) (bool, error) {
	isStop, err := IsStop(member)
	if err != nil {
		return false, err
	}
	return !isStop, nil
}

// IsWaySuitableForBuses Checks if type of way is suitable for buses. Direction of way (i.e. oneway roads) is irrelevant.
//
// Deprecated: the same check is done by way checker of route validation. Kept until old validation is not needed anymore
func IsWaySuitableForBuses(way *Way) bool {
	if way == nil {
		return false
	}
	for _, tag := range way.TagMap {
		if tag.Key != "highway" {
			continue
		}
		if _, ok := busHighwayTypes[getHighwayType(tag.Value)]; ok {
			return true
		}
	}
	return findInSet(way.TagMap, "cycleway", busCyclewayTags)
}

// HasIncompleteMembers Checks if route (or any of its members) has not been loaded completely.
//
// Absent route is treated as incomplete one
func HasIncompleteMembers(relation *Relation) bool {
	if relation == nil {
		return true
	}
	for _, member := range relation.Members {
		if member.isIncomplete() {
			return true
		}
	}
	return false
}

// SplitMembers returns stops and travel path members of route keeping their order
func SplitMembers(relation *Relation) ([]Member, []Member, error) {
	if relation == nil {
		return nil, nil, errors.New("Route is nil")
	}
	stops := []Member{}
	ways := []Member{}
	for i, member := range relation.Members {
		isStop, err := IsStop(member)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "Can't split members of route %d at position %d", relation.ID, i)
		}
		if isStop {
			stops = append(stops, member)
		} else {
			ways = append(ways, member)
		}
	}
	return stops, ways, nil
}
