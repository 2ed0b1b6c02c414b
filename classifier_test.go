package osmpt

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

func prepareTags(kv ...string) osm.Tags {
	tags := make(osm.Tags, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		tags = append(tags, osm.Tag{Key: kv[i], Value: kv[i+1]})
	}
	return tags
}

func TestIsTwoDirectionRoute(t *testing.T) {
	cases := []struct {
		tags    osm.Tags
		correct bool
	}{
		{prepareTags("route", "bus", "public_transport:version", "2"), true},
		{prepareTags("route", "trolleybus", "public_transport:version", "2"), true},
		{prepareTags("route", "share_taxi", "public_transport:version", "2"), true},
		{prepareTags("route", "tram", "public_transport:version", "2"), true},
		{prepareTags("route", "light_rail", "public_transport:version", "2"), true},
		{prepareTags("route", "subway", "public_transport:version", "2"), true},
		{prepareTags("route", "train", "public_transport:version", "2"), true},
		{prepareTags("route", "ferry", "public_transport:version", "2"), false},
		{prepareTags("route", "Bus", "public_transport:version", "2"), false},
		{prepareTags("route", "", "public_transport:version", "2"), false},
		{prepareTags("route", "bus", "public_transport:version", "1"), false},
		{prepareTags("route", "bus"), false},
		{prepareTags("public_transport:version", "2"), false},
		{prepareTags("type", "route", "public_transport:version", "2"), false},
		{prepareTags(), false},
	}
	for i, c := range cases {
		relation := &Relation{ID: osm.RelationID(i + 1), TagMap: c.tags}
		if res := IsTwoDirectionRoute(relation); res != c.correct {
			t.Errorf("Case %d (%v): two-direction route should be %t, but got %t", i, c.tags, c.correct, res)
		}
	}
	if IsTwoDirectionRoute(nil) {
		t.Errorf("Nil route should not be two-direction one")
	}
}

func TestGetRouteType(t *testing.T) {
	relation := &Relation{TagMap: prepareTags("route", "light_rail")}
	if routeType := GetRouteType(relation); routeType != ROUTE_LIGHT_RAIL {
		t.Errorf("Route type should be %s, but got %s", ROUTE_LIGHT_RAIL, routeType)
	}
	relation = &Relation{TagMap: prepareTags("route", "ferry")}
	if routeType := GetRouteType(relation); routeType != ROUTE_UNDEFINED {
		t.Errorf("Route type should be %s, but got %s", ROUTE_UNDEFINED, routeType)
	}
	if ROUTE_SHARE_TAXI.String() != "share_taxi" {
		t.Errorf("String representation should be 'share_taxi', but got '%s'", ROUTE_SHARE_TAXI)
	}
}

func TestIsStop(t *testing.T) {
	platformWay := func(kv ...string) *Way {
		return &Way{ID: 1, TagMap: prepareTags(kv...)}
	}
	cases := []struct {
		name    string
		member  Member
		correct bool
	}{
		{"node without tags", NewNodeMember(1, "", &Node{ID: 1}), true},
		{"node with any role", NewNodeMember(1, "forward", &Node{ID: 1, TagMap: prepareTags("highway", "traffic_signals")}), true},
		{"incomplete node", NewNodeMember(1, "", &Node{ID: 1, Incomplete: true}), true},
		{"stop area", NewRelationMember(1, "stop_area", &Relation{ID: 1}), true},
		{"stop area wrong case", NewRelationMember(1, "Stop_Area", &Relation{ID: 1}), false},
		{"relation without role", NewRelationMember(1, "", &Relation{ID: 1}), false},
		{"unresolved stop area", NewRelationMember(1, "stop_area", nil), true},
		{"public_transport=platform", NewWayMember(1, "", platformWay("public_transport", "platform")), true},
		{"highway=platform", NewWayMember(1, "", platformWay("highway", "platform")), true},
		{"railway=platform", NewWayMember(1, "", platformWay("railway", "platform")), true},
		{"public_transport=platform_entry_only", NewWayMember(1, "", platformWay("public_transport", "platform_entry_only")), true},
		{"highway=platform_entry_only", NewWayMember(1, "", platformWay("highway", "platform_entry_only")), true},
		{"railway=platform_entry_only", NewWayMember(1, "", platformWay("railway", "platform_entry_only")), true},
		{"public_transport=platform_exit_only", NewWayMember(1, "", platformWay("public_transport", "platform_exit_only")), true},
		{"highway=platform_exit_only", NewWayMember(1, "", platformWay("highway", "platform_exit_only")), true},
		{"railway=platform_exit_only", NewWayMember(1, "platform", platformWay("railway", "platform_exit_only")), true},
		{"highway=residential", NewWayMember(1, "", platformWay("highway", "residential")), false},
		{"platform as key", NewWayMember(1, "", platformWay("platform", "yes")), false},
		{"amenity=platform", NewWayMember(1, "", platformWay("amenity", "platform")), false},
		{"incomplete way", NewWayMember(1, "", &Way{ID: 1, Incomplete: true}), false},
	}
	for _, c := range cases {
		isStop, err := IsStop(c.member)
		if err != nil {
			t.Errorf("Case '%s': unexpected error: %s", c.name, err.Error())
			continue
		}
		if isStop != c.correct {
			t.Errorf("Case '%s': stop should be %t, but got %t", c.name, c.correct, isStop)
		}
		isWay, err := IsWayMember(c.member)
		if err != nil {
			t.Errorf("Case '%s': unexpected error: %s", c.name, err.Error())
			continue
		}
		if isWay == isStop {
			t.Errorf("Case '%s': member should be either stop or way, but got stop=%t and way=%t", c.name, isStop, isWay)
		}
	}
}

func TestIsStopUnresolvedWay(t *testing.T) {
	member := NewWayMember(42, "", nil)
	_, err := IsStop(member)
	if err == nil {
		t.Errorf("Unresolved way member should produce error")
		return
	}
	if errors.Cause(err) != ErrUnresolvedMember {
		t.Errorf("Error cause should be '%s', but got '%s'", ErrUnresolvedMember, errors.Cause(err))
	}
	_, err = IsWayMember(member)
	if errors.Cause(err) != ErrUnresolvedMember {
		t.Errorf("Error cause should be '%s', but got '%v'", ErrUnresolvedMember, err)
	}

	_, err = IsStop(Member{Type: osm.Type("changeset"), Ref: 1})
	if errors.Cause(err) != ErrUnknownMemberType {
		t.Errorf("Error cause should be '%s', but got '%v'", ErrUnknownMemberType, err)
	}
}

func TestIsWaySuitableForBuses(t *testing.T) {
	suitable := []string{
		"motorway", "trunk", "primary", "secondary", "tertiary", "unclassified", "road", "residential", "service",
		"motorway_link", "trunk_link", "primary_link", "secondary_link", "tertiary_link", "living_street", "bus_guideway",
	}
	for _, value := range suitable {
		way := &Way{TagMap: prepareTags("highway", value)}
		if !IsWaySuitableForBuses(way) {
			t.Errorf("Way with highway=%s should be suitable for buses", value)
		}
	}
	notSuitable := []string{"footway", "cycleway", "pedestrian", "steps", "track", "platform", "residential_link", "Residential", ""}
	for _, value := range notSuitable {
		way := &Way{TagMap: prepareTags("highway", value)}
		if IsWaySuitableForBuses(way) {
			t.Errorf("Way with highway=%s should not be suitable for buses", value)
		}
	}
	cases := []struct {
		tags    osm.Tags
		correct bool
	}{
		{prepareTags("highway", "cycleway", "cycleway", "share_busway"), true},
		{prepareTags("cycleway", "shared_lane"), true},
		{prepareTags("cycleway", "lane"), false},
		{prepareTags("highway", "residential", "oneway", "yes"), true},
		{prepareTags("highway", "residential", "oneway", "-1"), true},
		{prepareTags("railway", "tram"), false},
		{prepareTags(), false},
	}
	for i, c := range cases {
		if res := IsWaySuitableForBuses(&Way{TagMap: c.tags}); res != c.correct {
			t.Errorf("Case %d (%v): suitable for buses should be %t, but got %t", i, c.tags, c.correct, res)
		}
	}
	if IsWaySuitableForBuses(nil) {
		t.Errorf("Nil way should not be suitable for buses")
	}
}

func TestResidentialWayMember(t *testing.T) {
	way := &Way{ID: 7, TagMap: prepareTags("highway", "residential")}
	member := NewWayMember(way.ID, "", way)
	isStop, err := IsStop(member)
	if err != nil {
		t.Error(err)
		return
	}
	if isStop {
		t.Errorf("Residential way should not be a stop")
	}
	isWay, err := IsWayMember(member)
	if err != nil {
		t.Error(err)
		return
	}
	if !isWay {
		t.Errorf("Residential way should be a way member")
	}
	if !IsWaySuitableForBuses(way) {
		t.Errorf("Residential way should be suitable for buses")
	}
}

func TestHasIncompleteMembers(t *testing.T) {
	if !HasIncompleteMembers(nil) {
		t.Errorf("Nil route should be incomplete")
	}
	complete := []Member{
		NewNodeMember(1, "platform", &Node{ID: 1}),
		NewWayMember(2, "", &Way{ID: 2}),
		NewRelationMember(3, "stop_area", &Relation{ID: 3}),
	}
	route := &Relation{ID: 10, Members: complete}
	if HasIncompleteMembers(route) {
		t.Errorf("Route with loaded members should be complete")
	}
	if HasIncompleteMembers(&Relation{ID: 11}) {
		t.Errorf("Route without members should be complete")
	}
	incompleteMembers := []Member{
		NewNodeMember(1, "platform", &Node{ID: 1, Incomplete: true}),
		NewWayMember(2, "", &Way{ID: 2, Incomplete: true}),
		NewRelationMember(3, "stop_area", &Relation{ID: 3, Incomplete: true}),
		NewWayMember(4, "", nil),
	}
	for _, incomplete := range incompleteMembers {
		for pos := 0; pos <= len(complete); pos++ {
			members := make([]Member, 0, len(complete)+1)
			members = append(members, complete[:pos]...)
			members = append(members, incomplete)
			members = append(members, complete[pos:]...)
			route := &Relation{ID: 12, Members: members}
			if !HasIncompleteMembers(route) {
				t.Errorf("Route with incomplete %s %d at position %d should be incomplete", incomplete.Type, incomplete.Ref, pos)
			}
		}
	}
}

func TestSplitMembers(t *testing.T) {
	route := &Relation{
		ID: 1,
		Members: []Member{
			NewNodeMember(1, "stop", &Node{ID: 1}),
			NewWayMember(2, "platform", &Way{ID: 2, TagMap: prepareTags("public_transport", "platform")}),
			NewWayMember(3, "", &Way{ID: 3, TagMap: prepareTags("highway", "primary")}),
			NewRelationMember(4, "stop_area", &Relation{ID: 4}),
			NewWayMember(5, "", &Way{ID: 5, TagMap: prepareTags("highway", "secondary")}),
			NewRelationMember(6, "", &Relation{ID: 6}),
		},
	}
	stops, ways, err := SplitMembers(route)
	if err != nil {
		t.Error(err)
		return
	}
	correctStops := []int64{1, 2, 4}
	correctWays := []int64{3, 5, 6}
	if len(stops) != len(correctStops) {
		t.Errorf("Number of stops should be %d, but got %d", len(correctStops), len(stops))
		return
	}
	for i := range stops {
		if stops[i].Ref != correctStops[i] {
			t.Errorf("Stop #%d should be %d, but got %d", i, correctStops[i], stops[i].Ref)
		}
	}
	if len(ways) != len(correctWays) {
		t.Errorf("Number of ways should be %d, but got %d", len(correctWays), len(ways))
		return
	}
	for i := range ways {
		if ways[i].Ref != correctWays[i] {
			t.Errorf("Way #%d should be %d, but got %d", i, correctWays[i], ways[i].Ref)
		}
	}

	route.Members = append(route.Members, NewWayMember(7, "", nil))
	_, _, err = SplitMembers(route)
	if errors.Cause(err) != ErrUnresolvedMember {
		t.Errorf("Error cause should be '%s', but got '%v'", ErrUnresolvedMember, err)
	}
}
