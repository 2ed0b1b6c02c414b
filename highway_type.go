package osmpt

type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_UNCLASSIFIED
	HIGHWAY_ROAD
	HIGHWAY_RESIDENTIAL
	HIGHWAY_SERVICE
	HIGHWAY_LIVING_STREET
	HIGHWAY_BUS_GUIDEWAY
	HIGHWAY_CYCLEWAY
	HIGHWAY_FOOTWAY
	HIGHWAY_PEDESTRIAN
	HIGHWAY_STEPS
	HIGHWAY_TRACK
	HIGHWAY_PLATFORM
	HIGHWAY_UNDEFINED = HighwayType(0)
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"undefined", "motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "unclassified", "road", "residential", "service", "living_street", "bus_guideway", "cycleway", "footway", "pedestrian", "steps", "track", "platform"}[iotaIdx]
}

func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return HIGHWAY_UNDEFINED
}

var (
	highwaysTypes = map[string]HighwayType{
		"motorway":       HIGHWAY_MOTORWAY,
		"motorway_link":  HIGHWAY_MOTORWAY_LINK,
		"trunk":          HIGHWAY_TRUNK,
		"trunk_link":     HIGHWAY_TRUNK_LINK,
		"primary":        HIGHWAY_PRIMARY,
		"primary_link":   HIGHWAY_PRIMARY_LINK,
		"secondary":      HIGHWAY_SECONDARY,
		"secondary_link": HIGHWAY_SECONDARY_LINK,
		"tertiary":       HIGHWAY_TERTIARY,
		"tertiary_link":  HIGHWAY_TERTIARY_LINK,
		"unclassified":   HIGHWAY_UNCLASSIFIED,
		"road":           HIGHWAY_ROAD,
		"residential":    HIGHWAY_RESIDENTIAL,
		"service":        HIGHWAY_SERVICE,
		"living_street":  HIGHWAY_LIVING_STREET,
		"bus_guideway":   HIGHWAY_BUS_GUIDEWAY,
		"cycleway":       HIGHWAY_CYCLEWAY,
		"footway":        HIGHWAY_FOOTWAY,
		"pedestrian":     HIGHWAY_PEDESTRIAN,
		"steps":          HIGHWAY_STEPS,
		"track":          HIGHWAY_TRACK,
		"platform":       HIGHWAY_PLATFORM,
	}

	// Highways buses are able to drive on. Direction of a way is not considered
	busHighwayTypes = map[HighwayType]struct{}{
		HIGHWAY_MOTORWAY:       {},
		HIGHWAY_TRUNK:          {},
		HIGHWAY_PRIMARY:        {},
		HIGHWAY_SECONDARY:      {},
		HIGHWAY_TERTIARY:       {},
		HIGHWAY_UNCLASSIFIED:   {},
		HIGHWAY_ROAD:           {},
		HIGHWAY_RESIDENTIAL:    {},
		HIGHWAY_SERVICE:        {},
		HIGHWAY_MOTORWAY_LINK:  {},
		HIGHWAY_TRUNK_LINK:     {},
		HIGHWAY_PRIMARY_LINK:   {},
		HIGHWAY_SECONDARY_LINK: {},
		HIGHWAY_TERTIARY_LINK:  {},
		HIGHWAY_LIVING_STREET:  {},
		HIGHWAY_BUS_GUIDEWAY:   {},
	}
)
