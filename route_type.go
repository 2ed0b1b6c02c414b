package osmpt

type RouteType uint16

const (
	ROUTE_BUS = RouteType(iota + 1)
	ROUTE_TROLLEYBUS
	ROUTE_SHARE_TAXI
	ROUTE_TRAM
	ROUTE_LIGHT_RAIL
	ROUTE_SUBWAY
	ROUTE_TRAIN
	ROUTE_UNDEFINED = RouteType(0)
)

func (iotaIdx RouteType) String() string {
	return [...]string{"undefined", "bus", "trolleybus", "share_taxi", "tram", "light_rail", "subway", "train"}[iotaIdx]
}

func getRouteType(str string) RouteType {
	if found, ok := routeTypes[str]; ok {
		return found
	}
	return ROUTE_UNDEFINED
}

var (
	routeTypes = map[string]RouteType{
		"bus":        ROUTE_BUS,
		"trolleybus": ROUTE_TROLLEYBUS,
		"share_taxi": ROUTE_SHARE_TAXI,
		"tram":       ROUTE_TRAM,
		"light_rail": ROUTE_LIGHT_RAIL,
		"subway":     ROUTE_SUBWAY,
		"train":      ROUTE_TRAIN,
	}

	// Routes running over the road network
	roadRouteTypes = map[RouteType]struct{}{
		ROUTE_BUS:        {},
		ROUTE_TROLLEYBUS: {},
	}
)
