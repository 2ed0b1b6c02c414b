package osmpt

import (
	"fmt"
	"time"

	"github.com/paulmach/osm"
)

type Analyzer struct {
	verbose          bool
	twoDirectionOnly bool
	busWaysCheck     bool
}

func (analyzer *Analyzer) String() string {
	return fmt.Sprintf(`
Route analyzer parameters:
	verbose: %t
	two-direction routes only?: %t
	check ways for buses?: %t
	`,
		analyzer.verbose,
		analyzer.twoDirectionOnly,
		analyzer.busWaysCheck,
	)
}

func NewAnalyzer(options ...func(*Analyzer)) *Analyzer {
	analyzer := &Analyzer{
		verbose:          false,
		twoDirectionOnly: false,
		busWaysCheck:     true,
	}
	for _, option := range options {
		option(analyzer)
	}
	return analyzer
}

func WithVerbose(verbose bool) func(*Analyzer) {
	return func(analyzer *Analyzer) {
		analyzer.verbose = verbose
	}
}

// WithTwoDirectionOnly Report only routes which can be validated (see IsTwoDirectionRoute)
func WithTwoDirectionOnly(twoDirectionOnly bool) func(*Analyzer) {
	return func(analyzer *Analyzer) {
		analyzer.twoDirectionOnly = twoDirectionOnly
	}
}

// WithBusWaysCheck Look for ways which are not suitable for buses in bus and trolleybus routes
func WithBusWaysCheck(busWaysCheck bool) func(*Analyzer) {
	return func(analyzer *Analyzer) {
		analyzer.busWaysCheck = busWaysCheck
	}
}

// RouteReport Classification verdicts for single route
type RouteReport struct {
	ID               osm.RelationID
	Name             string
	Ref              string
	RouteType        RouteType
	TwoDirection     bool
	Incomplete       bool
	StopsNum         int
	WaysNum          int
	UnresolvedNum    int
	UnsuitableWays   []osm.WayID
	LengthKm         float64
	SkippedGeomWays  int
	ClassificationOK bool
}

// Analyze runs classifiers over every route of dataset
func (analyzer *Analyzer) Analyze(data *Dataset) []RouteReport {
	if analyzer.verbose {
		fmt.Printf("Analyzing routes...")
	}
	st := time.Now()
	routes := data.Routes()
	reports := make([]RouteReport, 0, len(routes))
	for _, route := range routes {
		twoDirection := IsTwoDirectionRoute(route)
		if analyzer.twoDirectionOnly && !twoDirection {
			continue
		}
		reports = append(reports, analyzer.analyzeRoute(data, route, twoDirection))
	}
	if analyzer.verbose {
		fmt.Printf("Done in %v\n\tRoutes: %d (reported: %d)\n", time.Since(st), len(routes), len(reports))
	}
	return reports
}

func (analyzer *Analyzer) analyzeRoute(data *Dataset, route *Relation, twoDirection bool) RouteReport {
	report := RouteReport{
		ID:               route.ID,
		Name:             route.TagMap.Find("name"),
		Ref:              route.TagMap.Find("ref"),
		RouteType:        GetRouteType(route),
		TwoDirection:     twoDirection,
		Incomplete:       HasIncompleteMembers(route),
		UnsuitableWays:   []osm.WayID{},
		ClassificationOK: true,
	}
	for _, member := range route.Members {
		if !member.isResolved() {
			report.UnresolvedNum++
		}
	}
	stops, ways, err := SplitMembers(route)
	if err != nil {
		report.ClassificationOK = false
		if analyzer.verbose {
			fmt.Printf("\n\t[WARNING]: Can't classify members: %s. Route ID: '%d'\n", err.Error(), route.ID)
		}
		return report
	}
	report.StopsNum = len(stops)
	report.WaysNum = len(ways)

	if _, ok := roadRouteTypes[report.RouteType]; ok && analyzer.busWaysCheck {
		for _, member := range ways {
			way, err := member.Way()
			if err != nil || way.Incomplete {
				continue
			}
			if !IsWaySuitableForBuses(way) {
				report.UnsuitableWays = append(report.UnsuitableWays, way.ID)
			}
		}
	}

	report.LengthKm, report.SkippedGeomWays, err = data.RouteLength(route)
	if err != nil && analyzer.verbose {
		fmt.Printf("\n\t[WARNING]: Can't evaluate length: %s. Route ID: '%d'\n", err.Error(), route.ID)
	}
	return report
}
