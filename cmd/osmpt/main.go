package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/LdDl/osmpt"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

var (
	osmFileName      = flag.String("file", "my_routes.osm.pbf", "Filename of *.osm or *.osm.pbf file")
	out              = flag.String("out", "my_routes.csv", "Filename of 'Comma-Separated Values' (CSV) formatted report (semicolon is used as delimiter)")
	geojsonRoute     = flag.Int64("route", 0, "ID of route which stops should be exported to GeoJSON")
	geojsonOut       = flag.String("geojson", "stops.geojson", "Filename of GeoJSON with stops of route provided by -route flag")
	twoDirectionOnly = flag.Bool("two_direction", false, "Report only routes tagged with public_transport:version=2 of supported types")
	busWaysCheck     = flag.Bool("bus_ways", true, "Look for ways which are not suitable for buses in bus and trolleybus routes")
	verbose          = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	analyzer := osmpt.NewAnalyzer(
		osmpt.WithVerbose(*verbose),
		osmpt.WithTwoDirectionOnly(*twoDirectionOnly),
		osmpt.WithBusWaysCheck(*busWaysCheck),
	)
	if *verbose {
		fmt.Println(analyzer)
	}

	data, err := osmpt.ReadOSM(*osmFileName, *verbose)
	if err != nil {
		fmt.Println(err)
		return
	}

	reports := analyzer.Analyze(data)
	fileReports, err := os.Create(*out)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer fileReports.Close()
	err = osmpt.WriteReportCSV(fileReports, reports)
	if err != nil {
		fmt.Println(err)
		return
	}

	if *geojsonRoute != 0 {
		err = exportStops(data, osm.RelationID(*geojsonRoute), *geojsonOut)
		if err != nil {
			fmt.Println(err)
			return
		}
	}
}

func exportStops(data *osmpt.Dataset, routeID osm.RelationID, fname string) error {
	route, ok := data.Relation(routeID)
	if !ok {
		return fmt.Errorf("No such route '%d'", routeID)
	}
	fc, err := data.PrepareGeoJSONStops(route)
	if err != nil {
		return errors.Wrap(err, "Can't prepare stops")
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't marshal stops")
	}
	err = os.WriteFile(fname, b, 0644)
	if err != nil {
		return errors.Wrap(err, "Can't write stops")
	}
	return nil
}
