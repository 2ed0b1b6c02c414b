package osmpt

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

func lineToGeoJSON(line orb.LineString) [][]float64 {
	pts2d := make([][]float64, len(line))
	for i := range line {
		pts2d[i] = []float64{line[i].Lon(), line[i].Lat()}
	}
	return pts2d
}

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(line orb.LineString) string {
	b, err := geojson.NewLineStringGeometry(lineToGeoJSON(line)).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// PrepareGeoJSONPoint returns GeoJSON representation of Point
func PrepareGeoJSONPoint(pt orb.Point) string {
	b, err := geojson.NewPointGeometry([]float64{pt.Lon(), pt.Lat()}).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// PrepareGeoJSONStops returns collection of stops of route.
/*
	Node stops become points, platform ways become linestrings.
	Stop areas and entities which have not been loaded are skipped
*/
func (data *Dataset) PrepareGeoJSONStops(relation *Relation) (*geojson.FeatureCollection, error) {
	stops, _, err := SplitMembers(relation)
	if err != nil {
		return nil, errors.Wrap(err, "Can't extract stops")
	}
	fc := geojson.NewFeatureCollection()
	for i, member := range stops {
		var feature *geojson.Feature
		switch {
		case member.node != nil:
			if member.node.Incomplete {
				continue
			}
			pt := member.node.Point()
			feature = geojson.NewPointFeature([]float64{pt.Lon(), pt.Lat()})
			feature.SetProperty("name", member.node.TagMap.Find("name"))
		case member.way != nil:
			line, err := data.WayLine(member.way)
			if err != nil {
				continue
			}
			feature = geojson.NewLineStringFeature(lineToGeoJSON(line))
			feature.SetProperty("name", member.way.TagMap.Find("name"))
		default:
			continue
		}
		feature.SetProperty("route_id", int64(relation.ID))
		feature.SetProperty("ref", member.Ref)
		feature.SetProperty("type", string(member.Type))
		feature.SetProperty("role", member.Role)
		feature.SetProperty("position", i)
		fc.AddFeature(feature)
	}
	return fc, nil
}
