package osmpt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var (
	reportHeader = []string{"route_id", "name", "ref", "route_type", "two_direction", "incomplete", "stops_num", "ways_num", "unresolved_num", "unsuitable_ways", "length_km", "classified"}
)

// WriteReportCSV writes reports as semicolon separated values
func WriteReportCSV(w io.Writer, reports []RouteReport) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'
	err := writer.Write(reportHeader)
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	for _, report := range reports {
		unsuitable := make([]string, len(report.UnsuitableWays))
		for i, wayID := range report.UnsuitableWays {
			unsuitable[i] = fmt.Sprintf("%d", wayID)
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", report.ID),
			report.Name,
			report.Ref,
			report.RouteType.String(),
			fmt.Sprintf("%t", report.TwoDirection),
			fmt.Sprintf("%t", report.Incomplete),
			fmt.Sprintf("%d", report.StopsNum),
			fmt.Sprintf("%d", report.WaysNum),
			fmt.Sprintf("%d", report.UnresolvedNum),
			strings.Join(unsuitable, ","),
			fmt.Sprintf("%f", report.LengthKm),
			fmt.Sprintf("%t", report.ClassificationOK),
		})
		if err != nil {
			return errors.Wrapf(err, "Can't write report for route %d", report.ID)
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "Can't flush reports")
}
