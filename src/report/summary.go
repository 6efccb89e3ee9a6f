package report

import (
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/dataset"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/types"
)

func formatMean(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", v)
}

// WriteSummary prints one table row per (slice, configuration) group with its row count and the
// mean of each metric, followed by the total row count. Empty groups are flagged because the
// report draws them as zero bars.
func WriteSummary(w io.Writer, ds *dataset.Unified) error {
	headers := []string{"SliceType", "Configuration", "Devices"}
	for _, m := range types.Metrics {
		headers = append(headers, m.Column())
	}
	headers = append(headers, "Note")

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(headers)
	for _, s := range types.SliceTypes {
		for _, c := range types.Configurations {
			first := ds.Aggregate(s, c, types.Metrics[0])
			row := []string{s.String(), c.String(), fmt.Sprintf("%d", first.Count)}
			for _, m := range types.Metrics {
				row = append(row, formatMean(ds.Aggregate(s, c, m).Mean))
			}
			note := ""
			if first.Empty() {
				note = "(empty: rendered as zero)"
			}
			table.Append(append(row, note))
		}
	}
	table.Render()
	_, err := fmt.Fprintf(w, "Total rows: %d\n", ds.Len())
	return err
}
