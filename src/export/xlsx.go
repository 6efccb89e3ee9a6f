// Package export writes the unified dataset and its aggregates to a spreadsheet.
package export

import (
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/dataset"
)

const (
	RowsSheet       = "Rows"
	AggregatesSheet = "Aggregates"
)

// WriteWorkbook saves ds as an XLSX workbook at path: the unified rows in order on one sheet,
// every (slice, configuration, metric) mean on another. Missing values and empty-group means
// are left blank.
func WriteWorkbook(path string, ds *dataset.Unified) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", RowsSheet); err != nil {
		return errors.Wrap(err, "rename sheet")
	}
	header := []interface{}{}
	for _, c := range dataset.Columns {
		header = append(header, c)
	}
	header = append(header, "Configuration", "SliceType")
	if err := setRow(f, RowsSheet, 1, header); err != nil {
		return err
	}
	for i, r := range ds.Rows {
		row := []interface{}{r.Device, cellValue(r.ThroughputMbps), cellValue(r.PacketLossPct), cellValue(r.EnergyJ), r.Configuration.String(), r.SliceType.String()}
		if err := setRow(f, RowsSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(AggregatesSheet); err != nil {
		return errors.Wrap(err, "add aggregates sheet")
	}
	if err := setRow(f, AggregatesSheet, 1, []interface{}{"SliceType", "Configuration", "Metric", "Mean", "Count"}); err != nil {
		return err
	}
	for i, a := range ds.Aggregates() {
		if err := setRow(f, AggregatesSheet, i+2, []interface{}{a.Slice.String(), a.Config.String(), a.Metric.Column(), cellValue(a.Mean), a.Count}); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}
	return errors.Wrapf(f.SaveAs(path), "save %s", path)
}

// cellValue leaves missing (NaN) values as blank cells.
func cellValue(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

func setRow(f *excelize.File, sheet string, row int, vals []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrap(err, "cell name")
	}
	return errors.Wrapf(f.SetSheetRow(sheet, cell, &vals), "%s row %d", sheet, row)
}
