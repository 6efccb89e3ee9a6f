package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/types"
)

// Columns is the exact header every metric table carries.
var Columns = []string{"Device", "Throughput(Mbps)", "PacketLoss(%)", "Energy(J)"}

// Table is one source file's rows, in file order.
type Table struct {
	Path string
	Rows []types.MetricRow
}

// ReadRows parses a metric table. Columns may appear in any order but the set must be exactly Columns.
func ReadRows(r io.Reader) ([]types.MetricRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty table: missing header")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}
	var rows []types.MetricRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read row")
		}
		line, _ := cr.FieldPos(0)
		row := types.MetricRow{Device: strings.TrimSpace(rec[idx[0]])}
		vals := [3]float64{}
		for i := 1; i < len(Columns); i++ {
			v, err := parseValue(rec[idx[i]])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d column %s", line, Columns[i])
			}
			vals[i-1] = v
		}
		row.ThroughputMbps, row.PacketLossPct, row.EnergyJ = vals[0], vals[1], vals[2]
		rows = append(rows, row)
	}
	return rows, nil
}

// parseValue reads one metric cell. An empty cell or NaN is a missing value and yields NaN;
// infinities are rejected.
func parseValue(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) {
		return 0, errors.Errorf("value %q is not finite", raw)
	}
	return v, nil
}

// columnIndex maps Columns order to header positions.
func columnIndex(header []string) ([]int, error) {
	if len(header) != len(Columns) {
		return nil, errors.Errorf("header has %d columns, want %s", len(header), strings.Join(Columns, ","))
	}
	pos := map[string]int{}
	for i, h := range header {
		pos[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	idx := make([]int, len(Columns))
	for i, c := range Columns {
		p, ok := pos[c]
		if !ok {
			return nil, errors.Errorf("header missing column %q", c)
		}
		idx[i] = p
	}
	return idx, nil
}

// LoadTable reads a metric table from path. A missing file yields an error satisfying os.IsNotExist.
func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	rows, err := ReadRows(f)
	if err != nil {
		return Table{}, errors.Wrapf(err, "parse %s", path)
	}
	return Table{Path: path, Rows: rows}, nil
}

// Tag stamps every row with its known configuration and slice type, in place.
func (t *Table) Tag(s types.SliceType, c types.Configuration) {
	for i := range t.Rows {
		t.Rows[i].SliceType = s
		t.Rows[i].Configuration = c
	}
}
