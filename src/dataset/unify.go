package dataset

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/logging"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/types"
)

// Source names one of the six input tables and the tags its rows receive.
type Source struct {
	Slice  types.SliceType
	Config types.Configuration
	Path   string
}

// FileName returns the conventional file name: <slice>_performance.csv for Static,
// <slice>_dynamic.csv for Dynamic QoS.
func FileName(s types.SliceType, c types.Configuration) string {
	if c == types.DynamicQoS {
		return s.FilePrefix() + "_dynamic.csv"
	}
	return s.FilePrefix() + "_performance.csv"
}

// Sources lists the six tables under dir in concatenation order:
// Static URLLC, eMBB, mMTC, then Dynamic QoS URLLC, eMBB, mMTC.
func Sources(dir string) []Source {
	out := make([]Source, 0, len(types.Configurations)*len(types.SliceTypes))
	for _, c := range types.Configurations {
		for _, s := range types.SliceTypes {
			out = append(out, Source{Slice: s, Config: c, Path: filepath.Join(dir, FileName(s, c))})
		}
	}
	return out
}

// Unified is the concatenation of all tagged source rows.
type Unified struct {
	Rows []types.MetricRow
}

// Len returns the number of rows.
func (u *Unified) Len() int { return len(u.Rows) }

// Select returns the rows tagged with (s, c), in unified order.
func (u *Unified) Select(s types.SliceType, c types.Configuration) []types.MetricRow {
	var out []types.MetricRow
	for _, r := range u.Rows {
		if r.SliceType == s && r.Configuration == c {
			out = append(out, r)
		}
	}
	return out
}

// Unify loads the six sources, tags them and concatenates them in source order.
// If any table is missing the result is a single *MissingInputError naming all of them;
// no partial dataset is returned.
func Unify(dir string) (*Unified, error) {
	return UnifySources(Sources(dir))
}

// UnifySources is Unify over an explicit source list.
func UnifySources(srcs []Source) (*Unified, error) {
	defer logging.TimeTrack(time.Now(), "unify")
	tables := make([]Table, 0, len(srcs))
	var missing []string
	var loadErr error
	for _, src := range srcs {
		t, err := LoadTable(src.Path)
		if err != nil {
			if os.IsNotExist(errors.Cause(err)) {
				missing = append(missing, src.Path)
			} else if loadErr == nil {
				loadErr = err
			}
			continue
		}
		t.Tag(src.Slice, src.Config)
		tables = append(tables, t)
	}
	// absent files take precedence over unreadable ones
	if len(missing) > 0 {
		return nil, &MissingInputError{Paths: missing}
	}
	if loadErr != nil {
		return nil, loadErr
	}
	return Concat(tables...), nil
}

// Concat joins already tagged tables, preserving row order within and across tables.
func Concat(tables ...Table) *Unified {
	n := 0
	for _, t := range tables {
		n += len(t.Rows)
	}
	u := &Unified{Rows: make([]types.MetricRow, 0, n)}
	for _, t := range tables {
		u.Rows = append(u.Rows, t.Rows...)
	}
	return u
}
