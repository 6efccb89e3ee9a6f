package dataset

import (
	"math"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/types"
)

// AggregateStat is the mean of one metric over the rows of one (slice, configuration) group.
// Mean is NaN when the group has no rows.
type AggregateStat struct {
	Slice  types.SliceType
	Config types.Configuration
	Metric types.Metric
	Mean   float64
	Count  int
}

// Empty reports whether the group had no rows.
func (a AggregateStat) Empty() bool { return a.Count == 0 }

// Mean returns the arithmetic mean of m over rows, skipping missing (NaN) values. It is NaN
// when no row has a value.
func Mean(rows []types.MetricRow, m types.Metric) float64 {
	sum, n := 0.0, 0
	for _, r := range rows {
		if v := r.Value(m); !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Aggregate computes the mean of m for the (s, c) group.
func (u *Unified) Aggregate(s types.SliceType, c types.Configuration, m types.Metric) AggregateStat {
	rows := u.Select(s, c)
	return AggregateStat{Slice: s, Config: c, Metric: m, Mean: Mean(rows, m), Count: len(rows)}
}

// Aggregates returns every group/metric stat ordered by slice, then configuration, then metric.
func (u *Unified) Aggregates() []AggregateStat {
	out := make([]AggregateStat, 0, len(types.SliceTypes)*len(types.Configurations)*len(types.Metrics))
	for _, s := range types.SliceTypes {
		for _, c := range types.Configurations {
			rows := u.Select(s, c)
			for _, m := range types.Metrics {
				out = append(out, AggregateStat{Slice: s, Config: c, Metric: m, Mean: Mean(rows, m), Count: len(rows)})
			}
		}
	}
	return out
}

// Group identifies one (slice, configuration) pair.
type Group struct {
	Slice  types.SliceType
	Config types.Configuration
}

func (g Group) String() string { return g.Slice.String() + " " + g.Config.String() }

// EmptyGroups lists the groups with no rows, in fixed order.
func (u *Unified) EmptyGroups() []Group {
	var out []Group
	for _, s := range types.SliceTypes {
		for _, c := range types.Configurations {
			if len(u.Select(s, c)) == 0 {
				out = append(out, Group{Slice: s, Config: c})
			}
		}
	}
	return out
}
