package types

import (
	"strings"

	"github.com/pkg/errors"
)

// SliceType is one of the three simulated network-service classes.
type SliceType int

const (
	SliceUnknown SliceType = iota
	URLLC
	EMBB
	MMTC
)

// SliceTypes is the fixed display order used by every chart.
var SliceTypes = []SliceType{URLLC, EMBB, MMTC}

var sliceNames = map[SliceType]string{
	URLLC: "URLLC",
	EMBB:  "eMBB",
	MMTC:  "mMTC",
}

func (s SliceType) String() string {
	if n, ok := sliceNames[s]; ok {
		return n
	}
	return "unknown"
}

// Valid reports whether s is one of URLLC, eMBB or mMTC.
func (s SliceType) Valid() bool {
	_, ok := sliceNames[s]
	return ok
}

// FilePrefix is the lowercase name used in input/output file names (urllc, embb, mmtc).
func (s SliceType) FilePrefix() string { return strings.ToLower(s.String()) }

// Index returns the position of s in SliceTypes, or -1.
func (s SliceType) Index() int {
	for i, st := range SliceTypes {
		if st == s {
			return i
		}
	}
	return -1
}

// ParseSliceType accepts the display name or file prefix, case-insensitively.
func ParseSliceType(v string) (SliceType, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, s := range SliceTypes {
		if s.FilePrefix() == v {
			return s, nil
		}
	}
	return SliceUnknown, errors.Errorf("unknown slice type %q (want urllc, embb or mmtc)", v)
}

// Configuration is the experimental arm a row was measured under.
type Configuration int

const (
	ConfigUnknown Configuration = iota
	Static
	DynamicQoS
)

// Configurations is the fixed order: Static bars left of the tick, Dynamic QoS right.
var Configurations = []Configuration{Static, DynamicQoS}

func (c Configuration) String() string {
	switch c {
	case Static:
		return "Static"
	case DynamicQoS:
		return "Dynamic QoS"
	}
	return "unknown"
}

func (c Configuration) Valid() bool { return c == Static || c == DynamicQoS }

// Metric is one measured per-device quantity.
type Metric int

const (
	Throughput Metric = iota
	PacketLoss
	Energy
)

// Metrics is the fixed panel order.
var Metrics = []Metric{Throughput, PacketLoss, Energy}

// Column returns the CSV header name holding the metric.
func (m Metric) Column() string {
	switch m {
	case Throughput:
		return "Throughput(Mbps)"
	case PacketLoss:
		return "PacketLoss(%)"
	case Energy:
		return "Energy(J)"
	}
	return ""
}

func (m Metric) String() string { return m.Column() }

// MetricRow is one device measurement tagged with its slice type and configuration.
type MetricRow struct {
	Device         string        `json:"device"`
	ThroughputMbps float64       `json:"throughput_mbps"`
	PacketLossPct  float64       `json:"packet_loss_pct"`
	EnergyJ        float64       `json:"energy_j"`
	Configuration  Configuration `json:"configuration"`
	SliceType      SliceType     `json:"slice_type"`
}

// Value returns the row's value for metric m.
func (r MetricRow) Value(m Metric) float64 {
	switch m {
	case Throughput:
		return r.ThroughputMbps
	case PacketLoss:
		return r.PacketLossPct
	case Energy:
		return r.EnergyJ
	}
	return 0
}

// Tagged reports whether both derived tags are set.
func (r MetricRow) Tagged() bool { return r.Configuration.Valid() && r.SliceType.Valid() }
