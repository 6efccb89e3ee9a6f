package render

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// tickSteps are the preferred step mantissas; each is scaled by a power of ten.
var tickSteps = []float64{1, 2, 2.5, 5, 10}

// niceUpperBound pads max by 5% and rounds it up to a "nice" increment of its order of magnitude.
// Bars always start at zero, so only the upper bound moves.
func niceUpperBound(max float64) float64 {
	if math.IsNaN(max) || max <= 0 {
		return 1
	}
	b := max * 1.05
	mag := math.Pow(10, math.Floor(math.Log10(max)))
	if !math.IsInf(mag, 0) && mag > 0 {
		b = math.Ceil(b/mag) * mag
	}
	return b
}

// tickStep picks the step whose tick count over span comes closest to n.
func tickStep(span float64, n int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	best, bestDiff := mag, math.MaxFloat64
	for _, m := range tickSteps {
		step := m * mag
		count := math.Max(math.Ceil(span/step)+1, 2)
		if d := math.Abs(count - float64(n)); d < bestDiff {
			best, bestDiff = step, d
		}
	}
	return best
}

// valueTicks returns about n labelled ticks covering [min, max]. go-chart sizes the axis to the
// outermost ticks, so the last one is always at or above max.
func valueTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	step := tickStep(max-min, n)
	first := math.Floor(min/step) * step
	count := int(math.Ceil((max-first)/step-1e-6)) + 1
	ticks := make([]chart.Tick, 0, count)
	for i := 0; i < count; i++ {
		v := math.Round((first+float64(i)*step)*1e6) / 1e6
		ticks = append(ticks, chart.Tick{Value: v, Label: tickLabel(v)})
	}
	return ticks
}

// tickLabel keeps labels short: fewer decimals as magnitude grows.
func tickLabel(v float64) string {
	av := math.Abs(v)
	switch {
	case v == 0:
		return "0"
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 0.1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	default:
		return strconv.FormatFloat(v, 'f', 3, 64)
	}
}
