package render

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// hatchSpacing is the distance between "//" hatch lines, measured along the y axis.
const hatchSpacing = 2 * vg.Millimeter

// hatchSegments returns the "//" (slope +1) hatch lines clipped to r. Lines sit on a grid
// anchored at the origin so neighbouring bars share one continuous pattern.
func hatchSegments(r vg.Rectangle, spacing vg.Length) [][2]vg.Point {
	if spacing <= 0 || r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y {
		return nil
	}
	x0, y0, x1, y1 := float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y)
	sp := float64(spacing)
	var out [][2]vg.Point
	// line: y = x + b
	for b := math.Ceil((y0-x1)/sp) * sp; b <= y1-x0; b += sp {
		xs := math.Max(x0, y0-b)
		xe := math.Min(x1, y1-b)
		if xe-xs <= 1e-9 {
			continue
		}
		out = append(out, [2]vg.Point{
			{X: vg.Length(xs), Y: vg.Length(xs + b)},
			{X: vg.Length(xe), Y: vg.Length(xe + b)},
		})
	}
	return out
}
