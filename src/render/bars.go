package render

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/dataset"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/style"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/types"
)

// Grouped bar geometry: tick positions are 1.0 apart, each configuration gets a 0.4 wide bar
// flanking the tick.
const (
	BarWidth  = 0.4
	BarOffset = 0.2
)

var configOffsets = map[types.Configuration]float64{
	types.Static:     -BarOffset,
	types.DynamicQoS: +BarOffset,
}

// Bar is one rendered bar of a comparison panel.
type Bar struct {
	Group  dataset.Group
	X      float64 // center
	Width  float64
	Height float64 // zero for empty groups
	Mean   float64 // NaN for empty groups
	Count  int
	Style  style.Style
}

// ComparisonBars computes the bars of one metric panel: for each slice type in fixed order,
// the Static mean at i-0.2 and the Dynamic QoS mean at i+0.2. An empty group keeps its NaN
// mean but is drawn at zero height.
func ComparisonBars(ds *dataset.Unified, m types.Metric) []Bar {
	bars := make([]Bar, 0, len(types.SliceTypes)*len(types.Configurations))
	for i, s := range types.SliceTypes {
		for _, c := range types.Configurations {
			agg := ds.Aggregate(s, c, m)
			h := agg.Mean
			if math.IsNaN(h) {
				h = 0
			}
			bars = append(bars, Bar{
				Group:  dataset.Group{Slice: s, Config: c},
				X:      float64(i) + configOffsets[c],
				Width:  BarWidth,
				Height: h,
				Mean:   agg.Mean,
				Count:  agg.Count,
				Style:  style.For(s, c),
			})
		}
	}
	return bars
}

var outlineStyle = draw.LineStyle{Color: style.HatchColor, Width: vg.Points(0.5)}

var hatchLineStyle = draw.LineStyle{Color: style.HatchColor, Width: vg.Points(0.8)}

// barGroup is a gonum/plot Plotter drawing a fixed set of bars.
type barGroup struct {
	bars []Bar
}

var _ plot.Plotter = (*barGroup)(nil)
var _ plot.DataRanger = (*barGroup)(nil)

// Plot implements plot.Plotter.
func (g *barGroup) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, b := range g.bars {
		if b.Height == 0 {
			continue
		}
		x0, x1 := trX(b.X-b.Width/2), trX(b.X+b.Width/2)
		y0, y1 := trY(0), trY(b.Height)
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		fillBar(c, vg.Rectangle{Min: vg.Point{X: x0, Y: y0}, Max: vg.Point{X: x1, Y: y1}}, b.Style)
	}
}

// fillBar paints one rectangle with the style's fill, hatch and outline.
func fillBar(c draw.Canvas, r vg.Rectangle, st style.Style) {
	pts := []vg.Point{r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y}}
	c.FillPolygon(st.Fill(), c.ClipPolygonXY(pts))
	if st.Pattern == style.PatternDiagonal {
		for _, seg := range hatchSegments(r, hatchSpacing) {
			if !c.Contains(seg[0]) && !c.Contains(seg[1]) {
				continue
			}
			c.StrokeLine2(hatchLineStyle, seg[0].X, seg[0].Y, seg[1].X, seg[1].Y)
		}
	}
	c.StrokeLines(outlineStyle, c.ClipLinesXY(append(pts, pts[0]))...)
}

// DataRange implements plot.DataRanger. Zero is always included so bars grow from the axis.
func (g *barGroup) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, b := range g.bars {
		xmin = math.Min(xmin, b.X-b.Width/2)
		xmax = math.Max(xmax, b.X+b.Width/2)
		ymin = math.Min(ymin, b.Height)
		ymax = math.Max(ymax, b.Height)
	}
	if len(g.bars) == 0 {
		xmin, xmax = 0, 0
	}
	return xmin, xmax, ymin, ymax
}

// swatch is the legend thumbnail of one (slice, configuration) style.
type swatch struct {
	style style.Style
}

var _ plot.Thumbnailer = swatch{}

// Thumbnail implements plot.Thumbnailer.
func (s swatch) Thumbnail(c *draw.Canvas) {
	fillBar(*c, c.Rectangle, s.style)
}
