package render

import (
	"bytes"
	"io"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/dataset"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/logging"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/style"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/types"
)

// Panel is one metric's comparison panel.
type Panel struct {
	Metric types.Metric
	Title  string
	YLabel string
	Bars   []Bar
}

var comparisonDefs = []struct {
	metric        types.Metric
	title, ylabel string
}{
	{types.Throughput, "Throughput Comparison", "Mbps"},
	{types.PacketLoss, "Packet Loss Comparison", "%"},
	{types.Energy, "Energy Consumption Comparison", "Joules"},
}

// ComparisonPanels builds the three panels in fixed metric order.
func ComparisonPanels(ds *dataset.Unified) []Panel {
	out := make([]Panel, 0, len(comparisonDefs))
	for _, sp := range comparisonDefs {
		out = append(out, Panel{Metric: sp.metric, Title: sp.title, YLabel: sp.ylabel, Bars: ComparisonBars(ds, sp.metric)})
	}
	return out
}

// sliceTicks labels every tick position with its slice type.
func sliceTicks() []plot.Tick {
	ticks := make([]plot.Tick, len(types.SliceTypes))
	for i, s := range types.SliceTypes {
		ticks[i] = plot.Tick{Value: float64(i), Label: s.String()}
	}
	return ticks
}

// panelPlot converts a panel into a gonum plot.
func panelPlot(p Panel) *plot.Plot {
	pl := plot.New()
	pl.Title.Text = p.Title
	pl.Y.Label.Text = p.YLabel
	pl.Add(&barGroup{bars: p.Bars})
	pl.X.Tick.Marker = plot.ConstantTicks(sliceTicks())
	pl.X.Min = -0.6
	pl.X.Max = float64(len(types.SliceTypes)-1) + 0.6
	pl.Y.Min = 0
	if pl.Y.Max <= 0 {
		pl.Y.Max = 1
	} else {
		pl.Y.Max *= 1.05
	}
	return pl
}

// comparisonLegend builds the shared legend from the style mapping.
func comparisonLegend() plot.Legend {
	leg := plot.NewLegend()
	leg.Top = true
	leg.Left = true
	leg.ThumbnailWidth = vg.Points(18)
	for _, e := range style.Legend() {
		leg.Add(e.Label, swatch{style: e.Style})
	}
	return leg
}

// RenderComparison draws the three comparison panels stacked vertically with one shared
// legend to the right of the plot area and writes the figure as PNG to w.
func RenderComparison(w io.Writer, ds *dataset.Unified, opts Options) error {
	defer logging.TimeTrack(time.Now(), "render comparison")
	for _, g := range ds.EmptyGroups() {
		logging.Warnf("no rows for %s; its bars render at zero height", g)
	}
	panels := ComparisonPanels(ds)
	plots := make([][]*plot.Plot, len(panels))
	for i, p := range panels {
		plots[i] = []*plot.Plot{panelPlot(p)}
	}

	width, height := comparisonSize()
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(int(opts.dpi())))
	dc := draw.New(img)
	legendW := vg.Length(legendWidthIn) * vg.Inch
	plotArea := draw.Crop(dc, 0, -legendW, 0, 0)
	tiles := draw.Tiles{
		Rows:      len(panels),
		Cols:      1,
		PadTop:    vg.Points(10),
		PadBottom: vg.Points(10),
		PadLeft:   vg.Points(10),
		PadRight:  vg.Points(10),
		PadY:      vg.Points(24),
	}
	canvases := plot.Align(plots, tiles, plotArea)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	leg := comparisonLegend()
	leg.Draw(draw.Crop(dc, width-legendW+vg.Points(8), 0, 0, -vg.Points(14)))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&buf); err != nil {
		return errors.Wrap(err, "encode comparison png")
	}
	_, err := buf.WriteTo(w)
	return errors.Wrap(err, "write comparison png")
}
