package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/logging"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/style"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/types"
)

// deviceBarWidth is the per-device bar width in x-axis units (devices are 1.0 apart).
const deviceBarWidth = 0.6

var slicePanelDefs = []struct {
	metric        types.Metric
	title, ylabel string
}{
	{types.Throughput, "THROUGHPUT (Mbps)", "Megabits per second"},
	{types.PacketLoss, "PACKET LOSS (%)", "Percentage lost"},
	{types.Energy, "ENERGY CONSUMPTION (Joules)", "Joules per operation"},
}

// toDrawing converts a color to go-chart's drawing.Color at opacity alpha.
func toDrawing(c color.RGBA, alpha float64) drawing.Color {
	n := style.WithAlpha(c, alpha)
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// deviceBars is a go-chart series drawing one bar per device, in row order, without value labels.
type deviceBars struct {
	Name   string
	Values []float64
	Style  chart.Style
}

var _ chart.Series = deviceBars{}
var _ chart.ValuesProvider = deviceBars{}

func (d deviceBars) GetName() string                { return d.Name }
func (d deviceBars) GetStyle() chart.Style          { return d.Style }
func (d deviceBars) GetYAxis() chart.YAxisType      { return chart.YAxisPrimary }
func (d deviceBars) Len() int                       { return len(d.Values) }
func (d deviceBars) GetValues(i int) (x, y float64) { return float64(i), d.Values[i] }

// Validate implements chart.Series.
func (d deviceBars) Validate() error {
	if len(d.Values) == 0 {
		return errors.Errorf("%s: no device rows", d.Name)
	}
	return nil
}

// Render implements chart.Series.
func (d deviceBars) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	st := d.Style.InheritFrom(defaults)
	base := canvasBox.Bottom - yrange.Translate(0)
	for i, v := range d.Values {
		if math.IsNaN(v) {
			continue
		}
		left := canvasBox.Left + xrange.Translate(float64(i)-deviceBarWidth/2)
		right := canvasBox.Left + xrange.Translate(float64(i)+deviceBarWidth/2)
		top := canvasBox.Bottom - yrange.Translate(v)
		if top > base {
			top, base = base, top
		}
		chart.Draw.Box(r, chart.Box{Top: top, Left: left, Right: right, Bottom: base}, st)
	}
}

// deviceTicks labels one tick per device and adds unlabeled ticks half a slot outside the first
// and last device. go-chart takes the x range from the tick extremes when ticks are given, so
// these keep the outer bars whole and give a single device a non-empty range.
func deviceTicks(devices []string) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(devices)+2)
	ticks = append(ticks, chart.Tick{Value: -0.5})
	for i, d := range devices {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: d})
	}
	return append(ticks, chart.Tick{Value: float64(len(devices)) - 0.5})
}

// slicePanelChart builds one metric panel of a single-slice figure.
func slicePanelChart(devices []string, values []float64, title, ylabel string, col color.RGBA, dpi float64) chart.Chart {
	max := 0.0
	for _, v := range values {
		if !math.IsNaN(v) {
			max = math.Max(max, v)
		}
	}
	top := niceUpperBound(max)
	xTicks := deviceTicks(devices)
	w, h := panelPixels(dpi)
	return chart.Chart{
		Title:      title,
		Width:      w,
		Height:     h,
		DPI:        dpi,
		Background: chart.Style{Padding: chart.Box{
			Top:    pixels(0.45, dpi),
			Left:   pixels(0.25, dpi),
			Right:  pixels(0.25, dpi),
			Bottom: pixels(0.1, dpi),
		}},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(devices)) - 0.5},
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			// drawn left of the plot, like the comparison panels
			AxisType: chart.YAxisSecondary,
			Name:     ylabel,
			Range:    &chart.ContinuousRange{Min: 0, Max: top},
			Ticks:    valueTicks(0, top, 6),
			GridMajorStyle: chart.Style{
				StrokeColor:     drawing.Color{R: 0, G: 0, B: 0, A: 102},
				StrokeWidth:     1,
				StrokeDashArray: []float64{4, 4},
			},
		},
		Series: []chart.Series{deviceBars{
			Name:   title,
			Values: values,
			Style: chart.Style{
				FillColor:   toDrawing(col, style.PanelAlpha),
				StrokeColor: drawing.ColorBlack,
				StrokeWidth: 1,
			},
		}},
	}
}

// renderChartImage renders a go-chart chart and decodes it back into an image.
func renderChartImage(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrapf(err, "render %q", ch.Title)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %q", ch.Title)
	}
	return img, nil
}

// RenderSlicePanels draws the three per-device panels of one slice type (throughput, loss,
// energy, stacked top to bottom) under a title band carrying a faint slice watermark, and
// writes the figure as PNG to w. Devices keep their table order; bars carry no value labels.
func RenderSlicePanels(w io.Writer, slice types.SliceType, rows []types.MetricRow, col color.RGBA, opts Options) error {
	defer logging.TimeTrack(time.Now(), "render "+slice.String()+" panels")
	if len(rows) == 0 {
		return errors.Errorf("%s: no device rows", slice)
	}
	dpi := opts.dpi()
	devices := make([]string, len(rows))
	for i, r := range rows {
		devices[i] = r.Device
	}

	header, err := renderHeader(slice.String()+" SLICE PERFORMANCE METRICS", slice.String()+" SLICE", col, dpi)
	if err != nil {
		return err
	}
	parts := []image.Image{header}
	for _, sp := range slicePanelDefs {
		values := make([]float64, len(rows))
		for i, r := range rows {
			values[i] = r.Value(sp.metric)
		}
		img, err := renderChartImage(slicePanelChart(devices, values, sp.title, sp.ylabel, col, dpi))
		if err != nil {
			return err
		}
		parts = append(parts, img)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, stackVertical(parts...)); err != nil {
		return errors.Wrapf(err, "encode %s panels", slice)
	}
	_, err = buf.WriteTo(w)
	return errors.Wrapf(err, "write %s panels", slice)
}
