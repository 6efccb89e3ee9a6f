package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot/vg"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/dataset"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/style"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/types"
)

const testDPI = 30

func table(s types.SliceType, c types.Configuration, tps ...float64) dataset.Table {
	t := dataset.Table{}
	for _, tp := range tps {
		t.Rows = append(t.Rows, types.MetricRow{Device: "dev", ThroughputMbps: tp, PacketLossPct: tp / 100, EnergyJ: tp / 10})
	}
	t.Tag(s, c)
	return t
}

// fullDataset has every group populated except mMTC Dynamic QoS.
func fullDataset() *dataset.Unified {
	return dataset.Concat(
		table(types.URLLC, types.Static, 10, 20),
		table(types.EMBB, types.Static, 400, 500),
		table(types.MMTC, types.Static, 12),
		table(types.URLLC, types.DynamicQoS, 8, 9),
		table(types.EMBB, types.DynamicQoS, 350),
	)
}

func findBar(t *testing.T, bars []Bar, s types.SliceType, c types.Configuration) Bar {
	t.Helper()
	for _, b := range bars {
		if b.Group.Slice == s && b.Group.Config == c {
			return b
		}
	}
	t.Fatalf("no bar for %s %s", s, c)
	return Bar{}
}

func TestComparisonBarsMeanAndGeometry(t *testing.T) {
	bars := ComparisonBars(fullDataset(), types.Throughput)
	require.Len(t, bars, 6)

	st := findBar(t, bars, types.URLLC, types.Static)
	assert.Equal(t, 15.0, st.Height)
	assert.InDelta(t, -0.2, st.X, 1e-12)
	assert.Equal(t, 0.4, st.Width)

	dy := findBar(t, bars, types.URLLC, types.DynamicQoS)
	assert.Equal(t, 8.5, dy.Height)
	assert.InDelta(t, 0.2, dy.X, 1e-12)

	embb := findBar(t, bars, types.EMBB, types.DynamicQoS)
	assert.InDelta(t, 1.2, embb.X, 1e-12)
	mmtc := findBar(t, bars, types.MMTC, types.Static)
	assert.InDelta(t, 1.8, mmtc.X, 1e-12)

	// neighbouring slice groups never overlap
	for i := 1; i < len(bars); i++ {
		assert.LessOrEqual(t, bars[i-1].X+bars[i-1].Width/2, bars[i].X-bars[i].Width/2+1e-12)
	}
}

func TestComparisonBarsEmptyGroupRendersZero(t *testing.T) {
	bars := ComparisonBars(fullDataset(), types.Throughput)
	dy := findBar(t, bars, types.MMTC, types.DynamicQoS)
	assert.Equal(t, 0.0, dy.Height)
	assert.True(t, math.IsNaN(dy.Mean))
	assert.Equal(t, 0, dy.Count)

	st := findBar(t, bars, types.MMTC, types.Static)
	assert.Equal(t, 12.0, st.Height)
}

func TestComparisonBarsOrderIndependent(t *testing.T) {
	a := dataset.Concat(table(types.EMBB, types.Static, 1, 2, 3, 4.5))
	b := dataset.Concat(table(types.EMBB, types.Static, 4.5, 3, 1, 2))
	for _, m := range types.Metrics {
		ba, bb := ComparisonBars(a, m), ComparisonBars(b, m)
		for i := range ba {
			assert.InDelta(t, ba[i].Height, bb[i].Height, 1e-9)
		}
	}
}

func TestComparisonPanelsShareEncoding(t *testing.T) {
	panels := ComparisonPanels(fullDataset())
	require.Len(t, panels, 3)
	assert.Equal(t, []types.Metric{types.Throughput, types.PacketLoss, types.Energy},
		[]types.Metric{panels[0].Metric, panels[1].Metric, panels[2].Metric})
	assert.Equal(t, "Packet Loss Comparison", panels[1].Title)
	assert.Equal(t, "Joules", panels[2].YLabel)

	colors := map[types.SliceType]color.RGBA{}
	for _, p := range panels {
		for _, b := range p.Bars {
			if c, ok := colors[b.Group.Slice]; ok {
				assert.Equal(t, c, b.Style.Color, "%s color differs in %s", b.Group.Slice, p.Title)
			}
			colors[b.Group.Slice] = b.Style.Color
			if b.Group.Config == types.DynamicQoS {
				assert.Equal(t, style.PatternDiagonal, b.Style.Pattern)
				assert.Equal(t, 1.0, b.Style.Alpha)
			} else {
				assert.Equal(t, style.PatternNone, b.Style.Pattern)
				assert.Equal(t, 0.7, b.Style.Alpha)
			}
		}
	}
	assert.Len(t, colors, 3)
}

func TestSliceTicks(t *testing.T) {
	ticks := sliceTicks()
	require.Len(t, ticks, 3)
	for i, want := range []string{"URLLC", "eMBB", "mMTC"} {
		assert.Equal(t, float64(i), ticks[i].Value)
		assert.Equal(t, want, ticks[i].Label)
	}
}

func TestBarGroupDataRangeIncludesZero(t *testing.T) {
	g := &barGroup{bars: ComparisonBars(fullDataset(), types.Throughput)}
	xmin, xmax, ymin, ymax := g.DataRange()
	assert.InDelta(t, -0.4, xmin, 1e-12)
	assert.InDelta(t, 2.4, xmax, 1e-12)
	assert.Equal(t, 0.0, ymin)
	assert.Equal(t, 450.0, ymax)
}

func TestHatchSegments(t *testing.T) {
	r := vg.Rectangle{Min: vg.Point{X: 0, Y: 0}, Max: vg.Point{X: 10, Y: 10}}
	segs := hatchSegments(r, 5)
	require.Len(t, segs, 3)
	for _, s := range segs {
		assert.InDelta(t, float64(s[1].X-s[0].X), float64(s[1].Y-s[0].Y), 1e-9, "slope must be +1")
		for _, p := range s {
			assert.True(t, p.X >= 0 && p.X <= 10 && p.Y >= 0 && p.Y <= 10, "point %v outside rectangle", p)
		}
	}
	assert.Empty(t, hatchSegments(r, 0))
	assert.Empty(t, hatchSegments(vg.Rectangle{Min: vg.Point{X: 1, Y: 1}, Max: vg.Point{X: 1, Y: 5}}, 1))
}

func TestNiceUpperBoundAndTicks(t *testing.T) {
	assert.Equal(t, 1.0, niceUpperBound(0))
	assert.Equal(t, 1.0, niceUpperBound(math.NaN()))
	assert.InDelta(t, 0.06, niceUpperBound(0.05), 1e-12)
	assert.Equal(t, 500.0, niceUpperBound(450))

	ticks := valueTicks(0, 500, 6)
	require.Len(t, ticks, 6)
	assert.Equal(t, 0.0, ticks[0].Value)
	assert.Equal(t, "0", ticks[0].Label)
	assert.Equal(t, "100", ticks[1].Label)
	assert.InDelta(t, 500, ticks[len(ticks)-1].Value, 1e-9)

	ticks = valueTicks(0, 20, 6)
	require.Len(t, ticks, 5)
	assert.Equal(t, 5.0, ticks[1].Value)
	assert.Equal(t, 20.0, ticks[4].Value)

	ticks = valueTicks(0, 0.06, 6)
	assert.InDelta(t, 0.06, ticks[len(ticks)-1].Value, 1e-9)
	assert.Nil(t, valueTicks(0, 1, 1))
}

func TestTickLabel(t *testing.T) {
	assert.Equal(t, "450", tickLabel(450))
	assert.Equal(t, "12.5", tickLabel(12.5))
	assert.Equal(t, "0.25", tickLabel(0.25))
	assert.Equal(t, "0.010", tickLabel(0.01))
}

func TestStackVerticalScalesToWidest(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 100, 10))
	b := image.NewRGBA(image.Rect(0, 0, 50, 20))
	out := stackVertical(a, nil, b)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 10+40, out.Bounds().Dy())
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, out.RGBAAt(0, 0), "transparent parts show the white canvas")
}

func decodePNG(t *testing.T, b []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return img
}

func TestRenderComparisonWritesPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderComparison(&buf, fullDataset(), Options{DPI: testDPI}))
	img := decodePNG(t, buf.Bytes())
	assert.InDelta(t, (comparisonWidthIn+legendWidthIn)*testDPI, img.Bounds().Dx(), 1)
	assert.InDelta(t, comparisonHeightIn*testDPI, img.Bounds().Dy(), 1)
}

func TestRenderComparisonAllEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderComparison(&buf, dataset.Concat(), Options{DPI: testDPI}))
	assert.NotZero(t, buf.Len())
}

func TestRenderSlicePanelsWritesPNG(t *testing.T) {
	rows := table(types.URLLC, types.Static, 101.5, 96.2).Rows
	rows[0].Device, rows[1].Device = "Industrial Robot", "Autonomous Drone"
	var buf bytes.Buffer
	require.NoError(t, RenderSlicePanels(&buf, types.URLLC, rows, style.Firebrick, Options{DPI: 40}))
	img := decodePNG(t, buf.Bytes())
	pw, ph := panelPixels(40)
	_, hh := headerPixels(40)
	assert.Equal(t, pw, img.Bounds().Dx())
	assert.Equal(t, hh+3*ph, img.Bounds().Dy())
}

func TestRenderSlicePanelsNoRows(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSlicePanels(&buf, types.EMBB, nil, style.RoyalBlue, Options{DPI: 40})
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestSlicePanelChartHasNoValueLabels(t *testing.T) {
	ch := slicePanelChart([]string{"a", "b"}, []float64{1, 2}, "T", "Y", style.ForestGreen, 40)
	require.Len(t, ch.Series, 1)
	_, ok := ch.Series[0].(deviceBars)
	assert.True(t, ok, "only the bar series is drawn; no annotation series")
	assert.Empty(t, ch.Elements)
	require.Len(t, ch.XAxis.Ticks, 4)
	assert.Equal(t, chart.Tick{Value: -0.5}, ch.XAxis.Ticks[0])
	assert.Equal(t, "a", ch.XAxis.Ticks[1].Label)
	assert.Equal(t, "b", ch.XAxis.Ticks[2].Label)
	assert.Equal(t, chart.Tick{Value: 1.5}, ch.XAxis.Ticks[3])
	assert.Equal(t, chart.YAxisSecondary, ch.YAxis.AxisType, "value axis on the left")
	assert.Equal(t, uint8(204), ch.Series[0].GetStyle().FillColor.A)
}

func TestRenderSlicePanelsSingleDevice(t *testing.T) {
	rows := []types.MetricRow{{Device: "Smart Meter", ThroughputMbps: 0.25, PacketLossPct: 0.5, EnergyJ: 0.1}}
	var buf bytes.Buffer
	require.NoError(t, RenderSlicePanels(&buf, types.MMTC, rows, style.ForestGreen, Options{DPI: 40}))
	img := decodePNG(t, buf.Bytes())
	pw, _ := panelPixels(40)
	assert.Equal(t, pw, img.Bounds().Dx())
}

// isBarFill matches firebrick at panel alpha over white or over a grid line.
func isBarFill(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	r, g, b = r>>8, g>>8, b>>8
	return r > 150 && g < 110 && b < 110 && r-g > 60
}

// barRuns returns the [start, end] pixel spans of bar fill on row y.
func barRuns(img image.Image, y int) [][2]int {
	var runs [][2]int
	b := img.Bounds()
	start := -1
	for x := b.Min.X; x < b.Max.X; x++ {
		if isBarFill(img.At(x, y)) {
			if start < 0 {
				start = x
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, [2]int{start, x - 1})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, b.Max.X - 1})
	}
	return runs
}

func TestSlicePanelBarsStayInsideImage(t *testing.T) {
	const dpi = 60
	for _, devices := range [][]string{
		{"Smart Meter"},
		{"Industrial Robot", "Autonomous Drone", "AGV"},
	} {
		t.Run(devices[0], func(t *testing.T) {
			values := make([]float64, len(devices))
			for i := range values {
				values[i] = 10
			}
			img, err := renderChartImage(slicePanelChart(devices, values, "THROUGHPUT (Mbps)", "Megabits per second", style.Firebrick, dpi))
			require.NoError(t, err)
			b := img.Bounds()

			var rows [][][2]int
			for y := b.Min.Y; y < b.Max.Y; y++ {
				if r := barRuns(img, y); len(r) == len(devices) {
					rows = append(rows, r)
				}
			}
			require.NotEmpty(t, rows, "no pixel row crosses every bar")
			runs := rows[len(rows)/2]

			width := runs[0][1] - runs[0][0] + 1
			assert.Greater(t, width, b.Dx()/10)
			for _, r := range runs {
				assert.Greater(t, r[0], b.Min.X, "bar starts inside the image")
				assert.Less(t, r[1], b.Max.X-1, "bar ends inside the image")
				assert.InDelta(t, width, r[1]-r[0]+1, 2, "equal values give equal bar widths")
			}
		})
	}
}

func TestOptionsDefaultDPI(t *testing.T) {
	assert.Equal(t, float64(DefaultDPI), Options{}.dpi())
	assert.Equal(t, 72.0, Options{DPI: 72}.dpi())
}
