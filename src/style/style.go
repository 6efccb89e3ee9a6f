// Package style holds the fixed visual encoding shared by every chart in a report.
package style

import (
	"image/color"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/types"
)

// Pattern is a bar fill pattern.
type Pattern int

const (
	PatternNone     Pattern = iota
	PatternDiagonal         // "//" hatch
)

func (p Pattern) String() string {
	if p == PatternDiagonal {
		return "//"
	}
	return ""
}

// Style is the (color, fill pattern, alpha) triple used for one bar group.
type Style struct {
	Color   color.RGBA
	Pattern Pattern
	Alpha   float64
}

// Fill returns Color with Alpha applied (non-premultiplied).
func (s Style) Fill() color.NRGBA {
	return WithAlpha(s.Color, s.Alpha)
}

// WithAlpha returns c at opacity a in [0,1].
func WithAlpha(c color.RGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}

var (
	Red   = color.RGBA{R: 255, A: 255}
	Blue  = color.RGBA{B: 255, A: 255}
	Green = color.RGBA{G: 128, A: 255}

	Firebrick   = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	RoyalBlue   = color.RGBA{R: 65, G: 105, B: 225, A: 255}
	ForestGreen = color.RGBA{R: 34, G: 139, B: 34, A: 255}

	HatchColor = color.RGBA{A: 255}
)

var sliceColors = map[types.SliceType]color.RGBA{
	types.URLLC: Red,
	types.EMBB:  Blue,
	types.MMTC:  Green,
}

type configEncoding struct {
	pattern Pattern
	alpha   float64
}

var configEncodings = map[types.Configuration]configEncoding{
	types.Static:     {pattern: PatternNone, alpha: 0.7},
	types.DynamicQoS: {pattern: PatternDiagonal, alpha: 1.0},
}

// For returns the comparative-report style of a (slice, configuration) group.
func For(s types.SliceType, c types.Configuration) Style {
	enc := configEncodings[c]
	return Style{Color: sliceColors[s], Pattern: enc.pattern, Alpha: enc.alpha}
}

// Label is the legend text of a group, e.g. "eMBB Dynamic QoS".
func Label(s types.SliceType, c types.Configuration) string {
	return s.String() + " " + c.String()
}

// LegendEntry is one legend row.
type LegendEntry struct {
	Label string
	Style Style
}

// Legend returns the shared legend entries in slice order, Static before Dynamic QoS.
func Legend() []LegendEntry {
	out := make([]LegendEntry, 0, len(types.SliceTypes)*len(types.Configurations))
	for _, s := range types.SliceTypes {
		for _, c := range types.Configurations {
			out = append(out, LegendEntry{Label: Label(s, c), Style: For(s, c)})
		}
	}
	return out
}

// PanelAlpha is the bar opacity of single-slice panels.
const PanelAlpha = 0.8

var panelColors = map[types.SliceType]color.RGBA{
	types.URLLC: Firebrick,
	types.EMBB:  RoyalBlue,
	types.MMTC:  ForestGreen,
}

// PanelColor is the display color of a slice's single-slice panel figure.
func PanelColor(s types.SliceType) color.RGBA { return panelColors[s] }
