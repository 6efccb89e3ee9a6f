package render

import "gonum.org/v1/plot/vg"

// DefaultDPI is the raster resolution of every artifact.
const DefaultDPI = 300

// Options controls raster output.
type Options struct {
	DPI float64
}

func (o Options) dpi() float64 {
	if o.DPI <= 0 {
		return DefaultDPI
	}
	return o.DPI
}

// Physical sizes, in inches, of the figures.
const (
	comparisonWidthIn  = 10.0
	comparisonHeightIn = 14.0
	legendWidthIn      = 2.4

	panelWidthIn   = 10.0
	panelHeightIn  = 4.0
	headerHeightIn = 1.1
)

// comparisonSize returns the comparative figure size including the legend strip.
func comparisonSize() (vg.Length, vg.Length) {
	return vg.Length(comparisonWidthIn+legendWidthIn) * vg.Inch, vg.Length(comparisonHeightIn) * vg.Inch
}

// pixels converts inches to a pixel count at dpi, never below 1.
func pixels(in, dpi float64) int {
	p := int(in*dpi + 0.5)
	if p < 1 {
		p = 1
	}
	return p
}

// panelPixels returns one single-slice panel's size in pixels.
func panelPixels(dpi float64) (int, int) {
	return pixels(panelWidthIn, dpi), pixels(panelHeightIn, dpi)
}

// headerPixels returns the title/watermark band size in pixels.
func headerPixels(dpi float64) (int, int) {
	return pixels(panelWidthIn, dpi), pixels(headerHeightIn, dpi)
}
