package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	titleFontSize     = 14
	watermarkFontSize = 36
	watermarkAlpha    = 0.1
)

// renderHeader draws the figure title band: a large, nearly transparent watermark in the slice
// color with the title over it. The band background is transparent.
func renderHeader(title, watermark string, col color.RGBA, dpi float64) (image.Image, error) {
	w, h := headerPixels(dpi)
	r, err := chart.PNG(w, h)
	if err != nil {
		return nil, errors.Wrap(err, "header renderer")
	}
	r.SetDPI(dpi)
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, errors.Wrap(err, "header font")
	}
	drawCentered(r, watermark, chart.Style{Font: font, FontSize: watermarkFontSize, FontColor: toDrawing(col, watermarkAlpha)}, w, h*4/5)
	drawCentered(r, title, chart.Style{Font: font, FontSize: titleFontSize, FontColor: drawing.ColorBlack}, w, h*2/5)

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, errors.Wrap(err, "header save")
	}
	img, err := png.Decode(&buf)
	return img, errors.Wrap(err, "header decode")
}

// drawCentered writes text horizontally centered on a canvas of the given width, with its
// baseline at y.
func drawCentered(r chart.Renderer, text string, st chart.Style, width, y int) {
	r.SetFont(st.Font)
	r.SetFontSize(st.FontSize)
	r.SetFontColor(st.FontColor)
	tb := r.MeasureText(text)
	x := (width - tb.Width()) / 2
	if x < 0 {
		x = 0
	}
	r.Text(text, x, y)
}
