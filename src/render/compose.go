package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// stackVertical places parts top to bottom on a white canvas as wide as the widest part.
// Narrower parts are scaled up to that width, keeping their aspect ratio.
func stackVertical(parts ...image.Image) *image.RGBA {
	width := 0
	for _, p := range parts {
		if p == nil {
			continue
		}
		if w := p.Bounds().Dx(); w > width {
			width = w
		}
	}
	rects := make([]image.Rectangle, len(parts))
	y := 0
	for i, p := range parts {
		if p == nil {
			continue
		}
		b := p.Bounds()
		h := b.Dy()
		if b.Dx() != width && b.Dx() > 0 {
			h = b.Dy() * width / b.Dx()
		}
		rects[i] = image.Rect(0, y, width, y+h)
		y += h
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, y))
	xdraw.Draw(dst, dst.Bounds(), image.White, image.Point{}, xdraw.Src)
	for i, p := range parts {
		if p == nil {
			continue
		}
		b := p.Bounds()
		if b.Dx() == width {
			xdraw.Draw(dst, rects[i], p, b.Min, xdraw.Over)
			continue
		}
		xdraw.CatmullRom.Scale(dst, rects[i], p, b, xdraw.Over, nil)
	}
	return dst
}
