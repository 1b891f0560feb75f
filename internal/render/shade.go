package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Shade copies backdrop into dst and blends c over it at the given alpha.
// A nil backdrop leaves only the shade, drawn over black.
func Shade(dst *image.RGBA, backdrop image.Image, c color.RGBA, alpha uint8) {
	r := dst.Bounds()
	if backdrop != nil {
		draw.Draw(dst, r, backdrop, backdrop.Bounds().Min, draw.Src)
	} else {
		draw.Draw(dst, r, image.Black, image.Point{}, draw.Src)
	}
	overlay := color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
	draw.Draw(dst, r, image.NewUniform(overlay), image.Point{}, draw.Over)
}
