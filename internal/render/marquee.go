package render

import (
	"image"
	"image/color"
)

// DashedRect outlines r with alternating dashes of c1 and c2. The interior
// is left untouched. Pixels outside dst are skipped.
func DashedRect(dst *image.RGBA, r image.Rectangle, dash, thickness int, c1, c2 color.Color) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	if dash < 1 {
		dash = 1
	}
	if thickness < 1 {
		thickness = 1
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	dashedLine(dst, x0, y0, x1, y0, dash, thickness, c1, c2)
	dashedLine(dst, x0, y1-thickness+1, x1, y1-thickness+1, dash, thickness, c1, c2)
	dashedLine(dst, x0, y0, x0, y1, dash, thickness, c1, c2)
	dashedLine(dst, x1-thickness+1, y0, x1-thickness+1, y1, dash, thickness, c1, c2)
}

// dashedLine draws an axis-aligned line from (x0,y0) to (x1,y1) inclusive.
// Diagonal lines are not supported.
func dashedLine(img *image.RGBA, x0, y0, x1, y1, dash, thickness int, c1, c2 color.Color) {
	horiz := y0 == y1
	length := x1 - x0
	if !horiz {
		length = y1 - y0
	}
	step := 1
	if length < 0 {
		length = -length
		step = -1
	}
	for i := 0; i <= length; i++ {
		col := c1
		if (i/dash)%2 == 1 {
			col = c2
		}
		for t := 0; t < thickness; t++ {
			x, y := x0+t, y0+i*step
			if horiz {
				x, y = x0+i*step, y0+t
			}
			if (image.Point{x, y}).In(img.Rect) {
				img.Set(x, y, col)
			}
		}
	}
}
