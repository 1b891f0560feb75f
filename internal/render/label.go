package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const labelPad = 3

// LabelSize reports the box Label would fill for text.
func LabelSize(text string) image.Point {
	meas := &font.Drawer{Face: basicfont.Face7x13}
	w := meas.MeasureString(text).Ceil()
	return image.Pt(w+2*labelPad, basicfont.Face7x13.Height+2*labelPad)
}

// Label draws text on a filled background box whose top-left corner is at.
// The box is shifted back inside dst when it would overflow. It returns the
// rectangle actually filled.
func Label(dst *image.RGBA, at image.Point, text string, fg, bg color.Color) image.Rectangle {
	box := image.Rectangle{Min: at, Max: at.Add(LabelSize(text))}
	b := dst.Bounds()
	if box.Max.X > b.Max.X {
		box = box.Sub(image.Pt(box.Max.X-b.Max.X, 0))
	}
	if box.Max.Y > b.Max.Y {
		box = box.Sub(image.Pt(0, box.Max.Y-b.Max.Y))
	}
	if box.Min.X < b.Min.X {
		box = box.Add(image.Pt(b.Min.X-box.Min.X, 0))
	}
	if box.Min.Y < b.Min.Y {
		box = box.Add(image.Pt(0, b.Min.Y-box.Min.Y))
	}
	box = box.Intersect(b)

	draw.Draw(dst, box, image.NewUniform(bg), image.Point{}, draw.Over)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: basicfont.Face7x13,
		Dot: fixed.P(box.Min.X+labelPad, box.Min.Y+labelPad+basicfont.Face7x13.Ascent)}
	d.DrawString(text)
	return box
}
