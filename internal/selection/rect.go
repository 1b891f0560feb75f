package selection

import (
	"fmt"
	"image"
)

// MinSelection is the size in pixels a selection must exceed on both axes
// before it is magnified. Anything smaller is treated as an accidental click.
const MinSelection = 5

// Rect is a rectangle in screen pixel coordinates. Unlike image.Rectangle it
// may be inverted while a drag is in progress: Right and Bottom follow the
// pointer and can end up left of or above the anchor corner.
type Rect struct {
	Left, Top, Right, Bottom int
}

// FromPoints returns the rect anchored at a with its far corner at b.
func FromPoints(a, b image.Point) Rect {
	return Rect{Left: a.X, Top: a.Y, Right: b.X, Bottom: b.Y}
}

// Normalize returns r with Left <= Right and Top <= Bottom. The horizontal and
// vertical pairs are swapped independently of each other.
func (r Rect) Normalize() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Width is the horizontal extent of the normalized rect.
func (r Rect) Width() int {
	n := r.Normalize()
	return n.Right - n.Left
}

// Height is the vertical extent of the normalized rect.
func (r Rect) Height() int {
	n := r.Normalize()
	return n.Bottom - n.Top
}

// Origin is the top-left corner of the normalized rect.
func (r Rect) Origin() image.Point {
	n := r.Normalize()
	return image.Pt(n.Left, n.Top)
}

// Bounds converts r to a canonical image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

// Accepted reports whether both sides of r exceed min pixels.
func (r Rect) Accepted(min int) bool {
	return r.Width() > min && r.Height() > min
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}
