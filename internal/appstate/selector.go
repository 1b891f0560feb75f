package appstate

import (
	"fmt"
	"image"
	"image/draw"
	"log"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/shineyzoom/internal/render"
	"github.com/example/shineyzoom/internal/selection"
	"github.com/example/shineyzoom/internal/theme"
)

const (
	selectorHint   = "drag to zoom, Esc to cancel"
	marqueeDash    = 4
	marqueeWidth   = 1
	labelOffset    = 8
	selectorWindow = "ShineyZoom"
)

// selector is the full-screen overlay the user drags a rectangle on.
type selector struct {
	w      Window
	scr    Screen
	state  *selection.State
	theme  *theme.Theme
	origin image.Point
	size   image.Point
	// display bounds every reported point; X11 keeps reporting positions
	// outside the window while a button is held.
	display image.Rectangle
	// backdrop is the frozen desktop with the shade already applied.
	backdrop *image.RGBA
}

func newSelector(w Window, scr Screen, state *selection.State, th *theme.Theme, display image.Rectangle, desktop image.Image, alpha uint8) *selector {
	backdrop := image.NewRGBA(image.Rect(0, 0, display.Dx(), display.Dy()))
	render.Shade(backdrop, desktop, th.Shade, alpha)
	return &selector{
		w:        w,
		scr:      scr,
		state:    state,
		theme:    th,
		origin:   display.Min,
		size:     display.Size(),
		display:  display,
		backdrop: backdrop,
	}
}

// toScreen maps a window position to display coordinates, clamped to the
// display so a selection never reaches past its edges.
func (s *selector) toScreen(e mouse.Event) image.Point {
	p := image.Pt(int(e.X), int(e.Y)).Add(s.origin)
	p.X = min(max(p.X, s.display.Min.X), s.display.Max.X)
	p.Y = min(max(p.Y, s.display.Min.Y), s.display.Max.Y)
	return p
}

func (s *selector) Key(e key.Event) Status {
	if isEscape(e) {
		s.state.Cancel()
		return Stop
	}
	return Continue
}

func (s *selector) Mouse(e mouse.Event) Status {
	p := s.toScreen(e)
	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		s.state.Begin(p)
		s.w.Send(paint.Event{})
	case e.Direction == mouse.DirNone:
		if s.state.Drag(p) {
			s.w.Send(paint.Event{})
		}
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		if !s.state.Selecting() {
			return Continue
		}
		s.state.Drag(p)
		s.state.Finish()
		return Stop
	}
	return Continue
}

func (s *selector) Paint() {
	b, err := s.scr.NewBuffer(s.size)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	dst := b.RGBA()
	draw.Draw(dst, dst.Bounds(), s.backdrop, image.Point{}, draw.Src)

	if s.state.Selecting() {
		live := s.state.Rect()
		r := live.Bounds().Sub(s.origin)
		render.DashedRect(dst, r, marqueeDash, marqueeWidth, s.theme.MarqueeLight, s.theme.MarqueeDark)
		far := image.Pt(live.Right, live.Bottom).Sub(s.origin)
		text := fmt.Sprintf("%d×%d", live.Width(), live.Height())
		render.Label(dst, far.Add(image.Pt(labelOffset, labelOffset)), text, s.theme.LabelText, s.theme.LabelBackground)
	} else {
		sz := render.LabelSize(selectorHint)
		at := image.Pt((s.size.X-sz.X)/2, labelOffset*4)
		render.Label(dst, at, selectorHint, s.theme.LabelText, s.theme.LabelBackground)
	}

	s.w.Upload(image.Point{}, b, b.Bounds())
	s.w.Publish()
}

func (s *selector) Tick() {}

func (s *selector) Resize(e size.Event) {
	if e.WidthPx > 0 && e.HeightPx > 0 {
		s.size = image.Pt(e.WidthPx, e.HeightPx)
	}
}

// Close cancels an unfinished drag. A finished selection stays finished.
func (s *selector) Close() {
	s.state.Cancel()
}
