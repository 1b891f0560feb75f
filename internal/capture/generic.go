package capture

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// genericBackend captures through kbinani/screenshot, which covers the
// major desktop platforms with a single API.
type genericBackend struct {
	bounds image.Rectangle
}

var (
	numActiveDisplays = screenshot.NumActiveDisplays
	displayBounds     = screenshot.GetDisplayBounds
	captureRect       = screenshot.CaptureRect
)

func openGeneric() (Backend, error) {
	if numActiveDisplays() < 1 {
		return nil, fmt.Errorf("no active displays")
	}
	b := displayBounds(0)
	if b.Empty() {
		return nil, fmt.Errorf("primary display has empty bounds")
	}
	return &genericBackend{bounds: b}, nil
}

func (g *genericBackend) Name() string { return "generic" }

func (g *genericBackend) Bounds() (image.Rectangle, error) { return g.bounds, nil }

func (g *genericBackend) Capture(r image.Rectangle) (*image.RGBA, error) {
	c, err := Clip(r, g.bounds)
	if err != nil {
		return nil, err
	}
	img, err := captureRect(c)
	if err != nil {
		return nil, fmt.Errorf("capture %v: %w", c, err)
	}
	if img.Rect.Min != (image.Point{}) {
		return cropToRect(img, img.Rect)
	}
	return img, nil
}

func (g *genericBackend) Close() error { return nil }
