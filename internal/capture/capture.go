package capture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log"
	"strings"
)

// Backend is a source of screen pixels. Rectangles are in screen
// coordinates.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string
	// Bounds reports the primary display rectangle.
	Bounds() (image.Rectangle, error)
	// Capture returns the pixels inside r, clipped to the display. The
	// result has a zero origin.
	Capture(r image.Rectangle) (*image.RGBA, error)
	Close() error
}

var (
	// ErrUnsupported is returned when a backend cannot run on this platform.
	ErrUnsupported = errors.New("capture backend not supported on this platform")
	// ErrEmptyRegion is returned when a requested region does not overlap
	// the display.
	ErrEmptyRegion = errors.New("capture region is empty")
)

// Kinds lists the backend names accepted by Open.
var Kinds = []string{"auto", "x11", "portal", "gdi", "generic"}

var openers = map[string]func() (Backend, error){
	"x11":     openX11,
	"portal":  openPortal,
	"gdi":     openGDI,
	"generic": openGeneric,
}

// Open starts the named backend. "auto" (or empty) tries the platform's
// preferred backend and falls back to generic.
func Open(kind string) (Backend, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" || kind == "auto" {
		return openAuto(autoKinds())
	}
	open, ok := openers[kind]
	if !ok {
		return nil, fmt.Errorf("unknown capture backend %q", kind)
	}
	b, err := open()
	if err != nil {
		return nil, fmt.Errorf("open %s capture: %w", kind, err)
	}
	return b, nil
}

func openAuto(kinds []string) (Backend, error) {
	var errs []error
	for _, kind := range kinds {
		b, err := openers[kind]()
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, ErrUnsupported) {
			log.Printf("capture: %s unavailable: %v", kind, err)
		}
		errs = append(errs, fmt.Errorf("%s: %w", kind, err))
	}
	return nil, fmt.Errorf("no capture backend available: %w", errors.Join(errs...))
}

// Clip intersects r with the display bounds.
func Clip(r, bounds image.Rectangle) (image.Rectangle, error) {
	c := r.Canon().Intersect(bounds)
	if c.Empty() {
		return image.Rectangle{}, fmt.Errorf("%w: %v outside %v", ErrEmptyRegion, r, bounds)
	}
	return c, nil
}

// cropToRect copies rect out of src into a zero-origin image.
func cropToRect(src *image.RGBA, rect image.Rectangle) (*image.RGBA, error) {
	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("%w: requested region outside captured image", ErrEmptyRegion)
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, nil
}
