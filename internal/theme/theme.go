package theme

import (
	"image/color"
	"sort"
	"strings"
)

// Theme defines the colors used by the selection overlay.
type Theme struct {
	Name string

	// Overlay
	Shade color.RGBA // Blended over the frozen desktop to dim it

	// Marquee
	MarqueeLight color.RGBA
	MarqueeDark  color.RGBA

	// Size label and hint text
	LabelText       color.RGBA
	LabelBackground color.RGBA
}

// Default returns the hardcoded default theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:            "Default",
		Shade:           color.RGBA{0, 0, 0, 255},
		MarqueeLight:    color.RGBA{255, 255, 255, 255},
		MarqueeDark:     color.RGBA{0, 0, 0, 255},
		LabelText:       color.RGBA{255, 255, 255, 255},
		LabelBackground: color.RGBA{0, 0, 0, 192},
	}
}

// Dark dims the desktop with a blue-grey shade.
func Dark() *Theme {
	return &Theme{
		Name:            "Dark",
		Shade:           color.RGBA{16, 20, 32, 255},
		MarqueeLight:    color.RGBA{120, 190, 255, 255},
		MarqueeDark:     color.RGBA{16, 20, 32, 255},
		LabelText:       color.RGBA{220, 230, 255, 255},
		LabelBackground: color.RGBA{16, 20, 32, 220},
	}
}

// HighContrast uses saturated colors for the marquee.
func HighContrast() *Theme {
	return &Theme{
		Name:            "HighContrast",
		Shade:           color.RGBA{0, 0, 0, 255},
		MarqueeLight:    color.RGBA{255, 255, 0, 255},
		MarqueeDark:     color.RGBA{255, 0, 255, 255},
		LabelText:       color.RGBA{0, 0, 0, 255},
		LabelBackground: color.RGBA{255, 255, 0, 255},
	}
}

var builtin = map[string]func() *Theme{
	"default":       Default,
	"dark":          Dark,
	"high_contrast": HighContrast,
}

// Builtin returns a fresh copy of the named built-in theme.
func Builtin(name string) (*Theme, bool) {
	fn, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// BuiltinNames lists the built-in theme names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
