package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	input := `
// comment
Name: Custom
Shade: #102030
marqueelight: #FF000080
Unknown: #FFFFFF
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "Custom" {
		t.Errorf("name = %q", th.Name)
	}
	if th.Shade != (color.RGBA{0x10, 0x20, 0x30, 0xFF}) {
		t.Errorf("shade = %+v", th.Shade)
	}
	if th.MarqueeLight != (color.RGBA{0xFF, 0, 0, 0x80}) {
		t.Errorf("marquee light = %+v", th.MarqueeLight)
	}
	if th.MarqueeDark != Default().MarqueeDark {
		t.Errorf("unset keys should keep defaults, got %+v", th.MarqueeDark)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Shade: 102030")); err == nil {
		t.Fatalf("expected error for color without #")
	}
	if _, err := Parse(strings.NewReader("Shade: #12345")); err == nil {
		t.Fatalf("expected error for bad hex length")
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{{1, 2, 3, 255}, {0xAB, 0xCD, 0xEF, 0x12}} {
		got, err := ParseColor(FormatColor(c))
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", FormatColor(c), err)
		}
		if got != c {
			t.Fatalf("round trip %+v -> %+v", c, got)
		}
	}
}

func TestLoaderBuiltinAndFile(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{ConfigDir: dir}

	if th, err := l.Load(""); err != nil || th.Name != "Default" {
		t.Fatalf("empty name: %v %v", th, err)
	}
	if th, err := l.Load("DARK"); err != nil || th.Name != "Dark" {
		t.Fatalf("builtin lookup: %v %v", th, err)
	}

	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: Mine\nShade: #112233\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := l.Load("mine")
	if err != nil {
		t.Fatalf("config dir lookup: %v", err)
	}
	if th.Name != "Mine" || th.Shade != (color.RGBA{0x11, 0x22, 0x33, 0xFF}) {
		t.Fatalf("unexpected theme %+v", th)
	}

	if _, err := l.Load("missing"); err == nil {
		t.Fatalf("expected missing theme error")
	}
}
