//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestPortalScreenshotOptions(t *testing.T) {
	prevToken := portalHandleToken
	portalHandleToken = func() string { return "test-token" }
	t.Cleanup(func() { portalHandleToken = prevToken })

	values := portalScreenshotOptions()
	if got := boolVariant(t, values, "interactive"); got {
		t.Fatalf("interactive = %v, want false", got)
	}
	if got := boolVariant(t, values, "modal"); got {
		t.Fatalf("modal = %v, want false", got)
	}
	if got := stringVariant(t, values, "handle_token"); got != "test-token" {
		t.Fatalf("handle_token = %q, want %q", got, "test-token")
	}
}

func TestPortalResponsePath(t *testing.T) {
	ok := map[string]dbus.Variant{"uri": dbus.MakeVariant("file:///tmp/Screenshot%20one.png")}
	path, err := portalResponsePath([]interface{}{uint32(0), ok})
	if err != nil {
		t.Fatalf("portalResponsePath: %v", err)
	}
	if path != "/tmp/Screenshot one.png" {
		t.Fatalf("path = %q", path)
	}

	for name, body := range map[string][]interface{}{
		"short":     {uint32(0)},
		"denied":    {uint32(1), ok},
		"no uri":    {uint32(0), map[string]dbus.Variant{}},
		"not file":  {uint32(0), map[string]dbus.Variant{"uri": dbus.MakeVariant("https://x/y.png")}},
		"bad shape": {uint32(0), "results"},
	} {
		if _, err := portalResponsePath(body); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestPortalBackendCrops(t *testing.T) {
	prev := portalScreenshotFn
	t.Cleanup(func() { portalScreenshotFn = prev })

	shot := image.NewRGBA(image.Rect(0, 0, 200, 100))
	shot.SetRGBA(150, 50, color.RGBA{9, 8, 7, 255})
	calls := 0
	portalScreenshotFn = func() (*image.RGBA, error) {
		calls++
		return shot, nil
	}

	b, err := openPortal()
	if err != nil {
		t.Fatalf("openPortal: %v", err)
	}
	if got, _ := b.Bounds(); got != shot.Bounds() {
		t.Fatalf("Bounds = %v", got)
	}
	img, err := b.Capture(image.Rect(150, 50, 250, 60))
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 50, 10) {
		t.Fatalf("crop bounds = %v", img.Bounds())
	}
	if img.RGBAAt(0, 0) != (color.RGBA{9, 8, 7, 255}) {
		t.Fatalf("crop pixel = %+v", img.RGBAAt(0, 0))
	}
	if calls != 2 {
		t.Fatalf("expected a fresh screenshot per capture, got %d calls", calls)
	}

	boom := errors.New("portal gone")
	portalScreenshotFn = func() (*image.RGBA, error) { return nil, boom }
	if _, err := b.Capture(image.Rect(0, 0, 10, 10)); !errors.Is(err, boom) {
		t.Fatalf("expected portal error, got %v", err)
	}
}

func TestLoadPNGRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.NRGBA{200, 100, 50, 255})
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := loadPNG(path)
	if err != nil {
		t.Fatalf("loadPNG: %v", err)
	}
	if img.RGBAAt(1, 1) != (color.RGBA{200, 100, 50, 255}) {
		t.Fatalf("pixel = %+v", img.RGBAAt(1, 1))
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected portal file to be removed, stat err = %v", err)
	}
}

func boolVariant(t *testing.T, values map[string]dbus.Variant, key string) bool {
	t.Helper()
	variant, ok := values[key]
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	v, ok := variant.Value().(bool)
	if !ok {
		t.Fatalf("key %q value is %T, want bool", key, variant.Value())
	}
	return v
}

func stringVariant(t *testing.T, values map[string]dbus.Variant, key string) string {
	t.Helper()
	variant, ok := values[key]
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	v, ok := variant.Value().(string)
	if !ok {
		t.Fatalf("key %q value is %T, want string", key, variant.Value())
	}
	return v
}
