//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// x11Backend keeps one X connection open for the life of the process so the
// magnifier can issue GetImage requests at its refresh rate.
type x11Backend struct {
	conn   *xgb.Conn
	setup  *xproto.SetupInfo
	root   xproto.Window
	screen image.Rectangle
	bounds image.Rectangle
}

func openX11() (Backend, error) {
	if os.Getenv("DISPLAY") == "" {
		return nil, fmt.Errorf("DISPLAY not set: %w", ErrUnsupported)
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect X server: %w", err)
	}
	setup := xproto.Setup(conn)
	if setup == nil {
		conn.Close()
		return nil, fmt.Errorf("xproto setup unavailable")
	}
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		conn.Close()
		return nil, fmt.Errorf("xproto screen unavailable")
	}
	x := &x11Backend{
		conn:   conn,
		setup:  setup,
		root:   screen.Root,
		screen: image.Rect(0, 0, int(screen.WidthInPixels), int(screen.HeightInPixels)),
	}
	x.bounds = x.screen
	if primary, err := primaryOutputRect(conn, screen.Root); err == nil {
		if p := primary.Intersect(x.screen); !p.Empty() {
			x.bounds = p
		}
	}
	return x, nil
}

func (x *x11Backend) Name() string { return "x11" }

func (x *x11Backend) Bounds() (image.Rectangle, error) { return x.bounds, nil }

func (x *x11Backend) Capture(r image.Rectangle) (*image.RGBA, error) {
	c, err := Clip(r, x.screen)
	if err != nil {
		return nil, err
	}
	reply, err := xproto.GetImage(x.conn, xproto.ImageFormatZPixmap, xproto.Drawable(x.root),
		int16(c.Min.X), int16(c.Min.Y), uint16(c.Dx()), uint16(c.Dy()), ^uint32(0)).Reply()
	if err != nil {
		return nil, fmt.Errorf("region pixels: %w", err)
	}
	return xImageToRGBA(x.setup, reply, c.Dx(), c.Dy())
}

func (x *x11Backend) Close() error {
	x.conn.Close()
	return nil
}

// primaryOutputRect asks RandR for the primary output's CRTC. Without a
// primary output the first connected one is used.
func primaryOutputRect(conn *xgb.Conn, root xproto.Window) (image.Rectangle, error) {
	if err := randr.Init(conn); err != nil {
		return image.Rectangle{}, fmt.Errorf("init randr: %w", err)
	}
	res, err := randr.GetScreenResources(conn, root).Reply()
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("randr screen resources: %w", err)
	}
	primaryOutput := randr.Output(0)
	if primary, err := randr.GetOutputPrimary(conn, root).Reply(); err == nil {
		primaryOutput = primary.Output
	}
	var first image.Rectangle
	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(conn, output, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(conn, info.Crtc, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		rect := image.Rect(int(crtc.X), int(crtc.Y), int(crtc.X)+int(crtc.Width), int(crtc.Y)+int(crtc.Height))
		if output == primaryOutput {
			return rect, nil
		}
		if first.Empty() {
			first = rect
		}
	}
	if first.Empty() {
		return image.Rectangle{}, fmt.Errorf("no connected outputs")
	}
	return first, nil
}

func runningOnWayland() bool {
	sessionType := strings.ToLower(strings.TrimSpace(os.Getenv("XDG_SESSION_TYPE")))
	if sessionType == "wayland" {
		return true
	}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return false
}

// autoKinds orders backends for "auto". XWayland exposes a DISPLAY but its
// root window is black, so the portal wins on Wayland.
func autoKinds() []string {
	if runningOnWayland() {
		return []string{"portal", "generic"}
	}
	return []string{"x11", "generic"}
}

func openGDI() (Backend, error) { return nil, fmt.Errorf("gdi: %w", ErrUnsupported) }
