//go:build windows

package capture

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/lxn/win"
)

// gdiBackend copies the screen DC with BitBlt and reads it back through
// GetDIBits as top-down 32 bit BGRA.
type gdiBackend struct {
	bounds image.Rectangle
}

func openGDI() (Backend, error) {
	w := int(win.GetSystemMetrics(win.SM_CXSCREEN))
	h := int(win.GetSystemMetrics(win.SM_CYSCREEN))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("primary display has empty bounds")
	}
	return &gdiBackend{bounds: image.Rect(0, 0, w, h)}, nil
}

func openX11() (Backend, error) { return nil, fmt.Errorf("x11: %w", ErrUnsupported) }

func autoKinds() []string { return []string{"gdi", "generic"} }

func (g *gdiBackend) Name() string { return "gdi" }

func (g *gdiBackend) Bounds() (image.Rectangle, error) { return g.bounds, nil }

func (g *gdiBackend) Close() error { return nil }

func (g *gdiBackend) Capture(r image.Rectangle) (*image.RGBA, error) {
	c, err := Clip(r, g.bounds)
	if err != nil {
		return nil, err
	}
	width, height := c.Dx(), c.Dy()

	hdc := win.GetDC(0)
	if hdc == 0 {
		return nil, errors.New("GetDC failed")
	}
	defer win.ReleaseDC(0, hdc)
	memDC := win.CreateCompatibleDC(hdc)
	if memDC == 0 {
		return nil, errors.New("CreateCompatibleDC failed")
	}
	defer win.DeleteDC(memDC)
	bitmap := win.CreateCompatibleBitmap(hdc, int32(width), int32(height))
	if bitmap == 0 {
		return nil, errors.New("CreateCompatibleBitmap failed")
	}
	defer win.DeleteObject(win.HGDIOBJ(bitmap))

	var header win.BITMAPINFOHEADER
	header.BiSize = uint32(unsafe.Sizeof(header))
	header.BiPlanes = 1
	header.BiBitCount = 32
	header.BiWidth = int32(width)
	header.BiHeight = int32(-height)
	header.BiCompression = win.BI_RGB

	// GetDIBits is unreliable with Go memory; use GlobalAlloc.
	size := uintptr(width * height * 4)
	hmem := win.GlobalAlloc(win.GMEM_MOVEABLE, size)
	if hmem == 0 {
		return nil, errors.New("GlobalAlloc failed")
	}
	defer win.GlobalFree(hmem)
	memptr := win.GlobalLock(hmem)
	if memptr == nil {
		return nil, errors.New("GlobalLock failed")
	}
	defer win.GlobalUnlock(hmem)

	old := win.SelectObject(memDC, win.HGDIOBJ(bitmap))
	if old == 0 {
		return nil, errors.New("SelectObject failed")
	}
	defer win.SelectObject(memDC, old)

	if !win.BitBlt(memDC, 0, 0, int32(width), int32(height), hdc, int32(c.Min.X), int32(c.Min.Y), win.SRCCOPY) {
		return nil, errors.New("BitBlt failed")
	}
	if win.GetDIBits(hdc, bitmap, 0, uint32(height), (*uint8)(memptr), (*win.BITMAPINFO)(unsafe.Pointer(&header)), win.DIB_RGB_COLORS) == 0 {
		return nil, errors.New("GetDIBits failed")
	}

	src := unsafe.Slice((*byte)(memptr), width*height*4)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(src); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = src[i+2], src[i+1], src[i], 0xFF
	}
	return img, nil
}
