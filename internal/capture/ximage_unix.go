//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"fmt"
	"image"

	"github.com/jezek/xgb/xproto"
)

// xImageToRGBA converts a ZPixmap reply of a 24 or 32 bit TrueColor visual.
// Padding bytes are ignored and the result is always opaque.
func xImageToRGBA(setup *xproto.SetupInfo, reply *xproto.GetImageReply, width, height int) (*image.RGBA, error) {
	if setup == nil {
		return nil, fmt.Errorf("xproto setup unavailable")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyRegion, width, height)
	}
	if reply == nil || len(reply.Data) == 0 {
		return nil, fmt.Errorf("region pixels: empty image data")
	}

	bitsPerPixel := 0
	for _, format := range setup.PixmapFormats {
		if format.Depth == reply.Depth {
			bitsPerPixel = int(format.BitsPerPixel)
			break
		}
	}
	if bitsPerPixel != 24 && bitsPerPixel != 32 {
		return nil, fmt.Errorf("unsupported pixel format: depth %d, %d bpp", reply.Depth, bitsPerPixel)
	}
	bpp := bitsPerPixel / 8

	stride := len(reply.Data) / height
	if stride*height != len(reply.Data) || stride < width*bpp {
		return nil, fmt.Errorf("region pixels: unexpected stride")
	}

	// LSBFirst servers send B,G,R[,pad]; MSBFirst servers send [pad,]R,G,B.
	ri, gi, bi := 2, 1, 0
	if setup.ImageByteOrder == xproto.ImageOrderMSBFirst {
		ri, gi, bi = bpp-3, bpp-2, bpp-1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := reply.Data[y*stride : y*stride+width*bpp]
		pix := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			s := row[x*bpp : x*bpp+bpp]
			d := pix[x*4 : x*4+4]
			d[0], d[1], d[2], d[3] = s[ri], s[gi], s[bi], 0xFF
		}
	}
	return img, nil
}
