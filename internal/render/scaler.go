package render

import (
	"fmt"
	"image"
	"image/draw"
	"sort"
	"strings"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// Scaler resamples the whole of src into dr of dst.
type Scaler interface {
	Scale(dst *image.RGBA, dr image.Rectangle, src image.Image)
}

// DefaultScaler names the scaler used when none is configured.
const DefaultScaler = "catmullrom"

var scalers = map[string]Scaler{
	"catmullrom": kernelScaler{xdraw.CatmullRom},
	"bilinear":   kernelScaler{xdraw.ApproxBiLinear},
	"lanczos":    lanczosScaler{},
}

// LookupScaler returns the scaler registered under name. An empty name
// selects DefaultScaler.
func LookupScaler(name string) (Scaler, error) {
	if name == "" {
		name = DefaultScaler
	}
	s, ok := scalers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown scaler %q (have %s)", name, strings.Join(ScalerNames(), ", "))
	}
	return s, nil
}

// ScalerNames lists the registered scaler names.
func ScalerNames() []string {
	names := make([]string, 0, len(scalers))
	for n := range scalers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type kernelScaler struct {
	s xdraw.Scaler
}

func (k kernelScaler) Scale(dst *image.RGBA, dr image.Rectangle, src image.Image) {
	k.s.Scale(dst, dr, src, src.Bounds(), xdraw.Src, nil)
}

// lanczosScaler is slower than the x/image kernels but sharper on large
// zoom factors.
type lanczosScaler struct{}

func (lanczosScaler) Scale(dst *image.RGBA, dr image.Rectangle, src image.Image) {
	if dr.Empty() {
		return
	}
	out := resize.Resize(uint(dr.Dx()), uint(dr.Dy()), src, resize.Lanczos3)
	draw.Draw(dst, dr, out, out.Bounds().Min, draw.Src)
}
