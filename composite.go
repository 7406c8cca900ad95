package burst

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Flatten composites src over a solid bg and returns an opaque raster of
// the same size.
//
// Each output pixel is bg*(1-a) + rgb*a, where a is the pixel's own alpha.
// src is premultiplied, so this is exactly source-over onto bg.
func Flatten(src *image.RGBA, bg color.NRGBA) *image.RGBA {
	b := src.Bounds()
	dst := NewCanvas(b.Dx(), b.Dy(), bg)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}
