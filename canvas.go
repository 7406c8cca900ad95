package burst

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// NewCanvas allocates a w×h raster with every pixel set to bg at full
// opacity.
func NewCanvas(w, h int, bg color.NRGBA) *image.RGBA {
	bg.A = 255
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}
