package filter

import (
	"image"
	"image/color"
)

// Test helper functions shared across filter tests.

// createTestImage creates a w×h image filled with c.
func createTestImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// colorApproxEqual compares two colours channel by channel.
func colorApproxEqual(a, b color.RGBA, tolerance int) bool {
	return absi(int(a.R)-int(b.R)) <= tolerance &&
		absi(int(a.G)-int(b.G)) <= tolerance &&
		absi(int(a.B)-int(b.B)) <= tolerance &&
		absi(int(a.A)-int(b.A)) <= tolerance
}

func absi(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
)
