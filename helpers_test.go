package burst

import (
	"image"
	"image/color"
	"sync"
	"testing"
)

// Test helper functions shared across package tests.

var (
	fixtureOnce sync.Once
	fixtureImg  *image.RGBA
	fixtureErr  error
)

// fixtureSeed seeds the shared rendered image.
const fixtureSeed = 1

// renderFixture renders one seeded image and shares it between tests,
// since a full render is the slowest thing in this package.
func renderFixture(t *testing.T) *image.RGBA {
	t.Helper()
	fixtureOnce.Do(func() {
		fixtureImg, fixtureErr = New(WithSeed(fixtureSeed)).Render()
	})
	if fixtureErr != nil {
		t.Fatalf("Render() = %v", fixtureErr)
	}
	return fixtureImg
}

// meanColor averages the pixels of img inside r.
func meanColor(img *image.RGBA, r image.Rectangle) (red, green, blue float64) {
	r = r.Intersect(img.Bounds())
	n := float64(r.Dx() * r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.RGBAAt(x, y)
			red += float64(c.R)
			green += float64(c.G)
			blue += float64(c.B)
		}
	}
	return red / n, green / n, blue / n
}

// colorApproxEqual compares the colour channels of two pixels.
func colorApproxEqual(a color.RGBA, b color.NRGBA, tolerance int) bool {
	return absi(int(a.R)-int(b.R)) <= tolerance &&
		absi(int(a.G)-int(b.G)) <= tolerance &&
		absi(int(a.B)-int(b.B)) <= tolerance
}

func absi(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// over is the expected straight-alpha source-over of c onto opaque bg.
func over(c, bg color.NRGBA) color.NRGBA {
	a := float64(c.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return color.NRGBA{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B), A: 255}
}
