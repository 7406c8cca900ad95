package burst

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Blob describes one circle of the burst: integer centre and radius.
type Blob struct {
	X, Y   int
	Radius int
}

// Bounds returns the pixel rectangle the blob covers, matching an
// inclusive (X-R, Y-R)–(X+R, Y+R) bounding box.
func (b Blob) Bounds() image.Rectangle {
	return image.Rect(b.X-b.Radius, b.Y-b.Radius, b.X+b.Radius+1, b.Y+b.Radius+1)
}

// Scatter samples n blobs for a w×h canvas.
//
// Radii are uniform integers in [MinRadius, MaxRadius]. Centres are the
// canvas midpoint plus an independent normal offset per axis with standard
// deviation Spread*w (x) and Spread*h (y), truncated toward zero.
func Scatter(r *rand.Rand, n, w, h int) []Blob {
	blobs := make([]Blob, 0, n)
	sx := float64(w) * Spread
	sy := float64(h) * Spread

	for i := 0; i < n; i++ {
		radius := MinRadius + r.IntN(MaxRadius-MinRadius+1)
		dx := int(r.NormFloat64() * sx)
		dy := int(r.NormFloat64() * sy)

		blobs = append(blobs, Blob{
			X:      w/2 + dx,
			Y:      h/2 + dy,
			Radius: radius,
		})
	}

	return blobs
}

// DrawBlob blends a filled circle of colour c onto dst using source-over,
// so overlapping blobs accumulate. Parts outside dst are clipped.
func DrawBlob(dst *image.RGBA, b Blob, c color.NRGBA) error {
	if b.Radius <= 0 {
		return nil
	}

	r := b.Bounds()
	if !r.Overlaps(dst.Bounds()) {
		return nil
	}

	mask, err := circleCoverage(b.Radius)
	if err != nil {
		return err
	}

	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
	return nil
}

// circleCoverage rasterises an anti-aliased disc that fills a
// (2*radius+1)² box and returns its coverage as an alpha mask.
func circleCoverage(radius int) (*image.Alpha, error) {
	size := 2*radius + 1

	pm := gg.NewPixmap(size, size)
	dc := gg.NewContext(size, size, gg.WithPixmap(pm))
	defer func() { _ = dc.Close() }()
	dc.SetRasterizerMode(gg.RasterizerAnalytic)

	// Pixel centres sit at +0.5, so the disc spans the full edge pixels.
	center := float64(size) / 2
	dc.SetRGBA(1, 1, 1, 1)
	dc.DrawCircle(center, center, center)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("rasterize circle r=%d: %w", radius, err)
	}

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	data := pm.Data()
	for i := range mask.Pix {
		mask.Pix[i] = data[i*4+3]
	}

	return mask, nil
}
