package filter

import (
	"image"
	"sync"
)

// BlurFilter applies separable Gaussian blur to an image.
// The horizontal and vertical passes run independently, giving
// O(w*h*(rx+ry)) instead of O(w*h*rx*ry).
type BlurFilter struct {
	// RadiusX is the horizontal standard deviation in pixels.
	RadiusX float64

	// RadiusY is the vertical standard deviation in pixels.
	RadiusY float64
}

// NewBlurFilter creates a blur filter with equal radius in both directions.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{
		RadiusX: radius,
		RadiusY: radius,
	}
}

// NewBlurFilterXY creates a blur filter with different X and Y radii.
func NewBlurFilterXY(radiusX, radiusY float64) *BlurFilter {
	return &BlurFilter{
		RadiusX: radiusX,
		RadiusY: radiusY,
	}
}

// Blur returns a new image holding src blurred by f.
func (f *BlurFilter) Blur(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	f.Apply(src, dst)
	return dst
}

// Apply blurs src into dst over the intersection of their bounds.
// The operation uses two passes:
//  1. Horizontal: convolve each row of src into a float32 buffer
//  2. Vertical: convolve each column of the buffer into dst
//
// src and dst must not share pixels.
func (f *BlurFilter) Apply(src, dst *image.RGBA) {
	if src == nil || dst == nil {
		return
	}

	region := src.Bounds().Intersect(dst.Bounds())
	if region.Empty() {
		return
	}

	width := region.Dx()
	height := region.Dy()

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	if f.RadiusX > 0 {
		blurHorizontal(src, temp, region, CachedGaussianKernel(f.RadiusX))
	} else {
		copyToTemp(src, temp, region)
	}

	if f.RadiusY > 0 {
		blurVertical(temp, dst, region, CachedGaussianKernel(f.RadiusY))
	} else {
		copyFromTemp(temp, dst, region)
	}
}

// blurHorizontal convolves rows of src into temp.
func blurHorizontal(src *image.RGBA, temp []float32, region image.Rectangle, kernel []float32) {
	halfKernel := len(kernel) / 2
	width := region.Dx()
	minX, maxX := region.Min.X, region.Max.X-1

	for y := region.Min.Y; y < region.Max.Y; y++ {
		row := src.Pix[src.PixOffset(region.Min.X, y):]
		tempRow := temp[(y-region.Min.Y)*width*4:]

		for x := minX; x <= maxX; x++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				// Edge extension
				kx := clampInt(x+k-halfKernel, minX, maxX) - minX

				i := kx * 4
				r += float32(row[i+0]) * weight
				g += float32(row[i+1]) * weight
				b += float32(row[i+2]) * weight
				a += float32(row[i+3]) * weight
			}

			t := (x - minX) * 4
			tempRow[t+0] = r
			tempRow[t+1] = g
			tempRow[t+2] = b
			tempRow[t+3] = a
		}
	}
}

// blurVertical convolves columns of temp into dst.
func blurVertical(temp []float32, dst *image.RGBA, region image.Rectangle, kernel []float32) {
	halfKernel := len(kernel) / 2
	width := region.Dx()
	height := region.Dy()

	for y := 0; y < height; y++ {
		out := dst.Pix[dst.PixOffset(region.Min.X, region.Min.Y+y):]

		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				ky := clampInt(y+k-halfKernel, 0, height-1)

				t := (ky*width + x) * 4
				r += temp[t+0] * weight
				g += temp[t+1] * weight
				b += temp[t+2] * weight
				a += temp[t+3] * weight
			}

			storePremul(out[x*4:], r, g, b, a)
		}
	}
}

// copyToTemp copies the region of src into temp unchanged.
func copyToTemp(src *image.RGBA, temp []float32, region image.Rectangle) {
	width := region.Dx()

	for y := region.Min.Y; y < region.Max.Y; y++ {
		row := src.Pix[src.PixOffset(region.Min.X, y):]
		tempRow := temp[(y-region.Min.Y)*width*4:]
		for i := 0; i < width*4; i++ {
			tempRow[i] = float32(row[i])
		}
	}
}

// copyFromTemp writes temp into the region of dst.
func copyFromTemp(temp []float32, dst *image.RGBA, region image.Rectangle) {
	width := region.Dx()

	for y := 0; y < region.Dy(); y++ {
		out := dst.Pix[dst.PixOffset(region.Min.X, region.Min.Y+y):]
		tempRow := temp[y*width*4:]
		for x := 0; x < width; x++ {
			t := x * 4
			storePremul(out[t:], tempRow[t+0], tempRow[t+1], tempRow[t+2], tempRow[t+3])
		}
	}
}

// storePremul writes one pixel, keeping each colour channel at or below
// alpha as image.RGBA requires.
func storePremul(p []uint8, r, g, b, a float32) {
	a8 := clampUint8(a)
	p[0] = min(clampUint8(r), a8)
	p[1] = min(clampUint8(g), a8)
	p[2] = min(clampUint8(b), a8)
	p[3] = a8
}

// floatBuffer wraps a slice for sync.Pool.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 768*768*4)}
	},
}

// getTempBuffer returns a zeroed buffer of at least width*height*4 floats.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	buf := wrapper.data[:size]
	clear(buf)
	return buf
}

// putTempBuffer returns a buffer to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampInt clamps v to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and rounds to nearest.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
