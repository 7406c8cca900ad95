package burst

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/gogpu/burst/internal/filter"
)

// Canvas geometry.
const (
	Width  = 768
	Height = 768
)

// Blob placement.
const (
	// BlobCount is the number of circles drawn per image.
	BlobCount = 100

	// MinRadius and MaxRadius bound the blob radius (both inclusive).
	MinRadius = 40
	MaxRadius = 100

	// Spread is the standard deviation of the centre offset as a fraction
	// of the canvas width (x) or height (y).
	Spread = 0.15
)

// BlurRadius is the Gaussian standard deviation, in pixels, of the
// softening pass.
const BlurRadius = 18

// OutputPath is where the command writes the image, relative to the
// working directory.
const OutputPath = "public/lovable-uploads/purple_burst.png"

var (
	// Background is the light beige the canvas starts with and the
	// blurred burst is flattened onto.
	Background = color.NRGBA{R: 249, G: 245, B: 240, A: 255}

	// BurstColor is the pastel purple of every blob, alpha 80/255.
	BurstColor = color.NRGBA{R: 177, G: 156, B: 255, A: 80}
)

// Generator renders burst images.
// A Generator owns its random source and is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. Without WithSeed or WithRand the random source
// is seeded from the runtime, so successive runs differ.
func New(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Generator{rng: rng}
}

// Render runs the pipeline and returns the flattened, fully opaque image.
func (g *Generator) Render() (*image.RGBA, error) {
	log := Logger()

	canvas := NewCanvas(Width, Height, Background)

	blobs := Scatter(g.rng, BlobCount, Width, Height)
	for i, b := range blobs {
		if err := DrawBlob(canvas, b, BurstColor); err != nil {
			return nil, fmt.Errorf("burst: blob %d: %w", i, err)
		}
	}
	log.Debug("burst: blobs drawn", "count", len(blobs))

	blurred := filter.NewBlurFilter(BlurRadius).Blur(canvas)
	log.Debug("burst: blur applied", "radius", BlurRadius)

	return Flatten(blurred, Background), nil
}

// Generate renders an image and writes it as PNG to path.
func (g *Generator) Generate(path string) error {
	img, err := g.Render()
	if err != nil {
		return err
	}

	if err := WritePNG(path, img); err != nil {
		return err
	}

	b := img.Bounds()
	Logger().Info("burst: image written", "path", path, "width", b.Dx(), "height", b.Dy())
	return nil
}
