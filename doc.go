// Package burst renders the "purple burst" background asset.
//
// # Overview
//
// The image is a soft bloom of translucent purple circles scattered around
// the canvas centre, blurred and flattened onto a light beige background.
// Rendering is a single linear pipeline:
//
//  1. NewCanvas allocates an opaque raster filled with Background.
//  2. Scatter samples BlobCount blobs; DrawBlob blends each one in BurstColor.
//  3. filter.BlurFilter softens the raster with a Gaussian of BlurRadius.
//  4. Flatten composites the blurred raster over Background.
//  5. WritePNG encodes the RGB result to disk.
//
// # Quick Start
//
//	import "github.com/gogpu/burst"
//
//	if err := burst.New().Generate(burst.OutputPath); err != nil {
//	    log.Fatal(err)
//	}
//
// # Randomness
//
// Blob placement is unseeded by default, so every run produces different
// pixels with the same overall shape. Use WithSeed for reproducible output:
//
//	img, err := burst.New(burst.WithSeed(42)).Render()
//
// # Drawing
//
// Circles are rasterised with anti-aliasing by github.com/gogpu/gg and
// composited with golang.org/x/image/draw using source-over, so overlapping
// blobs build up denser colour towards the centre.
package burst
