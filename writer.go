package burst

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// ErrEmptyPath is returned by WritePNG when no output path is given.
var ErrEmptyPath = errors.New("burst: empty output path")

// WritePNG encodes img as PNG and stores it at path, replacing any
// existing file.
//
// The image is written to a temporary file in the same directory and
// renamed into place, so path never holds a partial image. The directory
// must already exist.
func WritePNG(path string, img image.Image) (err error) {
	if path == "" {
		return ErrEmptyPath
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".burst-*.png.tmp")
	if err != nil {
		return fmt.Errorf("burst: write %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = png.Encode(w, img); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("burst: encode %s: %w", path, err)
	}
	if err = w.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("burst: write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("burst: write %s: %w", path, err)
	}

	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("burst: write %s: %w", path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("burst: write %s: %w", path, err)
	}

	return nil
}
