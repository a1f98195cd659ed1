// Package encode writes rasters to compressed image files on disk.
package encode

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
)

// Encoder persists a raster to a file.
type Encoder interface {
	// Encode compresses img at the given quality and writes it to path.
	Encode(img image.Image, quality int, path string) error
}

// JPEG encodes images with the standard baseline JPEG codec.
type JPEG struct{}

// Encode writes img to path as a JPEG at the given quality. Out-of-range
// quality values are clamped by the codec.
func (JPEG) Encode(img image.Image, quality int, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: quality}); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode jpeg: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}

	return nil
}
