// Copyright (c) 2026 Harry Huang
package maptracker

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrSourceUnavailable is returned when the source image cannot be opened
// or decoded. No sampling happens in that case.
var ErrSourceUnavailable = errors.New("source image unavailable")

// LoadImage opens and decodes a PNG, JPEG, BMP, TIFF or WebP file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrSourceUnavailable, path, err)
	}

	mtLog().Debug().
		Str("path", path).
		Str("format", format).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("Source image loaded")
	return img, nil
}
