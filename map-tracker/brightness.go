// Copyright (c) 2026 Harry Huang
package maptracker

import (
	"image"
	"image/color"
)

// Brightness extracts the HSV value channel, V = max(R, G, B), as an 8-bit
// plane. The result always starts at (0, 0) so ring coordinates are relative
// to the image's top-left corner.
func Brightness(img image.Image) *image.Gray {
	bounds := img.Bounds()
	plane := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			plane.SetGray(x, y, color.Gray{Y: pixelValue(img.At(bounds.Min.X+x, bounds.Min.Y+y))})
		}
	}
	return plane
}

// pixelValue returns V of a single pixel on its straight (non-premultiplied)
// color, so translucent pixels are not darkened by their alpha.
func pixelValue(c color.Color) uint8 {
	switch c := c.(type) {
	case color.Gray:
		return c.Y
	case color.NRGBA:
		return max(c.R, c.G, c.B)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return max(n.R, n.G, n.B)
}
