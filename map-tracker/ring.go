// Copyright (c) 2026 Harry Huang
package maptracker

import (
	"image"
	"math"
)

// Ring holds one brightness sample per integer degree.
// Index 0 is the image +x axis; indices grow clockwise on screen because
// image rows grow downward. Index RingSize-1 is adjacent to index 0.
type Ring [RingSize]uint8

// SampleRing reads the brightness plane around center at the given radius.
// Sample coordinates are truncated, not interpolated. Points outside the
// plane read as 0.
func SampleRing(plane *image.Gray, center image.Point, radius int) Ring {
	var ring Ring
	bounds := plane.Bounds()
	for d := range RingSize {
		p := ringPixel(center, radius, d)
		if !p.In(bounds) {
			continue
		}
		ring[d] = plane.GrayAt(p.X, p.Y).Y
	}
	return ring
}

// SampleImageRing reads the ring straight from img, converting only the
// sampled pixels. Coordinates are relative to the top-left corner of img,
// so the result equals SampleRing(Brightness(img), center, radius).
func SampleImageRing(img image.Image, center image.Point, radius int) Ring {
	var ring Ring
	bounds := img.Bounds()
	local := image.Rect(0, 0, bounds.Dx(), bounds.Dy())
	for d := range RingSize {
		p := ringPixel(center, radius, d)
		if !p.In(local) {
			continue
		}
		ring[d] = pixelValue(img.At(bounds.Min.X+p.X, bounds.Min.Y+p.Y))
	}
	return ring
}

// ringPixel is the pixel sampled for degree d: the ring point truncated
// toward zero.
func ringPixel(center image.Point, radius int, d int) image.Point {
	x, y := ringPoint(center, float64(radius), float64(d))
	return image.Pt(int(x), int(y))
}

// ringPoint returns where a ray at degree d and distance r from center ends.
// Shared by the sampler and the renderer so the drawn rays match the
// sampled ones.
func ringPoint(center image.Point, r float64, d float64) (float64, float64) {
	rad := d * math.Pi / 180.0
	return float64(center.X) + r*math.Cos(rad), float64(center.Y) + r*math.Sin(rad)
}
