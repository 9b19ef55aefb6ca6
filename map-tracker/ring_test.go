// Copyright (c) 2026 Harry Huang
package maptracker

import (
	"image"
	"image/color"
	"testing"
)

func TestSampleRing_ReadsTruncatedPixels(t *testing.T) {
	plane := image.NewGray(image.Rect(0, 0, 101, 101))
	center := image.Pt(50, 50)
	plane.SetGray(80, 50, color.Gray{Y: 200}) // 0 deg, +x
	plane.SetGray(50, 80, color.Gray{Y: 150}) // 90 deg, down
	plane.SetGray(20, 50, color.Gray{Y: 100}) // 180 deg, left

	ring := SampleRing(plane, center, 30)

	if ring[0] != 200 {
		t.Errorf("expected ring[0] = 200, got %d", ring[0])
	}
	if ring[90] != 150 {
		t.Errorf("expected ring[90] = 150, got %d", ring[90])
	}
	if ring[180] != 100 {
		t.Errorf("expected ring[180] = 100, got %d", ring[180])
	}
	if ring[45] != 0 {
		t.Errorf("expected ring[45] = 0, got %d", ring[45])
	}
}

func TestSampleRing_OutOfBoundsReadsZero(t *testing.T) {
	plane := image.NewGray(image.Rect(0, 0, 20, 20))
	for i := range plane.Pix {
		plane.Pix[i] = 255
	}

	// Every sample lands far outside the plane
	ring := SampleRing(plane, image.Pt(10, 10), 500)
	for d, v := range ring {
		if v != 0 {
			t.Fatalf("expected ring[%d] = 0 outside bounds, got %d", d, v)
		}
	}

	if seg, ok := FindSegment(&ring, 140, 60, 100); ok {
		t.Errorf("expected not found on an all-zero ring, got %+v", seg)
	}
}

func TestSampleRing_PartiallyOutside(t *testing.T) {
	plane := image.NewGray(image.Rect(0, 0, 40, 40))
	for i := range plane.Pix {
		plane.Pix[i] = 255
	}

	// Center on the left edge: only the right half of the ring is inside
	ring := SampleRing(plane, image.Pt(0, 20), 10)
	if ring[0] != 255 {
		t.Errorf("expected ring[0] inside the plane, got %d", ring[0])
	}
	if ring[180] != 0 {
		t.Errorf("expected ring[180] outside the plane, got %d", ring[180])
	}
}

func TestSampleImageRing_MatchesPlane(t *testing.T) {
	img := coneImage(161, 250, 40)
	img.Set(100, 3, color.NRGBA{R: 220, G: 10, B: 10, A: 90})

	for _, tc := range []struct {
		name   string
		img    image.Image
		center image.Point
	}{
		{"full", img, image.Pt(80, 80)},
		{"sub-image", img.SubImage(image.Rect(30, 20, 140, 150)), image.Pt(50, 60)},
		{"edge", img, image.Pt(2, 80)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			want := SampleRing(Brightness(tc.img), tc.center, FOV_RADIUS)
			got := SampleImageRing(tc.img, tc.center, FOV_RADIUS)
			if got != want {
				t.Errorf("ring sampled from image differs from ring sampled from plane")
			}
		})
	}
}

func TestRingPixel_TruncatesRingPoint(t *testing.T) {
	center := image.Pt(108, 111)
	for _, d := range []int{0, 30, 90, 135, 200, 359} {
		x, y := ringPoint(center, ROT_RING_RADIUS, float64(d))
		if got, want := ringPixel(center, ROT_RING_RADIUS, d), image.Pt(int(x), int(y)); got != want {
			t.Errorf("degree %d: expected pixel %v, got %v", d, want, got)
		}
	}
}
