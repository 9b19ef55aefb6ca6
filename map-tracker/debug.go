// Copyright (c) 2026 Harry Huang
package maptracker

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	debugRingColor  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	debugEdgeColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	debugMidColor   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	debugLabelColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// RenderDebug draws the sampling ring, both edges of the detected arc and the
// midpoint ray over a copy of img. The source image is left untouched.
func RenderDebug(img image.Image, det Detection) (*image.RGBA, error) {
	dc := gg.NewContextForImage(img)
	defer dc.Close()

	cx, cy := float64(det.Center.X), float64(det.Center.Y)
	r := float64(det.Radius)

	dc.SetColor(debugRingColor)
	dc.SetLineWidth(1)
	dc.DrawCircle(cx, cy, r)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("failed to draw sampling ring: %w", err)
	}

	dc.SetColor(debugEdgeColor)
	dc.SetLineWidth(2)
	for _, deg := range []int{det.Segment.Start, det.Segment.End} {
		ex, ey := ringPoint(det.Center, r, float64(deg))
		dc.DrawLine(cx, cy, ex, ey)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("failed to draw arc edge at %d deg: %w", deg, err)
		}
	}

	dc.SetColor(debugMidColor)
	mx, my := ringPoint(det.Center, r+DEBUG_MID_EXTRA, det.Midpoint)
	dc.DrawLine(cx, cy, mx, my)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("failed to draw midpoint ray: %w", err)
	}

	rendered := dc.Image()
	out := image.NewRGBA(image.Rect(0, 0, rendered.Bounds().Dx(), rendered.Bounds().Dy()))
	draw.Draw(out, out.Bounds(), rendered, rendered.Bounds().Min, draw.Src)

	label := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(debugLabelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 14),
	}
	label.DrawString(fmt.Sprintf("bearing %.1f", det.Bearing))

	return out, nil
}

// WriteDebugImage renders the annotated image and writes it as PNG to path.
func WriteDebugImage(path string, img image.Image, det Detection) error {
	out, err := RenderDebug(img, det)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create debug image: %w", err)
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode debug image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close debug image: %w", err)
	}

	mtLog().Debug().Str("path", path).Msg("Debug image written")
	return nil
}
