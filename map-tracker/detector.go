// Copyright (c) 2026 Harry Huang
package maptracker

import (
	"errors"
	"fmt"
	"image"
)

// ErrArcNotFound means no bright run fits the configured arc bounds.
// It is a normal outcome; callers may retry with other parameters.
var ErrArcNotFound = errors.New("fov arc not found")

// Detection is the outcome of a successful bearing detection.
type Detection struct {
	Center   image.Point
	Radius   int
	Segment  Segment
	Midpoint float64 // Sampling convention, 0 = image +x
	Bearing  float64 // Map convention, 0 = up
}

// Detect runs the ring sampler, segment finder and angle conversion on a
// brightness plane. It returns ErrArcNotFound when no segment qualifies.
func Detect(plane *image.Gray, cfg Config) (Detection, error) {
	if err := cfg.Validate(); err != nil {
		return Detection{}, err
	}
	cfg.Center = cfg.centerIn(plane.Bounds())

	ring := SampleRing(plane, cfg.Center, cfg.Radius)
	return detectRing(&ring, cfg)
}

func detectRing(ring *Ring, cfg Config) (Detection, error) {
	seg, ok := FindSegment(ring, cfg.Threshold, cfg.MinArc, cfg.MaxArc)
	if !ok {
		return Detection{}, fmt.Errorf("%w: radius %d, threshold %d, arc [%d, %d]",
			ErrArcNotFound, cfg.Radius, cfg.Threshold, cfg.MinArc, cfg.MaxArc)
	}

	mid := seg.Midpoint()
	return Detection{
		Center:   cfg.Center,
		Radius:   cfg.Radius,
		Segment:  seg,
		Midpoint: mid,
		Bearing:  ToBearing(mid),
	}, nil
}

// DetectImage runs the detection on img, converting only the sampled ring
// pixels to brightness. Diagnostics requested by cfg are written afterwards;
// their failures are logged only.
func DetectImage(img image.Image, cfg Config) (Detection, error) {
	if err := cfg.Validate(); err != nil {
		return Detection{}, err
	}
	cfg.Center = cfg.centerIn(img.Bounds())

	ring := SampleImageRing(img, cfg.Center, cfg.Radius)
	det, err := detectRing(&ring, cfg)

	if cfg.ProfilePath != "" {
		var seg *Segment
		if err == nil {
			seg = &det.Segment
		}
		if perr := WriteProfile(cfg.ProfilePath, &ring, cfg.Threshold, seg); perr != nil {
			mtLog().Warn().Err(perr).Str("path", cfg.ProfilePath).Msg("Failed to write ring profile")
		}
	}

	if err != nil {
		mtLog().Info().
			Int("radius", cfg.Radius).
			Int("threshold", cfg.Threshold).
			Msg("No FOV arc detected")
		return det, err
	}

	mtLog().Debug().
		Int("start", det.Segment.Start).
		Int("end", det.Segment.End).
		Int("length", det.Segment.Length).
		Float64("midpoint", det.Midpoint).
		Float64("bearing", det.Bearing).
		Msg("FOV arc detected")

	if cfg.DebugPath != "" {
		if derr := WriteDebugImage(cfg.DebugPath, img, det); derr != nil {
			mtLog().Warn().Err(derr).Str("path", cfg.DebugPath).Msg("Failed to write debug image")
		}
	}
	return det, nil
}

// DetectFile loads the image at path and runs DetectImage.
func DetectFile(path string, cfg Config) (Detection, error) {
	img, err := LoadImage(path)
	if err != nil {
		return Detection{}, err
	}
	return DetectImage(img, cfg)
}
