// Copyright (c) 2026 Harry Huang
package maptracker

import (
	"errors"

	"github.com/MaaXYZ/MaaEnd/agent/map-bearing/pkg/maafocus"
	"github.com/MaaXYZ/maa-framework-go/v4"
	"github.com/bytedance/sonic"
)

// BearingRecognition reads the view bearing from the FOV cone on the
// mini-map of the screenshot passed by the pipeline.
//
// custom_recognition_param may override any detection parameter, e.g.
//
//	{
//	  "center_x": 108,
//	  "center_y": 111,
//	  "radius": 28,
//	  "threshold": 140,
//	  "min_arc": 60,
//	  "max_arc": 100
//	}
//
// On hit, Detail is a bearingResult JSON.
type BearingRecognition struct{}

// bearingResult is passed to later nodes through CustomRecognitionResult.Detail
type bearingResult struct {
	Bearing  float64 `json:"bearing"`
	Midpoint float64 `json:"midpoint"`
	Segment
}

// Run implements maa.CustomRecognitionRunner.
func (r *BearingRecognition) Run(ctx *maa.Context, arg *maa.CustomRecognitionArg) (*maa.CustomRecognitionResult, bool) {
	if arg.Img == nil {
		mtLog().Error().Msg("Pipeline screenshot is nil")
		return nil, false
	}

	// Mini-map constants assume a 16:9 capture at WORK_W x WORK_H
	if b := arg.Img.Bounds(); b.Dx()*WORK_H != b.Dy()*WORK_W {
		mtLog().Warn().
			Int("width", b.Dx()).
			Int("height", b.Dy()).
			Msg("Screenshot is not 16:9, mini-map center may be off")
	}

	cfg, err := MergeJSON(MinimapConfig(), arg.CustomRecognitionParam)
	if err != nil {
		mtLog().Error().
			Err(err).
			Str("raw_param", arg.CustomRecognitionParam).
			Msg("Failed to parse custom_recognition_param")
		return nil, false
	}

	det, err := DetectImage(arg.Img, cfg)
	if err != nil {
		if errors.Is(err, ErrArcNotFound) {
			mtLog().Debug().Err(err).Msg("Bearing miss")
		} else {
			mtLog().Error().Err(err).Msg("Bearing detection failed")
		}
		return nil, false
	}

	detail, err := encodeDetection(det)
	if err != nil {
		mtLog().Error().Err(err).Msg("Failed to marshal bearing result")
		return nil, false
	}

	if err := maafocus.Bearing(ctx, det.Bearing); err != nil {
		mtLog().Debug().Err(err).Msg("Failed to show bearing focus")
	}

	mtLog().Info().
		Str("recognition", arg.CustomRecognitionName).
		Float64("bearing", det.Bearing).
		Msg("Bearing recognized")

	return &maa.CustomRecognitionResult{
		Box:    ringBox(det),
		Detail: detail,
	}, true
}

func encodeDetection(det Detection) (string, error) {
	return sonic.MarshalString(bearingResult{
		Bearing:  det.Bearing,
		Midpoint: det.Midpoint,
		Segment:  det.Segment,
	})
}

// ringBox is the bounding box of the sampling ring as {x, y, w, h}.
func ringBox(det Detection) maa.Rect {
	return maa.Rect{
		det.Center.X - det.Radius, det.Center.Y - det.Radius,
		2 * det.Radius, 2 * det.Radius,
	}
}
