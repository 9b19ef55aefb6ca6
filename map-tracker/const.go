// Copyright (c) 2026 Harry Huang
package maptracker

const (
	WORK_W = 1280
	WORK_H = 720
)

// Rotation inference configuration
const (
	// Pointer center on the mini-map
	ROT_CENTER_X = 108
	ROT_CENTER_Y = 111
	// Ring between the pointer and the mini-map edge
	ROT_RING_RADIUS = 28
)

// FOV cone detection defaults
const (
	FOV_RADIUS    = 50  // Sampling ring radius in pixels, must clear the center arrow
	FOV_THRESHOLD = 140 // V channel cutoff for the bright cone
	FOV_MIN_ARC   = 60  // Narrower runs are road or icon noise
	FOV_MAX_ARC   = 100
)

// Diagnostic output
const (
	DEBUG_IMAGE_PATH  = "radar_debug.png"
	DEBUG_MID_EXTRA   = 20 // Midpoint ray overshoots the ring by this many pixels
	PROFILE_PLOT_PATH = "radar_profile.png"
)

// Derived from the sampling ring layout
const (
	RingSize       = 360
	scanBufferSize = 2 * RingSize
)
