// Copyright (c) 2026 Harry Huang
package maptracker

import "math"

// ArcMidpoint returns the middle of the arc from start to end in sampling
// convention (0 = image +x, clockwise). An end below start crosses 0 deg.
func ArcMidpoint(start, end int) float64 {
	adjustedEnd := end
	if end < start {
		adjustedEnd += RingSize
	}
	return normalizeDegrees(float64(start+adjustedEnd) / 2.0)
}

// Midpoint is ArcMidpoint for a found segment.
func (s Segment) Midpoint() float64 {
	return ArcMidpoint(s.Start, s.End)
}

// ToBearing converts a sampling-convention angle to a map bearing
// (0 = up, clockwise).
//
//	sampling: 0 = right, 90 = down, 180 = left, 270 = up
//	bearing:  0 = up,    90 = right, 180 = down, 270 = left
func ToBearing(angle float64) float64 {
	return normalizeDegrees(angle + 90.0)
}

// normalizeDegrees maps any angle into [0, 360).
func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360.0)
	if a < 0 {
		a += 360.0
	}
	return a
}
