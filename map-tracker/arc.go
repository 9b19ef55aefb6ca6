// Copyright (c) 2026 Harry Huang
package maptracker

// Segment is a contiguous run of ring samples at or above the threshold.
// Start and End are degrees in [0, RingSize); End is the first dim degree
// after the run, so End < Start when the run crosses 0 deg.
type Segment struct {
	Start  int `json:"start"`
	End    int `json:"end"`
	Length int `json:"length"`
}

// FindSegment returns the longest run whose length lies within
// [minArc, maxArc]. Ties keep the run found first. The second result is
// false when no run qualifies.
//
// The ring is scanned twice in a row so a run crossing 0 deg is seen whole.
// Runs starting in the second copy repeat runs already seen in the first,
// so the scan ends as soon as it is outside a run past the first copy.
func FindSegment(ring *Ring, threshold, minArc, maxArc int) (Segment, bool) {
	var best Segment
	found := false

	bright := func(i int) bool {
		return int(ring[i%RingSize]) >= threshold
	}

	inRun := false
	startIdx := 0
	for i := range scanBufferSize {
		if !inRun {
			if i >= RingSize {
				break
			}
			if bright(i) {
				inRun = true
				startIdx = i
			}
			continue
		}
		if bright(i) {
			continue
		}

		inRun = false
		length := i - startIdx
		if length < minArc || length > maxArc {
			continue
		}
		if !found || length > best.Length {
			best = Segment{
				Start:  startIdx % RingSize,
				End:    i % RingSize,
				Length: length,
			}
			found = true
		}
	}
	// A run still open here spans more than a full revolution and is dropped

	return best, found
}
