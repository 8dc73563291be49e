package facedetect

import "github.com/facedetectapi/facedetect/utils"

// DefaultOverlapThreshold is the overlap ratio above which a detection is
// considered a duplicate of an already accepted one.
const DefaultOverlapThreshold = 0.3

// ValidateOverlap checks that the overlap threshold lies in (0, 1].
func ValidateOverlap(threshold float64) error {
	if !(threshold > 0 && threshold <= 1) {
		return NewError(ErrInvalidParams, "overlap must be between 0 and 1")
	}
	return nil
}

// RemoveOverlaps merges the rectangles produced by one or more detection passes.
// The candidates are visited in input order and a candidate is kept only if its
// overlap ratio with every rectangle kept so far does not exceed the threshold,
// so the first seen rectangle always wins.
//
// The overlap ratio is the intersection area divided by the smaller of the two
// areas, not the intersection over union. When the smaller area is zero the pair
// is never considered overlapping.
func RemoveOverlaps(rects []Rect, threshold float64) []Rect {
	keep := make([]Rect, 0, len(rects))

	for _, cand := range rects {
		overlapFound := false
		for _, kept := range keep {
			if overlapRatio(cand, kept) > threshold {
				overlapFound = true
				break
			}
		}
		if !overlapFound {
			keep = append(keep, cand)
		}
	}
	return keep
}

// overlapRatio returns the intersection of a and b divided by the smaller area.
func overlapRatio(a, b Rect) float64 {
	smaller := utils.Min(a.Area(), b.Area())
	if smaller <= 0 {
		return 0
	}
	return float64(a.Intersect(b)) / float64(smaller)
}
