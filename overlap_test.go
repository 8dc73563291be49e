package facedetect

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveOverlaps(t *testing.T) {
	tests := []struct {
		name  string
		rects []Rect
		want  []Rect
	}{
		{
			name:  "empty input",
			rects: nil,
			want:  []Rect{},
		},
		{
			name:  "disjoint rectangles keep their order",
			rects: []Rect{{100, 100, 10, 10}, {0, 0, 10, 10}, {50, 0, 20, 20}},
			want:  []Rect{{100, 100, 10, 10}, {0, 0, 10, 10}, {50, 0, 20, 20}},
		},
		{
			name:  "identical rectangles",
			rects: []Rect{{5, 5, 40, 40}, {5, 5, 40, 40}},
			want:  []Rect{{5, 5, 40, 40}},
		},
		{
			name:  "first seen wins",
			rects: []Rect{{0, 0, 10, 10}, {1, 1, 10, 10}},
			want:  []Rect{{0, 0, 10, 10}},
		},
		{
			name:  "far apart",
			rects: []Rect{{0, 0, 10, 10}, {100, 100, 10, 10}},
			want:  []Rect{{0, 0, 10, 10}, {100, 100, 10, 10}},
		},
		{
			name:  "small rectangle inside a big one",
			rects: []Rect{{0, 0, 100, 100}, {40, 40, 10, 10}},
			want:  []Rect{{0, 0, 100, 100}},
		},
		{
			name:  "overlap below threshold",
			rects: []Rect{{0, 0, 10, 10}, {8, 0, 10, 10}},
			want:  []Rect{{0, 0, 10, 10}, {8, 0, 10, 10}},
		},
		{
			name:  "zero area never overlaps",
			rects: []Rect{{0, 0, 10, 10}, {2, 2, 0, 5}},
			want:  []Rect{{0, 0, 10, 10}, {2, 2, 0, 5}},
		},
		{
			name:  "only compared against kept rectangles",
			rects: []Rect{{0, 0, 10, 10}, {5, 0, 10, 10}, {10, 0, 10, 10}},
			want:  []Rect{{0, 0, 10, 10}, {10, 0, 10, 10}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RemoveOverlaps(tc.rects, DefaultOverlapThreshold)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRemoveOverlaps_ShouldNotMutateInput(t *testing.T) {
	rects := []Rect{{0, 0, 10, 10}, {1, 1, 10, 10}, {50, 50, 10, 10}}
	orig := append([]Rect(nil), rects...)

	got := RemoveOverlaps(rects, DefaultOverlapThreshold)
	assert.Len(t, got, 2)
	assert.Equal(t, orig, rects)
}

func TestRemoveOverlaps_Threshold(t *testing.T) {
	// The two rectangles share 81% of their area.
	rects := []Rect{{0, 0, 10, 10}, {1, 1, 10, 10}}

	assert.Len(t, RemoveOverlaps(rects, 0.8), 1)
	assert.Len(t, RemoveOverlaps(rects, 0.81), 2)
	assert.Len(t, RemoveOverlaps(rects, 0.9), 2)
}

func TestOverlapRatio(t *testing.T) {
	assert.InDelta(t, 0.81, overlapRatio(Rect{0, 0, 10, 10}, Rect{1, 1, 10, 10}), 1e-9)
	assert.InDelta(t, 1.0, overlapRatio(Rect{0, 0, 100, 100}, Rect{10, 10, 20, 20}), 1e-9)
	assert.Zero(t, overlapRatio(Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}))
	assert.Zero(t, overlapRatio(Rect{0, 0, 0, 0}, Rect{0, 0, 10, 10}))
}

func TestRect(t *testing.T) {
	r := Rect{X: 3, Y: 4, Width: 10, Height: 20}

	assert.Equal(t, 200, r.Area())
	assert.Equal(t, r, RectFromBounds(r.Bounds()))
	assert.Equal(t, 50, r.Intersect(Rect{X: 8, Y: 14, Width: 10, Height: 10}))
	assert.Zero(t, r.Intersect(Rect{X: 13, Y: 4, Width: 5, Height: 5}))
}

func TestValidateOverlap(t *testing.T) {
	for _, v := range []float64{0.01, 0.3, 1} {
		assert.NoError(t, ValidateOverlap(v), "threshold %v", v)
	}
	for _, v := range []float64{0, -0.5, 1.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := ValidateOverlap(v)
		if assert.Error(t, err, "threshold %v", v) {
			assert.True(t, errors.Is(err, ErrInvalidParams))
			assert.Equal(t, "overlap must be between 0 and 1", err.Error())
		}
	}
}
