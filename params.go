package facedetect

import "github.com/facedetectapi/facedetect/utils"

// Default detection parameters.
const (
	DefaultMinSize      = 30
	DefaultScaleFactor  = 1.1
	DefaultMinNeighbors = 5
)

// Accepted ranges of the detection parameters.
const (
	MinSizeLower      = 5
	MinSizeUpper      = 300
	ScaleFactorLower  = 1.05
	ScaleFactorUpper  = 2.0
	MinNeighborsLower = 1
	MinNeighborsUpper = 20
)

// Params holds the tunables passed to the multi-scale classifier.
type Params struct {
	// MinSize is the smallest face edge in pixels, smaller objects are ignored.
	MinSize int `json:"min_size"`
	// ScaleFactor is how much the image is reduced at each scale.
	ScaleFactor float64 `json:"scale_factor"`
	// MinNeighbors is how many neighbors a candidate rectangle needs to be retained.
	MinNeighbors int `json:"min_neighbors"`
}

// Pass is the scale factor and neighbor count used by a single classifier run.
type Pass struct {
	ScaleFactor  float64
	MinNeighbors int
}

// DefaultParams returns the parameters used when nothing else is requested.
func DefaultParams() Params {
	return Params{
		MinSize:      DefaultMinSize,
		ScaleFactor:  DefaultScaleFactor,
		MinNeighbors: DefaultMinNeighbors,
	}
}

// Validate checks the parameters against the accepted ranges.
func (p Params) Validate() error {
	if p.MinSize < MinSizeLower || p.MinSize > MinSizeUpper {
		return NewError(ErrInvalidParams, "min_size must be between %d and %d",
			MinSizeLower, MinSizeUpper)
	}
	// NaN fails every comparison, so it is rejected as well.
	if !(p.ScaleFactor >= ScaleFactorLower && p.ScaleFactor <= ScaleFactorUpper) {
		return NewError(ErrInvalidParams, "scale_factor must be between %.2f and %.1f",
			ScaleFactorLower, ScaleFactorUpper)
	}
	if p.MinNeighbors < MinNeighborsLower || p.MinNeighbors > MinNeighborsUpper {
		return NewError(ErrInvalidParams, "min_neighbors must be between %d and %d",
			MinNeighborsLower, MinNeighborsUpper)
	}
	return nil
}

// Passes returns the classifier runs derived from p. With multi enabled the
// requested pass is followed by a finer and a stricter one, which improves
// recall at the cost of duplicate detections.
func (p Params) Passes(multi bool) []Pass {
	passes := []Pass{{p.ScaleFactor, p.MinNeighbors}}
	if !multi {
		return passes
	}
	return append(passes,
		Pass{
			ScaleFactor:  utils.Max(ScaleFactorLower, p.ScaleFactor-0.05),
			MinNeighbors: utils.Max(3, p.MinNeighbors-1),
		},
		Pass{
			ScaleFactor:  utils.Min(ScaleFactorUpper, p.ScaleFactor+0.1),
			MinNeighbors: utils.Min(8, p.MinNeighbors+2),
		},
	)
}
