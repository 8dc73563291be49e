package facedetect

import (
	"image"

	"github.com/facedetectapi/facedetect/utils"
)

// Rect is a detected face region in image pixel coordinates, with the origin
// at the top-left corner.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RectFromBounds converts an image.Rectangle into a Rect.
func RectFromBounds(r image.Rectangle) Rect {
	return Rect{
		X:      r.Min.X,
		Y:      r.Min.Y,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
}

// Bounds returns the rectangle as an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Area returns the rectangle area.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Intersect returns the area shared by r and o, or 0 if they do not overlap.
func (r Rect) Intersect(o Rect) int {
	dx := utils.Min(r.X+r.Width, o.X+o.Width) - utils.Max(r.X, o.X)
	dy := utils.Min(r.Y+r.Height, o.Y+o.Height) - utils.Max(r.Y, o.Y)
	if dx <= 0 || dy <= 0 {
		return 0
	}
	return dx * dy
}
