package facedetect

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// MarkerColor is the stroke color of the face rectangles drawn by Annotate.
var MarkerColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

// Annotate draws the detected face rectangles over a copy of src and saves it to dst.
// The output format is deduced from the dst file extension.
func Annotate(src image.Image, faces []Rect, dst string) error {
	b := src.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.DrawImage(src, -b.Min.X, -b.Min.Y)

	dc.SetLineWidth(3.0)
	dc.SetStrokeStyle(gg.NewSolidPattern(MarkerColor))
	for _, f := range faces {
		r := f.Bounds()
		dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
		dc.Stroke()
	}

	if err := imaging.Save(dc.Image(), dst); err != nil {
		return fmt.Errorf("unable to save the annotated image: %w", err)
	}
	return nil
}
