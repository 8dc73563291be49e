package facedetect

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/facedetectapi/facedetect/utils"
)

// Grayscale converts the image to a single luminance plane, one byte per pixel in row-major order.
// Translucent pixels are darkened by their alpha, as when composed over black.
func Grayscale(img image.Image) []uint8 {
	src := imaging.Clone(img)
	gray := make([]uint8, len(src.Pix)/4)

	for i := range gray {
		p := src.Pix[i*4 : i*4+4]
		lum := 0.299*float64(p[0]) + 0.587*float64(p[1]) + 0.114*float64(p[2])
		gray[i] = uint8(utils.Clamp(math.Round(lum*float64(p[3])/255), 0, 255))
	}
	return gray
}

// EqualizeHist spreads the intensities of a luminance plane over the full [0, 255] range
// using its cumulative histogram. A plane with a single intensity is returned unchanged.
func EqualizeHist(gray []uint8) []uint8 {
	var hist [256]int
	for _, v := range gray {
		hist[v]++
	}

	dst := make([]uint8, len(gray))
	total := len(gray)
	if total == 0 {
		return dst
	}

	first := 0
	for hist[first] == 0 {
		first++
	}
	if hist[first] == total {
		copy(dst, gray)
		return dst
	}

	var (
		lut   [256]uint8
		sum   int
		scale = 255.0 / float64(total-hist[first])
	)
	for i := first + 1; i < 256; i++ {
		sum += hist[i]
		lut[i] = uint8(utils.Clamp(math.Round(float64(sum)*scale), 0, 255))
	}

	for i, v := range gray {
		dst[i] = lut[v]
	}
	return dst
}
