package facedetect

import (
	"errors"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/facedetectapi/facedetect/utils"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageInfo describes the decoded source image.
type ImageInfo struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	Channels int `json:"channels"`
}

// LoadImage confirms that the file at path exists and holds an image, then decodes it.
// EXIF orientation is applied, so the returned image is upright.
func LoadImage(path string) (image.Image, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewError(ErrMissingFile, "Image not found: %s", path)
		}
		return nil, NewError(ErrUndecodableImage, "Could not read image: %s", path)
	}

	ctype, err := utils.DetectContentType(path)
	if err != nil || !strings.Contains(ctype, "image") {
		return nil, NewError(ErrUndecodableImage, "Could not read image: %s", path)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, NewError(ErrUndecodableImage, "Could not read image: %s", path)
	}
	return img, nil
}

// InfoOf returns the dimensions and the number of color channels of img.
func InfoOf(img image.Image) ImageInfo {
	b := img.Bounds()
	return ImageInfo{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels(img),
	}
}

func channels(img image.Image) int {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.YCbCrModel, color.CMYKModel:
		return 3
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}
