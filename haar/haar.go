// Package haar implements the OpenCV Haar cascade detection engine.
// Decoding, grayscale conversion, histogram equalization and the multi-scale
// scan are all delegated to OpenCV through gocv.
package haar

import (
	"errors"
	"image"
	"io"
	"log"
	"os"

	"github.com/facedetectapi/facedetect"
	"github.com/facedetectapi/facedetect/utils"
	"gocv.io/x/gocv"
)

// cascadeScaleImage is OpenCV's CASCADE_SCALE_IMAGE flag: scale the image
// rather than the detector.
const cascadeScaleImage = 2

// Engine is a loaded OpenCV cascade classifier.
type Engine struct {
	classifier gocv.CascadeClassifier
	cascade    string
}

var _ facedetect.Engine = (*Engine)(nil)

// frame is an equalized grayscale Mat ready to be scanned.
type frame struct {
	engine *Engine
	gray   gocv.Mat
	info   facedetect.ImageInfo
}

// Load tries every candidate cascade in order and keeps the first one that loads.
// Each attempt is traced on logger, which may be nil.
func Load(logger *log.Logger, candidates ...string) (*Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	found := false
	for _, path := range candidates {
		logger.Print(utils.Debugf("Trying cascade file: %s", path))
		if _, err := os.Stat(path); err != nil {
			logger.Print(utils.Debugf("Cascade file not found: %s", path))
			continue
		}
		found = true

		classifier := gocv.NewCascadeClassifier()
		if !classifier.Load(path) {
			logger.Print(utils.Debugf("Cascade file empty: %s", path))
			classifier.Close()
			continue
		}
		logger.Print(utils.Debugf("Successfully loaded cascade: %s", path))

		return &Engine{
			classifier: classifier,
			cascade:    path,
		}, nil
	}

	if !found {
		return nil, facedetect.NewError(facedetect.ErrMissingFile, "Could not load Haar Cascade classifier: no cascade file found")
	}
	return nil, facedetect.NewError(facedetect.ErrUnloadableCascade, "Could not load Haar Cascade classifier")
}

// Name implements facedetect.Engine.
func (e *Engine) Name() string { return "haar" }

// Cascade implements facedetect.Engine.
func (e *Engine) Cascade() string { return e.cascade }

// Open implements facedetect.Engine. The image is decoded by OpenCV, so any
// format supported by the linked OpenCV build is accepted.
func (e *Engine) Open(path string) (facedetect.Frame, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, facedetect.NewError(facedetect.ErrMissingFile, "Image not found: %s", path)
		}
		return nil, facedetect.NewError(facedetect.ErrUndecodableImage, "Could not read image: %s", path)
	}

	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		img.Close()
		return nil, facedetect.NewError(facedetect.ErrUndecodableImage, "Could not read image: %s", path)
	}
	defer img.Close()

	gray := gocv.NewMat()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	// Apply histogram equalization for better contrast.
	gocv.EqualizeHist(gray, &gray)

	return &frame{
		engine: e,
		gray:   gray,
		info: facedetect.ImageInfo{
			Width:    img.Cols(),
			Height:   img.Rows(),
			Channels: img.Channels(),
		},
	}, nil
}

// Close releases the native classifier.
func (e *Engine) Close() error {
	return e.classifier.Close()
}

func (f *frame) Info() facedetect.ImageInfo { return f.info }

func (f *frame) Scan(minSize int, pass facedetect.Pass) []facedetect.Rect {
	found := f.engine.classifier.DetectMultiScaleWithParams(
		f.gray,
		pass.ScaleFactor,
		pass.MinNeighbors,
		cascadeScaleImage,
		image.Point{X: minSize, Y: minSize},
		image.Point{},
	)

	rects := make([]facedetect.Rect, 0, len(found))
	for _, r := range found {
		rects = append(rects, facedetect.RectFromBounds(r))
	}
	return rects
}

func (f *frame) Close() error {
	return f.gray.Close()
}

// Versions returns the gocv and the linked OpenCV versions.
func Versions() (gocvVersion, opencvVersion string) {
	return gocv.Version(), gocv.OpenCVVersion()
}
