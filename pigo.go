package facedetect

import (
	"fmt"
	"os"

	pigo "github.com/esimov/pigo/core"
	"github.com/facedetectapi/facedetect/utils"
)

// PigoEngine is a pure Go detection backend built on the pigo pixel
// intensity comparison cascade. It reads pigo's binary cascade format
// (e.g. "facefinder"), not the OpenCV XML one.
type PigoEngine struct {
	classifier *pigo.Pigo
	cascade    string

	// ShiftFactor moves the detection window by this fraction of its size.
	ShiftFactor float64
	// IoUThreshold is used to cluster the raw pigo detections before
	// they are turned into rectangles.
	IoUThreshold float64
}

var _ Engine = (*PigoEngine)(nil)

// pigoFrame is an equalized grayscale image scanned by PigoEngine.
type pigoFrame struct {
	engine *PigoEngine
	pixels []uint8
	info   ImageInfo
}

// NewPigoEngine unpacks the pigo cascade file found at path.
func NewPigoEngine(path string) (*PigoEngine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewError(ErrMissingFile, "Cascade file not found: %s", path)
		}
		return nil, NewError(ErrUnloadableCascade, "Could not load pigo cascade %s: %v", path, err)
	}

	// Unpack the binary file. This will return the number of cascade trees,
	// the tree depth, the threshold and the prediction from tree's leaf nodes.
	classifier, err := unpackCascade(data)
	if err != nil {
		return nil, NewError(ErrUnloadableCascade, "Could not load pigo cascade %s: %v", path, err)
	}

	return &PigoEngine{
		classifier:   classifier,
		cascade:      path,
		ShiftFactor:  0.1,
		IoUThreshold: 0.2,
	}, nil
}

// unpackCascade turns a malformed cascade into an error instead of a panic.
func unpackCascade(data []byte) (p *pigo.Pigo, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed cascade: %v", r)
		}
	}()
	return pigo.NewPigo().Unpack(data)
}

// Name implements Engine.
func (e *PigoEngine) Name() string { return "pigo" }

// Cascade implements Engine.
func (e *PigoEngine) Cascade() string { return e.cascade }

// Open implements Engine.
func (e *PigoEngine) Open(path string) (Frame, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return &pigoFrame{
		engine: e,
		pixels: EqualizeHist(Grayscale(img)),
		info:   InfoOf(img),
	}, nil
}

// Close implements Engine.
func (e *PigoEngine) Close() error { return nil }

func (f *pigoFrame) Info() ImageInfo { return f.info }

// Scan runs the pigo cascade over the frame. pigo has no neighbor voting, so the
// clustered detection score, which grows with the number of merged windows,
// has to reach MinNeighbors instead.
func (f *pigoFrame) Scan(minSize int, pass Pass) []Rect {
	// pigo grows the window by ScaleFactor until it exceeds the image.
	if !(pass.ScaleFactor > 1) {
		return nil
	}
	cols, rows := f.info.Width, f.info.Height

	cParams := pigo.CascadeParams{
		MinSize:     minSize,
		MaxSize:     utils.Min(cols, rows),
		ShiftFactor: f.engine.ShiftFactor,
		ScaleFactor: pass.ScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: f.pixels,
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	// Run the classifier over the obtained leaf nodes and return the detection results.
	// The result contains quadruplets representing the row, column, scale and detection score.
	dets := f.engine.classifier.RunCascade(cParams, 0)

	// Calculate the intersection over union (IoU) of two clusters.
	dets = f.engine.classifier.ClusterDetections(dets, f.engine.IoUThreshold)

	rects := make([]Rect, 0, len(dets))
	for _, d := range dets {
		if d.Q < float32(pass.MinNeighbors) {
			continue
		}
		rects = append(rects, Rect{
			X:      d.Col - d.Scale/2,
			Y:      d.Row - d.Scale/2,
			Width:  d.Scale,
			Height: d.Scale,
		})
	}
	return rects
}

func (f *pigoFrame) Close() error { return nil }
