package facedetect

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/facedetectapi/facedetect/utils"
)

// Processor options
type Processor struct {
	Engine           Engine
	Params           Params
	OverlapThreshold float64
	// MultiPass runs the classifier three times with slightly perturbed
	// parameters and merges the results.
	MultiPass bool
	// Logger receives the debug trace. A nil Logger discards it.
	Logger *log.Logger
}

// NewProcessor returns a Processor using the default parameters and multi-pass detection.
func NewProcessor(engine Engine) *Processor {
	return &Processor{
		Engine:           engine,
		Params:           DefaultParams(),
		OverlapThreshold: DefaultOverlapThreshold,
		MultiPass:        true,
	}
}

// Detect runs the face detection over the image found at path.
// It never fails: every error is reported as a failed Response.
func (p *Processor) Detect(path string) (res *Response) {
	defer func() {
		if r := recover(); r != nil {
			res = ErrorResponse(NewError(ErrUnexpected, "Unexpected error: %v", r))
		}
	}()

	faces, info, proc, err := p.detect(path)
	if err != nil {
		return ErrorResponse(err)
	}
	return NewResponse(faces, p.Params, info, proc)
}

func (p *Processor) detect(path string) ([]Rect, ImageInfo, *ProcessingInfo, error) {
	logger := p.logger()

	if err := p.Params.Validate(); err != nil {
		return nil, ImageInfo{}, nil, err
	}
	if err := ValidateOverlap(p.OverlapThreshold); err != nil {
		return nil, ImageInfo{}, nil, err
	}
	if p.Engine == nil {
		return nil, ImageInfo{}, nil, NewError(ErrUnloadableCascade, "Could not load Haar Cascade classifier")
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ImageInfo{}, nil, NewError(ErrMissingFile, "Image not found: %s", path)
		}
		return nil, ImageInfo{}, nil, NewError(ErrUndecodableImage, "Could not read image: %s", path)
	}

	now := time.Now()

	frame, err := p.Engine.Open(path)
	if err != nil {
		return nil, ImageInfo{}, nil, err
	}
	defer frame.Close()

	passes := p.Params.Passes(p.MultiPass)
	var raw []Rect
	for _, pass := range passes {
		raw = append(raw, frame.Scan(p.Params.MinSize, pass)...)
	}
	faces := RemoveOverlaps(raw, p.OverlapThreshold)

	logger.Print(utils.Debugf("Total detections before filtering: %d", len(raw)))
	logger.Print(utils.Debugf("Unique faces after filtering: %d", len(faces)))

	proc := &ProcessingInfo{
		Engine:           p.Engine.Name(),
		CascadeFile:      filepath.Base(p.Engine.Cascade()),
		Passes:           len(passes),
		RawDetections:    len(raw),
		OverlapThreshold: p.OverlapThreshold,
		Elapsed:          utils.FormatTime(time.Since(now)),
	}
	return faces, frame.Info(), proc, nil
}

func (p *Processor) logger() *log.Logger {
	if p.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return p.Logger
}
