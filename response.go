package facedetect

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Response is the JSON document printed for every detection request.
type Response struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	Data           Data            `json:"data"`
	ProcessingInfo *ProcessingInfo `json:"processing_info,omitempty"`
}

// Data holds the detection payload.
type Data struct {
	FaceCount  int        `json:"face_count"`
	Faces      []Rect     `json:"faces"`
	Parameters *Params    `json:"parameters,omitempty"`
	ImageInfo  *ImageInfo `json:"image_info,omitempty"`
}

// ProcessingInfo describes how the result was obtained.
type ProcessingInfo struct {
	Engine           string  `json:"engine"`
	CascadeFile      string  `json:"cascade_file"`
	Passes           int     `json:"passes"`
	RawDetections    int     `json:"raw_detections"`
	OverlapThreshold float64 `json:"overlap_threshold"`
	Elapsed          string  `json:"elapsed"`
}

// NewResponse builds a successful response for the detected faces.
func NewResponse(faces []Rect, params Params, info ImageInfo, proc *ProcessingInfo) *Response {
	if faces == nil {
		faces = []Rect{}
	}
	return &Response{
		Success: true,
		Message: "Face detection completed",
		Data: Data{
			FaceCount:  len(faces),
			Faces:      faces,
			Parameters: &params,
			ImageInfo:  &info,
		},
		ProcessingInfo: proc,
	}
}

// ErrorResponse wraps err into a failed response. Errors not produced by this
// package are reported as unexpected.
func ErrorResponse(err error) *Response {
	var (
		msg  string
		derr *Error
	)
	if errors.As(err, &derr) {
		msg = derr.Error()
	} else {
		msg = fmt.Sprintf("Unexpected error: %v", err)
	}
	return &Response{
		Success: false,
		Message: msg,
		Data: Data{
			FaceCount: 0,
			Faces:     []Rect{},
		},
	}
}

// Encode writes the response as a single JSON document.
func (r *Response) Encode(w io.Writer, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("could not encode the response: %w", err)
	}
	return nil
}
