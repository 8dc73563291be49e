package facedetect

// Engine is a loaded cascade classifier able to open images for scanning.
type Engine interface {
	// Name identifies the detection backend.
	Name() string
	// Cascade is the path of the cascade definition actually loaded.
	Cascade() string
	// Open decodes the image at path and prepares it for scanning.
	Open(path string) (Frame, error)
	Close() error
}

// Frame is a decoded image ready to be scanned by the engine that opened it.
type Frame interface {
	Info() ImageInfo
	// Scan runs one multi-scale classifier pass and returns the raw detections.
	Scan(minSize int, pass Pass) []Rect
	Close() error
}
