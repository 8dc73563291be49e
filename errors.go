package facedetect

import (
	"errors"
	"fmt"
)

// Error kinds reported in a failed Response. Use errors.Is to classify an error
// returned by this package.
var (
	ErrMissingFile       = errors.New("file not found")
	ErrUnloadableCascade = errors.New("could not load Haar Cascade classifier")
	ErrUndecodableImage  = errors.New("could not read image")
	ErrInvalidParams     = errors.New("invalid detection parameters")
	ErrUnexpected        = errors.New("unexpected error")
)

// Error carries a human readable message together with its kind.
type Error struct {
	Kind error
	Msg  string
}

// NewError returns an Error of the given kind with a formatted message.
func NewError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }
