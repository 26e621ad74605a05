package xorfill

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrInvalidDimensions is returned for non-positive frame dimensions.
	ErrInvalidDimensions = errors.New("xorfill: invalid dimensions")

	// ErrFrameTooLarge is returned when width*height*4 overflows or exceeds
	// MaxFrameBytes.
	ErrFrameTooLarge = errors.New("xorfill: frame too large")

	// ErrFrameLimit is returned by Loop.Step once the configured number of
	// frames has been presented. Run treats it as a normal stop.
	ErrFrameLimit = errors.New("xorfill: frame limit reached")
)

// AllocationError reports that a framebuffer could not be reserved.
// It is fatal: nothing can be drawn without the buffer.
type AllocationError struct {
	Width  int
	Height int

	// Bytes is the requested size, 0 if it overflowed.
	Bytes uint64

	Err error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("xorfill: cannot allocate %dx%d framebuffer (%d bytes): %v",
		e.Width, e.Height, e.Bytes, e.Err)
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}
