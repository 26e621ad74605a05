// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// BytesPerPixel is the size of one BGRA8888 pixel.
const BytesPerPixel = 4

// Format is the only pixel format crossing the sink boundary.
var Format = gputypes.TextureFormatBGRA8Unorm

// Common errors returned by sinks.
var (
	// ErrClosed is returned when Present is called after Close.
	ErrClosed = errors.New("sink: closed")

	// ErrFormatMismatch is returned for frames that are not BGRA8888 top-down.
	ErrFormatMismatch = errors.New("sink: unsupported frame format")

	// ErrSizeMismatch is returned when a frame does not match the sink size
	// or its pixel slice is too short for its dimensions.
	ErrSizeMismatch = errors.New("sink: frame size mismatch")
)

// Orientation describes the vertical order of rows in Frame.Pix.
type Orientation uint8

const (
	// TopDown stores row 0 first; row 0 is the visually topmost row.
	TopDown Orientation = iota

	// BottomUp stores the visually lowest row first.
	BottomUp
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case TopDown:
		return "top-down"
	case BottomUp:
		return "bottom-up"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Frame is a borrowed view of one filled frame.
type Frame struct {
	// Pix holds Height rows of Stride bytes. Read-only, valid during Present.
	Pix []byte

	// Width and Height are the frame dimensions in pixels.
	Width  int
	Height int

	// Stride is the number of bytes between the starts of adjacent rows.
	Stride int

	// Format is the pixel format of Pix.
	Format gputypes.TextureFormat

	// Orientation is the row order of Pix.
	Orientation Orientation

	// Sequence is the 1-based number of the frame within its loop.
	Sequence uint64
}

// Validate checks that f is a well-formed BGRA8888 top-down frame.
func (f Frame) Validate() error {
	if f.Format != Format || f.Orientation != TopDown {
		return fmt.Errorf("%w: format=%v orientation=%v", ErrFormatMismatch, f.Format, f.Orientation)
	}
	if f.Width <= 0 || f.Height <= 0 || f.Stride < f.Width*BytesPerPixel {
		return fmt.Errorf("%w: %dx%d stride=%d", ErrSizeMismatch, f.Width, f.Height, f.Stride)
	}
	if need := f.Stride*(f.Height-1) + f.Width*BytesPerPixel; len(f.Pix) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrSizeMismatch, len(f.Pix), need)
	}
	return nil
}

// Row returns the bytes of row y, Width*4 long.
func (f Frame) Row(y int) []byte {
	off := y * f.Stride
	return f.Pix[off : off+f.Width*BytesPerPixel]
}

// Sink presents frames.
//
// Sinks are NOT thread-safe unless documented otherwise. The frame loop calls
// Present from a single goroutine.
type Sink interface {
	// Present copies or displays f. It must not retain f.Pix after returning.
	Present(f Frame) error

	// Close releases all resources associated with the sink.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// EventSource is an optional interface for sinks that receive host events.
type EventSource interface {
	// PollQuit drains all pending host events without blocking and
	// reports whether a quit signal was among them. Once PollQuit has
	// returned true it keeps returning true.
	PollQuit() bool
}

// Driver is an optional interface for sinks whose host owns the main loop.
type Driver interface {
	// Drive runs the host loop, calling step once per host frame, until
	// the host quits, ctx is cancelled or step returns an error.
	// A host quit returns nil; a step error is returned unchanged.
	Drive(ctx context.Context, step func() error) error
}

// CheckSize validates f and checks it is width x height.
func CheckSize(f Frame, width, height int) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if f.Width != width || f.Height != height {
		return fmt.Errorf("%w: frame %dx%d, sink %dx%d", ErrSizeMismatch, f.Width, f.Height, width, height)
	}
	return nil
}
