// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

// Discard is a headless sink that validates and counts frames.
// It keeps nothing, which makes it the sink of choice for benchmarks
// and for running the loop without a display.
type Discard struct {
	width  int
	height int
	frames uint64
	last   uint64
	closed bool
}

// NewDiscard creates a discard sink expecting width x height frames.
// Zero dimensions accept frames of any size.
func NewDiscard(width, height int) *Discard {
	return &Discard{width: width, height: height}
}

// Present validates f and counts it.
func (d *Discard) Present(f Frame) error {
	if d.closed {
		return ErrClosed
	}
	if d.width > 0 || d.height > 0 {
		if err := CheckSize(f, d.width, d.height); err != nil {
			return err
		}
	} else if err := f.Validate(); err != nil {
		return err
	}
	d.frames++
	d.last = f.Sequence
	return nil
}

// Frames returns the number of frames presented.
func (d *Discard) Frames() uint64 {
	return d.frames
}

// LastSequence returns the sequence number of the last presented frame.
func (d *Discard) LastSequence() uint64 {
	return d.last
}

// Close marks the sink closed.
func (d *Discard) Close() error {
	d.closed = true
	return nil
}
