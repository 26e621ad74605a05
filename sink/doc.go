// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sink defines the display boundary of xorfill.
//
// A Sink receives a filled frame and copies it somewhere visible: a window,
// a terminal, a child process or an image file. The generator only writes
// pixels; it never reads anything back from a sink.
//
// # Frames
//
// A Frame is a borrowed, read-only view of the generator's pixel memory:
//
//   - Pix holds Height rows of Stride bytes each
//   - Format is always gputypes.TextureFormatBGRA8Unorm (B, G, R, A bytes)
//   - Orientation is always TopDown (row 0 is the visually topmost row)
//
// Pix is only valid for the duration of Present. Sinks that draw later,
// from another goroutine or from a host callback, copy it first.
//
// # Driving the loop
//
// Most sinks are passive: the frame loop fills, presents and sleeps. Sinks
// whose host owns the main loop (ebiten, gogpu, bubbletea) also implement
// Driver and call the step function once per host frame. Sinks that see
// host events implement EventSource so the loop can stop on quit.
//
// # Registry
//
// Backends register themselves from init functions:
//
//	func init() {
//	    sink.Register("sdl", 50, func(opts sink.Options) (sink.Sink, error) {
//	        return New(opts)
//	    }, available)
//	}
//
// and are selected by name or by priority:
//
//	s, err := sink.NewByName("sdl", sink.Options{Width: 960, Height: 540})
//	// or the best available:
//	s, err := sink.NewBest(sink.Options{Width: 960, Height: 540})
package sink
