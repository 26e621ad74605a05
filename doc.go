// Package xorfill generates a procedural XOR pixel pattern in realtime.
//
// # Overview
//
// xorfill owns a fixed-size BGRA8888 framebuffer and refills every pixel of it
// once per frame from its coordinates and a frame tick:
//
//	v     = (x XOR y XOR tick) & 0xFF
//	color = B=v, G=v, R=v, A=0xFF
//
// The fill is lane-parallel: each row is processed in fixed-width groups of 8
// or 16 pixels (see internal/wide) that the Go compiler can map onto SIMD
// registers, and any pixels left at the end of a row go through the scalar
// reference kernel. Every lane width produces exactly the scalar result.
//
// # Quick Start
//
//	fb, err := xorfill.NewFrameBuffer(960, 540)
//	if err != nil {
//	    log.Fatal(err) // *xorfill.AllocationError
//	}
//
//	s, _ := sink.NewByName("discard", sink.Options{Width: 960, Height: 540})
//	loop := xorfill.NewLoop(fb, s, xorfill.WithInterval(16*time.Millisecond))
//	_ = loop.Run(ctx)
//
// # Architecture
//
// The library is organized into:
//   - Public API: FrameBuffer, BGRA, Fill, FillScalar, FillLanes, Filler, Loop
//   - Internal: wide (lane types), parallel (row bands and worker pool)
//   - Sinks: sink (boundary, registry) and sink/* backends
//
// # Coordinate System
//
// Row 0 is the topmost row, x increases right and y increases down. Frames
// cross the sink boundary top-down.
//
// # Memory Layout
//
// Pixels are stored as []uint32 whose bytes in memory are B, G, R, A, the
// layout of BGRA8Unorm textures, ARGB8888 SDL textures and 32-bit DIBs on
// little-endian hosts.
package xorfill

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"
)
