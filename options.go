package xorfill

import (
	"time"

	"github.com/gogpu/xorfill/sink"
)

// FillerOption configures a Filler during creation.
//
// Example:
//
//	// Single goroutine, 8 pixels per group
//	f := xorfill.NewFiller()
//
//	// 16 lanes, rows split across 4 goroutines
//	f := xorfill.NewFiller(xorfill.WithLanes(xorfill.Lanes16), xorfill.WithWorkers(4))
type FillerOption func(*fillerOptions)

type fillerOptions struct {
	lanes   LaneWidth
	workers int
}

func defaultFillerOptions() fillerOptions {
	return fillerOptions{
		lanes:   DefaultLanes,
		workers: 1,
	}
}

// WithLanes sets the kernel lane width. Unsupported widths fall back to
// DefaultLanes.
func WithLanes(l LaneWidth) FillerOption {
	return func(o *fillerOptions) {
		if l.Valid() {
			o.lanes = l
		}
	}
}

// WithWorkers splits each frame into row bands filled by n goroutines.
// n <= 0 uses GOMAXPROCS; 1 fills on the calling goroutine.
func WithWorkers(n int) FillerOption {
	return func(o *fillerOptions) {
		o.workers = n
	}
}

// LoopOption configures a Loop during creation.
type LoopOption func(*loopOptions)

type loopOptions struct {
	interval  time.Duration
	events    sink.EventSource
	maxFrames uint64
	filler    *Filler
	startTick uint32
}

// DefaultInterval is the yield between frames, roughly 60 frames per second.
const DefaultInterval = 16 * time.Millisecond

func defaultLoopOptions() loopOptions {
	return loopOptions{
		interval: DefaultInterval,
	}
}

// WithInterval sets the pause between frames. Zero disables pacing,
// a negative value keeps the default.
func WithInterval(d time.Duration) LoopOption {
	return func(o *loopOptions) {
		if d >= 0 {
			o.interval = d
		}
	}
}

// WithEvents sets the source polled for quit requests before each frame.
func WithEvents(e sink.EventSource) LoopOption {
	return func(o *loopOptions) {
		o.events = e
	}
}

// WithMaxFrames stops the loop after n presented frames. 0 means unlimited.
func WithMaxFrames(n uint64) LoopOption {
	return func(o *loopOptions) {
		o.maxFrames = n
	}
}

// WithFiller sets the filler used for every frame. The loop does not take
// ownership; the caller closes it.
func WithFiller(f *Filler) LoopOption {
	return func(o *loopOptions) {
		o.filler = f
	}
}

// WithStartTick sets the tick of the first frame.
func WithStartTick(t uint32) LoopOption {
	return func(o *loopOptions) {
		o.startTick = t
	}
}
