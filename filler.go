package xorfill

import (
	"github.com/gogpu/xorfill/internal/parallel"
)

// Filler fills framebuffers with the pattern using a fixed lane width and,
// optionally, a pool of goroutines that each own a band of rows.
//
// A Filler must not be used by more than one goroutine at a time.
type Filler struct {
	lanes LaneWidth
	pool  *parallel.WorkerPool

	// Per-frame state read by the band closures.
	dst   []uint32
	width int
	tick  uint32

	bandHeight int
	bands      []parallel.Band
	work       []func()
}

// NewFiller creates a filler. Without options it fills on the calling
// goroutine with DefaultLanes.
func NewFiller(opts ...FillerOption) *Filler {
	o := defaultFillerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Filler{lanes: o.lanes}
	if o.workers != 1 {
		f.pool = parallel.NewWorkerPool(o.workers)
		if f.pool.Workers() == 1 {
			f.pool.Close()
			f.pool = nil
		}
	}
	Logger().Debug("xorfill: filler created", "lanes", int(f.lanes), "workers", f.Workers())
	return f
}

// Lanes returns the kernel lane width.
func (f *Filler) Lanes() LaneWidth {
	return f.lanes
}

// Workers returns the number of goroutines that fill a frame.
func (f *Filler) Workers() int {
	if f.pool == nil {
		return 1
	}
	return f.pool.Workers()
}

// Fill overwrites every pixel of fb with the pattern for tick.
func (f *Filler) Fill(fb *FrameBuffer, tick uint32) {
	f.FillPixels(fb.pix, fb.width, fb.height, tick)
}

// FillPixels is Fill on a raw width*height pixel slice.
// The result equals FillScalar for the same arguments.
func (f *Filler) FillPixels(dst []uint32, width, height int, tick uint32) {
	checkFill(dst, width, height)

	if f.pool == nil || height < 2*parallel.MinBandRows {
		fillRows(dst, width, 0, height, tick, f.lanes)
		return
	}

	f.dst, f.width, f.tick = dst, width, tick
	f.prepareBands(height)
	f.pool.ExecuteAll(f.work)
	f.dst = nil
}

// prepareBands rebuilds the band closures when the frame height changes.
func (f *Filler) prepareBands(height int) {
	if f.bandHeight == height {
		return
	}
	f.bandHeight = height
	f.bands = parallel.SplitRows(height, f.pool.Workers())
	Logger().Debug("xorfill: row bands", "height", height, "bands", len(f.bands))
	f.work = f.work[:0]
	for _, b := range f.bands {
		f.work = append(f.work, func() {
			fillRows(f.dst, f.width, b.Y0, b.Y1, f.tick, f.lanes)
		})
	}
}

// Close stops the worker goroutines. The filler keeps working on the
// calling goroutine afterwards. Close is safe to call multiple times.
func (f *Filler) Close() {
	if f.pool != nil {
		f.pool.Close()
	}
}
