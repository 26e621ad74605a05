package xorfill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/xorfill/sink"
)

// Loop renders the animated pattern into one framebuffer and hands each
// frame to a sink.
//
// All per-run state lives in the Loop: the tick, the frame counter and the
// buffer. A Loop must be driven from a single goroutine.
type Loop struct {
	fb     *FrameBuffer
	sink   sink.Sink
	filler *Filler

	events    sink.EventSource
	interval  time.Duration
	maxFrames uint64

	tick   uint32
	frames uint64

	// FPS accounting for debug logs.
	statStart  time.Time
	statFrames uint64
}

// NewLoop creates a loop that fills fb and presents it to s.
func NewLoop(fb *FrameBuffer, s sink.Sink, opts ...LoopOption) *Loop {
	o := defaultLoopOptions()
	for _, opt := range opts {
		opt(&o)
	}

	filler := o.filler
	if filler == nil {
		filler = NewFiller()
	}

	return &Loop{
		fb:        fb,
		sink:      s,
		filler:    filler,
		events:    o.events,
		interval:  o.interval,
		maxFrames: o.maxFrames,
		tick:      o.startTick,
	}
}

// Tick returns the tick the next frame will be rendered with.
func (l *Loop) Tick() uint32 { return l.tick }

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() uint64 { return l.frames }

// FrameBuffer returns the buffer the loop draws into.
func (l *Loop) FrameBuffer() *FrameBuffer { return l.fb }

// Step renders and presents one frame.
//
// The frame is filled with the current tick, the tick advances (wrapping
// at 2^32), then the frame is presented. A failed present is returned
// without counting the frame. Once the frame limit is reached Step
// returns ErrFrameLimit without drawing.
func (l *Loop) Step() error {
	if l.maxFrames > 0 && l.frames >= l.maxFrames {
		return ErrFrameLimit
	}

	l.filler.Fill(l.fb, l.tick)
	l.tick++

	f := l.fb.View()
	f.Sequence = l.frames + 1
	if err := l.sink.Present(f); err != nil {
		return fmt.Errorf("xorfill: present frame %d: %w", f.Sequence, err)
	}
	l.frames++
	l.logRate()
	return nil
}

// Run steps until the event source reports a quit request, the frame limit
// is reached, ctx is done or presenting fails. A quit request and the frame
// limit end the loop with a nil error.
func (l *Loop) Run(ctx context.Context) error {
	log := Logger()
	log.Info("xorfill: loop started",
		"width", l.fb.Width(), "height", l.fb.Height(),
		"lanes", int(l.filler.Lanes()), "workers", l.filler.Workers(),
		"interval", l.interval)

	var timer *time.Timer
	if l.interval > 0 {
		timer = time.NewTimer(l.interval)
		timer.Stop()
		defer timer.Stop()
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.events != nil && l.events.PollQuit() {
			log.Info("xorfill: quit requested", "frames", l.frames)
			return nil
		}

		if err := l.Step(); err != nil {
			if errors.Is(err, ErrFrameLimit) {
				log.Info("xorfill: frame limit reached", "frames", l.frames)
				return nil
			}
			return err
		}

		if timer == nil {
			continue
		}
		timer.Reset(l.interval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *Loop) logRate() {
	now := time.Now()
	if l.statStart.IsZero() {
		l.statStart = now
		return
	}
	l.statFrames++
	if d := now.Sub(l.statStart); d >= time.Second {
		Logger().Debug("xorfill: frame rate",
			"fps", float64(l.statFrames)/d.Seconds(), "frames", l.frames, "tick", l.tick)
		l.statStart, l.statFrames = now, 0
	}
}
