// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ebitensink presents frames in an Ebitengine window.
//
// Ebitengine owns the main loop, so the sink implements sink.Driver: the
// frame loop's Step runs inside the game's Update and the last presented
// frame is drawn on every Draw.
package ebitensink

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/xorfill"
	"github.com/gogpu/xorfill/sink"
)

// Name is the registry name of this backend.
const Name = "ebiten"

func init() {
	sink.Register(Name, 60,
		func(opts sink.Options) (sink.Sink, error) { return New(opts) },
		sink.HasDisplay)
}

// Sink keeps an RGBA copy of the latest frame for the game to draw.
type Sink struct {
	opts sink.Options

	mu     sync.Mutex
	rgba   []byte
	fresh  bool
	closed bool
}

// New creates an ebiten sink. The window opens when Drive is called.
func New(opts sink.Options) (*Sink, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("ebitensink: invalid size %dx%d", opts.Width, opts.Height)
	}
	return &Sink{
		opts: opts,
		rgba: make([]byte, opts.Width*opts.Height*sink.BytesPerPixel),
	}, nil
}

// Present converts f to RGBA for the next Draw.
func (s *Sink) Present(f sink.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return sink.ErrClosed
	}
	if err := sink.CheckSize(f, s.opts.Width, s.opts.Height); err != nil {
		return err
	}
	sink.SwizzleToRGBA(s.rgba, f)
	s.fresh = true
	return nil
}

// Drive opens the window and runs the game until the window is closed,
// Escape is pressed, ctx is done or step fails.
func (s *Sink) Drive(ctx context.Context, step func() error) error {
	scale := s.opts.WindowScale()
	ebiten.SetWindowSize(s.opts.Width*scale, s.opts.Height*scale)
	ebiten.SetWindowTitle(s.opts.Title)
	ebiten.SetTPS(tps(s.opts.Interval))

	xorfill.Logger().Info("ebitensink: running game",
		"width", s.opts.Width, "height", s.opts.Height, "tps", ebiten.TPS())

	return ebiten.RunGame(&game{ctx: ctx, sink: s, step: step})
}

// tps converts the frame interval to ticks per second.
func tps(interval time.Duration) int {
	if interval <= 0 {
		return ebiten.SyncWithFPS
	}
	return max(1, int(math.Round(float64(time.Second)/float64(interval))))
}

// Close marks the sink closed.
func (s *Sink) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// game adapts the frame loop to ebiten.Game.
type game struct {
	ctx  context.Context
	sink *Sink
	step func() error
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if err := g.step(); err != nil {
		return err
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	s := g.sink
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fresh {
		screen.WritePixels(s.rgba)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.sink.opts.Width, g.sink.opts.Height
}
