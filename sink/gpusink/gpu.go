// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package gpusink

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/xorfill"
	"github.com/gogpu/xorfill/sink"
)

// Name is the registry name of this backend.
const Name = "gpu"

// Errors.
var (
	// ErrNoTextureDrawer is returned when the draw context cannot draw textures.
	ErrNoTextureDrawer = errors.New("gpusink: draw context has no texture support")

	// ErrBadTexture is returned when the created texture cannot be drawn or updated.
	ErrBadTexture = errors.New("gpusink: texture does not support drawing or updates")
)

func init() {
	sink.Register(Name, 100,
		func(opts sink.Options) (sink.Sink, error) { return New(opts) },
		sink.HasDisplay)
}

// textureDestroyer matches the Destroy method of gogpu textures.
type textureDestroyer interface {
	Destroy()
}

// Sink converts frames to RGBA and streams them into a GPU texture.
type Sink struct {
	opts sink.Options

	mu     sync.Mutex
	rgba   []byte
	fresh  bool
	closed bool

	texture any // created lazily on the first draw
}

// New creates a GPU sink. The window opens when Drive is called.
func New(opts sink.Options) (*Sink, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("gpusink: invalid size %dx%d", opts.Width, opts.Height)
	}
	return &Sink{
		opts: opts,
		rgba: make([]byte, opts.Width*opts.Height*sink.BytesPerPixel),
	}, nil
}

// Present converts f to RGBA for the next upload.
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

// Drive opens the window and steps once per redraw until the window is
// closed, Escape is pressed, ctx is done or step fails.
func (s *Sink) Drive(ctx context.Context, step func() error) error {
	log := xorfill.Logger()

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(s.opts.Title).
		WithSize(s.opts.Width, s.opts.Height).
		WithContinuousRender(true))

	var stepErr error
	app.OnDraw(func(dc *gogpu.Context) {
		if stepErr != nil {
			return
		}
		if ctx.Err() != nil {
			app.Quit()
			return
		}
		if err := step(); err != nil {
			stepErr = err
			app.Quit()
			return
		}
		if err := s.draw(dc.AsTextureDrawer()); err != nil {
			stepErr = err
			app.Quit()
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key == gpucontext.KeyEscape {
			log.Info("gpusink: escape pressed")
			app.Quit()
		}
	})

	app.OnClose(s.releaseTexture)

	log.Info("gpusink: running window", "width", s.opts.Width, "height", s.opts.Height)
	if err := app.Run(); err != nil {
		return errors.Join(stepErr, fmt.Errorf("gpusink: %w", err))
	}
	return stepErr
}

// draw uploads the latest frame and draws it at the window origin.
func (s *Sink) draw(dc gpucontext.TextureDrawer) error {
	if dc == nil {
		return ErrNoTextureDrawer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.texture == nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrNoTextureDrawer
		}
		tex, err := creator.NewTextureFromRGBA(s.opts.Width, s.opts.Height, s.rgba)
		if err != nil {
			return fmt.Errorf("gpusink: create texture: %w", err)
		}
		s.texture = tex
		s.fresh = false
	} else if s.fresh {
		updater, ok := s.texture.(gpucontext.TextureUpdater)
		if !ok {
			return ErrBadTexture
		}
		if err := updater.UpdateData(s.rgba); err != nil {
			return fmt.Errorf("gpusink: texture update: %w", err)
		}
		s.fresh = false
	}

	tex, ok := s.texture.(gpucontext.Texture)
	if !ok {
		return ErrBadTexture
	}
	return dc.DrawTexture(tex, 0, 0)
}

func (s *Sink) releaseTexture() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	s.texture = nil
}

// Close releases the texture, if the window did not already.
func (s *Sink) Close() error {
	s.releaseTexture()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
