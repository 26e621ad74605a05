// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sdlsink presents frames in an SDL2 window through a streaming
// texture.
//
// SDL must be driven from the main OS thread, so this package locks the
// main goroutine to it in init. Create the sink and run the frame loop on
// the main goroutine.
package sdlsink

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/xorfill"
	"github.com/gogpu/xorfill/sink"
)

// Name is the registry name of this backend.
const Name = "sdl"

func init() {
	runtime.LockOSThread()

	sink.Register(Name, 50,
		func(opts sink.Options) (sink.Sink, error) { return New(opts) },
		available)
}

// available probes the video subsystem once.
func available() bool {
	if sdl.WasInit(sdl.INIT_VIDEO) != 0 {
		return true
	}
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return false
	}
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
	return true
}

// Sink owns an SDL window, renderer and streaming texture.
type Sink struct {
	width  int
	height int

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	quit   bool
	closed bool
}

// New initializes SDL video and opens a window for opts.Width x
// opts.Height frames, zoomed by opts.Scale.
func New(opts sink.Options) (s *Sink, err error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("sdlsink: invalid size %dx%d", opts.Width, opts.Height)
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdlsink: init: %w", err)
	}

	s = &Sink{width: opts.Width, height: opts.Height}
	defer func() {
		if err != nil {
			err = errors.Join(err, s.Close())
			s = nil
		}
	}()

	scale := opts.WindowScale()
	s.window, err = sdl.CreateWindow(opts.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(opts.Width*scale), int32(opts.Height*scale), // #nosec G115 -- window sizes fit int32
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdlsink: create window: %w", err)
	}

	s.renderer, err = sdl.CreateRenderer(s.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		// Dummy and headless video drivers only have a software renderer.
		s.renderer, err = sdl.CreateRenderer(s.window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, fmt.Errorf("sdlsink: create renderer: %w", err)
		}
	}

	// ARGB8888 is a packed-word format: B, G, R, A in memory on
	// little-endian hosts.
	s.texture, err = s.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888),
		sdl.TEXTUREACCESS_STREAMING, int32(opts.Width), int32(opts.Height)) // #nosec G115
	if err != nil {
		return nil, fmt.Errorf("sdlsink: create texture: %w", err)
	}

	xorfill.Logger().Info("sdlsink: window opened",
		"width", opts.Width, "height", opts.Height, "scale", scale)
	return s, nil
}

// Present uploads f to the texture and shows it.
func (s *Sink) Present(f sink.Frame) error {
	if s.closed {
		return sink.ErrClosed
	}
	if err := sink.CheckSize(f, s.width, s.height); err != nil {
		return err
	}

	if err := s.texture.Update(nil, unsafe.Pointer(&f.Pix[0]), f.Stride); err != nil {
		return fmt.Errorf("sdlsink: texture update: %w", err)
	}
	if err := s.renderer.Clear(); err != nil {
		return fmt.Errorf("sdlsink: clear: %w", err)
	}
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return fmt.Errorf("sdlsink: copy: %w", err)
	}
	s.renderer.Present()
	return nil
}

// PollQuit drains the SDL event queue. Closing the window or pressing
// Escape requests a quit.
func (s *Sink) PollQuit() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.quit = true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				s.quit = true
			}
		}
	}
	return s.quit
}

// Close destroys the texture, renderer and window, then shuts SDL down.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.texture != nil {
		errs = append(errs, s.texture.Destroy())
	}
	if s.renderer != nil {
		errs = append(errs, s.renderer.Destroy())
	}
	if s.window != nil {
		errs = append(errs, s.window.Destroy())
	}
	sdl.Quit()

	err := errors.Join(errs...)
	if err != nil {
		xorfill.Logger().Warn("sdlsink: teardown", "err", err)
	}
	return err
}
