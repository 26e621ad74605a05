// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package imagesink keeps a copy of the latest frame and writes it to an
// image file.
//
// The file format follows the extension of the path: .png, or .bmp via
// golang.org/x/image/bmp. The backend registers itself as "image".
package imagesink

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/xorfill"
	"github.com/gogpu/xorfill/sink"
)

// Name is the registry name of this backend.
const Name = "image"

// DefaultPath is used when no output path is configured.
const DefaultPath = "xorfill.png"

// ErrUnsupportedFormat is returned for paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("imagesink: unsupported image format")

func init() {
	sink.Register(Name, 10,
		func(opts sink.Options) (sink.Sink, error) { return New(opts) },
		func() bool { return true })
}

// Encoder writes an image to w.
type Encoder func(w io.Writer, img image.Image) error

// EncoderFor returns the encoder matching the extension of path.
func EncoderFor(path string) (Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Sink stores the most recent frame as an *image.RGBA.
//
// With a path set, the snapshot is written every Every frames (when Every
// is positive) and once more on Close.
type Sink struct {
	img    *image.RGBA
	path   string
	every  uint64
	encode Encoder

	frames  uint64
	written int
	closed  bool
}

// New creates an image sink for opts.Width x opts.Height frames writing
// to opts.Path (DefaultPath when empty).
func New(opts sink.Options) (*Sink, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("imagesink: invalid size %dx%d", opts.Width, opts.Height)
	}
	path := opts.Path
	if path == "" {
		path = DefaultPath
	}
	enc, err := EncoderFor(path)
	if err != nil {
		return nil, err
	}

	s := &Sink{
		img:    image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		path:   path,
		encode: enc,
	}
	if opts.Every > 0 {
		s.every = uint64(opts.Every)
	}
	return s, nil
}

// NewMemory creates an image sink that writes no files.
func NewMemory(width, height int) *Sink {
	return &Sink{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Present copies f into the snapshot.
func (s *Sink) Present(f sink.Frame) error {
	if s.closed {
		return sink.ErrClosed
	}
	b := s.img.Bounds()
	if err := sink.CheckSize(f, b.Dx(), b.Dy()); err != nil {
		return err
	}
	sink.SwizzleToRGBA(s.img.Pix, f)
	s.frames++

	if s.path != "" && s.every > 0 && s.frames%s.every == 0 {
		return s.write()
	}
	return nil
}

// Image returns the snapshot. It is overwritten by the next Present.
func (s *Sink) Image() *image.RGBA {
	return s.img
}

// Frames returns the number of frames presented.
func (s *Sink) Frames() uint64 {
	return s.frames
}

// Written returns how many times the snapshot file has been written.
func (s *Sink) Written() int {
	return s.written
}

// Close writes the final snapshot, if any frame was presented.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.path == "" || s.frames == 0 {
		return nil
	}
	return s.write()
}

func (s *Sink) write() error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp) // #nosec G304 -- user supplied output path
	if err != nil {
		return fmt.Errorf("imagesink: %w", err)
	}
	if err := s.encode(f, s.img); err != nil {
		return errors.Join(fmt.Errorf("imagesink: encode %s: %w", s.path, err), f.Close(), os.Remove(tmp))
	}
	if err := f.Close(); err != nil {
		return errors.Join(fmt.Errorf("imagesink: %w", err), os.Remove(tmp))
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("imagesink: %w", err)
	}
	s.written++
	xorfill.Logger().Debug("imagesink: snapshot written", "path", s.path, "frame", s.frames)
	return nil
}
