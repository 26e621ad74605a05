// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ffplaysink streams frames as raw BGRA video into an ffplay window.
//
// The backend registers itself as "ffplay" when imported and is available
// when an ffplay binary is on PATH:
//
//	import _ "github.com/gogpu/xorfill/sink/ffplaysink"
package ffplaysink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/xorfill"
	"github.com/gogpu/xorfill/sink"
)

// Name is the registry name of this backend.
const Name = "ffplay"

// Binary is the player executable looked up on PATH.
const Binary = "ffplay"

func init() {
	sink.Register(Name, 20,
		func(opts sink.Options) (sink.Sink, error) { return New(opts) },
		func() bool {
			_, err := exec.LookPath(Binary)
			return err == nil
		})
}

// Sink pipes every presented frame to the stdin of a player process.
// It also reports quit once the player exits, for example when its window
// is closed.
type Sink struct {
	width  int
	height int

	cmd  *exec.Cmd
	pipe io.WriteCloser
	buf  []byte

	exited    atomic.Bool
	waitDone  chan struct{}
	waitErr   error
	closeOnce sync.Once
	closeErr  error
}

// New starts ffplay sized for opts.
func New(opts sink.Options) (*Sink, error) {
	path, err := exec.LookPath(Binary)
	if err != nil {
		return nil, fmt.Errorf("ffplaysink: %s not found in PATH: %w", Binary, err)
	}
	return Start(path, Args(opts), opts.Width, opts.Height)
}

// Args returns the player arguments for raw BGRA frames read from stdin.
func Args(opts sink.Options) []string {
	rate := 60.0
	if opts.Interval > 0 {
		rate = float64(time.Second) / float64(opts.Interval)
	}
	args := []string{
		"-f", "rawvideo",
		"-pixel_format", "bgra",
		"-video_size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"-framerate", strconv.FormatFloat(rate, 'f', 3, 64),
		"-i", "-",
		"-fflags", "nobuffer",
		"-flags", "low_delay",
		"-loglevel", "error",
	}
	if opts.Title != "" {
		args = append(args, "-window_title", opts.Title)
	}
	if s := opts.WindowScale(); s > 1 {
		args = append(args, "-x", strconv.Itoa(opts.Width*s), "-y", strconv.Itoa(opts.Height*s))
	}
	return args
}

// Start runs the executable at path with args and streams frames of
// width x height to its stdin.
func Start(path string, args []string, width, height int) (*Sink, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ffplaysink: invalid size %dx%d", width, height)
	}

	cmd := exec.Command(path, args...)
	pipe, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("ffplaysink: stdin pipe: %w", err)
	}
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffplaysink: start %s: %w", path, err)
	}

	s := &Sink{
		width:    width,
		height:   height,
		cmd:      cmd,
		pipe:     pipe,
		waitDone: make(chan struct{}),
	}
	go s.wait()

	xorfill.Logger().Info("ffplaysink: player started", "path", path, "pid", cmd.Process.Pid)
	return s, nil
}

func (s *Sink) wait() {
	s.waitErr = s.cmd.Wait()
	s.exited.Store(true)
	close(s.waitDone)
}

// Present writes f to the player as one tightly packed frame.
func (s *Sink) Present(f sink.Frame) error {
	if s.exited.Load() {
		return sink.ErrClosed
	}
	if err := sink.CheckSize(f, s.width, s.height); err != nil {
		return err
	}

	data := f.Pix[:f.Width*f.Height*sink.BytesPerPixel]
	if f.Stride != f.Width*sink.BytesPerPixel {
		if s.buf == nil {
			s.buf = make([]byte, f.Width*f.Height*sink.BytesPerPixel)
		}
		sink.CopyPacked(s.buf, f)
		data = s.buf
	}

	if _, err := s.pipe.Write(data); err != nil {
		if s.exited.Load() {
			return sink.ErrClosed
		}
		return fmt.Errorf("ffplaysink: write frame %d: %w", f.Sequence, err)
	}
	return nil
}

// PollQuit reports whether the player has exited.
func (s *Sink) PollQuit() bool {
	return s.exited.Load()
}

// Close ends the stream and stops the player.
func (s *Sink) Close() error {
	s.closeOnce.Do(func() {
		err := s.pipe.Close()
		if !s.exited.Load() {
			if kerr := s.cmd.Process.Kill(); kerr != nil && !errors.Is(kerr, os.ErrProcessDone) {
				err = errors.Join(err, kerr)
			}
		}
		<-s.waitDone
		s.closeErr = err
		xorfill.Logger().Debug("ffplaysink: player stopped", "wait", s.waitErr)
	})
	return s.closeErr
}
