// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package gpusink

import (
	"errors"
	"testing"

	"github.com/gogpu/xorfill"
	"github.com/gogpu/xorfill/sink"
)

func TestPresent(t *testing.T) {
	s, err := New(sink.Options{Width: 8, Height: 4})
	if err != nil {
		t.Fatal(err)
	}
	fb, err := xorfill.NewFrameBuffer(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	xorfill.Fill(fb, 0)
	fb.Pixels()[0] = xorfill.PackBGRA(0x01, 0x02, 0x03, 0xFF).Native()

	if err := s.Present(fb.View()); err != nil {
		t.Fatal(err)
	}
	if got := s.rgba[:4]; got[0] != 0x03 || got[1] != 0x02 || got[2] != 0x01 || got[3] != 0xFF {
		t.Errorf("pixel 0 RGBA = %v, want [3 2 1 255]", got)
	}

	wrong, _ := xorfill.NewFrameBuffer(4, 8)
	if err := s.Present(wrong.View()); !errors.Is(err, sink.ErrSizeMismatch) {
		t.Errorf("Present(4x8) = %v, want ErrSizeMismatch", err)
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Present(fb.View()); !errors.Is(err, sink.ErrClosed) {
		t.Errorf("Present after Close = %v, want ErrClosed", err)
	}
}

func TestDrawNilContext(t *testing.T) {
	s, _ := New(sink.Options{Width: 2, Height: 2})
	if err := s.draw(nil); !errors.Is(err, ErrNoTextureDrawer) {
		t.Errorf("draw(nil) = %v, want ErrNoTextureDrawer", err)
	}
}

func TestNewInvalidSize(t *testing.T) {
	if _, err := New(sink.Options{Width: 2}); err == nil {
		t.Error("New with zero height should fail")
	}
}
