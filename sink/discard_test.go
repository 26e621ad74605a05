// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

import (
	"errors"
	"testing"
)

func TestDiscard(t *testing.T) {
	d := NewDiscard(4, 4)

	for seq := uint64(1); seq <= 3; seq++ {
		f := newTestFrame(4, 4)
		f.Sequence = seq
		if err := d.Present(f); err != nil {
			t.Fatalf("Present(%d) = %v", seq, err)
		}
	}
	if d.Frames() != 3 || d.LastSequence() != 3 {
		t.Errorf("Frames() = %d, LastSequence() = %d, want 3, 3", d.Frames(), d.LastSequence())
	}

	if err := d.Present(newTestFrame(5, 4)); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Present(wrong size) = %v, want ErrSizeMismatch", err)
	}

	if err := d.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := d.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if err := d.Present(newTestFrame(4, 4)); !errors.Is(err, ErrClosed) {
		t.Errorf("Present after Close = %v, want ErrClosed", err)
	}
}

func TestDiscard_AnySize(t *testing.T) {
	d := NewDiscard(0, 0)
	if err := d.Present(newTestFrame(1, 1)); err != nil {
		t.Errorf("Present(1x1) = %v", err)
	}
	if err := d.Present(newTestFrame(17, 3)); err != nil {
		t.Errorf("Present(17x3) = %v", err)
	}
}
