// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

import "testing"

func TestSwizzleToRGBA(t *testing.T) {
	f := newTestFrame(5, 3)
	dst := make([]byte, 5*3*4)
	SwizzleToRGBA(dst, f)

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			i := (y*5 + x) * 4
			want := [4]byte{byte(x + y), byte(y), byte(x), 0xFF}
			got := [4]byte{dst[i], dst[i+1], dst[i+2], dst[i+3]}
			if got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSwizzleToRGBA_PaddedStride(t *testing.T) {
	packed := newTestFrame(2, 2)
	padded := packed
	padded.Stride = 12
	padded.Pix = make([]byte, 24)
	copy(padded.Pix[0:8], packed.Pix[0:8])
	copy(padded.Pix[12:20], packed.Pix[8:16])

	want := make([]byte, 16)
	got := make([]byte, 16)
	SwizzleToRGBA(want, packed)
	SwizzleToRGBA(got, padded)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCopyPacked(t *testing.T) {
	packed := newTestFrame(3, 2)
	padded := packed
	padded.Stride = 16
	padded.Pix = make([]byte, 32)
	copy(padded.Pix[0:12], packed.Pix[0:12])
	copy(padded.Pix[16:28], packed.Pix[12:24])

	for _, f := range []Frame{packed, padded} {
		dst := make([]byte, 24)
		CopyPacked(dst, f)
		for i := range dst {
			if dst[i] != packed.Pix[i] {
				t.Fatalf("stride %d: byte %d = %d, want %d", f.Stride, i, dst[i], packed.Pix[i])
			}
		}
	}
}

func BenchmarkSwizzleToRGBA(b *testing.B) {
	f := newTestFrame(960, 540)
	dst := make([]byte, len(f.Pix))
	b.SetBytes(int64(len(f.Pix)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SwizzleToRGBA(dst, f)
	}
}
