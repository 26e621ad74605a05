package xorfill

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/gogpu/xorfill/sink"
)

func TestNewFrameBuffer(t *testing.T) {
	fb, err := NewFrameBuffer(960, 540)
	if err != nil {
		t.Fatalf("NewFrameBuffer: %v", err)
	}
	if fb.Width() != 960 || fb.Height() != 540 {
		t.Errorf("size = %dx%d, want 960x540", fb.Width(), fb.Height())
	}
	if fb.Len() != 960*540 {
		t.Errorf("Len = %d, want %d", fb.Len(), 960*540)
	}
	if fb.Stride() != 960*4 {
		t.Errorf("Stride = %d, want %d", fb.Stride(), 960*4)
	}
	if len(fb.Bytes()) != 960*540*4 {
		t.Errorf("len(Bytes) = %d, want %d", len(fb.Bytes()), 960*540*4)
	}
	for i, p := range fb.Pixels() {
		if p != 0 {
			t.Fatalf("pixel %d = %#x, want zeroed buffer", i, p)
		}
	}
}

func TestNewFrameBuffer_Invalid(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want error
	}{
		{"zero width", 0, 10, ErrInvalidDimensions},
		{"zero height", 10, 0, ErrInvalidDimensions},
		{"negative", -1, 10, ErrInvalidDimensions},
		{"over limit", 1 << 20, 1 << 20, ErrFrameTooLarge},
		{"overflow", math.MaxInt, math.MaxInt, ErrFrameTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, err := NewFrameBuffer(tt.w, tt.h)
			if fb != nil {
				t.Error("expected nil framebuffer")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var ae *AllocationError
			if !errors.As(err, &ae) {
				t.Fatalf("err = %T, want *AllocationError", err)
			}
			if ae.Width != tt.w || ae.Height != tt.h {
				t.Errorf("AllocationError size = %dx%d, want %dx%d", ae.Width, ae.Height, tt.w, tt.h)
			}
		})
	}
}

func TestNewFrameBuffer_MaxFrameBytes(t *testing.T) {
	orig := MaxFrameBytes
	t.Cleanup(func() { MaxFrameBytes = orig })

	MaxFrameBytes = 16 * 16 * 4
	if _, err := NewFrameBuffer(16, 16); err != nil {
		t.Fatalf("16x16 at the limit: %v", err)
	}
	_, err := NewFrameBuffer(16, 17)
	var ae *AllocationError
	if !errors.As(err, &ae) {
		t.Fatalf("16x17 over the limit: err = %v, want *AllocationError", err)
	}
	if ae.Bytes != 16*17*4 {
		t.Errorf("Bytes = %d, want %d", ae.Bytes, 16*17*4)
	}
}

func TestFrameBuffer_View(t *testing.T) {
	fb, err := NewFrameBuffer(5, 3)
	if err != nil {
		t.Fatal(err)
	}
	Fill(fb, 0)

	f := fb.View()
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if f.Format != sink.Format || f.Orientation != sink.TopDown {
		t.Errorf("format/orientation = %v/%v", f.Format, f.Orientation)
	}
	if f.Width != 5 || f.Height != 3 || f.Stride != 20 {
		t.Errorf("view = %dx%d stride %d, want 5x3 stride 20", f.Width, f.Height, f.Stride)
	}

	// Pixel (3, 2) at tick 0: v = 3^2 = 1
	px := f.Row(2)[3*4 : 4*4]
	if px[0] != 1 || px[1] != 1 || px[2] != 1 || px[3] != 0xFF {
		t.Errorf("pixel bytes = %v, want [1 1 1 255]", px)
	}

	// The view aliases the buffer.
	fb.Pixels()[0] = PackBGRA(0xAA, 0, 0, 0).Native()
	if f.Pix[0] != 0xAA {
		t.Error("View should alias the framebuffer memory")
	}
}

func TestFrameBuffer_Image(t *testing.T) {
	fb, err := NewFrameBuffer(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	Fill(fb, 0)

	var _ image.Image = fb
	if fb.Bounds() != image.Rect(0, 0, 4, 2) {
		t.Errorf("Bounds = %v", fb.Bounds())
	}
	if fb.At(3, 1) != Gray(2) {
		t.Errorf("At(3, 1) = %v, want Gray(2)", fb.At(3, 1))
	}
	if fb.PixelAt(4, 0) != 0 || fb.PixelAt(-1, 0) != 0 {
		t.Error("PixelAt outside the buffer should return 0")
	}

	img := fb.ToImage()
	for y := range 2 {
		for x := range 4 {
			v := uint8(x ^ y)
			got := img.RGBAAt(x, y)
			if got.R != v || got.G != v || got.B != v || got.A != 0xFF {
				t.Errorf("ToImage (%d,%d) = %v, want gray %d", x, y, got, v)
			}
		}
	}
}

func TestAllocationError(t *testing.T) {
	err := &AllocationError{Width: 2, Height: 3, Bytes: 24, Err: ErrFrameTooLarge}
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Error("AllocationError should unwrap to its cause")
	}
	want := "xorfill: cannot allocate 2x3 framebuffer (24 bytes): xorfill: frame too large"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
