package xorfill

import (
	"fmt"
	"image"
	"image/color"
	"math/bits"
	"runtime"
	"unsafe"

	"github.com/gogpu/xorfill/sink"
)

// MaxFrameBytes is the largest framebuffer NewFrameBuffer will reserve.
var MaxFrameBytes uint64 = 1 << 31

// FrameBuffer is a fixed-size BGRA8888 pixel buffer.
//
// The buffer is allocated once and never resized. Its memory is owned by the
// FrameBuffer; sinks only ever see a borrowed view (see View).
type FrameBuffer struct {
	width  int
	height int
	pix    []uint32 // row-major, top-down, bytes B, G, R, A in memory
}

// NewFrameBuffer allocates a zeroed width x height framebuffer.
// It returns an *AllocationError if the width*height*4 bytes cannot be
// reserved.
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, &AllocationError{Width: width, Height: height, Err: ErrInvalidDimensions}
	}

	hi, n := bits.Mul64(uint64(width), uint64(height))
	if hi != 0 || n > MaxFrameBytes/sink.BytesPerPixel {
		var size uint64
		if hi == 0 && n <= ^uint64(0)/sink.BytesPerPixel {
			size = n * sink.BytesPerPixel
		}
		return nil, &AllocationError{Width: width, Height: height, Bytes: size, Err: ErrFrameTooLarge}
	}

	pix, err := allocPixels(int(n))
	if err != nil {
		return nil, &AllocationError{Width: width, Height: height, Bytes: n * sink.BytesPerPixel, Err: err}
	}

	Logger().Debug("xorfill: framebuffer allocated", "width", width, "height", height, "bytes", n*sink.BytesPerPixel)
	return &FrameBuffer{width: width, height: height, pix: pix}, nil
}

// allocPixels turns a refused allocation into an error instead of a panic.
func allocPixels(n int) (pix []uint32, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("xorfill: %w", re)
		}
	}()
	return make([]uint32, n), nil
}

// Width returns the width of the framebuffer in pixels.
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height returns the height of the framebuffer in pixels.
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// Stride returns the number of bytes per row.
func (fb *FrameBuffer) Stride() int {
	return fb.width * sink.BytesPerPixel
}

// Len returns the number of pixels, always Width*Height.
func (fb *FrameBuffer) Len() int {
	return len(fb.pix)
}

// Pixels returns the pixel words in native memory order (see BGRA.Native).
func (fb *FrameBuffer) Pixels() []uint32 {
	return fb.pix
}

// Bytes returns the same memory as Pixels viewed as B, G, R, A bytes.
func (fb *FrameBuffer) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(fb.pix))), len(fb.pix)*sink.BytesPerPixel)
}

// PixelAt returns the color at (x, y), or 0 outside the buffer.
func (fb *FrameBuffer) PixelAt(x, y int) BGRA {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0
	}
	return FromNative(fb.pix[y*fb.width+x])
}

// View returns a borrowed top-down BGRA8888 view for a sink.
// The view aliases the buffer and is only valid until the next fill.
func (fb *FrameBuffer) View() sink.Frame {
	return sink.Frame{
		Pix:         fb.Bytes(),
		Width:       fb.width,
		Height:      fb.height,
		Stride:      fb.Stride(),
		Format:      sink.Format,
		Orientation: sink.TopDown,
	}
}

// ToImage converts the framebuffer to an image.RGBA copy.
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	sink.SwizzleToRGBA(img.Pix, fb.View())
	return img
}

// At implements the image.Image interface.
func (fb *FrameBuffer) At(x, y int) color.Color {
	return fb.PixelAt(x, y)
}

// Bounds implements the image.Image interface.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// ColorModel implements the image.Image interface.
func (fb *FrameBuffer) ColorModel() color.Model {
	return BGRAModel
}
