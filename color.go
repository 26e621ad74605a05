package xorfill

import (
	"encoding/binary"
	"image/color"
	"math/bits"
)

// BGRA is a packed 32-bit color: blue in the least significant byte, then
// green, red and alpha in the most significant byte.
type BGRA uint32

// Common colors.
var (
	Black = PackBGRA(0, 0, 0, 0xFF)
	White = PackBGRA(0xFF, 0xFF, 0xFF, 0xFF)
)

// PackBGRA packs four channels into a BGRA value.
func PackBGRA(b, g, r, a uint8) BGRA {
	return BGRA(uint32(b) | uint32(g)<<8 | uint32(r)<<16 | uint32(a)<<24)
}

// Gray returns the opaque color with all three channels set to v.
func Gray(v uint8) BGRA {
	return PackBGRA(v, v, v, 0xFF)
}

// B returns the blue channel.
func (c BGRA) B() uint8 { return uint8(c) }

// G returns the green channel.
func (c BGRA) G() uint8 { return uint8(c >> 8) }

// R returns the red channel.
func (c BGRA) R() uint8 { return uint8(c >> 16) }

// A returns the alpha channel.
func (c BGRA) A() uint8 { return uint8(c >> 24) }

// NRGBA converts c to a standard library color.
// Channels are treated as non-premultiplied.
func (c BGRA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color.
func (c BGRA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// BGRAModel converts any color to BGRA.
var BGRAModel = color.ModelFunc(bgraModel)

func bgraModel(c color.Color) color.Color {
	if b, ok := c.(BGRA); ok {
		return b
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return PackBGRA(n.B, n.G, n.R, n.A)
}

// littleEndian reports whether uint32 words are stored least significant
// byte first on this host.
var littleEndian = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001

// Native returns the word whose in-memory bytes are B, G, R, A on this host.
func (c BGRA) Native() uint32 {
	if littleEndian {
		return uint32(c)
	}
	return bits.ReverseBytes32(uint32(c))
}

// FromNative is the inverse of BGRA.Native.
func FromNative(w uint32) BGRA {
	if littleEndian {
		return BGRA(w)
	}
	return BGRA(bits.ReverseBytes32(w))
}
