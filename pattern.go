package xorfill

import (
	"fmt"
	"strconv"

	"github.com/gogpu/xorfill/internal/wide"
)

// LaneWidth is the number of pixels computed together by the fill kernel.
type LaneWidth int

const (
	// LanesScalar computes one pixel at a time (the reference kernel).
	LanesScalar LaneWidth = 1

	// Lanes8 computes 8 pixels per group, one 256-bit AVX2 register.
	Lanes8 LaneWidth = wide.Lanes8

	// Lanes16 computes 16 pixels per group, one 512-bit AVX-512 register.
	Lanes16 LaneWidth = wide.Lanes16

	// DefaultLanes is the lane width used by Fill.
	DefaultLanes = Lanes8
)

// String returns the lane width as a decimal number.
func (l LaneWidth) String() string {
	return strconv.Itoa(int(l))
}

// Valid reports whether l is a supported lane width.
func (l LaneWidth) Valid() bool {
	return l == LanesScalar || l == Lanes8 || l == Lanes16
}

// ParseLaneWidth parses "1", "8" or "16".
func ParseLaneWidth(s string) (LaneWidth, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !LaneWidth(n).Valid() {
		return 0, fmt.Errorf("xorfill: unsupported lane width %q (want 1, 8 or 16)", s)
	}
	return LaneWidth(n), nil
}

// Kernel constants in native word order: v*graySpread copies the low byte
// into the B, G and R bytes, and opaqueAlpha sets A to 0xFF.
var (
	graySpread  = BGRA(0x00010101).Native()
	opaqueAlpha = BGRA(0xFF000000).Native()
)

// Pixel returns the pattern color at (x, y) for tick.
// Coordinates and tick combine modulo 2^32; only the low byte is used.
func Pixel(x, y int, tick uint32) BGRA {
	return Gray(uint8(uint32(x) ^ uint32(y) ^ tick)) // #nosec G115 -- low byte only
}

// Fill overwrites every pixel of fb with the pattern for tick using the
// default lane width.
func Fill(fb *FrameBuffer, tick uint32) {
	FillLanes(fb.pix, fb.width, fb.height, tick, DefaultLanes)
}

// FillScalar is the reference fill: one pixel at a time, row-major.
//
// dst must hold exactly width*height pixels in native word order; violating
// that is a programming error and panics.
func FillScalar(dst []uint32, width, height int, tick uint32) {
	checkFill(dst, width, height)
	fillRows(dst, width, 0, height, tick, LanesScalar)
}

// FillLanes fills dst processing each row in groups of lanes pixels.
// The pixels left over at the end of each row (width mod lanes) go through
// the scalar kernel, so the result equals FillScalar for every width.
//
// dst must hold exactly width*height pixels; lanes must be valid.
func FillLanes(dst []uint32, width, height int, tick uint32, lanes LaneWidth) {
	checkFill(dst, width, height)
	if !lanes.Valid() {
		panic(fmt.Sprintf("xorfill: unsupported lane width %d", int(lanes)))
	}
	fillRows(dst, width, 0, height, tick, lanes)
}

func checkFill(dst []uint32, width, height int) {
	if width <= 0 || height <= 0 || len(dst) != width*height {
		panic(fmt.Sprintf("xorfill: fill of %dx%d needs %d pixels, have %d",
			width, height, width*height, len(dst)))
	}
}

// fillRows fills rows [y0, y1) of dst. Rows are independent, so disjoint
// ranges may be filled concurrently.
func fillRows(dst []uint32, width, y0, y1 int, tick uint32, lanes LaneWidth) {
	for y := y0; y < y1; y++ {
		row := dst[y*width : (y+1)*width]
		key := uint32(y) ^ tick // #nosec G115 -- wraps by design of the formula
		switch lanes {
		case Lanes16:
			fillRow16(row, key)
		case Lanes8:
			fillRow8(row, key)
		default:
			fillRowScalar(row, 0, key)
		}
	}
}

// fillRowScalar writes pixels x0, x0+1, ... of a row whose key is y^tick.
func fillRowScalar(row []uint32, x0 int, key uint32) {
	for i := range row {
		v := (uint32(x0+i) ^ key) & 0xFF // #nosec G115
		row[i] = v*graySpread | opaqueAlpha
	}
}

func fillRow8(row []uint32, key uint32) {
	n := len(row) &^ (wide.Lanes8 - 1)

	k := wide.SplatU32x8(key)
	mask := wide.SplatU32x8(0xFF)
	spread := wide.SplatU32x8(graySpread)
	alpha := wide.SplatU32x8(opaqueAlpha)
	for x := 0; x < n; x += wide.Lanes8 {
		wide.IotaU32x8(uint32(x)).Xor(k).And(mask).Mul(spread).Or(alpha).Store(row[x:]) // #nosec G115
	}

	// Row tail
	fillRowScalar(row[n:], n, key)
}

func fillRow16(row []uint32, key uint32) {
	n := len(row) &^ (wide.Lanes16 - 1)

	k := wide.SplatU32x16(key)
	mask := wide.SplatU32x16(0xFF)
	spread := wide.SplatU32x16(graySpread)
	alpha := wide.SplatU32x16(opaqueAlpha)
	for x := 0; x < n; x += wide.Lanes16 {
		wide.IotaU32x16(uint32(x)).Xor(k).And(mask).Mul(spread).Or(alpha).Store(row[x:]) // #nosec G115
	}

	// Row tail
	fillRowScalar(row[n:], n, key)
}
