// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

// SwizzleToRGBA copies f into dst as tightly packed RGBA8888, top-down.
// dst must hold at least Width*Height*4 bytes.
// Hosts that only accept RGBA uploads (ebiten, gogpu textures, image.RGBA)
// call this once per frame.
func SwizzleToRGBA(dst []byte, f Frame) {
	rowBytes := f.Width * BytesPerPixel
	_ = dst[rowBytes*f.Height-1]
	for y := 0; y < f.Height; y++ {
		src := f.Row(y)
		out := dst[y*rowBytes : (y+1)*rowBytes]
		for i := 0; i < rowBytes; i += BytesPerPixel {
			out[i+0] = src[i+2]
			out[i+1] = src[i+1]
			out[i+2] = src[i+0]
			out[i+3] = src[i+3]
		}
	}
}

// CopyPacked copies f into dst as tightly packed BGRA8888, dropping any
// row padding. dst must hold at least Width*Height*4 bytes.
func CopyPacked(dst []byte, f Frame) {
	rowBytes := f.Width * BytesPerPixel
	if f.Stride == rowBytes {
		copy(dst, f.Pix[:rowBytes*f.Height])
		return
	}
	for y := 0; y < f.Height; y++ {
		copy(dst[y*rowBytes:], f.Row(y))
	}
}
