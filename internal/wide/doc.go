// Package wide provides SIMD-friendly wide types for batch pixel generation.
//
// This package implements fixed-width lane types (U32x8, U32x16) that are
// designed to enable Go compiler auto-vectorization. Each lane holds one
// packed 32-bit pixel, so a U32x8 covers the same 256 bits as an AVX2
// register and a U32x16 covers an AVX-512 register.
//
// # Wide Types
//
// U32x8: 8 uint32 values, one group of an AVX2-width row span.
// U32x16: 16 uint32 values, one group of an AVX-512-width row span.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Lanes never depend on each other, so lane order never affects results
//
// # Usage Example
//
//	// XOR pattern for pixels x0..x0+7 of row y
//	v := wide.IotaU32x8(x0).Xor(wide.SplatU32x8(y ^ tick)).And(wide.SplatU32x8(0xFF))
//	v.Mul(wide.SplatU32x8(0x010101)).Or(wide.SplatU32x8(0xFF000000)).Store(dst[i:])
package wide
