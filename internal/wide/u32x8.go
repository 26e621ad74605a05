package wide

// U32x8 represents 8 uint32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// Each element is one packed 32-bit pixel or one per-pixel scalar.
type U32x8 [8]uint32

// Lanes8 is the number of elements in a U32x8.
const Lanes8 = 8

// SplatU32x8 creates U32x8 with all elements set to n.
func SplatU32x8(n uint32) U32x8 {
	var result U32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// IotaU32x8 creates U32x8 holding base, base+1, ..., base+7.
// Elements wrap modulo 2^32.
func IotaU32x8(base uint32) U32x8 {
	var result U32x8
	for i := range result {
		result[i] = base + uint32(i) // #nosec G115 -- i < 8
	}
	return result
}

// LoadU32x8 copies the first 8 values of src.
// src must have at least 8 elements.
func LoadU32x8(src []uint32) U32x8 {
	var result U32x8
	copy(result[:], src[:8])
	return result
}

// Xor performs element-wise exclusive or.
func (v U32x8) Xor(other U32x8) U32x8 {
	var result U32x8
	for i := range v {
		result[i] = v[i] ^ other[i]
	}
	return result
}

// And performs element-wise bitwise and.
func (v U32x8) And(other U32x8) U32x8 {
	var result U32x8
	for i := range v {
		result[i] = v[i] & other[i]
	}
	return result
}

// Or performs element-wise bitwise or.
func (v U32x8) Or(other U32x8) U32x8 {
	var result U32x8
	for i := range v {
		result[i] = v[i] | other[i]
	}
	return result
}

// Mul performs element-wise multiplication modulo 2^32.
func (v U32x8) Mul(other U32x8) U32x8 {
	var result U32x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Shl shifts every element left by n bits.
func (v U32x8) Shl(n uint) U32x8 {
	var result U32x8
	for i := range v {
		result[i] = v[i] << n
	}
	return result
}

// Store writes all 8 elements to dst.
// dst must have at least 8 elements.
func (v U32x8) Store(dst []uint32) {
	_ = dst[7] // bounds check hint
	copy(dst[:8], v[:])
}
