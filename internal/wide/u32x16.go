package wide

// U32x16 represents 16 uint32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// Each element is one packed 32-bit pixel or one per-pixel scalar.
type U32x16 [16]uint32

// Lanes16 is the number of elements in a U32x16.
const Lanes16 = 16

// SplatU32x16 creates U32x16 with all elements set to n.
func SplatU32x16(n uint32) U32x16 {
	var result U32x16
	for i := range result {
		result[i] = n
	}
	return result
}

// IotaU32x16 creates U32x16 holding base, base+1, ..., base+15.
// Elements wrap modulo 2^32.
func IotaU32x16(base uint32) U32x16 {
	var result U32x16
	for i := range result {
		result[i] = base + uint32(i) // #nosec G115 -- i < 16
	}
	return result
}

// LoadU32x16 copies the first 16 values of src.
// src must have at least 16 elements.
func LoadU32x16(src []uint32) U32x16 {
	var result U32x16
	copy(result[:], src[:16])
	return result
}

// Xor performs element-wise exclusive or.
func (v U32x16) Xor(other U32x16) U32x16 {
	var result U32x16
	for i := range v {
		result[i] = v[i] ^ other[i]
	}
	return result
}

// And performs element-wise bitwise and.
func (v U32x16) And(other U32x16) U32x16 {
	var result U32x16
	for i := range v {
		result[i] = v[i] & other[i]
	}
	return result
}

// Or performs element-wise bitwise or.
func (v U32x16) Or(other U32x16) U32x16 {
	var result U32x16
	for i := range v {
		result[i] = v[i] | other[i]
	}
	return result
}

// Mul performs element-wise multiplication modulo 2^32.
func (v U32x16) Mul(other U32x16) U32x16 {
	var result U32x16
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Shl shifts every element left by n bits.
func (v U32x16) Shl(n uint) U32x16 {
	var result U32x16
	for i := range v {
		result[i] = v[i] << n
	}
	return result
}

// Store writes all 16 elements to dst.
// dst must have at least 16 elements.
func (v U32x16) Store(dst []uint32) {
	_ = dst[15] // bounds check hint
	copy(dst[:16], v[:])
}
