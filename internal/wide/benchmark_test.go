package wide

import "testing"

// Benchmark lane operations to verify SIMD auto-vectorization

func BenchmarkU32x8_XorPattern(b *testing.B) {
	dst := make([]uint32, Lanes8)
	key := SplatU32x8(0x3C)
	mask := SplatU32x8(0xFF)
	spread := SplatU32x8(0x010101)
	alpha := SplatU32x8(0xFF000000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IotaU32x8(uint32(i)).Xor(key).And(mask).Mul(spread).Or(alpha).Store(dst)
	}
}

func BenchmarkU32x16_XorPattern(b *testing.B) {
	dst := make([]uint32, Lanes16)
	key := SplatU32x16(0x3C)
	mask := SplatU32x16(0xFF)
	spread := SplatU32x16(0x010101)
	alpha := SplatU32x16(0xFF000000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IotaU32x16(uint32(i)).Xor(key).And(mask).Mul(spread).Or(alpha).Store(dst)
	}
}

func BenchmarkU32x8_Splat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SplatU32x8(uint32(i))
	}
}

func BenchmarkU32x16_Splat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SplatU32x16(uint32(i))
	}
}
