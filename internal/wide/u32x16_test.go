package wide

import "testing"

func TestIotaU32x16(t *testing.T) {
	v := IotaU32x16(100)
	for i := range v {
		if v[i] != 100+uint32(i) {
			t.Errorf("element %d = %d, want %d", i, v[i], 100+i)
		}
	}
}

// TestU32x16_MatchesU32x8 checks that both lane widths compute identical
// values for the same inputs, two U32x8 halves per U32x16.
func TestU32x16_MatchesU32x8(t *testing.T) {
	for _, base := range []uint32{0, 7, 250, 0xFFFFFFF8} {
		key := uint32(0x5A)
		wide16 := IotaU32x16(base).Xor(SplatU32x16(key)).And(SplatU32x16(0xFF)).
			Mul(SplatU32x16(0x010101)).Or(SplatU32x16(0xFF000000))
		lo := IotaU32x8(base).Xor(SplatU32x8(key)).And(SplatU32x8(0xFF)).
			Mul(SplatU32x8(0x010101)).Or(SplatU32x8(0xFF000000))
		hi := IotaU32x8(base+8).Xor(SplatU32x8(key)).And(SplatU32x8(0xFF)).
			Mul(SplatU32x8(0x010101)).Or(SplatU32x8(0xFF000000))

		for i := 0; i < Lanes8; i++ {
			if wide16[i] != lo[i] {
				t.Errorf("base %#x lane %d: U32x16 %#x != U32x8 %#x", base, i, wide16[i], lo[i])
			}
			if wide16[i+Lanes8] != hi[i] {
				t.Errorf("base %#x lane %d: U32x16 %#x != U32x8 %#x", base, i+Lanes8, wide16[i+Lanes8], hi[i])
			}
		}
	}
}

func TestU32x16_LoadStore(t *testing.T) {
	src := make([]uint32, Lanes16)
	for i := range src {
		src[i] = uint32(i * 3)
	}
	dst := make([]uint32, Lanes16)
	LoadU32x16(src).Store(dst)
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], src[i])
		}
	}
}

func TestU32x16_Shl(t *testing.T) {
	got := SplatU32x16(0xFF).Shl(24)
	if got != SplatU32x16(0xFF000000) {
		t.Errorf("Shl(24) = %#x", got)
	}
}
