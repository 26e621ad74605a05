package wide

import "testing"

func TestSplatU32x8(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
	}{
		{"zero", 0},
		{"byte", 0xFF},
		{"alpha", 0xFF000000},
		{"max", 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplatU32x8(tt.value)
			for i, v := range result {
				if v != tt.value {
					t.Errorf("element %d = %#x, want %#x", i, v, tt.value)
				}
			}
		})
	}
}

func TestIotaU32x8(t *testing.T) {
	tests := []struct {
		name string
		base uint32
		want U32x8
	}{
		{"zero", 0, U32x8{0, 1, 2, 3, 4, 5, 6, 7}},
		{"offset", 16, U32x8{16, 17, 18, 19, 20, 21, 22, 23}},
		{"wraps", 0xFFFFFFFE, U32x8{0xFFFFFFFE, 0xFFFFFFFF, 0, 1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IotaU32x8(tt.base); got != tt.want {
				t.Errorf("IotaU32x8(%#x) = %v, want %v", tt.base, got, tt.want)
			}
		})
	}
}

func TestU32x8_Bitwise(t *testing.T) {
	a := U32x8{0x00, 0x0F, 0xF0, 0xFF, 0x100, 0x1FF, 0xAA, 0x55}
	b := SplatU32x8(0x0F)

	tests := []struct {
		name string
		got  U32x8
		want U32x8
	}{
		{"xor", a.Xor(b), U32x8{0x0F, 0x00, 0xFF, 0xF0, 0x10F, 0x1F0, 0xA5, 0x5A}},
		{"and", a.And(b), U32x8{0x00, 0x0F, 0x00, 0x0F, 0x00, 0x0F, 0x0A, 0x05}},
		{"or", a.Or(b), U32x8{0x0F, 0x0F, 0xFF, 0xFF, 0x10F, 0x1FF, 0xAF, 0x5F}},
		{"shl", a.Shl(4), U32x8{0x000, 0x0F0, 0xF00, 0xFF0, 0x1000, 0x1FF0, 0xAA0, 0x550}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %#x, want %#x", tt.got, tt.want)
			}
		})
	}
}

func TestU32x8_MulSpreadsByte(t *testing.T) {
	v := U32x8{0, 1, 0x7F, 0x80, 0xFE, 0xFF, 0x10, 0x42}
	got := v.Mul(SplatU32x8(0x010101))
	for i := range v {
		want := v[i] | v[i]<<8 | v[i]<<16
		if got[i] != want {
			t.Errorf("element %d = %#x, want %#x", i, got[i], want)
		}
	}
}

func TestU32x8_MulWraps(t *testing.T) {
	got := SplatU32x8(0x80000000).Mul(SplatU32x8(2))
	if got != SplatU32x8(0) {
		t.Errorf("Mul overflow = %#x, want zero", got)
	}
}

func TestU32x8_LoadStore(t *testing.T) {
	src := []uint32{9, 8, 7, 6, 5, 4, 3, 2, 1}
	v := LoadU32x8(src)
	if v != (U32x8{9, 8, 7, 6, 5, 4, 3, 2}) {
		t.Fatalf("LoadU32x8 = %v", v)
	}

	dst := make([]uint32, 10)
	v.Store(dst[1:])
	want := []uint32{0, 9, 8, 7, 6, 5, 4, 3, 2, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestU32x8_StoreShortPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Store into a short slice should panic")
		}
	}()
	SplatU32x8(1).Store(make([]uint32, Lanes8-1))
}
