package zmij

import "testing"

func TestPow10Significand(t *testing.T) {
	tests := []struct {
		decExp int
		want   uint128
	}{
		{-292, uint128{0xff77b1fcbebcdc4f, 0x25e8e89c13bb0f7a}},
		{-1, uint128{0xcccccccccccccccc, 0xcccccccccccccccc}},
		{0, uint128{0x8000000000000000, 0x0000000000000000}},
		{1, uint128{0xa000000000000000, 0x0000000000000000}},
		{16, uint128{0x8e1bc9bf04000000, 0x0000000000000000}},
		{55, uint128{0xd0cf4b50cfe20765, 0xfff4b4e3f741cf6d}},
		{324, uint128{0x9e19db92b4e31ba9, 0x6c07a2c26a8346d1}},
	}
	for _, tt := range tests {
		if got := pow10Significand(tt.decExp); got != tt.want {
			t.Errorf("pow10Significand(%d): expected {%#x, %#x}, got {%#x, %#x}",
				tt.decExp, tt.want.hi, tt.want.lo, got.hi, got.lo)
		}
	}
}

func TestPow10Exact(t *testing.T) {
	tests := []struct {
		decExp int
		want   bool
	}{
		{-1, false},
		{0, true},
		{1, true},
		{27, true},
		{55, true},
		{56, false},
		{100, false},
	}
	for _, tt := range tests {
		if got := pow10Exact(tt.decExp); got != tt.want {
			t.Errorf("pow10Exact(%d): expected %v, got %v", tt.decExp, tt.want, got)
		}
	}
}

func TestComputeDecExp(t *testing.T) {
	tests := []struct {
		binExp  int
		regular bool
		want    int
	}{
		{0, true, 0},
		{1, true, 0},
		{3, true, 0},
		{4, true, 1},
		{10, true, 3},
		{-1, true, -1},
		{-52, true, -16},
		{-1074, true, -324},
		{971, true, 292},
		{0, false, -1},
		{-52, false, -16},
	}
	for _, tt := range tests {
		if got := computeDecExp(tt.binExp, tt.regular); got != tt.want {
			t.Errorf("computeDecExp(%d, %v): expected %d, got %d",
				tt.binExp, tt.regular, tt.want, got)
		}
	}
}

func TestComputeExpShift(t *testing.T) {
	tests := []struct {
		binExp int
		decExp int
		want   uint
	}{
		{0, 0, 1},
		{-52, -16, 2},
		{-1074, -324, 3},
	}
	for _, tt := range tests {
		if got := computeExpShift(tt.binExp, tt.decExp); got != tt.want {
			t.Errorf("computeExpShift(%d, %d): expected %d, got %d",
				tt.binExp, tt.decExp, tt.want, got)
		}
	}
}

// Every exponent class of a finite value must stay inside the table and
// produce a shift that keeps the fixed-point splits of the kernel in
// range: the fast path divides the half ulp by 2**(4-shift+1) and the
// fallback shifts a 55-bit (26-bit for binary32) bound left by shift.
func TestExpClassRanges(t *testing.T) {
	for rawExp := 1; rawExp < doubleExpMask; rawExp++ {
		binExp := rawExp - doubleExpOffset
		for _, regular := range []bool{false, true} {
			decExp := computeDecExp(binExp, regular)
			if -decExp < pow10MinDecExp || -decExp > pow10MaxDecExp {
				t.Fatalf("rawExp %d: dec_exp %d outside the table", rawExp, decExp)
			}
			shift := computeExpShift(binExp, decExp)
			if regular && shift > 4 {
				t.Fatalf("rawExp %d: fast-path shift %d out of range", rawExp, shift)
			}
			if shift > 8 {
				t.Fatalf("rawExp %d: shift %d out of range", rawExp, shift)
			}
		}
	}
	for rawExp := 1; rawExp < floatExpMask; rawExp++ {
		binExp := rawExp - floatExpOffset
		for _, regular := range []bool{false, true} {
			decExp := computeDecExp(binExp, regular)
			if -decExp < pow10MinDecExp || -decExp > pow10MaxDecExp {
				t.Fatalf("float rawExp %d: dec_exp %d outside the table", rawExp, decExp)
			}
			if shift := computeExpShift(binExp, decExp); shift > 6 {
				t.Fatalf("float rawExp %d: shift %d out of range", rawExp, shift)
			}
		}
	}
}
