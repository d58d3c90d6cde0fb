package zmij

import (
	"math/rand"
	"testing"

	"github.com/shogo82148/int128"
)

func bruteMinN(step, mod, lower, upper uint64) uint64 {
	for n := uint64(0); n <= mod; n++ {
		if r := (n * step) % mod; r >= lower && r <= upper {
			return n
		}
	}
	return NotFound
}

func TestFindMinN(t *testing.T) {
	mod := func(m uint64) int128.Uint128 { return int128.Uint128{L: m} }

	tests := []struct {
		step, mod, lower, upper uint64
		want                    uint64
	}{
		// (12345 * 0) % 100000 is in [0, 1000].
		{12345, 100000, 0, 1000, 0},
		// (1 * 500) % 1000 = 500, which is in [400, 500].
		{500, 1000, 400, 500, 1},
		// Multiple steps without modulus wrap: 10, 20, 30, 40, 50 (hit).
		{10, 100, 45, 55, 5},
		// Case requiring the Euclidean reduction: 300, 600, 900,
		// 1200 % 1000 = 200 (hit).
		{300, 1000, 100, 200, 4},
		// Not found because step and mod are even while the target is odd.
		{2, 100, 5, 5, NotFound},
		{0, 100, 5, 5, NotFound},
	}
	for _, tt := range tests {
		if got := FindMinN(tt.step, mod(tt.mod), tt.lower, tt.upper); got != tt.want {
			t.Errorf("FindMinN(%d, %d, %d, %d): expected %d, got %d",
				tt.step, tt.mod, tt.lower, tt.upper, tt.want, got)
		}
	}
}

func TestFindMinNOverflow(t *testing.T) {
	mod := int128.Uint128{H: 1} // 2**64
	got := FindMinN(0x6000000000000001, mod, 0xFFFFFFFFFFFFFF00, 0xFFFFFFFFFFFFFFFF)
	if want := uint64(0x1fffffffffffff05); got != want {
		t.Errorf("expected %#x, got %#x", want, got)
	}
}

func TestFindMinNBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 3000; i++ {
		m := r.Uint64()%1000000 + 2
		step := r.Uint64()%(m-1) + 1
		lower := r.Uint64() % m
		upper := lower + r.Uint64()%(m-lower)
		if upper >= m {
			upper = m - 1
		}
		want := bruteMinN(step, m, lower, upper)
		got := FindMinN(step, int128.Uint128{L: m}, lower, upper)
		if got != want {
			t.Fatalf("FindMinN(%d, %d, %d, %d): expected %d, got %d",
				step, m, lower, upper, want, got)
		}
	}
}

func TestFindCarriedAwayDoubles(t *testing.T) {
	const pow10Lo = uint64(0x6c07a2c26a8346d1)
	const shift = uint(3)
	first := uint64(1)<<52 | 1
	last := first + 300000

	var want []uint64
	for s := first; s < last; s++ {
		lo := pow10Lo * (s << shift)
		if lo+(s<<shift) < lo {
			want = append(want, s)
		}
	}

	var got []uint64
	FindCarriedAwayDoubles(pow10Lo, shift, first, last, func(s uint64) {
		got = append(got, s)
	})

	if len(got) != len(want) {
		t.Fatalf("expected %d hits, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("hit %d: expected %#x, got %#x", i, want[i], got[i])
		}
	}
}

func TestFindCarriedAwayDoublesEmpty(t *testing.T) {
	FindCarriedAwayDoubles(1, 0, 100, 100, func(uint64) {
		t.Error("unexpected hit for an empty range")
	})
}
