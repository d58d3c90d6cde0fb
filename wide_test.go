package zmij

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestUmul128(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		x, y := r.Uint64(), r.Uint64()
		want := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
		got := umul128(x, y)
		gotBig := new(big.Int).Lsh(new(big.Int).SetUint64(got.H), 64)
		gotBig.Add(gotBig, new(big.Int).SetUint64(got.L))
		if gotBig.Cmp(want) != 0 {
			t.Fatalf("umul128(%#x, %#x): expected %v, got %v", x, y, want, gotBig)
		}
	}
}

func TestUmul192Hi128(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		xHi, xLo, y := r.Uint64(), r.Uint64(), r.Uint64()
		x := new(big.Int).Lsh(new(big.Int).SetUint64(xHi), 64)
		x.Add(x, new(big.Int).SetUint64(xLo))
		want := new(big.Int).Mul(x, new(big.Int).SetUint64(y))
		want.Rsh(want, 64)
		got := umul192Hi128(xHi, xLo, y)
		gotBig := new(big.Int).Lsh(new(big.Int).SetUint64(got.H), 64)
		gotBig.Add(gotBig, new(big.Int).SetUint64(got.L))
		if gotBig.Cmp(want) != 0 {
			t.Fatalf("umul192Hi128(%#x, %#x, %#x): expected %v, got %v",
				xHi, xLo, y, want, gotBig)
		}
	}
}

func TestUmulHiInexactToOdd64(t *testing.T) {
	mask63 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 63), big.NewInt(1))
	oracle := func(xHi, xLo, y uint64) uint64 {
		x := new(big.Int).Lsh(new(big.Int).SetUint64(xHi), 64)
		x.Add(x, new(big.Int).SetUint64(xLo))
		prod := new(big.Int).Mul(x, new(big.Int).SetUint64(y))
		hi := new(big.Int).Rsh(prod, 128).Uint64()
		sticky := new(big.Int).Rsh(prod, 65)
		sticky.And(sticky, mask63)
		if sticky.Sign() != 0 {
			hi |= 1
		}
		return hi
	}

	// An exact product must not set the odd bit.
	if got := umulHiInexactToOdd64(1<<63, 0, 4); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}

	r := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		xHi, xLo, y := r.Uint64(), r.Uint64(), r.Uint64()
		if got, want := umulHiInexactToOdd64(xHi, xLo, y), oracle(xHi, xLo, y); got != want {
			t.Fatalf("umulHiInexactToOdd64(%#x, %#x, %#x): expected %#x, got %#x",
				xHi, xLo, y, want, got)
		}
	}
}

func TestUmulHiInexactToOdd32(t *testing.T) {
	oracle := func(xHi uint64, y uint32) uint32 {
		prod := new(big.Int).Mul(new(big.Int).SetUint64(xHi), new(big.Int).SetUint64(uint64(y)))
		hi := uint32(new(big.Int).Rsh(prod, 64).Uint64())
		sticky := new(big.Int).Rsh(prod, 33)
		sticky.And(sticky, big.NewInt(0x7fffffff))
		if sticky.Sign() != 0 {
			hi |= 1
		}
		return hi
	}

	r := rand.New(rand.NewSource(4))
	for i := 0; i < 2000; i++ {
		xHi, y := r.Uint64(), uint32(r.Uint64())
		if got, want := umulHiInexactToOdd32(xHi, y), oracle(xHi, y); got != want {
			t.Fatalf("umulHiInexactToOdd32(%#x, %#x): expected %#x, got %#x",
				xHi, y, want, got)
		}
	}
}

func TestToBCD8(t *testing.T) {
	oracle := func(n uint64) uint64 {
		var out uint64
		for i := 7; i >= 0; i-- {
			out |= (n % 10) << (8 * i)
			n /= 10
		}
		return out
	}

	values := []uint64{0, 1, 9, 10, 99999999, 12345678, 10000000, 90000009}
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 2000; i++ {
		values = append(values, r.Uint64()%100000000)
	}
	for _, n := range values {
		if got, want := toBCD8(n), oracle(n); got != want {
			t.Fatalf("toBCD8(%d): expected %#x, got %#x", n, want, got)
		}
	}
}

func TestCountTrailingNonzeros(t *testing.T) {
	tests := []struct {
		n    uint64
		want int
	}{
		{0, 0},
		{10000000, 1},
		{12000000, 2},
		{12300000, 3},
		{12345678, 8},
		{10000001, 8},
		{120, 7}, // 00000120
	}
	for _, tt := range tests {
		if got := countTrailingNonzeros(toBCD8(tt.n)); got != tt.want {
			t.Errorf("countTrailingNonzeros(bcd(%d)): expected %d, got %d",
				tt.n, tt.want, got)
		}
	}
}

func TestDigits2(t *testing.T) {
	for n := 0; n < 100; n++ {
		want := string([]byte{byte('0' + n/10), byte('0' + n%10)})
		if got := digits2(n); got != want {
			t.Errorf("digits2(%d): expected %q, got %q", n, want, got)
		}
	}
}
