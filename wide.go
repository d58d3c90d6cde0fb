package zmij

import (
	"encoding/binary"
	"math/bits"

	"github.com/shogo82148/int128"
)

// umul128 returns the full 128-bit product of x and y.
func umul128(x, y uint64) int128.Uint128 {
	hi, lo := bits.Mul64(x, y)
	return int128.Uint128{H: hi, L: lo}
}

// umul128Hi64 returns the upper 64 bits of x * y.
func umul128Hi64(x, y uint64) uint64 {
	hi, _ := bits.Mul64(x, y)
	return hi
}

// umul192Hi128 returns the upper 128 bits of the 192-bit product of
// (xHi<<64 | xLo) and y.
func umul192Hi128(xHi, xLo, y uint64) int128.Uint128 {
	p := umul128(xHi, y)
	lo, carry := bits.Add64(p.L, umul128Hi64(xLo, y), 0)
	return int128.Uint128{H: p.H + carry, L: lo}
}

// umulHiInexactToOdd64 computes the high 64 bits of the product of
// (xHi<<64 | xLo) and y, discards the least significant bit of the
// 128-bit intermediate and rounds to odd: the low bit of the result is
// forced to one whenever any discarded bit is nonzero. This makes
// comparisons behave as if the truncated power of 10 had infinite
// precision.
func umulHiInexactToOdd64(xHi, xLo, y uint64) uint64 {
	p := umul192Hi128(xHi, xLo, y)
	if p.L>>1 != 0 {
		return p.H | 1
	}
	return p.H
}

// umulHiInexactToOdd32 is the binary32 counterpart. Only the upper
// 64 bits of the power of 10 take part in the product.
func umulHiInexactToOdd32(xHi uint64, y uint32) uint32 {
	hi, lo := bits.Mul64(xHi, uint64(y))
	p := hi<<32 | lo>>32
	r := uint32(p >> 32)
	if uint32(p)>>1 != 0 {
		r |= 1
	}
	return r
}

// Fixed-point reciprocals for the multiply-and-shift divisions in the
// BCD conversion.
const (
	div10kExp = 40
	div10kSig = (1<<div10kExp)/10000 + 1
	neg10k    = 1<<32 - 10000

	div100Exp = 19
	div100Sig = (1<<div100Exp)/100 + 1
	neg100    = 1<<16 - 100

	div10Exp = 10
	div10Sig = (1<<div10Exp)/10 + 1
	neg10    = 1<<8 - 10
)

const asciiZeros = 0x0101010101010101 * '0'

// toBCD8 converts n < 10**8 to eight packed BCD bytes with the most
// significant digit in the lowest byte. Three steps: base 10000, then
// base 100, then base 10. Div and mod are evaluated simultaneously as,
// e.g.
//
//	(n / 10000) << 32 + (n % 10000) == n + (2**32 - 10000) * (n / 10000)
//
// where the division on the RHS is the usual multiply-and-shift trick
// and the fractional bits are masked away.
func toBCD8(n uint64) uint64 {
	abcdEfgh := n + neg10k*((n*div10kSig)>>div10kExp)
	abCdEfGh := abcdEfgh + neg100*(((abcdEfgh*div100Sig)>>div100Exp)&0x7f0000007f)
	digits := abCdEfGh + neg10*(((abCdEfGh*div10Sig)>>div10Exp)&0x000f000f000f000f)
	return bits.ReverseBytes64(digits)
}

// countTrailingNonzeros returns the number of digit bytes of a packed
// BCD word before its trailing zeros, where the most significant digit
// occupies the lowest byte.
func countTrailingNonzeros(x uint64) int {
	// Equivalent to 8 - clz(x)/8. Shifting in a sentinel bit avoids a
	// zero check.
	return (70 - bits.LeadingZeros64(x<<1|1)) / 8
}

const smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// digits2 returns the two decimal digits of n < 100.
func digits2(n int) string {
	return smallsString[n*2 : n*2+2]
}

func readLE64(b []byte, pos int) uint64 {
	return binary.LittleEndian.Uint64(b[pos:])
}

func writeLE64(b []byte, pos int, v uint64) {
	binary.LittleEndian.PutUint64(b[pos:], v)
}
