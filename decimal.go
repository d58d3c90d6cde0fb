package zmij

// toDecimalResult is the raw output of the conversion kernel: a 16-17
// digit (7-9 for binary32) decimal significand and its exponent. The
// significand may end in a zero when the shorter of two candidates was
// chosen; the formatter strips trailing zeros. sigDiv10 caches sig/10
// for formatters that peel the last digit off separately.
type toDecimalResult struct {
	sig      int64
	exp      int
	sigDiv10 int64
}

func normalize32(dec toDecimalResult, subnormal bool) toDecimalResult {
	if !subnormal {
		return dec
	}
	for dec.sig < 1e8 {
		dec.sig *= 10
		dec.exp--
	}
	dec.sigDiv10 = dec.sig / 10
	return dec
}

func normalize64(dec toDecimalResult, subnormal bool) toDecimalResult {
	if !subnormal {
		return dec
	}
	for dec.sig < 1e16 {
		dec.sig *= 10
		dec.exp--
	}
	dec.sigDiv10 = dec.sig / 10
	return dec
}

func toDecimalSchubfach32(binSig uint32, binExp int, regular, subnormal bool) toDecimalResult {
	decExp := computeDecExp(binExp, regular)
	expShift := computeExpShift(binExp, decExp)
	pow10 := pow10Significand(-decExp)

	// Guarantee correctness in boundary cases by switching to a strict
	// overestimate of the power of 10.
	pow10.hi++

	// Shift the significand so that boundaries are integer.
	const boundShift = 2
	binSigShifted := binSig << boundShift

	// Compute the estimates of lower and upper bounds of the rounding
	// interval by multiplying them by the power of 10 and applying
	// round-to-odd.
	lsb := binSig & 1
	low := binSigShifted - 1
	if regular {
		low--
	}
	lower := umulHiInexactToOdd32(pow10.hi, low<<expShift) + lsb
	upper := umulHiInexactToOdd32(pow10.hi, (binSigShifted+2)<<expShift) - lsb

	// The idea of using a single shorter candidate is by Cassio Neri.
	// It is less or equal to the upper bound by construction.
	div10 := (upper >> boundShift) / 10
	shorter := div10 * 10
	if shorter<<boundShift >= lower {
		return normalize32(toDecimalResult{int64(shorter), decExp, int64(div10)}, subnormal)
	}

	scaled := umulHiInexactToOdd32(pow10.hi, binSigShifted<<expShift)
	below := scaled >> boundShift
	above := below + 1

	// Pick the closest of below and above and check that it is in the
	// rounding interval.
	cmp := int32(scaled - ((below + above) << 1))
	belowCloser := cmp < 0 || (cmp == 0 && below&1 == 0)
	decSig := above
	if belowCloser && below<<boundShift >= lower {
		decSig = below
	}
	return normalize32(toDecimalResult{int64(decSig), decExp, int64(decSig / 10)}, subnormal)
}

func toDecimalSchubfach64(binSig uint64, binExp int, regular, subnormal bool) toDecimalResult {
	decExp := computeDecExp(binExp, regular)
	expShift := computeExpShift(binExp, decExp)
	pow10 := pow10Significand(-decExp)

	// Guarantee correctness in boundary cases by switching to a strict
	// overestimate of the power of 10.
	pow10.lo++

	// Shift the significand so that boundaries are integer.
	const boundShift = 2
	binSigShifted := binSig << boundShift

	// Compute the estimates of lower and upper bounds of the rounding
	// interval by multiplying them by the power of 10 and applying
	// round-to-odd.
	lsb := binSig & 1
	low := binSigShifted - 1
	if regular {
		low--
	}
	lower := umulHiInexactToOdd64(pow10.hi, pow10.lo, low<<expShift) + lsb
	upper := umulHiInexactToOdd64(pow10.hi, pow10.lo, (binSigShifted+2)<<expShift) - lsb

	// The idea of using a single shorter candidate is by Cassio Neri.
	// It is less or equal to the upper bound by construction.
	div10 := (upper >> boundShift) / 10
	shorter := div10 * 10
	if shorter<<boundShift >= lower {
		return normalize64(toDecimalResult{int64(shorter), decExp, int64(div10)}, subnormal)
	}

	scaled := umulHiInexactToOdd64(pow10.hi, pow10.lo, binSigShifted<<expShift)
	below := scaled >> boundShift
	above := below + 1

	// Pick the closest of below and above and check that it is in the
	// rounding interval.
	cmp := int64(scaled - ((below + above) << 1))
	belowCloser := cmp < 0 || (cmp == 0 && below&1 == 0)
	decSig := above
	if belowCloser && below<<boundShift >= lower {
		decSig = below
	}
	return normalize64(toDecimalResult{int64(decSig), decExp, int64(decSig / 10)}, subnormal)
}

// toDecimalNormal32 converts a normal binary32 number
// binSig * 2**(rawExp - floatExpOffset) to its shortest decimal
// representation. The fast path performs a single wide multiplication
// and bails out to the Schubfach fallback on boundary cases.
func toDecimalNormal32(binSig uint32, rawExp int, regular bool) toDecimalResult {
	binExp := rawExp - floatExpOffset
	if regular {
		decExp := computeDecExp(binExp, true)
		expShift := computeExpShift(binExp, decExp)
		pow10 := pow10Significand(-decExp)

		p := umul128(pow10.hi, uint64(binSig<<expShift))
		integral := p.H // integral part of binSig * pow10
		fractional := p.L
		const halfUlp = uint64(1) << 63

		// Exact half-ulp tie when rounding to nearest integer.
		if fractional != halfUlp {
			// (1 << 63) / 5 == (1 << 64) / 10 without an intermediate int128.
			const div10Sig64 = (1<<63)/5 + 1
			div10 := umul128Hi64(integral, div10Sig64)
			digit := integral - div10*10

			// Switch to a fixed-point representation with the least
			// significant integral digit in the upper bits and the
			// fractional digits in the lower bits.
			const numIntegralBits = 32
			const numFractionalBits = 64 - numIntegralBits
			const ten = uint64(10) << numFractionalBits
			scaledSigMod10 := digit<<numFractionalBits | fractional>>numIntegralBits

			// scaledHalfUlp is 0.5 * pow10 in the fixed-point format.
			// decExp is chosen so that 10**decExp <= 2**binExp <
			// 10**(decExp+1), so 1 ulp == 2**binExp is in [1, 10) after
			// scaling. Adding 1 combines the shift with division by 2.
			scaledHalfUlp := pow10.hi >> (numIntegralBits - expShift + 1)
			upper := scaledSigMod10 + scaledHalfUlp

			// Boundary case when rounding down to the nearest 10 and
			// near-boundary case when rounding up to the nearest 10
			// (upper == ten is insufficient: 1.342178e+08).
			if scaledSigMod10 != scaledHalfUlp && ten-upper > 1 {
				roundUp := upper >= ten
				shorter := int64(integral - digit)
				longer := int64(integral)
				if fractional > halfUlp {
					longer++
				}
				if roundUp {
					shorter += 10
				}
				if scaledSigMod10 <= scaledHalfUlp || roundUp {
					r := toDecimalResult{shorter, decExp, int64(div10)}
					if roundUp {
						r.sigDiv10++
					}
					return r
				}
				return toDecimalResult{longer, decExp, int64(div10)}
			}
		}
	}
	return toDecimalSchubfach32(binSig, binExp, regular, false)
}

// toDecimalNormal64 converts a normal binary64 number
// binSig * 2**(rawExp - doubleExpOffset) to its shortest decimal
// representation. The fast path performs a single wide multiplication
// and bails out to the Schubfach fallback on boundary cases.
func toDecimalNormal64(binSig uint64, rawExp int, regular bool) toDecimalResult {
	binExp := rawExp - doubleExpOffset
	if regular {
		decExp := computeDecExp(binExp, true)
		expShift := computeExpShift(binExp, decExp)
		pow10 := pow10Significand(-decExp)

		p := umul192Hi128(pow10.hi, pow10.lo, binSig<<expShift)
		integral := p.H // integral part of binSig * pow10
		fractional := p.L
		const halfUlp = uint64(1) << 63

		// Exact half-ulp tie when rounding to nearest integer.
		if fractional != halfUlp {
			// (1 << 63) / 5 == (1 << 64) / 10 without an intermediate int128.
			const div10Sig64 = (1<<63)/5 + 1
			div10 := umul128Hi64(integral, div10Sig64)
			digit := integral - div10*10

			// Switch to a fixed-point representation with the least
			// significant integral digit in the upper bits and the
			// fractional digits in the lower bits.
			const numIntegralBits = 4
			const numFractionalBits = 64 - numIntegralBits
			const ten = uint64(10) << numFractionalBits
			scaledSigMod10 := digit<<numFractionalBits | fractional>>numIntegralBits

			// scaledHalfUlp is 0.5 * pow10 in the fixed-point format.
			// decExp is chosen so that 10**decExp <= 2**binExp <
			// 10**(decExp+1), so 1 ulp == 2**binExp is in [1, 10) after
			// scaling. Adding 1 combines the shift with division by 2.
			scaledHalfUlp := pow10.hi >> (numIntegralBits - expShift + 1)
			upper := scaledSigMod10 + scaledHalfUlp

			// Boundary case when rounding down to the nearest 10 and
			// near-boundary case when rounding up to the nearest 10
			// (upper == ten is insufficient: 1.342178e+08).
			if scaledSigMod10 != scaledHalfUlp && ten-upper > 1 {
				roundUp := upper >= ten
				shorter := int64(integral - digit)
				longer := int64(integral)
				if fractional > halfUlp {
					longer++
				}
				if roundUp {
					shorter += 10
				}
				if scaledSigMod10 <= scaledHalfUlp || roundUp {
					r := toDecimalResult{shorter, decExp, int64(div10)}
					if roundUp {
						r.sigDiv10++
					}
					return r
				}
				return toDecimalResult{longer, decExp, int64(div10)}
			}
		}
	}
	return toDecimalSchubfach64(binSig, binExp, regular, false)
}
