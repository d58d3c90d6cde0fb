// Formatting of shortest decimal representations.

package zmij

import "math"

// writeSignificand9 writes a significand of up to 9 decimal digits
// (7-9 for normals) at b[pos] and removes trailing zeros. When has9 is
// false the leading digit slot is overwritten by the BCD store.
func writeSignificand9(b []byte, pos int, value uint32, has9 bool) int {
	b[pos] = byte('0' + value/1e8)
	if has9 {
		pos++
	}
	bcd := toBCD8(uint64(value % 1e8))
	writeLE64(b, pos, bcd|asciiZeros)
	return pos + countTrailingNonzeros(bcd)
}

// writeSignificand17 writes a significand of up to 17 decimal digits
// (16-17 for normals) at b[pos] and removes trailing zeros.
func writeSignificand17(b []byte, pos int, value uint64, has17 bool) int {
	// Each digit is denoted by a letter so value is abbccddeeffgghhii.
	abbccddee := uint32(value / 1e8)
	ffgghhii := uint32(value % 1e8)
	b[pos] = byte('0' + abbccddee/1e8)
	if has17 {
		pos++
	}
	bcd := toBCD8(uint64(abbccddee % 1e8))
	writeLE64(b, pos, bcd|asciiZeros)
	if ffgghhii == 0 {
		writeLE64(b, pos+8, asciiZeros)
		return pos + countTrailingNonzeros(bcd)
	}
	bcd = toBCD8(uint64(ffgghhii))
	writeLE64(b, pos+8, bcd|asciiZeros)
	return pos + 8 + countTrailingNonzeros(bcd)
}

// writeFloat formats v into b and returns the number of bytes written.
func writeFloat(b *[FloatBufferSize]byte, v float32) int {
	bits := math.Float32bits(v)
	// It is beneficial to extract exponent and significand early.
	rawExp := int(bits << 1 >> (floatSigBits + 1))
	binSig := bits & (floatImplicitBit - 1)

	i := 0
	if bits>>(32-1) != 0 {
		b[0] = '-'
		i = 1
	}

	var dec toDecimalResult
	if rawExp == 0 || rawExp == floatExpMask {
		if rawExp != 0 {
			if binSig == 0 {
				return i + copy(b[i:], "inf")
			}
			return i + copy(b[i:], "nan")
		}
		if binSig == 0 {
			b[i] = '0'
			return i + 1
		}
		dec = toDecimalSchubfach32(binSig, 1-floatExpOffset, true, true)
	} else {
		dec = toDecimalNormal32(binSig|floatImplicitBit, rawExp, binSig != 0)
	}

	sig := uint32(dec.sig)
	decExp := dec.exp
	if sig < 1e7 {
		sig *= 10
		decExp--
	}
	has9 := sig >= 1e8
	decExp += floatDecimalDigs - 2
	if has9 {
		decExp++
	}

	if decExp >= -4 && decExp < 0 {
		copy(b[i:], "0.000000")
		return writeSignificand9(b[:], i+1-decExp, sig, has9)
	}

	if decExp >= 0 && decExp < 8 {
		end := writeSignificand9(b[:], i, sig, has9)
		dot := i + decExp + 1
		if end <= dot {
			// Trailing zeros of the integer part were stripped.
			for end < dot {
				b[end] = '0'
				end++
			}
			return end
		}
		for j := end; j > dot; j-- {
			b[j] = b[j-1]
		}
		b[dot] = '.'
		return end + 1
	}

	end := writeSignificand9(b[:], i+1, sig, has9)
	b[i] = b[i+1]
	b[i+1] = '.'
	if end == i+2 {
		end-- // no fractional digits, drop the point
	}

	b[end] = 'e'
	if decExp >= 0 {
		b[end+1] = '+'
	} else {
		b[end+1] = '-'
		decExp = -decExp
	}
	copy(b[end+2:], digits2(decExp))
	return end + 4
}

// writeDouble formats v into b and returns the number of bytes written.
func writeDouble(b *[DoubleBufferSize]byte, v float64) int {
	bits := math.Float64bits(v)
	// It is beneficial to extract exponent and significand early.
	rawExp := int(bits << 1 >> (doubleSigBits + 1))
	binSig := bits & (doubleImplicitBit - 1)

	i := 0
	if bits>>(64-1) != 0 {
		b[0] = '-'
		i = 1
	}

	var dec toDecimalResult
	if rawExp == 0 || rawExp == doubleExpMask {
		if rawExp != 0 {
			if binSig == 0 {
				return i + copy(b[i:], "inf")
			}
			return i + copy(b[i:], "nan")
		}
		if binSig == 0 {
			b[i] = '0'
			return i + 1
		}
		dec = toDecimalSchubfach64(binSig, 1-doubleExpOffset, true, true)
	} else {
		dec = toDecimalNormal64(binSig|doubleImplicitBit, rawExp, binSig != 0)
	}

	sig := uint64(dec.sig)
	has17 := sig >= 1e16
	decExp := dec.exp + doubleDecimalDigs - 2
	if has17 {
		decExp++
	}

	if decExp >= -4 && decExp < 0 {
		copy(b[i:], "0.000000")
		return writeSignificand17(b[:], i+1-decExp, sig, has17)
	}

	if decExp >= 0 && decExp < 16 {
		// Keep the bytes moved below deterministic.
		writeLE64(b[:], i+16, 0)

		end := writeSignificand17(b[:], i, sig, has17)

		// Branchless move to make space for the '.' without going out
		// of bounds.
		part1 := i + decExp
		if decExp < 2 {
			part1++
		}
		part2 := part1
		if decExp < 2 {
			part2++
		}
		if decExp < 9 {
			part2 += 7
		}
		v1 := readLE64(b[:], part1)
		v2 := readLE64(b[:], part2)
		writeLE64(b[:], part1+1, v1)
		writeLE64(b[:], part2+1, v2)

		dot := i + decExp + 1
		b[dot] = '.'
		if end > dot {
			return end + 1
		}
		return dot
	}

	end := writeSignificand17(b[:], i+1, sig, has17)
	b[i] = b[i+1]
	b[i+1] = '.'
	if end == i+2 {
		end-- // no fractional digits, drop the point
	}

	b[end] = 'e'
	if decExp >= 0 {
		b[end+1] = '+'
	} else {
		b[end+1] = '-'
		decExp = -decExp
	}
	end += 2
	digit := decExp / 100
	b[end] = byte('0' + digit)
	if decExp >= 100 {
		end++
	}
	copy(b[end:], digits2(decExp-digit*100))
	return end + 2
}
