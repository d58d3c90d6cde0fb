// Package zmij converts IEEE-754 binary32 and binary64 values to their
// shortest decimal representation that parses back to the same bits
// under round-to-nearest-even. The conversion is based on Schubfach
// with a fast path derived from yy.
package zmij

import "math"

// Scratch buffer sizes needed to format any value of the corresponding
// type, including the sign.
const (
	FloatBufferSize  = 17
	DoubleBufferSize = 25
)

// NonFiniteExp is the Exp of a DecFP holding a NaN or an infinity.
const NonFiniteExp = 1<<31 - 1

// DecFP is a decimal floating-point number Sig * 10**Exp with the sign
// carried separately. If Exp is NonFiniteExp the value is a NaN or an
// infinity; Sig == 0 distinguishes the infinity.
type DecFP struct {
	Sig int64
	Exp int32
	Neg bool
}

// ToDecimal converts v into the shortest correctly rounded decimal
// representation. The significand is not stripped of trailing zeros:
//
//	ToDecimal(6.62607015e-34) == DecFP{Sig: 66260701500000000, Exp: -50}
func ToDecimal(v float64) DecFP {
	bits := math.Float64bits(v)
	rawExp := int(bits << 1 >> (doubleSigBits + 1))
	binSig := bits & (doubleImplicitBit - 1)
	neg := bits>>(64-1) != 0

	if rawExp == doubleExpMask {
		sig := int64(1)
		if binSig == 0 {
			sig = 0
		}
		return DecFP{Sig: sig, Exp: NonFiniteExp, Neg: neg}
	}
	var dec toDecimalResult
	switch {
	case rawExp != 0:
		dec = toDecimalNormal64(binSig|doubleImplicitBit, rawExp, binSig != 0)
	case binSig != 0:
		dec = toDecimalSchubfach64(binSig, 1-doubleExpOffset, true, true)
	default:
		return DecFP{Neg: neg}
	}
	return DecFP{Sig: dec.sig, Exp: int32(dec.exp), Neg: neg}
}

// ToDecimal32 is the binary32 counterpart of ToDecimal.
func ToDecimal32(v float32) DecFP {
	bits := math.Float32bits(v)
	rawExp := int(bits << 1 >> (floatSigBits + 1))
	binSig := bits & (floatImplicitBit - 1)
	neg := bits>>(32-1) != 0

	if rawExp == floatExpMask {
		sig := int64(1)
		if binSig == 0 {
			sig = 0
		}
		return DecFP{Sig: sig, Exp: NonFiniteExp, Neg: neg}
	}
	var dec toDecimalResult
	switch {
	case rawExp != 0:
		dec = toDecimalNormal32(binSig|floatImplicitBit, rawExp, binSig != 0)
	case binSig != 0:
		dec = toDecimalSchubfach32(binSig, 1-floatExpOffset, true, true)
	default:
		return DecFP{Neg: neg}
	}
	return DecFP{Sig: dec.sig, Exp: int32(dec.exp), Neg: neg}
}

// AppendDouble appends the shortest decimal representation of v to buf
// and returns the extended buffer.
func AppendDouble(buf []byte, v float64) []byte {
	var scratch [DoubleBufferSize]byte
	n := writeDouble(&scratch, v)
	return append(buf, scratch[:n]...)
}

// AppendFloat appends the shortest decimal representation of v to buf
// and returns the extended buffer.
func AppendFloat(buf []byte, v float32) []byte {
	var scratch [FloatBufferSize]byte
	n := writeFloat(&scratch, v)
	return append(buf, scratch[:n]...)
}

// WriteDouble formats v into out, truncating the output if out is too
// small, and returns the length of the full representation. Callers
// detect truncation by comparing the result with len(out).
func WriteDouble(out []byte, v float64) int {
	var scratch [DoubleBufferSize]byte
	n := writeDouble(&scratch, v)
	copy(out, scratch[:n])
	return n
}

// WriteFloat formats v into out, truncating the output if out is too
// small, and returns the length of the full representation.
func WriteFloat(out []byte, v float32) int {
	var scratch [FloatBufferSize]byte
	n := writeFloat(&scratch, v)
	copy(out, scratch[:n])
	return n
}

// FormatDouble returns the shortest decimal representation of v.
func FormatDouble(v float64) string {
	var scratch [DoubleBufferSize]byte
	return string(scratch[:writeDouble(&scratch, v)])
}

// FormatFloat returns the shortest decimal representation of v.
func FormatFloat(v float32) string {
	var scratch [FloatBufferSize]byte
	return string(scratch[:writeFloat(&scratch, v)])
}
