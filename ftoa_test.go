package zmij

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func TestFormatDouble(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{negZero, "-0"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
		{math.Float64frombits(0xfff8000000000000), "-nan"},

		// Small integers in fixed form.
		{1, "1"},
		{-1, "-1"},
		{10, "10"},
		{100, "100"},
		{1234, "1234"},
		{9007199254740992, "9007199254740992"},
		{1e15, "1000000000000000"},

		// Fixed form with a fractional part.
		{0.5, "0.5"},
		{-0.5, "-0.5"},
		{0.25, "0.25"},
		{0.125, "0.125"},
		{0.1, "0.1"},
		{0.3, "0.3"},
		{123.456, "123.456"},
		{3.14159, "3.14159"},
		{5.444310685350916e+14, "544431068535091.6"},

		// Leading zeros of small magnitudes.
		{0.001, "0.001"},
		{1e-4, "0.0001"},
		{0.0123, "0.0123"},

		// Scientific form.
		{1e16, "1e+16"},
		{1e-5, "1e-05"},
		{1e100, "1e+100"},
		{6.62607015e-34, "6.62607015e-34"},
		{-6.62607015e-34, "-6.62607015e-34"},
		{-4.932096661796888e-226, "-4.932096661796888e-226"},
		{3.439070283483335e+35, "3.439070283483335e+35"},
		{-1.2345678901234567e+123, "-1.2345678901234567e+123"},
		{1.7976931348623157e+308, "1.7976931348623157e+308"},
		{2.2250738585072014e-308, "2.2250738585072014e-308"},

		// Subnormals.
		{5e-324, "5e-324"},
		{math.Float64frombits(0x000fffffffffffff), "2.225073858507201e-308"},
	}
	for _, tt := range tests {
		if got := FormatDouble(tt.v); got != tt.want {
			t.Errorf("FormatDouble(%g): expected %q, got %q", tt.v, tt.want, got)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    float32
		want string
	}{
		{0, "0"},
		{float32(math.Float32frombits(1 << 31)), "-0"},
		{float32(math.Inf(1)), "inf"},
		{float32(math.Inf(-1)), "-inf"},
		{float32(math.NaN()), "nan"},

		{1, "1"},
		{-1, "-1"},
		{100, "100"},
		{16777216, "16777216"},
		{0.5, "0.5"},
		{0.25, "0.25"},
		{-0.25, "-0.25"},
		{0.1, "0.1"},
		{0.001, "0.001"},
		{1e-4, "0.0001"},

		{1.342178e+08, "1.342178e+08"},
		{1e8, "1e+08"},
		{1e-5, "1e-05"},
		{3.4028235e+38, "3.4028235e+38"},
		{math.Float32frombits(1), "1e-45"},
		{1.1754944e-38, "1.1754944e-38"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.v); got != tt.want {
			t.Errorf("FormatFloat(%g): expected %q, got %q", tt.v, tt.want, got)
		}
	}
}

func TestAppendDouble(t *testing.T) {
	buf := AppendDouble([]byte("x="), 0.5)
	if string(buf) != "x=0.5" {
		t.Errorf("expected %q, got %q", "x=0.5", buf)
	}
}

func TestWriteDoubleTruncation(t *testing.T) {
	out := make([]byte, 4)
	n := WriteDouble(out, 123.456)
	if n != 7 {
		t.Errorf("expected full length 7, got %d", n)
	}
	if string(out) != "123." {
		t.Errorf("expected truncated %q, got %q", "123.", out)
	}
}

// Writing a maximum-length representation must not touch the byte past
// the declared buffer size.
func TestWriteDoubleBufferSafety(t *testing.T) {
	var probe [DoubleBufferSize + 1]byte
	for i := range probe {
		probe[i] = 0xaa
	}
	n := WriteDouble(probe[:DoubleBufferSize], -1.2345678901234567e+123)
	if n != 24 {
		t.Errorf("expected length 24, got %d", n)
	}
	if probe[DoubleBufferSize] != 0xaa {
		t.Errorf("byte %d was overwritten", DoubleBufferSize)
	}
}

func TestWriteFloatBufferSafety(t *testing.T) {
	var probe [FloatBufferSize + 1]byte
	for i := range probe {
		probe[i] = 0xaa
	}
	WriteFloat(probe[:FloatBufferSize], float32(-1.1754944e-38))
	if probe[FloatBufferSize] != 0xaa {
		t.Errorf("byte %d was overwritten", FloatBufferSize)
	}
}

// numDigits returns the number of significant digits in a formatted
// decimal: sign, point, exponent, leading and trailing zeros do not
// count.
func numDigits(s string) int {
	if e := strings.IndexByte(s, 'e'); e >= 0 {
		s = s[:e]
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.TrimLeft(s, "-0")
	s = strings.TrimRight(s, "0")
	return len(s)
}

// Runtime addition so that the compiler cannot fold the constants.
func TestFormatDoubleAccumulatedError(t *testing.T) {
	a, b := 0.1, 0.2
	if got := FormatDouble(a + b); got != "0.30000000000000004" {
		t.Errorf("expected %q, got %q", "0.30000000000000004", got)
	}
}

func TestRoundTripDouble(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50000; i++ {
		bits := r.Uint64()
		v := math.Float64frombits(bits)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s := FormatDouble(v)
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("%#016x: cannot parse %q: %v", bits, s, err)
		}
		if math.Float64bits(parsed) != bits {
			t.Fatalf("%#016x: %q parses to %#016x", bits, s, math.Float64bits(parsed))
		}

		want := strconv.FormatFloat(v, 'e', -1, 64)
		if got, ref := numDigits(s), numDigits(want); got != ref {
			t.Fatalf("%#016x: %q has %d digits, reference %q has %d",
				bits, s, got, want, ref)
		}
	}
}

func TestRoundTripFloat(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for i := 0; i < 50000; i++ {
		bits := uint32(r.Uint64())
		v := math.Float32frombits(bits)
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			continue
		}
		s := FormatFloat(v)
		parsed, err := strconv.ParseFloat(s, 32)
		if err != nil {
			t.Fatalf("%#08x: cannot parse %q: %v", bits, s, err)
		}
		if math.Float32bits(float32(parsed)) != bits {
			t.Fatalf("%#08x: %q parses to %#08x", bits, s, math.Float32bits(float32(parsed)))
		}

		want := strconv.FormatFloat(float64(v), 'e', -1, 32)
		if got, ref := numDigits(s), numDigits(want); got != ref {
			t.Fatalf("%#08x: %q has %d digits, reference %q has %d",
				bits, s, got, want, ref)
		}
	}
}

// Exhaustive sweep of a slice of the binary32 space around powers of
// two, where boundary cases concentrate.
func TestFloatBoundaries(t *testing.T) {
	for rawExp := 1; rawExp < floatExpMask; rawExp += 13 {
		for delta := uint32(0); delta < 64; delta++ {
			for _, sig := range []uint32{delta, 1<<floatSigBits - 1 - delta} {
				bits := uint32(rawExp)<<floatSigBits | sig
				v := math.Float32frombits(bits)
				s := FormatFloat(v)
				parsed, err := strconv.ParseFloat(s, 32)
				if err != nil || math.Float32bits(float32(parsed)) != bits {
					t.Fatalf("%#08x: %q does not round-trip", bits, s)
				}
			}
		}
	}
}
