package zmij

// ExpClass describes how the kernel scales binary64 significands with
// one raw binary exponent. The exhaustive verifier uses it to restrict
// the search to significands whose scaled low word can carry into the
// truncated part of the power of 10; classes with an exact power of 10
// need no verification.
type ExpClass struct {
	BinExp  int    // unbiased binary exponent
	DecExp  int    // decimal exponent of the scaling power of 10
	Shift   uint   // left shift applied to the significand
	Pow10Lo uint64 // low 64 bits of the table entry
	Exact   bool   // the power of 10 is exact in 128 bits
}

// ClassifyExp returns the exponent class of a raw biased binary64
// exponent in [1, 2046].
func ClassifyExp(rawExp int) ExpClass {
	binExp := rawExp - doubleExpOffset
	decExp := computeDecExp(binExp, true)
	return ExpClass{
		BinExp:  binExp,
		DecExp:  decExp,
		Shift:   computeExpShift(binExp, decExp),
		Pow10Lo: pow10Significand(-decExp).lo,
		Exact:   pow10Exact(-decExp),
	}
}
