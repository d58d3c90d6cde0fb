package zmij

// IEEE-754 binary64 layout.
const (
	doubleSigBits     = 52
	doubleExpBits     = 11
	doubleExpMask     = 1<<doubleExpBits - 1
	doubleExpBias     = 1<<(doubleExpBits-1) - 1
	doubleExpOffset   = doubleExpBias + doubleSigBits
	doubleDecimalDigs = 17
)

const doubleImplicitBit = uint64(1) << doubleSigBits

// IEEE-754 binary32 layout.
const (
	floatSigBits     = 23
	floatExpBits     = 8
	floatExpMask     = 1<<floatExpBits - 1
	floatExpBias     = 1<<(floatExpBits-1) - 1
	floatExpOffset   = floatExpBias + floatSigBits
	floatDecimalDigs = 9
)

const floatImplicitBit = uint32(1) << floatSigBits
