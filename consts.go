package num

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	// _W is the width of a single nat digit, in bits.
	_W = 32

	// _B is the digit base.
	_B = 1 << _W

	// _M is the digit mask.
	_M = _B - 1

	// Operands with at least this many digits on both sides are multiplied
	// using Karatsuba.
	karatsubaThreshold = 70

	// Exponents with more digits than this are evaluated with a fixed window
	// of windowBits bits in PowMod.
	windowThreshold = 8
	windowBits      = 5

	// IEEE-754 binary64 parameters.
	dblMantDig = 53
	dblMaxExp  = 1024
	dblMinExp  = -1021

	// hashBits and hashModulus match the hash width used by most 64-bit
	// dynamic-language runtimes: the Mersenne prime 2**61 - 1.
	hashBits    = 61
	hashModulus = 1<<hashBits - 1

	// HashInf is the hash of a rational whose denominator is not invertible
	// modulo the hash modulus.
	HashInf = 314159

	intSize = 32 << (^uint(0) >> 63)

	defaultMaxBits = 1 << 32

	// MaxBitsCeiling is the largest ceiling a Limits can select: 2**40 bits
	// on 64-bit platforms and 2**31 on 32-bit ones. Magnitudes of this size
	// still fit in a slice.
	MaxBitsCeiling = 1 << (31 + 9*(intSize/64))
)

var (
	zeroBigInt BigInt
	oneBigInt  = BigInt{mag: nat{1}}
	twoBigInt  = BigInt{mag: nat{2}}
)
