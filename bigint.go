package num

import (
	"math/big"
)

// BigInt is an arbitrary-precision signed integer. The zero value is 0.
//
// BigInt is a value type; all operations return new values and never modify
// their operands, so a BigInt can be shared between goroutines.
type BigInt struct {
	neg bool
	mag nat
}

func BigIntFromInt64(v int64) BigInt {
	if v < 0 {
		return BigInt{neg: true, mag: natFromUint64(uint64(-(v + 1)) + 1)}
	}
	return BigInt{mag: natFromUint64(uint64(v))}
}

func BigIntFromUint64(v uint64) BigInt { return BigInt{mag: natFromUint64(v)} }
func BigIntFrom32(v int32) BigInt      { return BigIntFromInt64(int64(v)) }

// BigIntFromString parses s in the given base. base must be 0 or between 2 and
// 36 inclusive; 0 selects the base from an optional 0b, 0o or 0x prefix,
// defaulting to 10. See the package documentation for the accepted syntax.
func BigIntFromString(s string, base int) (BigInt, error) {
	return parseBigInt(s, base)
}

// MustBigIntFromString is like BigIntFromString with base 0, but panics on
// error. It is intended for constants in tests and initialisers.
func MustBigIntFromString(s string) BigInt {
	v, err := parseBigInt(s, 0)
	if err != nil {
		panic(err)
	}
	return v
}

// BigIntFromBig creates a BigInt from a big.Int. A nil *big.Int is 0.
func BigIntFromBig(v *big.Int) BigInt {
	if v == nil {
		return BigInt{}
	}
	return makeBigInt(v.Sign() < 0, natFromBytes(v.Bytes()))
}

// BigIntFromBytes interprets buf as the big-endian magnitude of a
// non-negative integer.
func BigIntFromBytes(buf []byte) BigInt {
	return BigInt{mag: natFromBytes(buf)}
}

// makeBigInt ensures zero never carries a sign.
func makeBigInt(neg bool, mag nat) BigInt {
	mag = mag.norm()
	if len(mag) == 0 {
		return BigInt{}
	}
	return BigInt{neg: neg, mag: mag}
}

func (x BigInt) IsZero() bool { return len(x.mag) == 0 }

// Sign returns -1, 0 or 1.
func (x BigInt) Sign() int {
	if len(x.mag) == 0 {
		return 0
	} else if x.neg {
		return -1
	}
	return 1
}

func (x BigInt) IsInt64() bool {
	if len(x.mag) > 2 {
		return false
	}
	v := x.mag.uint64()
	if x.neg {
		return v <= 1<<63
	}
	return v <= maxInt64
}

func (x BigInt) IsUint64() bool { return !x.neg && len(x.mag) <= 2 }

// Int64 returns x as an int64. If x does not fit, the low 64 bits of its
// two's complement representation are returned and ok is false.
func (x BigInt) Int64() (v int64, ok bool) {
	u := x.mag.uint64()
	if x.neg {
		v = -int64(u)
	} else {
		v = int64(u)
	}
	return v, x.IsInt64()
}

// Uint64 returns x as a uint64. ok is false if x is negative or too large, in
// which case the low 64 bits of the magnitude are returned.
func (x BigInt) Uint64() (v uint64, ok bool) {
	return x.mag.uint64(), x.IsUint64()
}

func (x BigInt) Cmp(y BigInt) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := x.mag.cmp(y.mag)
	if x.neg {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y|.
func (x BigInt) CmpAbs(y BigInt) int { return x.mag.cmp(y.mag) }

func (x BigInt) Equal(y BigInt) bool            { return x.neg == y.neg && x.mag.cmp(y.mag) == 0 }
func (x BigInt) GreaterThan(y BigInt) bool      { return x.Cmp(y) > 0 }
func (x BigInt) GreaterOrEqualTo(y BigInt) bool { return x.Cmp(y) >= 0 }
func (x BigInt) LessThan(y BigInt) bool         { return x.Cmp(y) < 0 }
func (x BigInt) LessOrEqualTo(y BigInt) bool    { return x.Cmp(y) <= 0 }

func (x BigInt) Neg() BigInt {
	if len(x.mag) == 0 {
		return x
	}
	return BigInt{neg: !x.neg, mag: x.mag}
}

func (x BigInt) Abs() BigInt { return BigInt{mag: x.mag} }

func (x BigInt) Add(y BigInt) BigInt {
	if x.neg == y.neg {
		return makeBigInt(x.neg, natAdd(x.mag, y.mag))
	}
	// Differing signs: subtract the smaller magnitude from the larger and
	// take the sign of the larger.
	switch x.mag.cmp(y.mag) {
	case 1:
		return makeBigInt(x.neg, natSub(x.mag, y.mag))
	case -1:
		return makeBigInt(y.neg, natSub(y.mag, x.mag))
	}
	return BigInt{}
}

func (x BigInt) Sub(y BigInt) BigInt { return x.Add(y.Neg()) }
func (x BigInt) Inc() BigInt         { return x.Add(oneBigInt) }
func (x BigInt) Dec() BigInt         { return x.Sub(oneBigInt) }

// Mul returns x * y. The product of two values is never larger than the sum of
// their sizes, so Mul does not consult a Limits; see Limits.Mul for a checked
// version.
func (x BigInt) Mul(y BigInt) BigInt {
	return makeBigInt(x.neg != y.neg, natMul(x.mag, y.mag))
}

// BitLen returns the number of bits needed to represent |x|. BitLen of 0 is 0.
func (x BigInt) BitLen() int { return x.mag.bitLen() }

// TrailingZeros returns the number of consecutive zero bits at the bottom of
// |x|. TrailingZeros of 0 is 0.
func (x BigInt) TrailingZeros() uint { return x.mag.trailingZeros() }

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD(a, b BigInt) BigInt {
	return BigInt{mag: natGCD(a.mag, b.mag)}
}

// LCM returns the least common multiple of |a| and |b|, or 0 if either is 0.
func LCM(a, b BigInt) BigInt {
	if a.IsZero() || b.IsZero() {
		return BigInt{}
	}
	g := natGCD(a.mag, b.mag)
	q, _ := natDivMod(a.mag, g)
	return BigInt{mag: natMul(q, b.mag)}
}
