package num

import (
	"math/bits"
)

// Limits bounds the size of values produced by operations that can grow a
// result far beyond the size of their operands: shifts and powers. Exceeding
// the limit fails with ErrResourceExhausted instead of attempting the
// allocation.
//
// MaxBits of 0 selects the default of 4 gigabits. Values above
// MaxBitsCeiling are clamped to it, so a Limits can never be disabled.
type Limits struct {
	MaxBits uint64
}

// DefaultLimits is used by the BigInt and Rational methods that do not take a
// Limits. The default allows results up to 4 gigabits (512MiB).
var DefaultLimits = Limits{MaxBits: defaultMaxBits}

// Bits returns the effective ceiling in bits.
func (l Limits) Bits() uint64 {
	max := l.MaxBits
	if max == 0 {
		max = defaultMaxBits
	}
	if max > MaxBitsCeiling {
		max = MaxBitsCeiling
	}
	return max
}

// Check fails with ErrResourceExhausted if a result of the given size in bits
// is not allowed.
func (l Limits) Check(op string, bits uint64) error {
	if max := l.Bits(); bits > max {
		return errExhausted(op, bits, max)
	}
	return nil
}

func (l Limits) Lsh(x BigInt, n uint) (BigInt, error) {
	if x.IsZero() {
		return x, nil
	}
	sz, carry := bits.Add64(uint64(x.BitLen()), uint64(n), 0)
	if carry != 0 {
		sz = maxUint64
	}
	if err := l.Check("left shift", sz); err != nil {
		return BigInt{}, err
	}
	return BigInt{neg: x.neg, mag: natShl(x.mag, n)}, nil
}

// ShiftLeft returns x << n. Negative n shifts right by -n. A count whose
// magnitude does not fit in a machine int fails with ErrInvalidShift.
func (l Limits) ShiftLeft(x, n BigInt) (BigInt, error) {
	cnt, left, err := shiftCount(n)
	if err != nil {
		return BigInt{}, err
	}
	if left {
		return l.Lsh(x, cnt)
	}
	return x.Rsh(cnt), nil
}

// ShiftRight returns x >> n. Negative n shifts left by -n.
func (l Limits) ShiftRight(x, n BigInt) (BigInt, error) {
	cnt, right, err := shiftCount(n)
	if err != nil {
		return BigInt{}, err
	}
	if right {
		return x.Rsh(cnt), nil
	}
	return l.Lsh(x, cnt)
}

func (l Limits) Mul(x, y BigInt) (BigInt, error) {
	if err := l.checkMul(x, y); err != nil {
		return BigInt{}, err
	}
	return x.Mul(y), nil
}

func (l Limits) checkMul(x, y BigInt) error {
	if x.IsZero() || y.IsZero() {
		return nil
	}
	return l.Check("multiplication", uint64(x.BitLen())+uint64(y.BitLen())-1)
}

// Pow returns x**y. y must not be negative: an integer cannot represent the
// result, so a negative exponent fails with ErrInvalidOperation. Use
// Rational.Pow for a fractional result.
func (l Limits) Pow(x, y BigInt) (BigInt, error) {
	if y.neg {
		return BigInt{}, errInvalidOperation("num: negative exponent %s requires a rational result", y)
	}
	if y.IsZero() {
		return oneBigInt, nil
	}
	if x.IsZero() {
		return BigInt{}, nil
	}
	if x.mag.isOne() {
		if x.neg && y.mag.bit(0) == 1 {
			return x, nil
		}
		return oneBigInt, nil
	}

	// |x| >= 2, so the result has at least (BitLen(x)-1)*y + 1 bits.
	if !y.IsUint64() {
		return BigInt{}, errExhausted("power", maxUint64, l.Bits())
	}
	e := y.mag.uint64()
	hi, lo := bits.Mul64(uint64(x.BitLen()-1), e)
	if hi != 0 || lo == maxUint64 {
		return BigInt{}, errExhausted("power", maxUint64, l.Bits())
	}
	if err := l.Check("power", lo+1); err != nil {
		return BigInt{}, err
	}

	return makeBigInt(x.neg && e&1 == 1, natPow(x.mag, e)), nil
}

// RationalPow returns x**y for an integer exponent. A negative exponent
// inverts x first; a zero base with a negative exponent fails with
// ErrDivisionByZero.
func (l Limits) RationalPow(x Rational, y BigInt) (Rational, error) {
	num, den := x.Num(), x.Denom()
	if y.neg {
		if num.IsZero() {
			return Rational{}, errDivisionByZero("zero to a negative power")
		}
		num, den = den, num
		if den.neg {
			num, den = num.Neg(), den.Neg()
		}
		y = y.Neg()
	}
	n, err := l.Pow(num, y)
	if err != nil {
		return Rational{}, err
	}
	d, err := l.Pow(den, y)
	if err != nil {
		return Rational{}, err
	}
	// Powers of coprime values are coprime; no reduction is needed.
	return Rational{num: n, den: d}, nil
}
