package num

import (
	"math"
)

// PowRational returns x**y for a rational exponent, subject to DefaultLimits.
//
// An integral y gives the exact result of Pow. Otherwise, if x is
// non-negative and its numerator and denominator are both perfect powers of
// y's denominator, the exact Rational result is returned. Any other case
// falls back to a float64 result. A negative x with a non-integral y fails
// with ErrInvalidOperation, as does any real exponentiation without a real
// result; 0 to a negative power fails with ErrDivisionByZero, and a float
// result that is too large fails with ErrOverflow.
func (x Rational) PowRational(y Rational) (Number, error) {
	return DefaultLimits.PowRational(x, y)
}

func (l Limits) PowRational(x, y Rational) (Number, error) {
	if y.IsInt() {
		r, err := l.RationalPow(x, y.num)
		if err != nil {
			return Number{}, err
		}
		return RationalNumber(r), nil
	}

	if x.IsZero() {
		if y.num.neg {
			return Number{}, errDivisionByZero("zero to a negative power")
		}
		return RationalNumber(x), nil
	}
	if x.num.neg {
		return Number{}, errInvalidOperation("num: negative base %s to fractional power %s", x, y)
	}

	if root, ok := exactRoot(x, y.Denom()); ok {
		r, err := l.RationalPow(root, y.num)
		if err != nil {
			return Number{}, err
		}
		return RationalNumber(r), nil
	}

	xf, err := x.Float64()
	if err != nil {
		return Number{}, err
	}
	yf, err := y.Float64()
	if err != nil {
		return Number{}, err
	}
	return powFloat(xf, yf)
}

// exactRoot returns the k'th root of non-negative x if it is rational.
func exactRoot(x Rational, k BigInt) (Rational, bool) {
	num, den := x.num.mag, x.Denom().mag
	maxBits := num.bitLen()
	if b := den.bitLen(); b > maxBits {
		maxBits = b
	}

	kv, ok := k.Uint64()
	if !ok || kv >= uint64(maxBits) {
		// The root of anything but 1 lies strictly between 1 and 2.
		if num.isOne() && den.isOne() {
			return x, true
		}
		return Rational{}, false
	}

	rn := natRoot(num, uint(kv))
	if natPow(rn, kv).cmp(num) != 0 {
		return Rational{}, false
	}
	rd := natRoot(den, uint(kv))
	if natPow(rd, kv).cmp(den) != 0 {
		return Rational{}, false
	}
	return Rational{num: BigInt{mag: rn}, den: BigInt{mag: rd}}, true
}

// powFloat is math.Pow with errors in place of the special values that have
// no finite real result.
func powFloat(x, y float64) (Number, error) {
	if x == 0 && y < 0 {
		return Number{}, errDivisionByZero("zero to a negative power")
	}
	if x < 0 && y != math.Trunc(y) {
		return Number{}, errInvalidOperation("num: negative base %v to fractional power %v", x, y)
	}
	f := math.Pow(x, y)
	if math.IsInf(f, 0) && !math.IsInf(x, 0) && !math.IsInf(y, 0) {
		return Number{}, errOverflow("power result")
	}
	if math.IsNaN(f) {
		return Number{}, errInvalidOperation("num: %v to the power %v has no real result", x, y)
	}
	return FloatNumber(f), nil
}
