package num

// Rational is an exact fraction of two BigInts, always held in lowest terms
// with a positive denominator. The zero value is 0.
//
// Like BigInt, Rational is an immutable value type.
type Rational struct {
	num BigInt

	// den is never negative. A zero den only occurs in the zero value of
	// Rational and stands for 1.
	den BigInt
}

func RationalFromBigInt(n BigInt) Rational {
	return Rational{num: n, den: oneBigInt}
}

// NewRational returns n/d in lowest terms. It fails with ErrDivisionByZero if
// d is 0.
func NewRational(n, d BigInt) (Rational, error) {
	if d.IsZero() {
		return Rational{}, errDivisionByZero("fraction denominator")
	}
	return normRational(n, d), nil
}

// RationalFromInt64 is a convenience for NewRational with machine integers.
func RationalFromInt64(n, d int64) (Rational, error) {
	return NewRational(BigIntFromInt64(n), BigIntFromInt64(d))
}

// normRational moves the sign onto the numerator and reduces by the gcd. d
// must not be zero.
func normRational(n, d BigInt) Rational {
	if d.neg {
		n, d = n.Neg(), d.Neg()
	}
	if n.IsZero() {
		return Rational{den: oneBigInt}
	}
	g := GCD(n, d)
	if !g.mag.isOne() {
		n, d = n.exactQuo(g), d.exactQuo(g)
	}
	return Rational{num: n, den: d}
}

// Num returns the numerator of x, which carries its sign.
func (x Rational) Num() BigInt { return x.num }

// Denom returns the denominator of x, which is always positive.
func (x Rational) Denom() BigInt {
	if x.den.IsZero() {
		return oneBigInt
	}
	return x.den
}

func (x Rational) IsZero() bool { return x.num.IsZero() }
func (x Rational) Sign() int    { return x.num.Sign() }

// IsInt reports whether the denominator of x is 1.
func (x Rational) IsInt() bool { return x.Denom().mag.isOne() }

func (x Rational) Neg() Rational { return Rational{num: x.num.Neg(), den: x.Denom()} }
func (x Rational) Abs() Rational { return Rational{num: x.num.Abs(), den: x.Denom()} }

// Inv returns 1/x. It fails with ErrDivisionByZero if x is 0.
func (x Rational) Inv() (Rational, error) {
	if x.num.IsZero() {
		return Rational{}, errDivisionByZero("fraction inversion")
	}
	return normRational(x.Denom(), x.num), nil
}

func (x Rational) Add(y Rational) Rational {
	a, b := x.num, x.Denom()
	c, d := y.num, y.Denom()
	return normRational(a.Mul(d).Add(c.Mul(b)), b.Mul(d))
}

func (x Rational) Sub(y Rational) Rational { return x.Add(y.Neg()) }

func (x Rational) Mul(y Rational) Rational {
	return normRational(x.num.Mul(y.num), x.Denom().Mul(y.Denom()))
}

// Quo returns x / y. It fails with ErrDivisionByZero if y is 0.
func (x Rational) Quo(y Rational) (Rational, error) {
	if y.num.IsZero() {
		return Rational{}, errDivisionByZero("fraction division")
	}
	return normRational(x.num.Mul(y.Denom()), x.Denom().Mul(y.num)), nil
}

// DivMod returns the floor of x / y and the remainder x - q*y, which has the
// sign of y (or is 0).
func (x Rational) DivMod(y Rational) (q BigInt, r Rational, err error) {
	if y.num.IsZero() {
		return q, r, errDivisionByZero("fraction divmod")
	}
	xd, yd := x.Denom(), y.Denom()
	q, rn, err := x.num.Mul(yd).DivMod(xd.Mul(y.num))
	if err != nil {
		return q, r, err
	}
	return q, normRational(rn, xd.Mul(yd)), nil
}

func (x Rational) FloorDiv(y Rational) (BigInt, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

func (x Rational) Mod(y Rational) (Rational, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// Pow returns x**y, subject to DefaultLimits. A negative exponent inverts x
// first, failing with ErrDivisionByZero if x is 0.
func (x Rational) Pow(y BigInt) (Rational, error) {
	return DefaultLimits.RationalPow(x, y)
}

func (x Rational) Cmp(y Rational) int {
	if x.num.neg != y.num.neg {
		if x.num.neg {
			return -1
		}
		return 1
	}
	return x.num.Mul(y.Denom()).Cmp(y.num.Mul(x.Denom()))
}

func (x Rational) Equal(y Rational) bool {
	return x.num.Equal(y.num) && x.Denom().Equal(y.Denom())
}

func (x Rational) GreaterThan(y Rational) bool      { return x.Cmp(y) > 0 }
func (x Rational) GreaterOrEqualTo(y Rational) bool { return x.Cmp(y) >= 0 }
func (x Rational) LessThan(y Rational) bool         { return x.Cmp(y) < 0 }
func (x Rational) LessOrEqualTo(y Rational) bool    { return x.Cmp(y) <= 0 }

// Floor returns the largest integer not greater than x.
func (x Rational) Floor() BigInt {
	q, _, _ := x.num.DivMod(x.Denom())
	return q
}

// Ceil returns the smallest integer not less than x.
func (x Rational) Ceil() BigInt {
	q, _, _ := x.num.Neg().DivMod(x.Denom())
	return q.Neg()
}

// Trunc returns x rounded towards zero.
func (x Rational) Trunc() BigInt {
	q, _, _ := x.num.QuoRem(x.Denom())
	return q
}

// Round returns x rounded to the nearest integer, with halves rounded to
// even.
func (x Rational) Round() BigInt {
	den := x.Denom()
	q, r, _ := x.num.DivMod(den)
	switch c := r.Add(r).Cmp(den); {
	case c < 0:
		return q
	case c > 0:
		return q.Inc()
	}
	if q.Bit(0) == 0 {
		return q
	}
	return q.Inc()
}
