package num

import (
	"math"
	"strconv"
)

type NumberKind int

const (
	IntKind NumberKind = iota + 1
	RationalKind
	FloatKind
)

func (k NumberKind) String() string {
	switch k {
	case IntKind:
		return "int"
	case RationalKind:
		return "rational"
	case FloatKind:
		return "float"
	}
	return "invalid"
}

// Number holds the result of an operation that may produce an exact integer,
// an exact rational or an inexact float64.
//
// Binary operations on Numbers promote both operands to the wider of the two
// kinds, in the order IntKind < RationalKind < FloatKind, then operate on that
// kind. The exceptions are Quo and Pow, which produce a Rational from two
// Ints where the integer result would be inexact.
//
// The zero value of Number is an IntKind 0.
type Number struct {
	kind NumberKind
	i    BigInt
	r    Rational
	f    float64
}

func IntNumber(x BigInt) Number        { return Number{kind: IntKind, i: x} }
func RationalNumber(x Rational) Number { return Number{kind: RationalKind, r: x} }
func FloatNumber(f float64) Number     { return Number{kind: FloatKind, f: f} }

func (n Number) Kind() NumberKind {
	if n.kind == 0 {
		return IntKind
	}
	return n.kind
}

// Int returns the integer held by n; ok is false if n is not IntKind.
func (n Number) Int() (v BigInt, ok bool) {
	return n.i, n.Kind() == IntKind
}

// Rational returns n as a Rational; ok is false if n is FloatKind. Ints are
// widened.
func (n Number) Rational() (v Rational, ok bool) {
	switch n.Kind() {
	case IntKind:
		return RationalFromBigInt(n.i), true
	case RationalKind:
		return n.r, true
	}
	return Rational{}, false
}

// Float64 returns n converted to a float64, failing with ErrOverflow if an
// exact value is too large.
func (n Number) Float64() (float64, error) {
	switch n.Kind() {
	case IntKind:
		return n.i.Float64()
	case RationalKind:
		return n.r.Float64()
	}
	return n.f, nil
}

// Normalize returns an IntKind Number if n is a Rational with denominator 1.
func (n Number) Normalize() Number {
	if n.Kind() == RationalKind && n.r.IsInt() {
		return IntNumber(n.r.Num())
	}
	return n
}

func (n Number) String() string {
	switch n.Kind() {
	case IntKind:
		return n.i.String()
	case RationalKind:
		return n.r.String()
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

func (n Number) Sign() int {
	switch n.Kind() {
	case IntKind:
		return n.i.Sign()
	case RationalKind:
		return n.r.Sign()
	}
	switch {
	case n.f < 0:
		return -1
	case n.f > 0:
		return 1
	}
	return 0
}

func (n Number) Neg() Number {
	switch n.Kind() {
	case IntKind:
		return IntNumber(n.i.Neg())
	case RationalKind:
		return RationalNumber(n.r.Neg())
	}
	return FloatNumber(-n.f)
}

func (n Number) Abs() Number {
	if n.Sign() < 0 {
		return n.Neg()
	}
	return n
}

func widest(a, b Number) NumberKind {
	if a.Kind() > b.Kind() {
		return a.Kind()
	}
	return b.Kind()
}

// floats converts both operands for a FloatKind operation.
func floats(a, b Number) (af, bf float64, err error) {
	if af, err = a.Float64(); err != nil {
		return 0, 0, err
	}
	if bf, err = b.Float64(); err != nil {
		return 0, 0, err
	}
	return af, bf, nil
}

func rationals(a, b Number) (ar, br Rational) {
	ar, _ = a.Rational()
	br, _ = b.Rational()
	return ar, br
}

func (n Number) Add(m Number) (Number, error) {
	switch widest(n, m) {
	case IntKind:
		return IntNumber(n.i.Add(m.i)), nil
	case RationalKind:
		a, b := rationals(n, m)
		return RationalNumber(a.Add(b)), nil
	}
	a, b, err := floats(n, m)
	if err != nil {
		return Number{}, err
	}
	return FloatNumber(a + b), nil
}

func (n Number) Sub(m Number) (Number, error) { return n.Add(m.Neg()) }

func (n Number) Mul(m Number) (Number, error) { return DefaultLimits.MulNumber(n, m) }

// MulNumber returns n * m. Exact products whose numerator or denominator
// would exceed the ceiling fail with ErrResourceExhausted.
func (l Limits) MulNumber(n, m Number) (Number, error) {
	switch widest(n, m) {
	case IntKind:
		v, err := l.Mul(n.i, m.i)
		if err != nil {
			return Number{}, err
		}
		return IntNumber(v), nil
	case RationalKind:
		a, b := rationals(n, m)
		if err := l.checkMul(a.num, b.num); err != nil {
			return Number{}, err
		}
		if err := l.checkMul(a.Denom(), b.Denom()); err != nil {
			return Number{}, err
		}
		return RationalNumber(a.Mul(b)), nil
	}
	a, b, err := floats(n, m)
	if err != nil {
		return Number{}, err
	}
	return FloatNumber(a * b), nil
}

// Quo returns the exact quotient n / m for exact operands, which is a
// Rational even when both are Ints. Division by zero fails with
// ErrDivisionByZero for every kind.
func (n Number) Quo(m Number) (Number, error) {
	if widest(n, m) != FloatKind {
		a, b := rationals(n, m)
		r, err := a.Quo(b)
		if err != nil {
			return Number{}, err
		}
		return RationalNumber(r), nil
	}
	a, b, err := floats(n, m)
	if err != nil {
		return Number{}, err
	}
	if b == 0 {
		return Number{}, errDivisionByZero("float division")
	}
	return FloatNumber(a / b), nil
}

// DivMod returns the floored quotient and the remainder of n / m. The
// quotient is an Int for exact operands.
func (n Number) DivMod(m Number) (q, r Number, err error) {
	switch widest(n, m) {
	case IntKind:
		qi, ri, err := n.i.DivMod(m.i)
		if err != nil {
			return q, r, err
		}
		return IntNumber(qi), IntNumber(ri), nil
	case RationalKind:
		a, b := rationals(n, m)
		qi, rr, err := a.DivMod(b)
		if err != nil {
			return q, r, err
		}
		return IntNumber(qi), RationalNumber(rr), nil
	}

	a, b, err := floats(n, m)
	if err != nil {
		return q, r, err
	}
	if b == 0 {
		return q, r, errDivisionByZero("float modulo")
	}
	mod := math.Mod(a, b)
	if mod != 0 && (b < 0) != (mod < 0) {
		mod += b
	}
	div := (a - mod) / b
	fdiv := math.Floor(div)
	if div-fdiv > 0.5 {
		fdiv++
	}
	if mod == 0 {
		mod = math.Copysign(0, b)
	}
	return FloatNumber(fdiv), FloatNumber(mod), nil
}

func (n Number) Mod(m Number) (Number, error) {
	_, r, err := n.DivMod(m)
	return r, err
}

// Pow returns n**m, subject to DefaultLimits.
func (n Number) Pow(m Number) (Number, error) { return DefaultLimits.PowNumber(n, m) }

// PowNumber raises n to the power m. Two Ints produce an Int unless m is
// negative, in which case the result is the exact Rational. Exact operands
// otherwise follow Rational.PowRational.
func (l Limits) PowNumber(n, m Number) (Number, error) {
	switch {
	case n.Kind() == IntKind && m.Kind() == IntKind:
		if !m.i.neg {
			v, err := l.Pow(n.i, m.i)
			if err != nil {
				return Number{}, err
			}
			return IntNumber(v), nil
		}
		r, err := l.RationalPow(RationalFromBigInt(n.i), m.i)
		if err != nil {
			return Number{}, err
		}
		return RationalNumber(r), nil

	case widest(n, m) != FloatKind:
		a, b := rationals(n, m)
		v, err := l.PowRational(a, b)
		if err != nil {
			return Number{}, err
		}
		if n.Kind() == IntKind && v.Kind() == RationalKind {
			return v.Normalize(), nil
		}
		return v, nil
	}

	a, b, err := floats(n, m)
	if err != nil {
		return Number{}, err
	}
	return powFloat(a, b)
}

// Cmp compares n and m exactly, even when one of them is a float64. NaN is
// not comparable and fails with ErrInvalidOperation.
func (n Number) Cmp(m Number) (int, error) {
	if widest(n, m) != FloatKind {
		a, b := rationals(n, m)
		return a.Cmp(b), nil
	}
	for _, v := range []Number{n, m} {
		if v.Kind() == FloatKind && math.IsNaN(v.f) {
			return 0, errInvalidOperation("num: NaN is not comparable")
		}
	}
	if n.Kind() == FloatKind && m.Kind() == FloatKind {
		switch {
		case n.f < m.f:
			return -1, nil
		case n.f > m.f:
			return 1, nil
		}
		return 0, nil
	}

	// One side is exact; infinities compare by sign, anything else can be
	// converted to an exact Rational.
	if n.Kind() == FloatKind && math.IsInf(n.f, 0) {
		return int(math.Copysign(1, n.f)), nil
	}
	if m.Kind() == FloatKind && math.IsInf(m.f, 0) {
		return -int(math.Copysign(1, m.f)), nil
	}
	a, err := n.exact()
	if err != nil {
		return 0, err
	}
	b, err := m.exact()
	if err != nil {
		return 0, err
	}
	return a.Cmp(b), nil
}

func (n Number) exact() (Rational, error) {
	if n.Kind() == FloatKind {
		return RationalFromFloat64(n.f)
	}
	r, _ := n.Rational()
	return r, nil
}
