package num

import (
	"encoding/binary"
	"math"
	"math/big"
	"strings"
)

// RationalFromString parses a fraction "n/d", an integer, or a decimal such as
// "-1.25e-3". Surrounding whitespace is ignored. The numerator and
// denominator of a fraction are decimal integers and may carry their own
// signs; decimals may use '_' between digits.
func RationalFromString(input string) (Rational, error) {
	s := strings.TrimSpace(input)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		n, err := parseBigInt(s[:i], 10)
		if err != nil {
			return Rational{}, errLiteral(input, 10, "invalid numerator")
		}
		d, err := parseBigInt(s[i+1:], 10)
		if err != nil {
			return Rational{}, errLiteral(input, 10, "invalid denominator")
		}
		return NewRational(n, d)
	}
	if strings.ContainsAny(s, ".eE") {
		return parseDecimal(input, s)
	}
	n, err := parseBigInt(s, 10)
	if err != nil {
		return Rational{}, err
	}
	return RationalFromBigInt(n), nil
}

// parseDecimal parses [sign]digits[.digits][(e|E)[sign]digits]. Either the
// integer or the fraction digits may be empty, but not both.
func parseDecimal(input, s string) (Rational, error) {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	mant, exp := s, ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant, exp = s[:i], s[i+1:]
		if exp == "" {
			return Rational{}, errLiteral(input, 10, "missing exponent")
		}
	}

	intPart, fracPart := mant, ""
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		intPart, fracPart = mant[:i], mant[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return Rational{}, errLiteral(input, 10, "no digits")
	}
	for _, part := range []string{intPart, fracPart} {
		if part != "" && !validDecimalDigits(part) {
			return Rational{}, errLiteral(input, 10, "invalid decimal digits")
		}
	}

	digits := strings.Replace(intPart+fracPart, "_", "", -1)
	n := BigInt{mag: natFromDigits(digits, 10)}
	scale := int64(len(strings.Replace(fracPart, "_", "", -1)))

	if exp != "" {
		eneg := false
		if exp[0] == '+' || exp[0] == '-' {
			eneg = exp[0] == '-'
			exp = exp[1:]
		}
		if !validDecimalDigits(exp) {
			return Rational{}, errLiteral(input, 10, "invalid exponent")
		}
		e := makeBigInt(eneg, natFromDigits(exp, 10))
		ev, ok := e.Int64()
		if !ok || ev > 1<<31 || ev < -(1<<31) {
			return Rational{}, errLiteral(input, 10, "exponent out of range")
		}
		scale -= ev
	}

	ten := BigIntFromInt64(10)
	var r Rational
	if scale >= 0 {
		p, err := DefaultLimits.Pow(ten, BigIntFromInt64(scale))
		if err != nil {
			return Rational{}, err
		}
		r = normRational(n, p)
	} else {
		p, err := DefaultLimits.Pow(ten, BigIntFromInt64(-scale))
		if err != nil {
			return Rational{}, err
		}
		r = RationalFromBigInt(n.Mul(p))
	}
	if neg {
		r = r.Neg()
	}
	return r, nil
}

func validDecimalDigits(s string) bool {
	sep := true
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '_':
			if sep {
				return false
			}
			sep = true
		case '0' <= c && c <= '9':
			sep = false
		default:
			return false
		}
	}
	return !sep
}

// RationalFromBig creates a Rational from a big.Rat. A nil *big.Rat is 0.
func RationalFromBig(v *big.Rat) Rational {
	if v == nil {
		return Rational{den: oneBigInt}
	}
	// big.Rat is always normalized.
	return Rational{num: BigIntFromBig(v.Num()), den: BigIntFromBig(v.Denom())}
}

// RationalFromFloat64 returns the exact value of f. It fails with ErrOverflow
// for an infinity and ErrInvalidOperation for NaN.
func RationalFromFloat64(f float64) (Rational, error) {
	if math.IsInf(f, 0) {
		return Rational{}, errOverflow("infinity")
	} else if math.IsNaN(f) {
		return Rational{}, errInvalidOperation("num: NaN has no rational value")
	}
	if f == 0 {
		return Rational{den: oneBigInt}, nil
	}

	mant, exp := math.Frexp(f)
	m := BigIntFromInt64(int64(math.Ldexp(mant, dblMantDig)))
	exp -= dblMantDig
	if exp >= 0 {
		return RationalFromBigInt(BigInt{neg: m.neg, mag: natShl(m.mag, uint(exp))}), nil
	}
	return normRational(m, BigInt{mag: natShl(nat{1}, uint(-exp))}), nil
}

func (x Rational) AsBigRat() *big.Rat {
	return new(big.Rat).SetFrac(x.num.AsBigInt(), x.Denom().AsBigInt())
}

// Float64 returns the float64 nearest to x. It fails with ErrOverflow if x is
// too large to represent.
func (x Rational) Float64() (float64, error) {
	return x.num.TrueDiv(x.Denom())
}

// String returns "n/d", or just "n" if the denominator is 1.
func (x Rational) String() string {
	if x.IsInt() {
		return x.num.String()
	}
	return x.num.String() + "/" + x.Denom().String()
}

// FloatString returns x in decimal notation with prec digits after the
// point, subject to DefaultLimits. The last digit is truncated towards zero.
func (x Rational) FloatString(prec int) (string, error) {
	return DefaultLimits.FloatString(x, prec)
}

// FloatString renders x like Rational.FloatString. The scaled fraction must
// fit the ceiling, otherwise it fails with ErrResourceExhausted.
func (l Limits) FloatString(x Rational, prec int) (string, error) {
	den := x.Denom()
	q, r, _ := x.num.Abs().QuoRem(den)
	var p BigInt
	if prec > 0 {
		var err error
		if p, err = l.Pow(BigIntFromInt64(10), BigIntFromInt64(int64(prec))); err != nil {
			return "", err
		}
	}

	var sb strings.Builder
	if x.num.neg {
		sb.WriteByte('-')
	}
	sb.WriteString(q.String())
	if prec > 0 {
		frac, _ := r.Mul(p).Quo(den)
		fs := frac.String()
		sb.WriteByte('.')
		for i := len(fs); i < prec; i++ {
			sb.WriteByte('0')
		}
		sb.WriteString(fs)
	}
	return sb.String(), nil
}

// Repr returns a constructor-like form of x that ParseRationalRepr accepts.
func (x Rational) Repr() string {
	return "Rational(" + x.num.Repr() + ", " + x.Denom().Repr() + ")"
}

// ParseRationalRepr parses the output of Rational.Repr.
func ParseRationalRepr(s string) (Rational, error) {
	body, ok := reprBody(strings.TrimSpace(s), "Rational(", ")")
	if !ok {
		return Rational{}, errLiteral(s, 10, "not a Rational representation")
	}
	parts := strings.Split(body, ",")
	if len(parts) != 2 {
		return Rational{}, errLiteral(s, 10, "not a Rational representation")
	}
	n, err := ParseRepr(parts[0])
	if err != nil {
		return Rational{}, err
	}
	d, err := ParseRepr(parts[1])
	if err != nil {
		return Rational{}, err
	}
	return NewRational(n, d)
}

func (x Rational) SafeValue() {}

func (x Rational) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Rational) UnmarshalText(bts []byte) (err error) {
	v, err := RationalFromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Rational) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

func (x *Rational) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errLiteral(string(bts), 10, "invalid JSON string")
		}
		bts = bts[1 : ln-1]
	}
	return x.UnmarshalText(bts)
}

// MarshalBinary encodes the numerator and denominator, each prefixed by its
// encoded length as a uvarint.
func (x Rational) MarshalBinary() ([]byte, error) {
	n := x.num.appendBinary(nil)
	d := x.Denom().appendBinary(nil)
	buf := make([]byte, 0, len(n)+len(d)+2*binary.MaxVarintLen64)
	buf = binary.AppendUvarint(buf, uint64(len(n)))
	buf = append(buf, n...)
	buf = binary.AppendUvarint(buf, uint64(len(d)))
	buf = append(buf, d...)
	return buf, nil
}

func (x *Rational) UnmarshalBinary(data []byte) error {
	var parts [2]BigInt
	for i := range parts {
		ln, sz := binary.Uvarint(data)
		if sz <= 0 || ln > uint64(len(data)-sz) {
			return errBinary("invalid length prefix")
		}
		data = data[sz:]
		if err := parts[i].UnmarshalBinary(data[:ln]); err != nil {
			return err
		}
		data = data[ln:]
	}
	if len(data) != 0 {
		return errBinary("%d trailing bytes", len(data))
	}
	if parts[1].Sign() <= 0 {
		return errBinary("non-positive denominator")
	}
	*x = normRational(parts[0], parts[1])
	return nil
}
