package num

// Pow returns x**y, subject to DefaultLimits. A negative exponent fails with
// ErrInvalidOperation.
func (x BigInt) Pow(y BigInt) (BigInt, error) { return DefaultLimits.Pow(x, y) }

// PowMod returns x**y mod m.
//
// The result has the sign convention of Mod: it lies in [0, m) for positive m
// and in (m, 0] for negative m. If |m| == 1 the result is 0. A negative
// exponent raises the modular inverse of x to -y, failing with
// ErrNotInvertible if x and m are not coprime. m == 0 fails with
// ErrDivisionByZero.
func (x BigInt) PowMod(y, m BigInt) (BigInt, error) {
	if m.IsZero() {
		return BigInt{}, errDivisionByZero("pow() modulus")
	}
	if m.mag.isOne() {
		return BigInt{}, nil
	}

	base := x
	if y.neg {
		inv, err := x.ModInverse(m)
		if err != nil {
			return BigInt{}, err
		}
		base, y = inv, y.Neg()
	}

	b := natMod(base.mag, m.mag)
	if base.neg && len(b) > 0 {
		b = natSub(m.mag, b)
	}
	z := natPowMod(b, y.mag, m.mag)
	if m.neg && len(z) > 0 {
		return makeBigInt(true, natSub(m.mag, z)), nil
	}
	return BigInt{mag: z}, nil
}

// ModInverse returns the z in [0, |m|) for which x*z == 1 (mod m). It fails
// with ErrNotInvertible if gcd(x, m) != 1, or ErrDivisionByZero if m is 0.
func (x BigInt) ModInverse(m BigInt) (BigInt, error) {
	if m.IsZero() {
		return BigInt{}, errDivisionByZero("modular inverse")
	}
	am := m.Abs()
	a, _ := x.Mod(am)

	// Extended Euclid, tracking only the coefficient of a.
	r0, r1 := a, am
	s0, s1 := oneBigInt, zeroBigInt
	for !r1.IsZero() {
		q, r, _ := r0.DivMod(r1)
		r0, r1 = r1, r
		s0, s1 = s1, s0.Sub(q.Mul(s1))
	}
	if !r0.mag.isOne() {
		return BigInt{}, errNotInvertible(x, m)
	}
	inv, _ := s0.Mod(am)
	return inv, nil
}

// PowRational returns x**y for a rational exponent. See Rational.PowRational
// for the rules; an exact result with denominator 1 is returned as an
// IntKind Number.
func (x BigInt) PowRational(y Rational) (Number, error) {
	n, err := RationalFromBigInt(x).PowRational(y)
	if err != nil {
		return Number{}, err
	}
	return n.Normalize(), nil
}
