package num

// DivMod returns the floored quotient and remainder of x / y, such that
// x == q*y + r and r has the sign of y (or is 0).
func (x BigInt) DivMod(y BigInt) (q, r BigInt, err error) {
	if y.IsZero() {
		return q, r, errDivisionByZero("integer division or modulo")
	}
	qm, rm := natDivMod(x.mag, y.mag)
	q = makeBigInt(x.neg != y.neg, qm)
	r = makeBigInt(x.neg, rm)

	// The truncated remainder has the sign of x; floor semantics need the sign
	// of y. When they differ, step the quotient down by one and move the
	// remainder into range.
	if !r.IsZero() && r.neg != y.neg {
		q = q.Dec()
		r = r.Add(y)
	}
	return q, r, nil
}

// FloorDiv returns floor(x / y).
func (x BigInt) FloorDiv(y BigInt) (BigInt, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the floored modulus of x / y, which has the sign of y.
func (x BigInt) Mod(y BigInt) (BigInt, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// QuoRem returns the quotient of x / y truncated towards zero, and the
// remainder, which has the sign of x.
func (x BigInt) QuoRem(y BigInt) (q, r BigInt, err error) {
	if y.IsZero() {
		return q, r, errDivisionByZero("integer division")
	}
	qm, rm := natDivMod(x.mag, y.mag)
	return makeBigInt(x.neg != y.neg, qm), makeBigInt(x.neg, rm), nil
}

func (x BigInt) Quo(y BigInt) (BigInt, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

func (x BigInt) Rem(y BigInt) (BigInt, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// exactQuo divides by a non-zero value known to divide x.
func (x BigInt) exactQuo(y BigInt) BigInt {
	if y.mag.isOne() {
		if y.neg {
			return x.Neg()
		}
		return x
	}
	q, _ := natDivMod(x.mag, y.mag)
	return makeBigInt(x.neg != y.neg, q)
}

// Sqrt returns floor(sqrt(x)). x must not be negative.
func (x BigInt) Sqrt() (BigInt, error) {
	return x.Root(2)
}

// Root returns floor(x ** (1/k)) for non-negative x and k >= 1.
func (x BigInt) Root(k uint) (BigInt, error) {
	if x.neg {
		return BigInt{}, errInvalidOperation("num: root of negative number %s", x)
	}
	if k == 0 {
		return BigInt{}, errInvalidOperation("num: zeroth root of %s", x)
	}
	return BigInt{mag: natRoot(x.mag, k)}, nil
}
