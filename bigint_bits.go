package num

// Bitwise operations treat a BigInt as an infinite two's complement bit
// pattern. For negative x the pattern is ^(|x|-1), which lets every operation
// work on magnitudes.

// Not returns ^x, which is -(x+1).
func (x BigInt) Not() BigInt {
	if x.neg {
		return BigInt{mag: natSubW(x.mag, 1)}
	}
	return makeBigInt(true, natAddW(x.mag, 1))
}

func (x BigInt) And(y BigInt) BigInt {
	if x.neg == y.neg {
		if x.neg {
			// (-x) & (-y) == ^(x-1) & ^(y-1) == ^((x-1) | (y-1)) == -(((x-1) | (y-1)) + 1)
			x1, y1 := natSubW(x.mag, 1), natSubW(y.mag, 1)
			return makeBigInt(true, natAddW(natOr(x1, y1), 1))
		}
		return BigInt{mag: natAnd(x.mag, y.mag)}
	}
	if x.neg {
		x, y = y, x
	}
	// x & (-y) == x & ^(y-1) == x &^ (y-1)
	return BigInt{mag: natAndNot(x.mag, natSubW(y.mag, 1))}
}

func (x BigInt) Or(y BigInt) BigInt {
	if x.neg == y.neg {
		if x.neg {
			// (-x) | (-y) == ^(x-1) | ^(y-1) == ^((x-1) & (y-1)) == -(((x-1) & (y-1)) + 1)
			x1, y1 := natSubW(x.mag, 1), natSubW(y.mag, 1)
			return makeBigInt(true, natAddW(natAnd(x1, y1), 1))
		}
		return BigInt{mag: natOr(x.mag, y.mag)}
	}
	if x.neg {
		x, y = y, x
	}
	// x | (-y) == x | ^(y-1) == ^((y-1) &^ x) == -(((y-1) &^ x) + 1)
	y1 := natSubW(y.mag, 1)
	return makeBigInt(true, natAddW(natAndNot(y1, x.mag), 1))
}

func (x BigInt) Xor(y BigInt) BigInt {
	if x.neg == y.neg {
		if x.neg {
			// (-x) ^ (-y) == ^(x-1) ^ ^(y-1) == (x-1) ^ (y-1)
			x1, y1 := natSubW(x.mag, 1), natSubW(y.mag, 1)
			return BigInt{mag: natXor(x1, y1)}
		}
		return BigInt{mag: natXor(x.mag, y.mag)}
	}
	if x.neg {
		x, y = y, x
	}
	// x ^ (-y) == x ^ ^(y-1) == ^(x ^ (y-1)) == -((x ^ (y-1)) + 1)
	y1 := natSubW(y.mag, 1)
	return makeBigInt(true, natAddW(natXor(x.mag, y1), 1))
}

// AndNot returns x &^ y.
func (x BigInt) AndNot(y BigInt) BigInt { return x.And(y.Not()) }

// Bit returns the value of bit i of x's two's complement representation.
func (x BigInt) Bit(i uint) uint {
	if x.neg {
		return 1 - natSubW(x.mag, 1).bit(i)
	}
	return x.mag.bit(i)
}

// SetBit returns x with bit i set to b, which must be 0 or 1.
func (x BigInt) SetBit(i uint, b uint) BigInt {
	if x.neg {
		// Bits of a negative number are the inverted bits of |x|-1.
		x1 := natSubW(x.mag, 1)
		if b == 0 {
			x1 = natSetBit(x1, i)
		} else {
			x1 = natClearBit(x1, i)
		}
		return makeBigInt(true, natAddW(x1, 1))
	}
	if b == 0 {
		return BigInt{mag: natClearBit(x.mag, i)}
	}
	return BigInt{mag: natSetBit(x.mag, i)}
}

// Lsh returns x << n, subject to DefaultLimits.
func (x BigInt) Lsh(n uint) (BigInt, error) { return DefaultLimits.Lsh(x, n) }

// Rsh returns x >> n, rounding towards negative infinity.
func (x BigInt) Rsh(n uint) BigInt {
	if x.neg {
		// -x >> n == -(((x-1) >> n) + 1)
		t := natShr(natSubW(x.mag, 1), n)
		return makeBigInt(true, natAddW(t, 1))
	}
	return BigInt{mag: natShr(x.mag, n)}
}

// ShiftLeft returns x << n, subject to DefaultLimits. A negative n shifts
// right by -n.
func (x BigInt) ShiftLeft(n BigInt) (BigInt, error) {
	return DefaultLimits.ShiftLeft(x, n)
}

// ShiftRight returns x >> n. A negative n shifts left by -n, subject to
// DefaultLimits.
func (x BigInt) ShiftRight(n BigInt) (BigInt, error) {
	return DefaultLimits.ShiftRight(x, n)
}

// shiftCount converts a shift count to a machine-sized magnitude. same is
// false if the sign of n reverses the direction of the shift.
func shiftCount(n BigInt) (count uint, same bool, err error) {
	if n.BitLen() > intSize-1 {
		return 0, false, errShift(n)
	}
	return uint(n.mag.uint64()), !n.neg, nil
}
