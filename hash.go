package num

// Hash returns a hash of x that is stable across processes and platforms.
// Equal values hash equally, and an integral Rational hashes the same as the
// equivalent BigInt.
//
// The hash of a non-negative x is x mod 2**61-1; a negative x hashes to the
// negation of the hash of |x|. -1 is reserved, so values that would hash to it
// hash to -2 instead.
func (x BigInt) Hash() int64 {
	h := int64(natHashMod(x.mag))
	if x.neg {
		h = -h
	}
	if h == -1 {
		h = -2
	}
	return h
}

// natHashMod returns x mod hashModulus.
func natHashMod(x nat) uint64 {
	var h uint64
	for i := len(x) - 1; i >= 0; i-- {
		// Multiplying by 2**32 modulo a Mersenne prime is a rotation within
		// its bit width.
		h = ((h << _W) & hashModulus) | (h >> (hashBits - _W))
		h += uint64(x[i])
		if h >= hashModulus {
			h -= hashModulus
		}
	}
	return h
}

// Hash returns a hash of x consistent with BigInt.Hash: if x is integral, its
// hash equals the hash of its numerator.
func (x Rational) Hash() int64 {
	den := x.Denom()
	dmod := natHashMod(den.mag)

	var h uint64
	if dmod == 0 {
		// The denominator has no inverse modulo the (prime) hash modulus.
		h = HashInf
	} else {
		// Fermat: d**(p-2) is the inverse of d modulo prime p.
		inv := natPowMod(natFromUint64(dmod), natFromUint64(hashModulus-2), natFromUint64(hashModulus))
		h = natMod(natMul(natFromUint64(natHashMod(x.num.mag)), inv), natFromUint64(hashModulus)).uint64()
	}

	r := int64(h)
	if x.num.neg {
		r = -r
	}
	if r == -1 {
		r = -2
	}
	return r
}
