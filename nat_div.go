package num

import (
	"math/bits"
)

// natDivW divides x by the single digit y, which must not be zero.
func natDivW(x nat, y uint32) (q nat, r uint32) {
	q = make(nat, len(x))
	var rem uint64
	d := uint64(y)
	for i := len(x) - 1; i >= 0; i-- {
		t := rem<<_W | uint64(x[i])
		q[i] = uint32(t / d)
		rem = t % d
	}
	return q.norm(), uint32(rem)
}

// natDivMod returns the truncated quotient and remainder of u / v. v must not
// be zero.
//
// This is Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) on base 2**32 digits, using
// 64-bit intermediates.
func natDivMod(u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic("num: nat division by zero")
	}
	if u.cmp(v) < 0 {
		return nil, u
	}
	if len(v) == 1 {
		q, r1 := natDivW(u, v[0])
		return q, natFromUint64(uint64(r1))
	}

	n := len(v)
	m := len(u) - n

	// D1: normalize so the top digit of the divisor has its high bit set.
	s := uint(bits.LeadingZeros32(v[n-1]))
	vn := make(nat, n)
	shlBits(vn, v, s)
	un := make(nat, len(u)+1)
	un[len(u)] = shlBits(un[:len(u)], u, s)

	q = make(nat, m+1)
	vtop, vsec := uint64(vn[n-1]), uint64(vn[n-2])

	for j := m; j >= 0; j-- {
		// D3: estimate qhat from the top two digits, then refine using the
		// third. qhat is at most 2 too large after this.
		num := uint64(un[j+n])<<_W | uint64(un[j+n-1])
		qhat := num / vtop
		rhat := num % vtop
		for qhat >= _B || qhat*vsec > (rhat<<_W|uint64(un[j+n-2])) {
			qhat--
			rhat += vtop
			if rhat >= _B {
				break
			}
		}

		// D4: multiply and subtract.
		var k, t int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t = int64(un[i+j]) - k - int64(p&_M)
			un[i+j] = uint32(t)
			k = int64(p>>_W) - (t >> _W)
		}
		t = int64(un[j+n]) - k
		un[j+n] = uint32(t)

		// D6: add back if we subtracted too much.
		if t < 0 {
			qhat--
			k = 0
			for i := 0; i < n; i++ {
				t = int64(un[i+j]) + int64(vn[i]) + k
				un[i+j] = uint32(t)
				k = t >> _W
			}
			un[j+n] += uint32(k)
		}
		q[j] = uint32(qhat)
	}

	// D8: unnormalize the remainder.
	r = natShr(un[:n].norm(), s)
	return q.norm(), r
}

func natMod(u, v nat) nat {
	_, r := natDivMod(u, v)
	return r
}

func natGCD(a, b nat) nat {
	for len(b) > 0 {
		a, b = b, natMod(a, b)
	}
	return a
}

// natRoot returns floor(x ** (1/k)) for k >= 1.
func natRoot(x nat, k uint) nat {
	if len(x) == 0 || k == 1 {
		return x
	}
	bl := uint(x.bitLen())
	if k >= bl {
		// 2**k > x, so the root is 1.
		return nat{1}
	}

	// Newton's iteration from an initial guess that is never below the root:
	// y = ((k-1)*y + x/y**(k-1)) / k
	y := natShl(nat{1}, (bl+k-1)/k)
	km1 := natFromUint64(uint64(k - 1))
	kn := natFromUint64(uint64(k))
	for {
		p := natPow(y, uint64(k-1))
		t, _ := natDivMod(x, p)
		t = natAdd(natMul(km1, y), t)
		next, _ := natDivMod(t, kn)
		if next.cmp(y) >= 0 {
			return y
		}
		y = next
	}
}

// natPow returns x**y by square-and-multiply. Callers are responsible for
// bounding the size of the result.
func natPow(x nat, y uint64) nat {
	z := nat{1}
	if y == 0 {
		return z
	}
	for i := bits.Len64(y) - 1; i >= 0; i-- {
		z = natSqr(z)
		if y&(1<<uint(i)) != 0 {
			z = natMul(z, x)
		}
	}
	return z
}

// natPowBig returns x**y for an arbitrary exponent nat.
func natPowBig(x, y nat) nat {
	z := nat{1}
	for i := y.bitLen() - 1; i >= 0; i-- {
		z = natSqr(z)
		if y.bit(uint(i)) != 0 {
			z = natMul(z, x)
		}
	}
	return z
}

// natPowMod returns x**y mod m. m must be greater than 1.
func natPowMod(x, y, m nat) nat {
	x = natMod(x, m)
	if len(y) > windowThreshold {
		return natPowModWindow(x, y, m)
	}
	z := nat{1}
	for i := y.bitLen() - 1; i >= 0; i-- {
		z = natMod(natSqr(z), m)
		if y.bit(uint(i)) != 0 {
			z = natMod(natMul(z, x), m)
		}
	}
	return z
}

// natPowModWindow is natPowMod using a fixed window of windowBits bits, which
// trades a small precomputed table for far fewer multiplications on large
// exponents.
func natPowModWindow(x, y, m nat) nat {
	var table [1 << windowBits]nat
	table[0] = nat{1}
	for i := 1; i < len(table); i++ {
		table[i] = natMod(natMul(table[i-1], x), m)
	}

	z := nat{1}
	top := ((y.bitLen() + windowBits - 1) / windowBits) * windowBits
	for pos := top - windowBits; pos >= 0; pos -= windowBits {
		for i := 0; i < windowBits; i++ {
			z = natMod(natSqr(z), m)
		}
		var w uint
		for i := windowBits - 1; i >= 0; i-- {
			w = w<<1 | y.bit(uint(pos+i))
		}
		if w != 0 {
			z = natMod(natMul(z, table[w]), m)
		}
	}
	return z
}
