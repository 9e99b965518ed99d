package num

import (
	"math/bits"
)

// nat is an unsigned magnitude stored as base 2**32 digits, least significant
// first. A normalized nat has no most-significant zero digits; the empty nat
// is zero.
//
// Every function here treats its arguments as read-only and returns a freshly
// allocated result (or an argument unchanged), so nats may be shared freely
// between BigInt values.
type nat []uint32

func natFromUint64(v uint64) nat {
	if v == 0 {
		return nil
	} else if v>>_W == 0 {
		return nat{uint32(v)}
	}
	return nat{uint32(v), uint32(v >> _W)}
}

func (x nat) norm() nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

func (x nat) isOne() bool { return len(x) == 1 && x[0] == 1 }

// uint64 returns the low 64 bits of x.
func (x nat) uint64() uint64 {
	switch len(x) {
	case 0:
		return 0
	case 1:
		return uint64(x[0])
	}
	return uint64(x[1])<<_W | uint64(x[0])
}

func (x nat) cmp(y nat) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (x nat) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*_W + bits.Len32(x[len(x)-1])
}

func (x nat) trailingZeros() uint {
	for i, d := range x {
		if d != 0 {
			return uint(i)*_W + uint(bits.TrailingZeros32(d))
		}
	}
	return 0
}

func (x nat) bit(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j]>>(i%_W)) & 1
}

func natAdd(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return x
	}
	z := make(nat, len(x)+1)
	var c uint64
	for i := 0; i < len(y); i++ {
		t := uint64(x[i]) + uint64(y[i]) + c
		z[i], c = uint32(t), t>>_W
	}
	for i := len(y); i < len(x); i++ {
		t := uint64(x[i]) + c
		z[i], c = uint32(t), t>>_W
	}
	z[len(x)] = uint32(c)
	return z.norm()
}

// natSub returns x - y. The caller must ensure x >= y.
func natSub(x, y nat) nat {
	if len(y) == 0 {
		return x
	}
	z := make(nat, len(x))
	var b uint64
	for i := 0; i < len(y); i++ {
		t := uint64(x[i]) - uint64(y[i]) - b
		z[i], b = uint32(t), t>>63
	}
	for i := len(y); i < len(x); i++ {
		t := uint64(x[i]) - b
		z[i], b = uint32(t), t>>63
	}
	if b != 0 {
		panic("num: nat subtraction underflow")
	}
	return z.norm()
}

func natAddW(x nat, y uint32) nat {
	return natAdd(x, natFromUint64(uint64(y)))
}

func natSubW(x nat, y uint32) nat {
	return natSub(x, natFromUint64(uint64(y)))
}

// natMulAddW returns x*y + r.
func natMulAddW(x nat, y, r uint32) nat {
	z := make(nat, len(x)+1)
	c := uint64(r)
	for i, xi := range x {
		t := uint64(xi)*uint64(y) + c
		z[i], c = uint32(t), t>>_W
	}
	z[len(x)] = uint32(c)
	return z.norm()
}

func natMulBasic(x, y nat) nat {
	z := make(nat, len(x)+len(y))
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		var c uint64
		for j, xj := range x {
			t := uint64(xj)*uint64(yi) + uint64(z[i+j]) + c
			z[i+j], c = uint32(t), t>>_W
		}
		z[i+len(x)] = uint32(c)
	}
	return z.norm()
}

func natMul(x, y nat) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) < karatsubaThreshold {
		return natMulBasic(x, y)
	}

	n := (len(x) + 1) / 2
	x0, x1 := x[:n].norm(), x[n:]

	if len(y) <= n {
		// y is too short to split at n; multiply each half of x by y.
		lo := natMul(x0, y)
		hi := natMul(x1, y)
		return natAdd(natShlDigits(hi, n), lo)
	}

	y0, y1 := y[:n].norm(), y[n:]
	z0 := natMul(x0, y0)
	z2 := natMul(x1, y1)
	z1 := natMul(natAdd(x0, x1), natAdd(y0, y1))
	z1 = natSub(natSub(z1, z0), z2)

	return natAdd(natAdd(natShlDigits(z2, 2*n), natShlDigits(z1, n)), z0)
}

func natSqr(x nat) nat { return natMul(x, x) }

// natShlDigits returns x * 2**(32*n).
func natShlDigits(x nat, n int) nat {
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x)+n)
	copy(z[n:], x)
	return z
}

// shlBits stores x << s into z (len(z) >= len(x)) and returns the bits
// shifted out of the top digit. s must be < _W.
func shlBits(z, x nat, s uint) (c uint32) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	for i, xi := range x {
		z[i] = xi<<s | c
		c = xi >> (_W - s)
	}
	return c
}

func natShl(x nat, s uint) nat {
	if len(x) == 0 {
		return nil
	}
	d := int(s / _W)
	z := make(nat, len(x)+d+1)
	z[len(x)+d] = shlBits(z[d:d+len(x)], x, s%_W)
	return z.norm()
}

func natShr(x nat, s uint) nat {
	d := s / _W
	if d >= uint(len(x)) {
		return nil
	}
	b := s % _W
	src := x[d:]
	z := make(nat, len(src))
	if b == 0 {
		copy(z, src)
		return z
	}
	for i := range z {
		v := src[i] >> b
		if i+1 < len(src) {
			v |= src[i+1] << (_W - b)
		}
		z[i] = v
	}
	return z.norm()
}

// natLowBitsSet reports whether any of the lowest n bits of x are set.
func natLowBitsSet(x nat, n uint) bool {
	d := n / _W
	for i := uint(0); i < d && i < uint(len(x)); i++ {
		if x[i] != 0 {
			return true
		}
	}
	if b := n % _W; b != 0 && d < uint(len(x)) {
		return x[d]&(1<<b-1) != 0
	}
	return false
}

func natAnd(x, y nat) nat {
	if len(x) > len(y) {
		x, y = y, x
	}
	z := make(nat, len(x))
	for i := range z {
		z[i] = x[i] & y[i]
	}
	return z.norm()
}

// natAndNot returns x &^ y.
func natAndNot(x, y nat) nat {
	z := make(nat, len(x))
	for i := range z {
		if i < len(y) {
			z[i] = x[i] &^ y[i]
		} else {
			z[i] = x[i]
		}
	}
	return z.norm()
}

func natOr(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x))
	copy(z, x)
	for i, yi := range y {
		z[i] |= yi
	}
	return z
}

func natXor(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x))
	copy(z, x)
	for i, yi := range y {
		z[i] ^= yi
	}
	return z.norm()
}

// natSetBit returns x with bit i set to 1.
func natSetBit(x nat, i uint) nat {
	j := int(i / _W)
	n := len(x)
	if j >= n {
		n = j + 1
	}
	z := make(nat, n)
	copy(z, x)
	z[j] |= 1 << (i % _W)
	return z
}

// natClearBit returns x with bit i set to 0.
func natClearBit(x nat, i uint) nat {
	j := int(i / _W)
	if j >= len(x) {
		return x
	}
	z := make(nat, len(x))
	copy(z, x)
	z[j] &^= 1 << (i % _W)
	return z.norm()
}
