package num

type RandSource interface {
	Uint64() uint64
}

// RandBigInt generates a non-negative random integer of at most bits bits from
// an external source.
func RandBigInt(source RandSource, bits uint) BigInt {
	n := int((bits + _W - 1) / _W)
	mag := make(nat, n)
	for i := 0; i < n; i += 2 {
		v := source.Uint64()
		mag[i] = uint32(v)
		if i+1 < n {
			mag[i+1] = uint32(v >> _W)
		}
	}
	if r := bits % _W; r != 0 {
		mag[n-1] &= 1<<r - 1
	}
	return BigInt{mag: mag.norm()}
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b BigInt) BigInt {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b BigInt) BigInt {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func Smaller(a, b BigInt) BigInt {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
