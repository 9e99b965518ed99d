package num

import (
	"math"
)

// BigIntFromFloat64 creates a BigInt from a float64. Any fractional portion
// is truncated towards zero. NaN and infinities return 0 with inRange set to
// false.
func BigIntFromFloat64(f float64) (out BigInt, inRange bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return BigInt{}, false
	}
	f = math.Trunc(f)
	if f > -(1<<63) && f < 1<<63 {
		return BigIntFromInt64(int64(f)), true
	}

	// |f| >= 2**63: f is an integer with a 53-bit mantissa and an exponent
	// of at least 64, so mant * 2**64 is exact and fits in a uint64.
	mant, exp := math.Frexp(math.Abs(f))
	m := uint64(math.Ldexp(mant, 64))
	return makeBigInt(f < 0, natShl(natFromUint64(m), uint(exp-64))), true
}

// Float64 returns the float64 nearest to x, rounding half to even. It fails
// with ErrOverflow if x is too large to represent.
func (x BigInt) Float64() (float64, error) {
	n := x.BitLen()
	var f float64
	if n <= 64 {
		f = float64(x.mag.uint64())
	} else {
		// Keep the top 64 bits, folding any discarded bits into the lowest
		// bit so the conversion below still rounds correctly.
		top := natShr(x.mag, uint(n-64)).uint64()
		if natLowBitsSet(x.mag, uint(n-64)) {
			top |= 1
		}
		f = math.Ldexp(float64(top), n-64)
	}
	if math.IsInf(f, 0) {
		return 0, errOverflow("integer")
	}
	if x.neg {
		f = -f
	}
	return f, nil
}

// TrueDiv returns the float64 nearest to the exact quotient x / y. It fails
// with ErrDivisionByZero if y is 0, or ErrOverflow if the quotient is too
// large for a float64. Quotients too small to represent become (signed) 0.
func (x BigInt) TrueDiv(y BigInt) (float64, error) {
	if y.IsZero() {
		return 0, errDivisionByZero("division")
	}
	neg := x.neg != y.neg
	result, err := trueDivNat(x.mag, y.mag)
	if err != nil {
		return 0, err
	}
	if neg {
		result = -result
	}
	return result, nil
}

func trueDivNat(a, b nat) (float64, error) {
	aBits, bBits := a.bitLen(), b.bitLen()

	// Both operands are exactly representable, so a single IEEE division is
	// correctly rounded.
	if aBits <= dblMantDig && bBits <= dblMantDig {
		return float64(a.uint64()) / float64(b.uint64()), nil
	}

	diff := aBits - bBits
	if diff > dblMaxExp {
		return 0, errOverflow("integer division result")
	} else if diff < dblMinExp-dblMantDig-1 {
		return 0, nil
	}

	// Scale a so the integer quotient has dblMantDig+2 or dblMantDig+3
	// significant bits (fewer for subnormal results), leaving two or three
	// bits to round away.
	shift := diff
	if shift < dblMinExp {
		shift = dblMinExp
	}
	shift -= dblMantDig + 2

	inexact := false
	var x nat
	if shift <= 0 {
		x = natShl(a, uint(-shift))
	} else {
		x = natShr(a, uint(shift))
		inexact = natLowBitsSet(a, uint(shift))
	}

	x, rem := natDivMod(x, b)
	if len(rem) > 0 {
		inexact = true
	}

	xBits := x.bitLen()
	extraBits := xBits
	if m := dblMinExp - shift; m > extraBits {
		extraBits = m
	}
	extraBits -= dblMantDig

	// Round half to even on the low bits, treating inexact as a sticky bit.
	// x has at most dblMantDig+3 bits, so it fits in a uint64.
	mask := uint64(1) << uint(extraBits-1)
	low := x.uint64()
	if inexact {
		low |= 1
	}
	if low&mask != 0 && low&(3*mask-1) != 0 {
		low += mask
	}
	low &^= 2*mask - 1

	dx := float64(low)
	if shift+xBits >= dblMaxExp && (shift+xBits > dblMaxExp || dx == math.Ldexp(1, xBits)) {
		return 0, errOverflow("integer division result")
	}
	return math.Ldexp(dx, shift), nil
}
