package num

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/shabbyrobe/golib/assert"
)

var i64 = BigIntFromInt64

func bis(s string) BigInt {
	s = strings.Replace(s, " ", "", -1)
	return MustBigIntFromString(s)
}

func bigs(s string) *big.Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("num: big string %q invalid", s))
	}
	return b
}

func TestBigIntFromString(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		base int
		out  BigInt
	}{
		{"0", 10, i64(0)},
		{"-0", 10, i64(0)},
		{"00", 10, i64(0)},
		{"0_0", 0, i64(0)},
		{"1_000", 10, i64(1000)},
		{"0x1F", 0, i64(31)},
		{"0X1f", 0, i64(31)},
		{"0x_f", 0, i64(15)},
		{"-0b1010", 0, i64(-10)},
		{"  +0o17 ", 0, i64(15)},
		{"\t42\n", 10, i64(42)},
		{"ZZ", 36, i64(1295)},
		{"zz", 36, i64(1295)},
		{"0b1", 16, i64(177)},
		{"0b1", 2, i64(1)},
		{"0x10", 16, i64(16)},
		{"777", 8, i64(511)},
		{"18446744073709551616", 10, bis("0x1_0000_0000_0000_0000")},
		{"-340282366920938463463374607431768211455", 0, BigIntFromBig(bigs("-0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"))},
	} {
		t.Run(fmt.Sprintf("%d/%s/%d", idx, tc.in, tc.base), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := BigIntFromString(tc.in, tc.base)
			tt.MustOK(err)
			tt.MustAssert(tc.out.Equal(v), "%s != %s", tc.out, v)
		})
	}
}

func TestBigIntFromStringInvalid(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		base int
		kind ErrorKind
	}{
		{"08", 10, KindInvalidLiteral},
		{"08", 0, KindInvalidLiteral},
		{"5", 1, KindInvalidBase},
		{"5", 37, KindInvalidBase},
		{"5", -1, KindInvalidBase},
		{"garbage", 99, KindInvalidBase}, // base is checked first
		{"", 10, KindInvalidLiteral},
		{"   ", 10, KindInvalidLiteral},
		{"-", 10, KindInvalidLiteral},
		{"_1", 10, KindInvalidLiteral},
		{"1_", 10, KindInvalidLiteral},
		{"1__0", 10, KindInvalidLiteral},
		{"0x", 0, KindInvalidLiteral},
		{"0x_", 0, KindInvalidLiteral},
		{"0x__1", 0, KindInvalidLiteral},
		{"12a", 10, KindInvalidLiteral},
		{"2", 2, KindInvalidLiteral},
		{"0x1F", 10, KindInvalidLiteral},
		{"0b1", 8, KindInvalidLiteral},
		{"- 5", 10, KindInvalidLiteral},
		{"1 000", 10, KindInvalidLiteral},
		{"--1", 10, KindInvalidLiteral},
	} {
		t.Run(fmt.Sprintf("%d/%q/%d", idx, tc.in, tc.base), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := BigIntFromString(tc.in, tc.base)
			tt.MustAssert(err != nil)
			tt.MustEqual(tc.kind, KindOf(err))
		})
	}
}

func TestBigIntFromStringLiteralError(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := BigIntFromString(" 1_2x", 16)
	var le *LiteralError
	tt.MustAssert(errors.As(err, &le))
	tt.MustEqual(" 1_2x", le.Input)
	tt.MustEqual(16, le.Base)
	tt.MustAssert(errors.Is(err, ErrInvalidLiteral))
}

func TestBigIntString(t *testing.T) {
	for idx, tc := range []struct {
		v    BigInt
		base int
		out  string
	}{
		{BigInt{}, 10, "0"},
		{i64(-1), 10, "-1"},
		{i64(1000000000), 10, "1000000000"},
		{i64(4294967295), 10, "4294967295"},
		{i64(4294967296), 10, "4294967296"},
		{bis("1_000_000_000_000_000_000_000_000_000"), 10, "1000000000000000000000000000"},
		{i64(255), 16, "ff"},
		{i64(-255), 2, "-11111111"},
		{i64(1295), 36, "zz"},
		{bis("0x1_0000_0000_0000_0001"), 16, "10000000000000001"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.v.Text(tc.base))
			if tc.base == 10 {
				tt.MustEqual(tc.out, tc.v.String())
			}
		})
	}
}

func TestBigIntFormat(t *testing.T) {
	tt := assert.WrapTB(t)
	v := i64(-255)
	tt.MustEqual("-255", fmt.Sprintf("%d", v))
	tt.MustEqual("-255", fmt.Sprintf("%v", v))
	tt.MustEqual("-0xff", fmt.Sprintf("%#x", v))
	tt.MustEqual("-FF", fmt.Sprintf("%X", v))
	tt.MustEqual("   -255", fmt.Sprintf("%7d", v))
	tt.MustEqual("+255", fmt.Sprintf("%+d", v.Neg()))
}

func TestBigIntRepr(t *testing.T) {
	tt := assert.WrapTB(t)
	v := bis("-123456789012345678901234567890")
	tt.MustEqual("BigInt('-123456789012345678901234567890')", v.Repr())

	back, err := ParseRepr(v.Repr())
	tt.MustOK(err)
	tt.MustAssert(v.Equal(back))

	for _, bad := range []string{"", "BigInt(123)", "BigInt('12'", "Int('1')", "BigInt('0x1')"} {
		_, err := ParseRepr(bad)
		tt.MustEqual(KindInvalidLiteral, KindOf(err), bad)
	}
}

func TestBigIntCmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b BigInt
		c    int
	}{
		{i64(0), i64(0), 0},
		{i64(-1), i64(0), -1},
		{i64(0), i64(-1), 1},
		{i64(1), i64(0), 1},
		{i64(-2), i64(-1), -1},
		{i64(2), i64(1), 1},
		{bis("0x1_0000_0000"), i64(0xFFFFFFFF), 1},
		{bis("-0x1_0000_0000"), i64(-0xFFFFFFFF), -1},
		{bis("0x2_0000_0000"), bis("0x1_FFFF_FFFF"), 1},
		{bis("0x1_0000_0001"), bis("0x1_0000_0002"), -1},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Cmp(tc.b))
			tt.MustEqual(-tc.c, tc.b.Cmp(tc.a))
			tt.MustEqual(tc.c == 0, tc.a.Equal(tc.b))
			tt.MustEqual(tc.c < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.c <= 0, tc.a.LessOrEqualTo(tc.b))
			tt.MustEqual(tc.c > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.c >= 0, tc.a.GreaterOrEqualTo(tc.b))
		})
	}
}

func TestBigIntNegZero(t *testing.T) {
	tt := assert.WrapTB(t)
	z := BigInt{}
	tt.MustAssert(z.Neg().Equal(z))
	tt.MustEqual(0, z.Neg().Sign())
	tt.MustAssert(i64(5).Sub(i64(5)).Equal(z))
	tt.MustEqual(false, i64(-5).Add(i64(5)).neg)
	tt.MustEqual(false, i64(-5).Mul(i64(0)).neg)
}

func TestBigIntAdd(t *testing.T) {
	for _, tc := range []struct {
		a, b, c BigInt
	}{
		{i64(1), i64(2), i64(3)},
		{i64(-1), i64(2), i64(1)},
		{i64(1), i64(-2), i64(-1)},
		{i64(-1), i64(-2), i64(-3)},
		{i64(0xFFFFFFFF), i64(1), bis("0x1_0000_0000")},
		{bis("0xFFFF_FFFF_FFFF_FFFF_FFFF_FFFF"), i64(1), bis("0x1_0000_0000_0000_0000_0000_0000")},
		{bis("-0x1_0000_0000_0000_0000"), i64(1), bis("-0xFFFF_FFFF_FFFF_FFFF")},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Add(tc.b)), "found %s", tc.a.Add(tc.b))
			tt.MustAssert(tc.c.Equal(tc.b.Add(tc.a)))
			tt.MustAssert(tc.a.Equal(tc.c.Sub(tc.b)))
		})
	}
}

func TestBigIntMul(t *testing.T) {
	for _, tc := range []struct {
		a, b, c BigInt
	}{
		{i64(0), i64(-2), i64(0)},
		{i64(3), i64(-2), i64(-6)},
		{i64(-3), i64(-2), i64(6)},
		{i64(0xFFFFFFFF), i64(0xFFFFFFFF), bis("0xFFFF_FFFE_0000_0001")},
		{bis("12345678901234567890"), bis("98765432109876543210"), bis("1219326311370217952237463801111263526900")},
	} {
		t.Run(fmt.Sprintf("%s*%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Mul(tc.b)), "found %s", tc.a.Mul(tc.b))
		})
	}
}

func TestBigIntMulKaratsuba(t *testing.T) {
	tt := assert.WrapTB(t)
	src := &rando{rng: globalRNG}
	for _, sz := range [][2]uint{{70 * 32, 70 * 32}, {200 * 32, 71 * 32}, {300 * 32, 150 * 32}, {1000 * 32, 999 * 32}} {
		a, b := src.BigIntBits(sz[0]), src.BigIntBits(sz[1])
		exp := new(big.Int).Mul(a.AsBigInt(), b.AsBigInt())
		tt.MustEqual(exp.String(), a.Mul(b).String())
		tt.MustAssert(natMulBasic(a.mag, b.mag).cmp(natMul(a.mag, b.mag)) == 0)
	}
}

func TestBigIntDivMod(t *testing.T) {
	for _, tc := range []struct {
		a, b, q, r BigInt
	}{
		{i64(-7), i64(3), i64(-3), i64(2)},
		{i64(7), i64(-3), i64(-3), i64(-2)},
		{i64(-7), i64(-3), i64(2), i64(-1)},
		{i64(7), i64(3), i64(2), i64(1)},
		{i64(6), i64(-3), i64(-2), i64(0)},
		{i64(0), i64(-3), i64(0), i64(0)},
		{i64(2), i64(5), i64(0), i64(2)},
		{i64(-2), i64(5), i64(-1), i64(3)},
		{bis("0x1_0000_0000_0000_0000_0000_0000"), bis("0x1_0000_0000_0000_0001"), bis("0xFFFFFFFF"), bis("0xFFFF_FFFF_0000_0001")},
	} {
		t.Run(fmt.Sprintf("divmod(%s,%s)=(%s,%s)", tc.a, tc.b, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r, err := tc.a.DivMod(tc.b)
			tt.MustOK(err)
			tt.MustAssert(tc.q.Equal(q), "q: %s", q)
			tt.MustAssert(tc.r.Equal(r), "r: %s", r)
			tt.MustAssert(tc.a.Equal(q.Mul(tc.b).Add(r)))
		})
	}
}

func TestBigIntDivByZero(t *testing.T) {
	tt := assert.WrapTB(t)
	_, _, err := i64(1).DivMod(BigInt{})
	tt.MustAssert(errors.Is(err, ErrDivisionByZero))
	_, err = i64(1).FloorDiv(BigInt{})
	tt.MustAssert(errors.Is(err, ErrDivisionByZero))
	_, err = i64(1).Mod(BigInt{})
	tt.MustAssert(errors.Is(err, ErrDivisionByZero))
	_, _, err = i64(1).QuoRem(BigInt{})
	tt.MustAssert(errors.Is(err, ErrDivisionByZero))
	_, err = i64(1).Quo(BigInt{})
	tt.MustEqual(KindDivisionByZero, KindOf(err))
	_, err = i64(1).Rem(BigInt{})
	tt.MustEqual(KindDivisionByZero, KindOf(err))
}

func TestBigIntQuoRem(t *testing.T) {
	tt := assert.WrapTB(t)
	q, r, err := i64(-7).QuoRem(i64(3))
	tt.MustOK(err)
	tt.MustAssert(q.Equal(i64(-2)))
	tt.MustAssert(r.Equal(i64(-1)))
}

func TestBigIntDivLarge(t *testing.T) {
	// Exercise the qhat correction and add-back steps with divisors whose top
	// digits are close to the dividend's.
	tt := assert.WrapTB(t)
	src := &rando{rng: globalRNG}
	for i := 0; i < 2000; i++ {
		a, b := src.BigInt(), src.BigInt()
		if b.IsZero() {
			continue
		}
		ab, bb := a.AsBigInt(), b.AsBigInt()
		eq, er := new(big.Int).QuoRem(ab, bb, new(big.Int))
		q, r, err := a.QuoRem(b)
		tt.MustOK(err)
		tt.MustEqual(eq.String(), q.String(), "%s / %s", a, b)
		tt.MustEqual(er.String(), r.String(), "%s %% %s", a, b)
	}

	a := bis("0x8000_0000_FFFF_FFFF_0000_0000_0000_0000")
	b := bis("0x8000_0000_FFFF_FFFF_0000_0001")
	q, r, err := a.QuoRem(b)
	tt.MustOK(err)
	eq, er := new(big.Int).QuoRem(a.AsBigInt(), b.AsBigInt(), new(big.Int))
	tt.MustEqual(eq.String(), q.String())
	tt.MustEqual(er.String(), r.String())
}

func TestBigIntBitwise(t *testing.T) {
	for _, tc := range []struct {
		a, b          int64
		and, or, xor int64
	}{
		{-7, 12, 8, -3, -11},
		{-7, -12, -16, -3, 13},
		{7, -12, 4, -9, -13},
		{12, 10, 8, 14, 6},
		{0, -1, 0, -1, -1},
	} {
		t.Run(fmt.Sprintf("%d,%d", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, b := i64(tc.a), i64(tc.b)
			tt.MustAssert(a.And(b).Equal(i64(tc.and)), "and %s", a.And(b))
			tt.MustAssert(a.Or(b).Equal(i64(tc.or)), "or %s", a.Or(b))
			tt.MustAssert(a.Xor(b).Equal(i64(tc.xor)), "xor %s", a.Xor(b))
			tt.MustAssert(a.AndNot(b).Equal(i64(tc.a&^tc.b)), "andnot %s", a.AndNot(b))
		})
	}
}

func TestBigIntNot(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(i64(5).Not().Equal(i64(-6)))
	tt.MustAssert(i64(-5).Not().Equal(i64(4)))
	tt.MustAssert(i64(0).Not().Equal(i64(-1)))
	tt.MustAssert(i64(-1).Not().Equal(i64(0)))
	v := bis("-0xFFFF_FFFF_FFFF_FFFF_FFFF")
	tt.MustAssert(v.Not().Not().Equal(v))
}

func TestBigIntBit(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(uint(1), i64(5).Bit(0))
	tt.MustEqual(uint(0), i64(5).Bit(1))
	tt.MustEqual(uint(0), i64(5).Bit(1000))
	tt.MustEqual(uint(1), i64(-1).Bit(1000))
	tt.MustEqual(uint(0), i64(-2).Bit(0))
	tt.MustEqual(uint(1), i64(-2).Bit(1))

	tt.MustAssert(i64(5).SetBit(1, 1).Equal(i64(7)))
	tt.MustAssert(i64(5).SetBit(0, 0).Equal(i64(4)))
	tt.MustAssert(i64(-1).SetBit(0, 0).Equal(i64(-2)))
	tt.MustAssert(i64(-2).SetBit(0, 1).Equal(i64(-1)))
	tt.MustAssert(i64(-8).SetBit(64, 0).Equal(bis("-0x1_0000_0000_0000_0008")))
	tt.MustAssert(i64(0).SetBit(64, 1).Equal(bis("0x1_0000_0000_0000_0000")))
}

func TestBigIntBitLen(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, BigInt{}.BitLen())
	tt.MustEqual(1, i64(1).BitLen())
	tt.MustEqual(1, i64(-1).BitLen())
	tt.MustEqual(32, i64(0xFFFFFFFF).BitLen())
	tt.MustEqual(33, i64(-0x100000000).BitLen())
	tt.MustEqual(uint(32), i64(-0x100000000).TrailingZeros())
}

func TestBigIntShift(t *testing.T) {
	tt := assert.WrapTB(t)

	one := i64(1)
	v, err := one.Lsh(1000)
	tt.MustOK(err)
	tt.MustEqual(1001, v.BitLen())
	tt.MustAssert(v.Rsh(1000).Equal(one))

	v, err = i64(5).ShiftRight(i64(-1))
	tt.MustOK(err)
	tt.MustAssert(v.Equal(i64(10)))

	v, err = i64(5).ShiftLeft(i64(-1))
	tt.MustOK(err)
	tt.MustAssert(v.Equal(i64(2)))

	v, err = i64(5).ShiftLeft(i64(3))
	tt.MustOK(err)
	tt.MustAssert(v.Equal(i64(40)))

	tt.MustAssert(i64(-5).Rsh(1).Equal(i64(-3)))
	tt.MustAssert(i64(-1).Rsh(100).Equal(i64(-1)))
	tt.MustAssert(bis("-0x10_0000_0000_0000_0000_0000_0000").Rsh(99).Equal(i64(-2)))
	tt.MustAssert(bis("12345678901234567890").Rsh(3).Equal(bis("1543209862654320986")))
	tt.MustAssert(i64(12345).Rsh(64).Equal(BigInt{}))

	v, err = BigInt{}.ShiftLeft(i64(1 << 40))
	tt.MustOK(err)
	tt.MustAssert(v.IsZero())

	huge := bis("0x1_0000_0000_0000_0000")
	_, err = one.ShiftLeft(huge)
	tt.MustEqual(KindInvalidShift, KindOf(err))
	_, err = one.ShiftRight(huge)
	tt.MustEqual(KindInvalidShift, KindOf(err))
	_, err = one.ShiftRight(huge.Neg())
	tt.MustEqual(KindInvalidShift, KindOf(err))
	_, err = one.ShiftLeft(i64(minInt64))
	tt.MustEqual(KindInvalidShift, KindOf(err))
}

func TestBigIntShiftLimits(t *testing.T) {
	tt := assert.WrapTB(t)
	lim := Limits{MaxBits: 128}

	v, err := lim.Lsh(i64(1), 127)
	tt.MustOK(err)
	tt.MustEqual(128, v.BitLen())

	_, err = lim.Lsh(i64(1), 128)
	tt.MustEqual(KindResourceExhausted, KindOf(err))

	_, err = lim.ShiftRight(i64(3), i64(-127))
	tt.MustAssert(errors.Is(err, ErrResourceExhausted))

	_, err = i64(1).Lsh(1 << 40)
	tt.MustEqual(KindResourceExhausted, KindOf(err))
}

func TestBigIntPow(t *testing.T) {
	for _, tc := range []struct {
		x, y, out BigInt
	}{
		{i64(2), i64(100), bis("1267650600228229401496703205376")},
		{i64(-2), i64(3), i64(-8)},
		{i64(-2), i64(4), i64(16)},
		{i64(0), i64(0), i64(1)},
		{i64(0), i64(5), i64(0)},
		{i64(-1), bis("0x1_0000_0000_0000_0001"), i64(-1)},
		{i64(1), bis("0x1_0000_0000_0000_0001"), i64(1)},
		{i64(10), i64(30), bis("1_000_000_000_000_000_000_000_000_000_000")},
	} {
		t.Run(fmt.Sprintf("%s**%s", tc.x, tc.y), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := tc.x.Pow(tc.y)
			tt.MustOK(err)
			tt.MustAssert(tc.out.Equal(v), "found %s", v)
		})
	}
}

func TestBigIntPowErrors(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := i64(2).Pow(i64(-1))
	tt.MustEqual(KindInvalidOperation, KindOf(err))

	lim := Limits{MaxBits: 64}
	v, err := lim.Pow(i64(2), i64(63))
	tt.MustOK(err)
	tt.MustEqual(64, v.BitLen())
	_, err = lim.Pow(i64(2), i64(64))
	tt.MustEqual(KindResourceExhausted, KindOf(err))
	_, err = lim.Pow(i64(3), bis("0x1_0000_0000_0000_0000"))
	tt.MustEqual(KindResourceExhausted, KindOf(err))

	// Limits do not apply to trivial bases.
	_, err = lim.Pow(i64(-1), bis("0x1_0000_0000_0000_0000"))
	tt.MustOK(err)
}

func TestBigIntPowMod(t *testing.T) {
	for _, tc := range []struct {
		x, y, m, out int64
	}{
		{4, 13, 497, 445},
		{3, -1, 7, 5},
		{3, 2, -5, -1},
		{-3, 3, 5, 3},
		{7, -2, -10, -1},
		{0, 0, 5, 1},
		{5, 3, 1, 0},
		{5, 3, -1, 0},
		{10, 0, 3, 1},
	} {
		t.Run(fmt.Sprintf("pow(%d,%d,%d)", tc.x, tc.y, tc.m), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := i64(tc.x).PowMod(i64(tc.y), i64(tc.m))
			tt.MustOK(err)
			tt.MustAssert(i64(tc.out).Equal(v), "found %s", v)
		})
	}
}

func TestBigIntPowModLarge(t *testing.T) {
	tt := assert.WrapTB(t)
	src := &rando{rng: globalRNG}
	for i := 0; i < 20; i++ {
		x := src.BigIntBits(512)
		y := src.BigIntBits(600) // longer than windowThreshold digits
		m := src.BigIntBits(256).Inc()
		v, err := x.PowMod(y, m)
		tt.MustOK(err)
		exp := new(big.Int).Exp(x.AsBigInt(), y.AsBigInt(), m.AsBigInt())
		tt.MustEqual(exp.String(), v.String())
	}
}

func TestBigIntPowModErrors(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := i64(2).PowMod(i64(3), BigInt{})
	tt.MustEqual(KindDivisionByZero, KindOf(err))
	_, err = i64(2).PowMod(i64(-1), i64(4))
	tt.MustEqual(KindNotInvertible, KindOf(err))
}

func TestModInverse(t *testing.T) {
	tt := assert.WrapTB(t)
	v, err := i64(3).ModInverse(i64(7))
	tt.MustOK(err)
	tt.MustAssert(v.Equal(i64(5)))

	v, err = i64(-3).ModInverse(i64(7))
	tt.MustOK(err)
	tt.MustAssert(v.Equal(i64(2)))

	_, err = i64(6).ModInverse(i64(9))
	tt.MustEqual(KindNotInvertible, KindOf(err))
	_, err = i64(6).ModInverse(BigInt{})
	tt.MustEqual(KindDivisionByZero, KindOf(err))
}

func TestGCD(t *testing.T) {
	for _, tc := range []struct {
		a, b, gcd, lcm int64
	}{
		{0, 0, 0, 0},
		{0, 5, 5, 0},
		{-4, 6, 2, 12},
		{-4, -6, 2, 12},
		{17, 5, 1, 85},
		{48, 18, 6, 144},
	} {
		t.Run(fmt.Sprintf("gcd(%d,%d)", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(GCD(i64(tc.a), i64(tc.b)).Equal(i64(tc.gcd)))
			tt.MustAssert(GCD(i64(tc.b), i64(tc.a)).Equal(i64(tc.gcd)))
			tt.MustAssert(LCM(i64(tc.a), i64(tc.b)).Equal(i64(tc.lcm)))
		})
	}
}

func TestBigIntRoot(t *testing.T) {
	tt := assert.WrapTB(t)
	v, err := i64(99).Sqrt()
	tt.MustOK(err)
	tt.MustAssert(v.Equal(i64(9)))

	v, err = i64(100).Sqrt()
	tt.MustOK(err)
	tt.MustAssert(v.Equal(i64(10)))

	e30 := bis("1_000_000_000_000_000_000_000_000_000_000")
	v, err = e30.Root(3)
	tt.MustOK(err)
	tt.MustAssert(v.Equal(bis("10_000_000_000")))

	v, err = e30.Dec().Root(3)
	tt.MustOK(err)
	tt.MustAssert(v.Equal(bis("9_999_999_999")))

	_, err = i64(-4).Sqrt()
	tt.MustEqual(KindInvalidOperation, KindOf(err))
	_, err = i64(4).Root(0)
	tt.MustEqual(KindInvalidOperation, KindOf(err))
}

func TestBigIntInt64(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, v := range []int64{0, 1, -1, maxInt64, minInt64, 1 << 32, -(1 << 32)} {
		out, ok := i64(v).Int64()
		tt.MustAssert(ok)
		tt.MustEqual(v, out)
	}
	_, ok := bis("0x8000_0000_0000_0000").Int64()
	tt.MustAssert(!ok)
	u, ok := bis("0xFFFF_FFFF_FFFF_FFFF").Uint64()
	tt.MustAssert(ok)
	tt.MustEqual(uint64(maxUint64), u)
	_, ok = i64(-1).Uint64()
	tt.MustAssert(!ok)
}

func TestBigIntBig(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, s := range []string{"0", "-1", "340282366920938463463374607431768211456", "-98765432109876543210987654321"} {
		b := bigs(s)
		v := BigIntFromBig(b)
		tt.MustEqual(s, v.String())
		tt.MustEqual(0, b.Cmp(v.AsBigInt()))
	}
	tt.MustAssert(BigIntFromBig(nil).IsZero())
	tt.MustAssert(BigIntFromBytes([]byte{0, 0, 1, 0}).Equal(i64(256)))
	tt.MustEqual([]byte{1, 0}, i64(-256).Bytes())
}
