/*
Package num provides an arbitrary-precision integer (BigInt) and an exact
rational (Rational) built on it, with the numeric semantics of a dynamically
sized integer type: floored division and modulo, two's complement bitwise
operators, three-argument power and correctly rounded conversion to float64.

BigInt and Rational are value types; all operations return new values.

Simple example:

	a, _ := BigIntFromString("0x1F", 0)
	b := BigIntFromInt64(-7)
	q, r, _ := b.DivMod(BigIntFromInt64(3))
	fmt.Println(a, q, r)
	// Output: 31 -3 2

BigInt can be created from a variety of sources:

	BigIntFromInt64(v int64) BigInt
	BigIntFromUint64(v uint64) BigInt
	BigIntFromString(s string, base int) (BigInt, error)
	BigIntFromBig(v *big.Int) BigInt
	BigIntFromBytes(buf []byte) BigInt
	BigIntFromFloat64(f float64) (out BigInt, inRange bool)

BigIntFromString accepts surrounding whitespace and an optional sign. Base 0
selects the base from a 0b, 0o or 0x prefix (case-insensitive), defaulting to
10; an explicit base of 2, 8 or 16 also accepts its own prefix. A single '_'
may separate two digits or follow a prefix. A non-zero decimal literal may not
start with '0'.

Shifts by a BigInt count shift the other way when the count is negative, so
5 >> -1 == 10. Operations that can grow a result far beyond the size of their
operands are bounded by a Limits value; BigInt and Rational methods use
DefaultLimits.

Operations that mix integers, rationals and floats produce a Number, which
records which of the three it holds.

Errors are marked with one of ErrInvalidLiteral, ErrInvalidBase,
ErrDivisionByZero, ErrInvalidShift, ErrNotInvertible, ErrOverflow,
ErrInvalidOperation or ErrResourceExhausted; use errors.Is or KindOf.

BigInt and Rational support the following formatting and marshalling
interfaces:

	- fmt.Formatter (BigInt)
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler
	- redact.SafeValue

*/
package num
