package num

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
)

func parseBigInt(input string, base int) (BigInt, error) {
	if base != 0 && (base < 2 || base > 36) {
		return BigInt{}, errBase(base)
	}

	s := strings.TrimSpace(input)
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	prefixed := false
	if len(s) >= 2 && s[0] == '0' {
		var pb int
		switch s[1] {
		case 'b', 'B':
			pb = 2
		case 'o', 'O':
			pb = 8
		case 'x', 'X':
			pb = 16
		}
		if pb != 0 && (base == 0 || base == pb) {
			base, s, prefixed = pb, s[2:], true
			if len(s) > 0 && s[0] == '_' {
				s = s[1:]
			}
		}
	}
	if base == 0 {
		base = 10
	}

	if len(s) == 0 {
		return BigInt{}, errLiteral(input, base, "no digits")
	}

	sep := true // a separator may not come first
	leadingZero := s[0] == '0'
	nonZero := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			if sep {
				return BigInt{}, errLiteral(input, base, "misplaced digit separator")
			}
			sep = true
			continue
		}
		d := digitValue(c)
		if d >= base {
			return BigInt{}, errLiteral(input, base, fmt.Sprintf("invalid digit %q", c))
		}
		if d != 0 {
			nonZero = true
		}
		sep = false
	}
	if sep {
		return BigInt{}, errLiteral(input, base, "trailing digit separator")
	}
	if base == 10 && !prefixed && leadingZero && nonZero {
		return BigInt{}, errLiteral(input, base, "leading zeros in a non-zero decimal literal")
	}

	return makeBigInt(neg, natFromDigits(s, base)), nil
}

// String returns the decimal form of x.
func (x BigInt) String() string {
	return x.Text(10)
}

// Text returns the form of x in the given base, which must be between 2 and 36
// inclusive. Letters are lower case. No prefix is added.
func (x BigInt) Text(base int) string {
	s := x.mag.text(base)
	if x.neg {
		return "-" + s
	}
	return s
}

func (x BigInt) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	x.AsBigInt().Format(s, c)
}

// Repr returns a constructor-like form of x that ParseRepr accepts.
func (x BigInt) Repr() string {
	return "BigInt('" + x.String() + "')"
}

// ParseRepr parses the output of BigInt.Repr.
func ParseRepr(s string) (BigInt, error) {
	body, ok := reprBody(strings.TrimSpace(s), "BigInt(", ")")
	if !ok || len(body) < 2 || body[0] != '\'' || body[len(body)-1] != '\'' {
		return BigInt{}, errLiteral(s, 10, "not a BigInt representation")
	}
	return parseBigInt(body[1:len(body)-1], 10)
}

func reprBody(s, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, suffix) || len(s) < len(prefix)+len(suffix) {
		return "", false
	}
	return s[len(prefix) : len(s)-len(suffix)], true
}

// SafeValue implements redact.SafeValue; numeric values are never considered
// sensitive.
func (x BigInt) SafeValue() {}

// Bytes returns the big-endian magnitude of x. The sign is discarded.
func (x BigInt) Bytes() []byte { return x.mag.bytes() }

// IntoBigInt copies x into b.
func (x BigInt) IntoBigInt(b *big.Int) {
	b.SetBytes(x.mag.bytes())
	if x.neg {
		b.Neg(b)
	}
}

func (x BigInt) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	x.IntoBigInt(b)
	return b
}

func (x BigInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *BigInt) UnmarshalText(bts []byte) (err error) {
	v, err := parseBigInt(string(bts), 0)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x BigInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

func (x *BigInt) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errLiteral(string(bts), 10, "invalid JSON string")
		}
		bts = bts[1 : ln-1]
	}
	return x.UnmarshalText(bts)
}

// Binary encoding tags. The encoding is a tag byte, then for non-zero values
// a uvarint digit count and one uvarint per base 2**32 digit, least
// significant first.
const (
	binaryTagZero byte = 0
	binaryTagPos  byte = 1
	binaryTagNeg  byte = 2
)

func (x BigInt) MarshalBinary() ([]byte, error) {
	return x.appendBinary(nil), nil
}

func (x BigInt) appendBinary(buf []byte) []byte {
	switch {
	case x.IsZero():
		return append(buf, binaryTagZero)
	case x.neg:
		buf = append(buf, binaryTagNeg)
	default:
		buf = append(buf, binaryTagPos)
	}
	buf = binary.AppendUvarint(buf, uint64(len(x.mag)))
	for _, d := range x.mag {
		buf = binary.AppendUvarint(buf, uint64(d))
	}
	return buf
}

func (x *BigInt) UnmarshalBinary(data []byte) error {
	v, rest, err := decodeBinary(data)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return errBinary("%d trailing bytes", len(rest))
	}
	*x = v
	return nil
}

func decodeBinary(data []byte) (v BigInt, rest []byte, err error) {
	if len(data) == 0 {
		return v, nil, errBinary("empty input")
	}
	tag, data := data[0], data[1:]
	switch tag {
	case binaryTagZero:
		return BigInt{}, data, nil
	case binaryTagPos, binaryTagNeg:
	default:
		return v, nil, errBinary("unknown sign tag %d", tag)
	}

	n, sz := binary.Uvarint(data)
	if sz <= 0 || n == 0 || n > uint64(len(data)) {
		return v, nil, errBinary("invalid digit count")
	}
	data = data[sz:]
	mag := make(nat, n)
	for i := range mag {
		d, sz := binary.Uvarint(data)
		if sz <= 0 || d > _M {
			return v, nil, errBinary("invalid digit %d", i)
		}
		mag[i], data = uint32(d), data[sz:]
	}
	if mag[len(mag)-1] == 0 {
		return v, nil, errBinary("non-canonical magnitude")
	}
	return BigInt{neg: tag == binaryTagNeg, mag: mag}, data, nil
}

func errBinary(format string, args ...interface{}) error {
	err := errors.Newf("num: invalid binary encoding: "+format, args...)
	return errors.Mark(err, ErrInvalidLiteral)
}
