package num

import (
	"strconv"
	"strings"
)

// bigBase returns the largest power of base that fits in a digit, and the
// number of base digits that power represents.
func bigBase(base int) (bb uint32, n int) {
	b := uint64(base)
	p := b
	n = 1
	for p*b <= _M {
		p *= b
		n++
	}
	return uint32(p), n
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

// natFromDigits builds a nat from a string of digits that has already been
// validated for base. Separators are skipped.
func natFromDigits(s string, base int) nat {
	bb, n := bigBase(base)
	var z nat
	var acc uint32
	var cnt int
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			continue
		}
		acc = acc*uint32(base) + uint32(digitValue(s[i]))
		cnt++
		if cnt == n {
			z = natMulAddW(z, bb, acc)
			acc, cnt = 0, 0
		}
	}
	if cnt > 0 {
		mul := uint32(1)
		for i := 0; i < cnt; i++ {
			mul *= uint32(base)
		}
		z = natMulAddW(z, mul, acc)
	}
	return z
}

func (x nat) text(base int) string {
	if len(x) == 0 {
		return "0"
	}
	if base < 2 || base > 36 {
		panic("num: invalid base " + strconv.Itoa(base))
	}

	bb, n := bigBase(base)
	var chunks []uint32
	for q := x; len(q) > 0; {
		var r uint32
		q, r = natDivW(q, bb)
		chunks = append(chunks, r)
	}

	var sb strings.Builder
	sb.Grow(len(chunks) * n)
	sb.WriteString(strconv.FormatUint(uint64(chunks[len(chunks)-1]), base))
	for i := len(chunks) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(chunks[i]), base)
		for pad := n - len(s); pad > 0; pad-- {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// natFromBytes interprets buf as a big-endian unsigned integer.
func natFromBytes(buf []byte) nat {
	z := make(nat, (len(buf)+3)/4)
	for i := 0; i < len(buf); i++ {
		b := buf[len(buf)-1-i]
		z[i/4] |= uint32(b) << (8 * uint(i%4))
	}
	return z.norm()
}

func (x nat) bytes() []byte {
	n := (x.bitLen() + 7) / 8
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[n-1-i] = byte(x[i/4] >> (8 * uint(i%4)))
	}
	return buf
}
