package num

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Sentinel errors for each failure kind. Errors returned by this package are
// marked with exactly one of these; test with errors.Is, or use KindOf.
var (
	ErrInvalidLiteral    = errors.New("num: invalid literal")
	ErrInvalidBase       = errors.New("num: invalid base")
	ErrDivisionByZero    = errors.New("num: division by zero")
	ErrInvalidShift      = errors.New("num: invalid shift")
	ErrNotInvertible     = errors.New("num: not invertible")
	ErrOverflow          = errors.New("num: overflow")
	ErrInvalidOperation  = errors.New("num: invalid operation")
	ErrResourceExhausted = errors.New("num: resource exhausted")
)

type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindInvalidLiteral
	KindInvalidBase
	KindDivisionByZero
	KindInvalidShift
	KindNotInvertible
	KindOverflow
	KindInvalidOperation
	KindResourceExhausted
	KindUnknown
)

var errorKinds = []struct {
	kind ErrorKind
	err  error
	name string
}{
	{KindInvalidLiteral, ErrInvalidLiteral, "InvalidLiteral"},
	{KindInvalidBase, ErrInvalidBase, "InvalidBase"},
	{KindDivisionByZero, ErrDivisionByZero, "DivisionByZero"},
	{KindInvalidShift, ErrInvalidShift, "InvalidShift"},
	{KindNotInvertible, ErrNotInvertible, "NotInvertible"},
	{KindOverflow, ErrOverflow, "Overflow"},
	{KindInvalidOperation, ErrInvalidOperation, "InvalidOperation"},
	{KindResourceExhausted, ErrResourceExhausted, "ResourceExhausted"},
}

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindUnknown:
		return "Unknown"
	}
	for _, ek := range errorKinds {
		if ek.kind == k {
			return ek.name
		}
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// SafeValue implements redact.SafeValue.
func (k ErrorKind) SafeValue() {}

// KindOf classifies err. A nil error is KindNone; an error that did not come
// from this package is KindUnknown.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, ek := range errorKinds {
		if errors.Is(err, ek.err) {
			return ek.kind
		}
	}
	return KindUnknown
}

// LiteralError describes a numeral that could not be parsed. It is always
// marked with ErrInvalidLiteral and can be extracted with errors.As.
type LiteralError struct {
	Input  string
	Base   int
	Reason string
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("num: invalid literal %q for base %d: %s", e.Input, e.Base, e.Reason)
}

func errLiteral(input string, base int, reason string) error {
	return errors.Mark(&LiteralError{Input: input, Base: base, Reason: reason}, ErrInvalidLiteral)
}

func errBase(base int) error {
	err := errors.Newf("num: base %d out of range, must be 0 or 2..36", redact.Safe(base))
	return errors.Mark(err, ErrInvalidBase)
}

func errDivisionByZero(op string) error {
	err := errors.Newf("num: %s by zero", redact.Safe(op))
	return errors.Mark(err, ErrDivisionByZero)
}

func errShift(count BigInt) error {
	err := errors.Newf("num: shift count %s cannot be used as a machine-sized count", count)
	return errors.Mark(err, ErrInvalidShift)
}

func errNotInvertible(x, m BigInt) error {
	err := errors.Newf("num: base %s is not invertible for modulus %s", x, m)
	return errors.Mark(err, ErrNotInvertible)
}

func errOverflow(what string) error {
	err := errors.Newf("num: %s too large to convert to float64", redact.Safe(what))
	return errors.Mark(err, ErrOverflow)
}

func errInvalidOperation(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidOperation)
}

func errExhausted(op string, bits, limit uint64) error {
	err := errors.Newf("num: %s result exceeds the configured size limit", redact.Safe(op))
	err = errors.WithDetailf(err, "requested at least %d bits, limit is %d bits", redact.Safe(bits), redact.Safe(limit))
	return errors.Mark(err, ErrResourceExhausted)
}
