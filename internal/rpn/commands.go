package rpn

import (
	"io"
	"math"

	"github.com/cockroachdb/errors"
	num "github.com/shabbyrobe/go-bignum"
)

type command func(m *Machine) error

var (
	commands map[byte]command
	words    map[string]command
)

var errNotInteger = errors.New("operation requires integer operands")

func init() {
	commands = map[byte]command{
		// Arithmetic
		'+': binary(func(m *Machine, a, b num.Number) (num.Number, error) { return a.Add(b) }),
		'-': binary(func(m *Machine, a, b num.Number) (num.Number, error) { return a.Sub(b) }),
		'*': binary(func(m *Machine, a, b num.Number) (num.Number, error) { return m.limits.MulNumber(a, b) }),
		'/': binary(func(m *Machine, a, b num.Number) (num.Number, error) {
			q, err := a.Quo(b)
			return q.Normalize(), err
		}),
		'%': binary(func(m *Machine, a, b num.Number) (num.Number, error) { return a.Mod(b) }),
		'^': binary(func(m *Machine, a, b num.Number) (num.Number, error) { return m.limits.PowNumber(a, b) }),

		// Push quotient then remainder
		'~': func(m *Machine) error {
			if err := m.stack.Need(2); err != nil {
				return err
			}
			q, r, err := m.stack.Peek(1).DivMod(m.stack.Peek(0))
			if err != nil {
				return err
			}
			m.stack.Drop(2)
			m.stack.Push(q)
			m.stack.Push(r)
			return nil
		},

		// Modular power: base exp mod |
		'|': func(m *Machine) error {
			if err := m.stack.Need(3); err != nil {
				return err
			}
			ints, err := integers(m.stack.Peek(2), m.stack.Peek(1), m.stack.Peek(0))
			if err != nil {
				return err
			}
			r, err := ints[0].PowMod(ints[1], ints[2])
			if err != nil {
				return err
			}
			m.stack.Drop(3)
			m.stack.Push(num.IntNumber(r))
			return nil
		},

		// Square root; exact for integers (floored) and perfect squares.
		'v': unary(func(m *Machine, a num.Number) (num.Number, error) {
			if i, ok := a.Int(); ok {
				r, err := i.Sqrt()
				return num.IntNumber(r), err
			}
			half, _ := num.RationalFromInt64(1, 2)
			return m.limits.PowNumber(a, num.RationalNumber(half))
		}),

		// Printing
		'p': func(m *Machine) error {
			if err := m.stack.Need(1); err != nil {
				return err
			}
			return m.print(m.stack.Peek(0), true)
		},
		'n': func(m *Machine) error {
			if err := m.stack.Need(1); err != nil {
				return err
			}
			if err := m.print(m.stack.Peek(0), false); err != nil {
				return err
			}
			m.stack.Drop(1)
			return nil
		},
		'f': func(m *Machine) error {
			return m.Dump(m.out)
		},

		// Stack control
		'c': func(m *Machine) error {
			m.stack.Clear()
			return nil
		},
		'd': func(m *Machine) error {
			if err := m.stack.Need(1); err != nil {
				return err
			}
			m.stack.Push(m.stack.Peek(0))
			return nil
		},
		'r': func(m *Machine) error {
			if err := m.stack.Need(2); err != nil {
				return err
			}
			a, b := m.stack.Peek(0), m.stack.Peek(1)
			m.stack.Drop(2)
			m.stack.Push(a)
			m.stack.Push(b)
			return nil
		},
		'z': func(m *Machine) error {
			m.stack.Push(num.IntNumber(num.BigIntFromInt64(int64(m.stack.Len()))))
			return nil
		},
		'q': func(m *Machine) error {
			return ErrQuit
		},

		// Parameters
		'o': func(m *Machine) error {
			return m.popParam(func(v int64) error {
				if v < 2 || v > 36 {
					return errors.Newf("output base %d out of range 2..36", v)
				}
				m.obase = int(v)
				return nil
			})
		},
		'O': func(m *Machine) error {
			m.stack.Push(num.IntNumber(num.BigIntFromInt64(int64(m.obase))))
			return nil
		},
		'k': func(m *Machine) error {
			return m.popParam(func(v int64) error {
				if v < 0 || v > math.MaxInt32 {
					return errors.Newf("precision %d out of range", v)
				}
				m.precision = int(v)
				return nil
			})
		},
		'K': func(m *Machine) error {
			m.stack.Push(num.IntNumber(num.BigIntFromInt64(int64(m.precision))))
			return nil
		},
	}

	words = map[string]command{
		"neg": unary(func(m *Machine, a num.Number) (num.Number, error) { return a.Neg(), nil }),
		"abs": unary(func(m *Machine, a num.Number) (num.Number, error) { return a.Abs(), nil }),

		"float": unary(func(m *Machine, a num.Number) (num.Number, error) {
			f, err := a.Float64()
			return num.FloatNumber(f), err
		}),
		"floor": unary(func(m *Machine, a num.Number) (num.Number, error) {
			q, _, err := a.DivMod(num.IntNumber(num.BigIntFromInt64(1)))
			return q, err
		}),
		"ceil": unary(func(m *Machine, a num.Number) (num.Number, error) {
			q, _, err := a.Neg().DivMod(num.IntNumber(num.BigIntFromInt64(1)))
			return q.Neg(), err
		}),
		"num": unary(func(m *Machine, a num.Number) (num.Number, error) {
			r, ok := a.Rational()
			if !ok {
				return num.Number{}, errors.New("num of a float")
			}
			return num.IntNumber(r.Num()), nil
		}),
		"den": unary(func(m *Machine, a num.Number) (num.Number, error) {
			r, ok := a.Rational()
			if !ok {
				return num.Number{}, errors.New("den of a float")
			}
			return num.IntNumber(r.Denom()), nil
		}),

		"not": unaryInt(func(m *Machine, a num.BigInt) (num.BigInt, error) { return a.Not(), nil }),
		"and": binaryInt(func(m *Machine, a, b num.BigInt) (num.BigInt, error) { return a.And(b), nil }),
		"or":  binaryInt(func(m *Machine, a, b num.BigInt) (num.BigInt, error) { return a.Or(b), nil }),
		"xor": binaryInt(func(m *Machine, a, b num.BigInt) (num.BigInt, error) { return a.Xor(b), nil }),
		"gcd": binaryInt(func(m *Machine, a, b num.BigInt) (num.BigInt, error) { return num.GCD(a, b), nil }),
		"shl": binaryInt(func(m *Machine, a, b num.BigInt) (num.BigInt, error) { return m.limits.ShiftLeft(a, b) }),
		"shr": binaryInt(func(m *Machine, a, b num.BigInt) (num.BigInt, error) { return m.limits.ShiftRight(a, b) }),
	}
}

func unary(fn func(m *Machine, a num.Number) (num.Number, error)) command {
	return func(m *Machine) error {
		if err := m.stack.Need(1); err != nil {
			return err
		}
		r, err := fn(m, m.stack.Peek(0))
		if err != nil {
			return err
		}
		m.stack.Drop(1)
		m.stack.Push(r)
		return nil
	}
}

func binary(fn func(m *Machine, a, b num.Number) (num.Number, error)) command {
	return func(m *Machine) error {
		if err := m.stack.Need(2); err != nil {
			return err
		}
		r, err := fn(m, m.stack.Peek(1), m.stack.Peek(0))
		if err != nil {
			return err
		}
		m.stack.Drop(2)
		m.stack.Push(r)
		return nil
	}
}

func unaryInt(fn func(m *Machine, a num.BigInt) (num.BigInt, error)) command {
	return unary(func(m *Machine, a num.Number) (num.Number, error) {
		ints, err := integers(a)
		if err != nil {
			return num.Number{}, err
		}
		r, err := fn(m, ints[0])
		return num.IntNumber(r), err
	})
}

func binaryInt(fn func(m *Machine, a, b num.BigInt) (num.BigInt, error)) command {
	return binary(func(m *Machine, a, b num.Number) (num.Number, error) {
		ints, err := integers(a, b)
		if err != nil {
			return num.Number{}, err
		}
		r, err := fn(m, ints[0], ints[1])
		return num.IntNumber(r), err
	})
}

func integers(vs ...num.Number) ([]num.BigInt, error) {
	out := make([]num.BigInt, len(vs))
	for i, v := range vs {
		iv, ok := v.Int()
		if !ok {
			return nil, errors.Wrapf(errNotInteger, "got %s", v.Kind())
		}
		out[i] = iv
	}
	return out, nil
}

// popParam pops an integer and passes it to set. The value stays on the stack
// if set fails.
func (m *Machine) popParam(set func(v int64) error) error {
	if err := m.stack.Need(1); err != nil {
		return err
	}
	ints, err := integers(m.stack.Peek(0))
	if err != nil {
		return err
	}
	v, ok := ints[0].Int64()
	if !ok {
		return errors.Newf("parameter %s out of range", ints[0])
	}
	if err := set(v); err != nil {
		return err
	}
	m.stack.Drop(1)
	return nil
}

// Dump writes the stack, top first, one value per line. It stops at the
// first value that cannot be formatted.
func (m *Machine) Dump(w io.Writer) error {
	for i := 0; i < m.stack.Len(); i++ {
		s, err := m.format(m.stack.Peek(i))
		if err != nil {
			return err
		}
		io.WriteString(w, s+"\n")
	}
	return nil
}
