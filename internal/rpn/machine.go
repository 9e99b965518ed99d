package rpn

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	num "github.com/shabbyrobe/go-bignum"
)

// ErrQuit is returned by Eval when the program executes 'q'.
var ErrQuit = errors.New("quit")

// Machine is a reverse-Polish calculator over num.Number values.
//
// Input is split into whitespace-separated words. A word that is a complete
// integer, fraction or decimal literal is pushed; a registered word such as
// "gcd" is executed; anything else is read as a run of single-character
// commands and unsigned decimal integers, so "2 3+p" prints 5. A leading '_'
// makes a literal negative.
type Machine struct {
	stack     Stack
	limits    num.Limits
	obase     int
	precision int
	out       io.Writer
	errOut    io.Writer
	failures  int
}

func New(cfg Config, out, errOut io.Writer) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Machine{
		limits:    cfg.Limits(),
		obase:     cfg.OutputBase,
		precision: cfg.Precision,
		out:       out,
		errOut:    errOut,
	}, nil
}

// Stack returns a copy of the current stack, top last.
func (m *Machine) Stack() []num.Number { return m.stack.Values() }

// Failures returns the number of commands that have failed so far.
func (m *Machine) Failures() int { return m.failures }

func (m *Machine) EvalString(s string) error {
	return m.Eval(strings.NewReader(s))
}

// Eval runs every command in r. A failing command is reported to the error
// writer and leaves the stack as it was; evaluation continues with the next
// command. Eval stops early only for 'q', returning ErrQuit, or if r fails.
func (m *Machine) Eval(r io.Reader) error {
	scn := bufio.NewScanner(r)
	scn.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for scn.Scan() {
		line++
		for _, w := range splitWords(scn.Text()) {
			err := m.evalWord(w.text)
			if errors.Is(err, ErrQuit) {
				return err
			} else if err != nil {
				m.failures++
				fmt.Fprintf(m.errOut, "numcalc: %d:%d: %q: %v\n", line, w.col, w.text, err)
			}
		}
	}
	return scn.Err()
}

type word struct {
	text string
	col  int
}

func splitWords(s string) (out []word) {
	start := -1
	for i, c := range s {
		if c == ' ' || c == '\t' || c == '\r' {
			if start >= 0 {
				out = append(out, word{s[start:i], start + 1})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, word{s[start:], start + 1})
	}
	return out
}

func (m *Machine) evalWord(w string) error {
	if cmd, ok := words[w]; ok {
		return cmd(m)
	}
	if v, ok := parseLiteral(w); ok {
		m.stack.Push(v)
		return nil
	}

	// A run of single-character commands and decimal integers.
	for i := 0; i < len(w); {
		j := i
		if w[j] == '_' {
			j++
		}
		for j < len(w) && w[j] >= '0' && w[j] <= '9' {
			j++
		}
		if j > i {
			lit := w[i:j]
			v, err := num.BigIntFromString(strings.TrimPrefix(lit, "_"), 10)
			if err != nil {
				return err
			}
			if lit[0] == '_' {
				v = v.Neg()
			}
			m.stack.Push(num.IntNumber(v))
			i = j
			continue
		}

		cmd, ok := commands[w[i]]
		if !ok {
			return errors.Newf("unknown command %q", w[i])
		}
		if err := cmd(m); err != nil {
			return err
		}
		i++
	}
	return nil
}

// parseLiteral parses a whole word as a number.
func parseLiteral(w string) (num.Number, bool) {
	neg := strings.HasPrefix(w, "_")
	s := strings.TrimPrefix(w, "_")
	if s == "" || strings.ContainsAny(s, "+-") {
		return num.Number{}, false
	}

	var v num.Number
	if strings.ContainsAny(s, "/.") || (!isPrefixed(s) && strings.ContainsAny(s, "eE")) {
		r, err := num.RationalFromString(s)
		if err != nil {
			return num.Number{}, false
		}
		v = num.RationalNumber(r).Normalize()
	} else {
		i, err := num.BigIntFromString(s, 0)
		if err != nil {
			return num.Number{}, false
		}
		v = num.IntNumber(i)
	}
	if neg {
		v = v.Neg()
	}
	return v, true
}

func isPrefixed(s string) bool {
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'b', 'B', 'o', 'O':
		return true
	}
	return false
}

// format renders v in the output base. A non-zero precision prints floats
// and fractions as decimals with that many fractional digits.
func (m *Machine) format(v num.Number) (string, error) {
	switch v.Kind() {
	case num.IntKind:
		i, _ := v.Int()
		return m.formatInt(i), nil
	case num.RationalKind:
		r, _ := v.Rational()
		if m.precision > 0 {
			return m.limits.FloatString(r, m.precision)
		}
		return m.formatInt(r.Num()) + "/" + m.formatInt(r.Denom()), nil
	}
	f, _ := v.Float64()
	if m.precision > 0 {
		// Each printed digit costs a byte; bound it like a 4-bit digit.
		if err := m.limits.Check("float formatting", 4*uint64(m.precision)); err != nil {
			return "", err
		}
		return strconv.FormatFloat(f, 'f', m.precision, 64), nil
	}
	return v.String(), nil
}

func (m *Machine) formatInt(i num.BigInt) string {
	return strings.ToUpper(i.Text(m.obase))
}

func (m *Machine) print(v num.Number, nl bool) error {
	s, err := m.format(v)
	if err != nil {
		return err
	}
	if nl {
		s += "\n"
	}
	io.WriteString(m.out, s)
	return nil
}
