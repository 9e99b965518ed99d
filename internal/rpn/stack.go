package rpn

import (
	"github.com/cockroachdb/errors"
	num "github.com/shabbyrobe/go-bignum"
)

var errStackEmpty = errors.New("stack empty")

// Stack holds the calculator's values, top last.
type Stack struct {
	data []num.Number
}

func (s *Stack) Push(v num.Number) {
	s.data = append(s.data, v)
}

func (s *Stack) Len() int { return len(s.data) }

// Need fails if fewer than n values are on the stack.
func (s *Stack) Need(n int) error {
	if len(s.data) < n {
		if len(s.data) == 0 {
			return errStackEmpty
		}
		return errors.Newf("less than %d values on stack", n)
	}
	return nil
}

// Peek returns the value i places below the top.
func (s *Stack) Peek(i int) num.Number {
	return s.data[len(s.data)-1-i]
}

func (s *Stack) Pop() (num.Number, error) {
	if len(s.data) == 0 {
		return num.Number{}, errStackEmpty
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, nil
}

// Drop discards the top n values.
func (s *Stack) Drop(n int) {
	s.data = s.data[:len(s.data)-n]
}

func (s *Stack) Clear() {
	s.data = s.data[:0]
}

// Values returns a copy of the stack, top last.
func (s *Stack) Values() []num.Number {
	out := make([]num.Number, len(s.data))
	copy(out, s.data)
	return out
}
