// Package stack implements the persistent character stack used by the
// DPDA (spec §4.1): push and pop return new stacks and never mutate the
// receiver, so a PDA configuration can be freely cloned and compared.
package stack

// Stack is an immutable, singly-linked sequence of runes. The zero value is
// an empty stack.
type Stack struct {
	top  rune
	rest *Stack
	has  bool
}

// Empty is the empty Stack.
var Empty = Stack{}

// Top returns the top symbol and whether the stack is non-empty.
func (s Stack) Top() (rune, bool) {
	return s.top, s.has
}

// Push returns a new stack with c on top.
func (s Stack) Push(c rune) Stack {
	cp := s
	return Stack{top: c, rest: &cp, has: true}
}

// Pop returns a new stack with the top symbol removed. Popping an empty
// stack returns the empty stack; this is not an error (spec §4.1).
func (s Stack) Pop() Stack {
	if !s.has || s.rest == nil {
		return Empty
	}
	return *s.rest
}

// Len returns the number of symbols on the stack.
func (s Stack) Len() int {
	n := 0
	for cur := s; cur.has; cur = cur.Pop() {
		n++
	}
	return n
}

// Elements returns the stack's contents top-first.
func (s Stack) Elements() []rune {
	out := make([]rune, 0, s.Len())
	for cur := s; cur.has; cur = cur.Pop() {
		out = append(out, cur.top)
	}
	return out
}

// Of builds a Stack from a slice given bottom-to-top, i.e. Of('$', 'a')
// produces a stack whose Top() is 'a'.
func Of(bottomToTop ...rune) Stack {
	s := Empty
	for _, c := range bottomToTop {
		s = s.Push(c)
	}
	return s
}

// Equal reports whether two stacks hold the same symbols in the same order.
func (s Stack) Equal(o Stack) bool {
	a, b := s.Elements(), o.Elements()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s Stack) String() string {
	elems := s.Elements()
	out := make([]byte, 0, len(elems)+2)
	out = append(out, '[')
	for i, c := range elems {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, byte(c))
	}
	out = append(out, ']')
	return string(out)
}
