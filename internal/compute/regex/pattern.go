package regex

import "github.com/yosuke-oka/understanding-computation/internal/compute/automaton"

// sharedAllocator is the process-wide fresh-state counter backing every
// compilation done through Match/ParseAndMatch, per spec §4.2/§5: a single
// regex compilation gives every subtree distinct states, and because this
// allocator is never reset, no identifier it mints ever reappears in a
// later compilation, so two independently-matched patterns never collide.
var sharedAllocator automaton.Allocator

// Match compiles p to an NFA via Thompson's construction and reports
// whether it accepts str (spec §4.7: "Pattern.isMatch(str) :=
// toNFA(self).isAccept(str)").
func Match(p Pattern, str string) bool {
	nfa := Compile(p, &sharedAllocator)
	return nfa.Accept(str)
}

// ParseAndMatch parses src as a regex and reports whether it matches str.
// It returns a *cerr.Error of kind cerr.ParseError if src fails to parse.
func ParseAndMatch(src, str string) (bool, error) {
	p, err := Parse(src)
	if err != nil {
		return false, err
	}
	return Match(p, str), nil
}
