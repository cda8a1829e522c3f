package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildNFA mirrors the scenario in spec §8.2: ε-moves from 1 to {2,4},
// accepts {2,4}, two independent a-a-loops reached via the ε split.
func buildNFA() NFADesign[int] {
	rb := Rulebook[int]{Rules: []Rule[int]{
		{From: 1, Symbol: Epsilon, To: 2},
		{From: 1, Symbol: Epsilon, To: 4},
		{From: 2, Symbol: "a", To: 3},
		{From: 3, Symbol: "a", To: 2},
		{From: 4, Symbol: "a", To: 5},
		{From: 5, Symbol: "a", To: 6},
		{From: 6, Symbol: "a", To: 4},
	}}
	return NewNFADesign(1, []int{2, 4}, rb)
}

func TestNFA_Accept(t *testing.T) {
	d := buildNFA()

	assert.True(t, d.Accept("aa"))
	assert.True(t, d.Accept("aaa"))
	assert.False(t, d.Accept("aaaaa"))
	assert.True(t, d.Accept("aaaaaa"))
}

func TestNFA_EpsilonClosureIsClosure(t *testing.T) {
	d := buildNFA()

	x := map[int]bool{1: true}
	once := d.epsilonClosure(x)
	twice := d.epsilonClosure(once)

	assert.Equal(t, once, twice, "εClosure(εClosure(X)) must equal εClosure(X)")
}

func TestNFA_EpsilonClosureMonotone(t *testing.T) {
	d := buildNFA()

	x := map[int]bool{1: true}
	y := map[int]bool{1: true, 3: true}

	closureX := d.epsilonClosure(x)
	closureY := d.epsilonClosure(y)

	for s := range closureX {
		assert.True(t, closureY[s], "X ⊆ Y must imply εClosure(X) ⊆ εClosure(Y), missing %v", s)
	}
}

func TestNFA_ToDFA_Equivalence(t *testing.T) {
	nfa := buildNFA()
	dfa := nfa.ToDFA()

	strs := []string{"", "a", "aa", "aaa", "aaaa", "aaaaa", "aaaaaa"}
	for _, s := range strs {
		assert.Equalf(t, nfa.Accept(s), dfa.Accept(s), "nfa/dfa disagree on %q", s)
	}
}
