package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildDFA mirrors the scenario in spec §8.1: states {1,2,3}, rules
// {(1,a,2),(1,b,1),(2,a,2),(2,b,3),(3,a,3),(3,b,3)}, start 1, accepts {3}.
func buildDFA() Design[int] {
	rb := Rulebook[int]{Rules: []Rule[int]{
		{From: 1, Symbol: "a", To: 2},
		{From: 1, Symbol: "b", To: 1},
		{From: 2, Symbol: "a", To: 2},
		{From: 2, Symbol: "b", To: 3},
		{From: 3, Symbol: "a", To: 3},
		{From: 3, Symbol: "b", To: 3},
	}}
	return NewDesign(1, []int{3}, rb)
}

func TestDFA_Accept(t *testing.T) {
	d := buildDFA()

	assert.False(t, d.Accept("a"))
	assert.False(t, d.Accept("baa"))
	assert.True(t, d.Accept("baba"))
}

func TestDFA_Determinism(t *testing.T) {
	d := buildDFA()

	for s := 1; s <= 3; s++ {
		for _, sym := range []string{"a", "b"} {
			matches := d.Rulebook.RulesFor(s, sym)
			assert.Lenf(t, matches, 1, "state %d symbol %q should have exactly one applicable rule", s, sym)
		}
	}
}

func TestDFA_NoApplicableRulePanics(t *testing.T) {
	rb := Rulebook[int]{Rules: []Rule[int]{{From: 1, Symbol: "a", To: 2}}}
	d := NewDesign(1, []int{2}, rb)

	assert.Panics(t, func() {
		d.Accept("b")
	})

	accepted, ok := d.TryAccept("b")
	assert.False(t, ok)
	assert.False(t, accepted)
}
