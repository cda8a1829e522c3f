package automaton

import "fmt"

// Rule is a single labelled transition (from, symbol, to) over a state
// universe S (spec §3/§4.3). Symbol is Epsilon ("") for an NFA free move; it
// never appears in a DFA rule. S is constrained only to be comparable so the
// same rule type serves both atomic states (automaton.State) and composite
// states (cset.StringSet.Canonical(), used as a map key by subset
// construction).
type Rule[S comparable] struct {
	From   S
	Symbol string
	To     S
}

// AppliesTo reports whether the rule matches (s, symbol).
func (r Rule[S]) AppliesTo(s S, symbol string) bool {
	return r.From == s && r.Symbol == symbol
}

// Follow returns the rule's destination state.
func (r Rule[S]) Follow() S {
	return r.To
}

func (r Rule[S]) String() string {
	sym := r.Symbol
	if sym == Epsilon {
		sym = "ε"
	}
	return fmt.Sprintf("%v --%s--> %v", r.From, sym, r.To)
}

// Rulebook is an ordered collection of Rules sharing a state universe S. A
// DFA rulebook never repeats (state, symbol) and never uses Epsilon. An NFA
// rulebook may do both.
type Rulebook[S comparable] struct {
	Rules []Rule[S]
}

// RulesFor returns every rule matching (s, symbol).
func (rb Rulebook[S]) RulesFor(s S, symbol string) []Rule[S] {
	var out []Rule[S]
	for _, r := range rb.Rules {
		if r.AppliesTo(s, symbol) {
			out = append(out, r)
		}
	}
	return out
}

// FollowRulesFor returns the destination states of every rule matching
// (s, symbol), i.e. nextStates({s}, symbol) restricted to one source state.
func (rb Rulebook[S]) FollowRulesFor(s S, symbol string) []S {
	rules := rb.RulesFor(s, symbol)
	out := make([]S, len(rules))
	for i, r := range rules {
		out[i] = r.Follow()
	}
	return out
}

// Alphabet returns the set of symbols used by the rulebook, excluding
// Epsilon.
func (rb Rulebook[S]) Alphabet() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rb.Rules {
		if r.Symbol == Epsilon {
			continue
		}
		if !seen[r.Symbol] {
			seen[r.Symbol] = true
			out = append(out, r.Symbol)
		}
	}
	return out
}
