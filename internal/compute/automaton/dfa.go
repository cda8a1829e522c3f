package automaton

import (
	"github.com/yosuke-oka/understanding-computation/internal/compute/cerr"
)

// Design is the immutable template for a deterministic finite automaton
// (spec §3): a start state, a set of accepting states, and a rulebook.
// Designs are values — construct one, then call Run as many times as
// needed; running it never mutates the Design.
type Design[S comparable] struct {
	Start    S
	Accepts  map[S]bool
	Rulebook Rulebook[S]
}

// NewDesign builds a Design from a start state, a slice of accepting
// states, and a rulebook.
func NewDesign[S comparable](start S, accepts []S, rulebook Rulebook[S]) Design[S] {
	acceptSet := make(map[S]bool, len(accepts))
	for _, s := range accepts {
		acceptSet[s] = true
	}
	return Design[S]{Start: start, Accepts: acceptSet, Rulebook: rulebook}
}

// Run creates a fresh running DFA positioned at the design's start state.
func (d Design[S]) Run() *DFA[S] {
	return &DFA[S]{Current: d.Start, design: d}
}

// Accept reports whether str is accepted, starting a fresh run each call.
// It panics with cerr.ErrNoApplicableRule if the string drives the DFA off
// the rulebook (spec §7, no-applicable-rule is fatal by default).
func (d Design[S]) Accept(str string) bool {
	dfa := d.Run()
	for _, c := range str {
		dfa.ReadCharacter(string(c))
	}
	return dfa.IsAccept()
}

// TryAccept is the non-panicking counterpart to Accept (Open Question (a)
// in spec §9): it returns ok=false instead of panicking when the DFA falls
// off the rulebook partway through str.
func (d Design[S]) TryAccept(str string) (accepted bool, ok bool) {
	dfa := d.Run()
	for _, c := range str {
		if !dfa.TryReadCharacter(string(c)) {
			return false, false
		}
	}
	return dfa.IsAccept(), true
}

// DFA is a short-lived mutable shell around an immutable Design (spec §3):
// it tracks a single current state as input is read.
type DFA[S comparable] struct {
	Current S
	design  Design[S]
}

// IsAccept reports whether the current state is an accepting state.
func (d *DFA[S]) IsAccept() bool {
	return d.design.Accepts[d.Current]
}

// RuleFor returns the unique rule applicable from the current state on
// symbol, and whether one was found. Spec invariant §4.4/§8: for every
// reachable (s, c) there is exactly one applicable rule; RuleFor returns
// whichever rule is found first, consistent with that invariant.
func (d *DFA[S]) RuleFor(symbol string) (Rule[S], bool) {
	rules := d.design.Rulebook.RulesFor(d.Current, symbol)
	if len(rules) == 0 {
		return Rule[S]{}, false
	}
	return rules[0], true
}

// ReadCharacter advances the DFA one step on symbol. It panics with
// cerr.ErrNoApplicableRule if no rule matches (spec §4.4, §7).
func (d *DFA[S]) ReadCharacter(symbol string) {
	rule, ok := d.RuleFor(symbol)
	if !ok {
		cerr.Panic(cerr.NoApplicableRule, "no rule applies to (%v, %q)", d.Current, symbol)
	}
	d.Current = rule.Follow()
}

// TryReadCharacter is the non-panicking counterpart to ReadCharacter; it
// returns false instead of panicking when no rule matches, leaving Current
// unchanged.
func (d *DFA[S]) TryReadCharacter(symbol string) bool {
	rule, ok := d.RuleFor(symbol)
	if !ok {
		return false
	}
	d.Current = rule.Follow()
	return true
}
