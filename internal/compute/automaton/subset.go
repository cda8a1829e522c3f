package automaton

import (
	"fmt"

	"github.com/yosuke-oka/understanding-computation/internal/compute/cset"
)

// subsetConstruct implements the NFA→DFA subset construction as a monotone
// fixed point over the power set of atomic states (spec §4.6). The
// resulting DFA's states are canonical strings naming the NFA subset they
// represent (cset.StringSet.Canonical()); composite-state equality collapses
// permutations, which is what makes the fixed-point check (Q' ⊆ Q) correct.
// A rule is formed for every (state, symbol) pair, including when
// nextStates is empty: that canonicalizes to the empty-set state "{}", a
// non-accepting dead state that every symbol self-loops on, keeping the
// produced DFA total rather than partial.
func subsetConstruct[S comparable](d NFADesign[S]) Design[string] {
	name := func(s S) string { return fmt.Sprintf("%v", s) }

	// subset contents, keyed by canonical name, and a map back to the
	// underlying atomic-state sets (needed to evaluate nextStates again).
	contents := map[string]map[S]bool{}

	closureOf := func(raw map[S]bool) (string, map[S]bool) {
		closed := d.epsilonClosure(raw)
		names := cset.New()
		for s := range closed {
			names.Add(name(s))
		}
		key := names.Canonical()
		if _, ok := contents[key]; !ok {
			contents[key] = closed
		}
		return key, closed
	}

	startKey, _ := closureOf(map[S]bool{d.Start: true})

	known := cset.New(startKey)
	rules := []Rule[string]{}
	alphabet := d.Alphabet()

	for {
		grew := false
		for _, qKey := range known.Sorted() {
			qStates := contents[qKey]
			for _, symbol := range alphabet {
				target := d.nextStates(qStates, symbol)
				targetKey, _ := closureOf(target)

				hasRule := false
				for _, r := range rules {
					if r.From == qKey && r.Symbol == symbol {
						hasRule = true
						break
					}
				}
				if !hasRule {
					rules = append(rules, Rule[string]{From: qKey, Symbol: symbol, To: targetKey})
				}

				if !known.Has(targetKey) {
					known.Add(targetKey)
					grew = true
				}
			}
		}
		if !grew {
			break
		}
	}

	var accepts []string
	for key, states := range contents {
		for s := range states {
			if d.Accepts[s] {
				accepts = append(accepts, key)
				break
			}
		}
	}

	return NewDesign(startKey, accepts, Rulebook[string]{Rules: rules})
}
