package automaton

// NFADesign is the immutable template for a nondeterministic finite
// automaton with ε-moves (spec §3/§4.5).
type NFADesign[S comparable] struct {
	Start    S
	Accepts  map[S]bool
	Rulebook Rulebook[S]
}

// NewNFADesign builds an NFADesign from a start state, a slice of accepting
// states, and a rulebook that may contain Epsilon transitions.
func NewNFADesign[S comparable](start S, accepts []S, rulebook Rulebook[S]) NFADesign[S] {
	acceptSet := make(map[S]bool, len(accepts))
	for _, s := range accepts {
		acceptSet[s] = true
	}
	return NFADesign[S]{Start: start, Accepts: acceptSet, Rulebook: rulebook}
}

// Run creates a fresh running NFA whose tracking set is {Start}; its
// observed current state is the ε-closure of that set.
func (d NFADesign[S]) Run() *NFA[S] {
	nfa := &NFA[S]{raw: map[S]bool{d.Start: true}, design: d}
	return nfa
}

// Accept reports whether str is accepted, starting a fresh run each call.
func (d NFADesign[S]) Accept(str string) bool {
	nfa := d.Run()
	for _, c := range str {
		nfa.ReadCharacter(string(c))
	}
	return nfa.IsAccept()
}

// Alphabet returns the rulebook's alphabet, excluding Epsilon.
func (d NFADesign[S]) Alphabet() []string {
	return d.Rulebook.Alphabet()
}

// ToDFA runs the subset construction (spec §4.6) and returns an equivalent
// DFA whose states are ε-closed sets of this NFA's states, represented as
// cset.StringSet canonical keys. See subset.go.
func (d NFADesign[S]) ToDFA() Design[string] {
	return subsetConstruct(d)
}

// NFA is a short-lived mutable shell around an immutable NFADesign. raw is
// the explicit tracking set before ε-closure; Current() always returns its
// ε-closure, per spec §4.5 ("observable current state is always
// εClosure(raw)").
type NFA[S comparable] struct {
	raw    map[S]bool
	design NFADesign[S]
}

// Current returns the ε-closure of the NFA's tracking set.
func (n *NFA[S]) Current() map[S]bool {
	return n.design.epsilonClosure(n.raw)
}

// IsAccept reports whether the current (ε-closed) state set intersects the
// design's accepting states.
func (n *NFA[S]) IsAccept() bool {
	for s := range n.Current() {
		if n.design.Accepts[s] {
			return true
		}
	}
	return false
}

// ReadCharacter advances the NFA one step on symbol: raw becomes
// nextStates(currentObserved, symbol); the next observation re-ε-closes it.
func (n *NFA[S]) ReadCharacter(symbol string) {
	n.raw = n.design.nextStates(n.Current(), symbol)
}

// nextStates computes ⋃{follow(r) | r ∈ rules, r.symbol=symbol, r.from∈set}
// (spec §4.5).
func (d NFADesign[S]) nextStates(set map[S]bool, symbol string) map[S]bool {
	out := map[S]bool{}
	for s := range set {
		for _, to := range d.Rulebook.FollowRulesFor(s, symbol) {
			out[to] = true
		}
	}
	return out
}

// epsilonClosure computes the least fixed point set ← set ∪
// nextStates(set, ε) (spec §4.5). It is order-independent: a plain
// worklist over a set, not a recursive walk, so re-visiting an
// already-closed state is a no-op.
func (d NFADesign[S]) epsilonClosure(set map[S]bool) map[S]bool {
	closure := map[S]bool{}
	worklist := make([]S, 0, len(set))
	for s := range set {
		closure[s] = true
		worklist = append(worklist, s)
	}

	for len(worklist) > 0 {
		s := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, next := range d.Rulebook.FollowRulesFor(s, Epsilon) {
			if !closure[next] {
				closure[next] = true
				worklist = append(worklist, next)
			}
		}
	}

	return closure
}
