// Package automaton implements the FA rule/rulebook algebra shared by DFAs
// and NFAs (spec §3–§4.6): a generic rulebook keyed on a comparable state
// type, ε-closure, and the NFA→DFA subset-construction fixed point.
package automaton

import "sync/atomic"

// Epsilon is the free-move marker. It never appears in a DFA rulebook.
const Epsilon = ""

// Allocator is a process-wide monotonic source of fresh atomic state
// identifiers (spec §4.2). The zero value starts counting at 0. A correct
// program either confines all use of an Allocator to one goroutine (regex
// compilation is single-threaded per spec §5) or relies on the atomic
// fetch-and-add below; there is no reset except in tests.
type Allocator struct {
	next uint64
}

// New mints and returns the next state identifier, then advances the
// counter. Collisions across goroutines sharing an Allocator are a caller
// error per spec §5.
func (a *Allocator) New() State {
	id := atomic.AddUint64(&a.next, 1) - 1
	return State(id)
}

// Reset sets the counter back to 0. Test-only, per design note §9.
func (a *Allocator) Reset() {
	atomic.StoreUint64(&a.next, 0)
}

// State is an atomic state identifier: opaque, totally ordered, usable as a
// map key. Composite (subset-construction) states are represented
// separately, as cset.StringSet canonical strings, rather than as a State
// (spec §3).
type State uint64
