// Package dpda implements the hand-built deterministic push-down automaton
// configuration mechanics of spec §4.9: a single rule/configuration pair
// demonstrating how a DPDA step works. No general runner or acceptor is
// provided — per spec, the DPDA here is a demonstration of configuration
// mechanics only, mirroring the Rust source's DPDARulebook/PDAConfiguration
// pair (automaton/src/dpda.rs, pda_configuration.rs).
package dpda

import (
	"fmt"

	"github.com/yosuke-oka/understanding-computation/internal/compute/automaton"
	"github.com/yosuke-oka/understanding-computation/internal/compute/cerr"
	"github.com/yosuke-oka/understanding-computation/internal/compute/stack"
)

// Configuration is a snapshot (state, stack) of a push-down automaton.
type Configuration struct {
	State automaton.State
	Stack stack.Stack
}

func (c Configuration) String() string {
	return fmt.Sprintf("(%v, %v)", c.State, c.Stack)
}

// Rule applies when state==current.state ∧ current.stack.top==Some(popSym)
// ∧ symbol==c. Following it pops one symbol and pushes Push in reverse
// order, so Push[0] ends up on top (spec §4.9).
type Rule struct {
	State   automaton.State
	Symbol  rune
	Next    automaton.State
	PopSym  rune
	Push    []rune
}

// AppliesTo reports whether the rule is applicable to configuration on
// input symbol.
func (r Rule) AppliesTo(c Configuration, symbol rune) bool {
	top, ok := c.Stack.Top()
	return r.State == c.State && ok && top == r.PopSym && r.Symbol == symbol
}

// Follow returns the configuration reached by applying the rule: one
// symbol popped, then Push's elements pushed so that Push[0] ends up on
// top.
func (r Rule) Follow(c Configuration) Configuration {
	newStack := c.Stack.Pop()
	for i := len(r.Push) - 1; i >= 0; i-- {
		newStack = newStack.Push(r.Push[i])
	}
	return Configuration{State: r.Next, Stack: newStack}
}

func (r Rule) String() string {
	return fmt.Sprintf("(%v, %q, %v, %q, %q)", r.State, r.Symbol, r.Next, r.PopSym, string(r.Push))
}

// Rulebook is a sequence of DPDA Rules.
type Rulebook struct {
	Rules []Rule
}

// RuleFor returns the rule applicable to configuration on symbol, if any.
func (rb Rulebook) RuleFor(c Configuration, symbol rune) (Rule, bool) {
	for _, r := range rb.Rules {
		if r.AppliesTo(c, symbol) {
			return r, true
		}
	}
	return Rule{}, false
}

// NextConfiguration applies the unique applicable rule and returns the
// resulting configuration. It panics with cerr.ErrDPDAStuck if no rule
// applies (spec §7, dpda-stuck).
func (rb Rulebook) NextConfiguration(c Configuration, symbol rune) Configuration {
	rule, ok := rb.RuleFor(c, symbol)
	if !ok {
		cerr.Panic(cerr.DPDAStuck, "no rule applies to %v on %q", c, symbol)
	}
	return rule.Follow(c)
}

// Stuck reports whether the rulebook has no rule applicable to configuration
// on symbol. This is the non-fatal counterpart spec §7 notes a fuller
// runner would want: "in a fuller runner this would be a non-acceptance
// signal" rather than a panic.
func (rb Rulebook) Stuck(c Configuration, symbol rune) bool {
	_, ok := rb.RuleFor(c, symbol)
	return !ok
}

// BalancedParensRulebook builds the rulebook for the classic "balanced
// parentheses with terminator" recognizer: state 1 pushes 'b' for every '('
// seen with '$' on top or 'b' on top, state 1 pops a 'b' for every ')' seen
// with 'b' on top, and on the terminator '$' with '$' on top it is accepted
// by transitioning to state 2. This is the single hand-built recognizer
// spec §1/§4.9 scope this package to.
func BalancedParensRulebook(start, accept automaton.State) Rulebook {
	return Rulebook{Rules: []Rule{
		{State: start, Symbol: '(', Next: start, PopSym: '$', Push: []rune{'b', '$'}},
		{State: start, Symbol: '(', Next: start, PopSym: 'b', Push: []rune{'b', 'b'}},
		{State: start, Symbol: ')', Next: start, PopSym: 'b', Push: []rune{}},
		{State: start, Symbol: '$', Next: accept, PopSym: '$', Push: []rune{'$'}},
	}}
}
