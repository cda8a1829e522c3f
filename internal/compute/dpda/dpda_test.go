package dpda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yosuke-oka/understanding-computation/internal/compute/automaton"
	"github.com/yosuke-oka/understanding-computation/internal/compute/stack"
)

// TestRule_Follow mirrors spec §8 scenario 4: rule (1,'(',2,'$',['b','$'])
// applied to configuration (1, stack=['$']) yields (2, stack=['b','$']).
func TestRule_Follow(t *testing.T) {
	rule := Rule{State: 1, Symbol: '(', Next: 2, PopSym: '$', Push: []rune{'b', '$'}}
	start := Configuration{State: 1, Stack: stack.Of('$')}

	got := rule.Follow(start)

	assert.Equal(t, automaton.State(2), got.State)
	assert.Equal(t, []rune{'b', '$'}, got.Stack.Elements())
}

func TestRulebook_BalancedParens(t *testing.T) {
	rb := BalancedParensRulebook(1, 2)
	c := Configuration{State: 1, Stack: stack.Of('$')}

	for _, sym := range "(()" {
		c = rb.NextConfiguration(c, sym)
	}
	assert.Equal(t, automaton.State(1), c.State)
	assert.Equal(t, []rune{'b', '$'}, c.Stack.Elements())

	for _, sym := range ")" {
		c = rb.NextConfiguration(c, sym)
	}
	assert.Equal(t, []rune{'$'}, c.Stack.Elements())

	c = rb.NextConfiguration(c, '$')
	assert.Equal(t, automaton.State(2), c.State)
}

func TestRulebook_Stuck(t *testing.T) {
	rb := BalancedParensRulebook(1, 2)
	c := Configuration{State: 1, Stack: stack.Of('$')}

	assert.True(t, rb.Stuck(c, ')'))
	assert.Panics(t, func() {
		rb.NextConfiguration(c, ')')
	})
}
