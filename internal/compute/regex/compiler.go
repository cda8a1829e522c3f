package regex

import (
	"github.com/yosuke-oka/understanding-computation/internal/compute/automaton"
)

// fragment is an in-progress NFA built for one AST subtree: a start state,
// its accepting states, and the rules collected so far. Compile assembles
// fragments bottom-up per the table in spec §4.7.
type fragment struct {
	start   automaton.State
	accepts []automaton.State
	rules   []automaton.Rule[automaton.State]
}

// Compile runs the Thompson construction (spec §4.7) over p, minting every
// state from alloc so that subtrees never share identifiers — a single
// compilation must give every subtree distinct state IDs, and no
// identifier may reappear across compilations that share an allocator
// (spec §5), which is exactly what a single, never-reset Allocator
// guarantees.
func Compile(p Pattern, alloc *automaton.Allocator) automaton.NFADesign[automaton.State] {
	f := compile(p, alloc)
	return automaton.NewNFADesign(f.start, f.accepts, automaton.Rulebook[automaton.State]{Rules: f.rules})
}

func compile(p Pattern, alloc *automaton.Allocator) fragment {
	switch p.Type() {
	case TypeEmpty:
		return compileEmpty(alloc)
	case TypeLiteral:
		return compileLiteral(p.AsLiteral(), alloc)
	case TypeConcat:
		return compileConcat(p.AsConcat(), alloc)
	case TypeChoose:
		return compileChoose(p.AsChoose(), alloc)
	case TypeRepeat:
		return compileRepeat(p.AsRepeat(), alloc)
	default:
		panic("unknown Pattern NodeType")
	}
}

func compileEmpty(alloc *automaton.Allocator) fragment {
	s := alloc.New()
	return fragment{start: s, accepts: []automaton.State{s}}
}

func compileLiteral(l Literal, alloc *automaton.Allocator) fragment {
	s := alloc.New()
	a := alloc.New()
	return fragment{
		start:   s,
		accepts: []automaton.State{a},
		rules:   []automaton.Rule[automaton.State]{{From: s, Symbol: string(l.Char), To: a}},
	}
}

func compileConcat(c Concat, alloc *automaton.Allocator) fragment {
	left := compile(c.Left, alloc)
	right := compile(c.Right, alloc)

	rules := append(append([]automaton.Rule[automaton.State]{}, left.rules...), right.rules...)
	for _, a := range left.accepts {
		rules = append(rules, automaton.Rule[automaton.State]{From: a, Symbol: automaton.Epsilon, To: right.start})
	}

	return fragment{start: left.start, accepts: right.accepts, rules: rules}
}

func compileChoose(c Choose, alloc *automaton.Allocator) fragment {
	left := compile(c.Left, alloc)
	right := compile(c.Right, alloc)
	s := alloc.New()

	rules := append(append([]automaton.Rule[automaton.State]{}, left.rules...), right.rules...)
	rules = append(rules,
		automaton.Rule[automaton.State]{From: s, Symbol: automaton.Epsilon, To: left.start},
		automaton.Rule[automaton.State]{From: s, Symbol: automaton.Epsilon, To: right.start},
	)

	accepts := append(append([]automaton.State{}, left.accepts...), right.accepts...)
	return fragment{start: s, accepts: accepts, rules: rules}
}

func compileRepeat(r Repeat, alloc *automaton.Allocator) fragment {
	sub := compile(r.Sub, alloc)
	s := alloc.New()

	rules := append([]automaton.Rule[automaton.State]{}, sub.rules...)
	rules = append(rules, automaton.Rule[automaton.State]{From: s, Symbol: automaton.Epsilon, To: sub.start})
	for _, a := range sub.accepts {
		rules = append(rules, automaton.Rule[automaton.State]{From: a, Symbol: automaton.Epsilon, To: sub.start})
	}

	accepts := append(append([]automaton.State{}, sub.accepts...), s)
	return fragment{start: s, accepts: accepts, rules: rules}
}
