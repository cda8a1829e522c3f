// Package scenario loads a TOML-driven list of canned demonstrations and
// runs them against the automaton, regex, dpda, and lang packages, the
// same role internal/tqw plays for tunaq's world files, scaled down to
// "which canned scenarios to run" since this corpus has no persistent
// world state to load (spec §6 "CLI / entry points").
package scenario

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/yosuke-oka/understanding-computation/internal/compute/automaton"
	"github.com/yosuke-oka/understanding-computation/internal/compute/dpda"
	"github.com/yosuke-oka/understanding-computation/internal/compute/lang"
	"github.com/yosuke-oka/understanding-computation/internal/compute/regex"
	"github.com/yosuke-oka/understanding-computation/internal/compute/stack"
)

// Kind names which demonstration a Scenario entry runs.
type Kind string

const (
	KindDFA     Kind = "dfa"
	KindNFA     Kind = "nfa"
	KindRegex   Kind = "regex"
	KindDPDA    Kind = "dpda"
	KindMachine Kind = "machine"
	KindLambda  Kind = "lambda"
)

// Scenario is one demonstration entry, as loaded from a TOML file. Only the
// fields relevant to Kind are consulted; the rest are zero.
type Scenario struct {
	Name   string   `toml:"name"`
	Kind   Kind     `toml:"kind"`
	Source string   `toml:"source"` // regex source (KindRegex)
	Inputs []string `toml:"inputs"` // strings to test (KindDFA/NFA/Regex)
}

// File is the top-level shape of a scenario TOML file: a named list of
// Scenario entries, run in file order.
type File struct {
	Scenarios []Scenario `toml:"scenario"`
}

// Load reads and decodes a scenario file from path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading scenario file: %w", err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("decoding scenario file %s: %w", path, err)
	}
	return f, nil
}

// Builtin returns the fixed demonstration list matching spec §8's "concrete
// scenarios", used when computectl is run without a -f flag.
func Builtin() []Scenario {
	return []Scenario{
		{Name: "dfa-accepts-baba", Kind: KindDFA, Inputs: []string{"a", "baa", "baba"}},
		{Name: "nfa-epsilon-moves", Kind: KindNFA, Inputs: []string{"aa", "aaa", "aaaaa", "aaaaaa"}},
		{Name: "regex-star-group", Kind: KindRegex, Source: "(a(|b))*", Inputs: []string{"abaab", "abba"}},
		{Name: "dpda-balanced-parens", Kind: KindDPDA},
		{Name: "machine-increment", Kind: KindMachine},
		{Name: "machine-while-loop", Kind: KindMachine},
		{Name: "lambda-translate", Kind: KindLambda},
	}
}

// Run executes every scenario in order, writing a human-readable report to
// w. It does not stop at the first failing demonstration: each scenario's
// panics are caught so a single bad rulebook cannot take down the rest of
// the run, mirroring the TryAccept/TryReadCharacter escape hatch spec §9's
// Open Question (a) calls for at the driver layer.
func Run(w io.Writer, scenarios []Scenario) {
	for _, s := range scenarios {
		fmt.Fprintf(w, "=== %s (%s) ===\n", s.Name, s.Kind)
		runOne(w, s)
		fmt.Fprintln(w)
	}
}

func runOne(w io.Writer, s Scenario) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(w, "  panic: %v\n", r)
		}
	}()

	switch s.Kind {
	case KindDFA:
		runDFA(w, s)
	case KindNFA:
		runNFA(w, s)
	case KindRegex:
		runRegex(w, s)
	case KindDPDA:
		runDPDA(w)
	case KindMachine:
		runMachine(w, s)
	case KindLambda:
		runLambda(w)
	default:
		fmt.Fprintf(w, "  unknown scenario kind %q\n", s.Kind)
	}
}

// runDFA replicates spec §8 scenario 1.
func runDFA(w io.Writer, s Scenario) {
	var alloc automaton.Allocator
	s1, s2, s3 := alloc.New(), alloc.New(), alloc.New()

	rb := automaton.Rulebook[automaton.State]{Rules: []automaton.Rule[automaton.State]{
		{From: s1, Symbol: "a", To: s2},
		{From: s1, Symbol: "b", To: s1},
		{From: s2, Symbol: "a", To: s2},
		{From: s2, Symbol: "b", To: s3},
		{From: s3, Symbol: "a", To: s3},
		{From: s3, Symbol: "b", To: s3},
	}}
	design := automaton.NewDesign(s1, []automaton.State{s3}, rb)

	for _, in := range s.Inputs {
		fmt.Fprintf(w, "  accept(%q) = %t\n", in, design.Accept(in))
	}
}

// runNFA replicates spec §8 scenario 2.
func runNFA(w io.Writer, s Scenario) {
	var alloc automaton.Allocator
	s1, s2, s3, s4, s5, s6 := alloc.New(), alloc.New(), alloc.New(), alloc.New(), alloc.New(), alloc.New()

	rb := automaton.Rulebook[automaton.State]{Rules: []automaton.Rule[automaton.State]{
		{From: s1, Symbol: automaton.Epsilon, To: s2},
		{From: s1, Symbol: automaton.Epsilon, To: s4},
		{From: s2, Symbol: "a", To: s3},
		{From: s3, Symbol: "a", To: s2},
		{From: s4, Symbol: "a", To: s5},
		{From: s5, Symbol: "a", To: s6},
		{From: s6, Symbol: "a", To: s4},
	}}
	design := automaton.NewNFADesign(s1, []automaton.State{s2, s4}, rb)

	for _, in := range s.Inputs {
		fmt.Fprintf(w, "  accept(%q) = %t\n", in, design.Accept(in))
	}
}

// runRegex replicates spec §8 scenario 3.
func runRegex(w io.Writer, s Scenario) {
	p, err := regex.Parse(s.Source)
	if err != nil {
		fmt.Fprintf(w, "  parse error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "  parsed: %s\n", p)
	for _, in := range s.Inputs {
		fmt.Fprintf(w, "  match(%q) = %t\n", in, regex.Match(p, in))
	}
}

// runDPDA replicates spec §8 scenario 4 on top of the full balanced-parens
// recognizer.
func runDPDA(w io.Writer) {
	var alloc automaton.Allocator
	start, accept := alloc.New(), alloc.New()
	rb := dpda.BalancedParensRulebook(start, accept)

	rule := dpda.Rule{State: start, Symbol: '(', Next: accept, PopSym: '$', Push: []rune{'b', '$'}}
	cfg := dpda.Configuration{State: start, Stack: stack.Of('$')}
	next := rule.Follow(cfg)
	fmt.Fprintf(w, "  rule.Follow(%v) = %v\n", cfg, next)

	cfg = dpda.Configuration{State: start, Stack: stack.Of('$')}
	for _, sym := range "(()" {
		cfg = rb.NextConfiguration(cfg, sym)
	}
	fmt.Fprintf(w, "  after \"(()\": %v\n", cfg)
	cfg = rb.NextConfiguration(cfg, ')')
	fmt.Fprintf(w, "  after \")\": %v\n", cfg)
	cfg = rb.NextConfiguration(cfg, '$')
	fmt.Fprintf(w, "  after terminator: %v, accepted = %t\n", cfg, cfg.State == accept)
}

// runMachine replicates spec §8 scenarios 5 and 6.
func runMachine(w io.Writer, s Scenario) {
	var stmt lang.Statement
	var env lang.Environment

	switch s.Name {
	case "machine-while-loop":
		stmt = lang.While{
			Cond: lang.LessThan{Left: lang.Variable("x"), Right: lang.Number(5)},
			Body: lang.Assignment{Name: "x", Expr: lang.Multiply{Left: lang.Variable("x"), Right: lang.Number(3)}},
		}
		env = lang.NewEnvironment(map[string]lang.Expression{"x": lang.Number(1)})
	default:
		stmt = lang.Assignment{Name: "x", Expr: lang.Add{Left: lang.Variable("x"), Right: lang.Number(1)}}
		env = lang.NewEnvironment(map[string]lang.Expression{"x": lang.Number(2)})
	}

	var trace bytes.Buffer
	m := lang.NewMachine(stmt, env)
	final := m.Run(&trace)
	w.Write(trace.Bytes())
	fmt.Fprintf(w, "  final environment: %s\n", final)
}

// runLambda shows the C13 λ-form translation of the scenario-5 program.
func runLambda(w io.Writer) {
	stmt := lang.Assignment{Name: "x", Expr: lang.Add{Left: lang.Variable("x"), Right: lang.Number(1)}}
	fmt.Fprintf(w, "  %s\n", lang.ToLambda(stmt))
}
