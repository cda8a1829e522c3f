package lang

import (
	"fmt"
	"io"
)

// Machine drives a Statement to a fixpoint by repeated small-step reduction
// (spec §4.12), replacing both the statement and the environment at each
// step.
type Machine struct {
	Statement Statement
	Env       Environment
}

// NewMachine builds a Machine starting from stmt under env.
func NewMachine(stmt Statement, env Environment) *Machine {
	return &Machine{Statement: stmt, Env: env}
}

// Step reduces the current statement one step, replacing Statement and Env.
func (m *Machine) Step() {
	m.Statement, m.Env = Reduce(m.Statement, m.Env)
}

// Run steps the Machine to a fixpoint (Statement.IsReducible() == false),
// writing "{statement}, {env}" to w before every step and once more at the
// end, as an execution trace (spec §4.12). It returns the final
// environment.
func (m *Machine) Run(w io.Writer) Environment {
	for m.Statement.IsReducible() {
		fmt.Fprintf(w, "%s, %s\n", m.Statement, m.Env)
		m.Step()
	}
	fmt.Fprintf(w, "%s, %s\n", m.Statement, m.Env)
	return m.Env
}

// RunSilent runs the Machine to a fixpoint without emitting a trace,
// returning the final environment. Useful for tests that only care about
// the end state.
func (m *Machine) RunSilent() Environment {
	for m.Statement.IsReducible() {
		m.Step()
	}
	return m.Env
}
