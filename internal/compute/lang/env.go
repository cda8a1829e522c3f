// Package lang implements the SIMPLE imperative language of spec
// §3/§4.10–§4.13: expression and statement terms with small-step and
// big-step semantics, driven to a fixpoint by the Machine.
package lang

import (
	"fmt"
	"sort"
	"strings"
)

// Environment maps variable names to their current Expression value. It is
// the sole mutable datum threaded through reduction (spec §3): it grows
// monotonically by assignment, never shrinks, and introduces no scoping.
// Environment is a value type; With returns a new Environment rather than
// mutating the receiver, matching the Rust source's
// `environment.clone(); new_env.insert(...)` pattern.
type Environment map[string]Expression

// NewEnvironment builds an Environment from the given bindings.
func NewEnvironment(bindings map[string]Expression) Environment {
	env := make(Environment, len(bindings))
	for k, v := range bindings {
		env[k] = v
	}
	return env
}

// With returns a new Environment equal to env but with name bound to value,
// preserving every other binding (spec §4.11: "must preserve all other
// bindings; no shadowing, no removal").
func (env Environment) With(name string, value Expression) Environment {
	next := make(Environment, len(env)+1)
	for k, v := range env {
		next[k] = v
	}
	next[name] = value
	return next
}

// Contains reports whether name is bound.
func (env Environment) Contains(name string) bool {
	_, ok := env[name]
	return ok
}

// ContainsAll reports whether every key in other is also bound in env; used
// to check the environment-monotonicity property of spec §8.
func (env Environment) ContainsAll(other Environment) bool {
	for k := range other {
		if !env.Contains(k) {
			return false
		}
	}
	return true
}

// String renders the environment with its keys sorted, so trace output
// (spec §4.12) is deterministic across runs.
func (env Environment) String() string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, env[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
