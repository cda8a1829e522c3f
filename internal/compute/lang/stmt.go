package lang

import (
	"fmt"

	"github.com/yosuke-oka/understanding-computation/internal/compute/cerr"
)

// Statement is the SIMPLE statement term interface (spec §3/§4.11):
// DoNothing | Assignment(name, expr) | If(cond, then, else) |
// Sequence(s1, s2) | While(cond, body). Only DoNothing is irreducible.
type Statement interface {
	IsReducible() bool
	String() string
}

// DoNothing is the canonical irreducible statement (a no-op "skip").
type DoNothing struct{}

func (DoNothing) IsReducible() bool { return false }
func (DoNothing) String() string    { return "do-nothing" }

// Assignment binds the value of Expr to Name.
type Assignment struct {
	Name string
	Expr Expression
}

func (Assignment) IsReducible() bool { return true }
func (a Assignment) String() string  { return fmt.Sprintf("%s = %s", a.Name, a.Expr) }

// If runs Then when Cond evaluates true, Else otherwise.
type If struct {
	Cond       Expression
	Then, Else Statement
}

func (If) IsReducible() bool { return true }
func (i If) String() string {
	return fmt.Sprintf("if (%s) { %s } else { %s }", i.Cond, i.Then, i.Else)
}

// Sequence runs First, then Second.
type Sequence struct {
	First, Second Statement
}

func (Sequence) IsReducible() bool { return true }
func (s Sequence) String() string  { return fmt.Sprintf("%s; %s", s.First, s.Second) }

// While runs Body repeatedly while Cond evaluates true.
type While struct {
	Cond Expression
	Body Statement
}

func (While) IsReducible() bool { return true }
func (w While) String() string  { return fmt.Sprintf("while (%s) { %s }", w.Cond, w.Body) }

// Reduce performs one small step of reduction, returning the next statement
// and the (possibly updated) environment (spec §4.11). Reducing DoNothing
// is a programmer error and panics with cerr.ErrMisuse.
func Reduce(s Statement, env Environment) (Statement, Environment) {
	switch n := s.(type) {
	case DoNothing:
		cerr.Panic(cerr.Misuse, "cannot reduce do-nothing: it is already irreducible")
		panic("unreachable")
	case Assignment:
		if n.Expr.IsReducible() {
			return Assignment{Name: n.Name, Expr: ReduceExpr(n.Expr, env)}, env
		}
		return DoNothing{}, env.With(n.Name, n.Expr)
	case If:
		if n.Cond.IsReducible() {
			return If{Cond: ReduceExpr(n.Cond, env), Then: n.Then, Else: n.Else}, env
		}
		b, ok := n.Cond.(Boolean)
		if !ok {
			cerr.Panic(cerr.TypeClash, "if condition must be Boolean, got %T", n.Cond)
		}
		if bool(b) {
			return n.Then, env
		}
		return n.Else, env
	case Sequence:
		if _, ok := n.First.(DoNothing); ok {
			return n.Second, env
		}
		first, newEnv := Reduce(n.First, env)
		return Sequence{First: first, Second: n.Second}, newEnv
	case While:
		return If{
			Cond: n.Cond,
			Then: Sequence{First: n.Body, Second: n},
			Else: DoNothing{},
		}, env
	default:
		panic(fmt.Sprintf("unknown Statement type %T", s))
	}
}

// RunBigStep evaluates s to completion in one call and returns the final
// environment, using the same semantics as repeatedly applying Reduce
// (spec §4.10/§8 "small-big equivalence (statements)").
func RunBigStep(s Statement, env Environment) Environment {
	switch n := s.(type) {
	case DoNothing:
		return env
	case Assignment:
		return env.With(n.Name, Evaluate(n.Expr, env))
	case If:
		b, ok := Evaluate(n.Cond, env).(Boolean)
		if !ok {
			cerr.Panic(cerr.TypeClash, "if condition must be Boolean, got %T", n.Cond)
		}
		if bool(b) {
			return RunBigStep(n.Then, env)
		}
		return RunBigStep(n.Else, env)
	case Sequence:
		return RunBigStep(n.Second, RunBigStep(n.First, env))
	case While:
		b, ok := Evaluate(n.Cond, env).(Boolean)
		if !ok {
			cerr.Panic(cerr.TypeClash, "while condition must be Boolean, got %T", n.Cond)
		}
		if !bool(b) {
			return env
		}
		return RunBigStep(n, RunBigStep(n.Body, env))
	default:
		panic(fmt.Sprintf("unknown Statement type %T", s))
	}
}
