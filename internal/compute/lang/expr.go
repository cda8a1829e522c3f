package lang

import (
	"fmt"

	"github.com/yosuke-oka/understanding-computation/internal/compute/cerr"
)

// Expression is the SIMPLE expression term interface (spec §3/§4.10):
// Number(u32) | Boolean(bool) | Variable(name) | Add(L,R) | Multiply(L,R) |
// LessThan(L,R). Values are Number and Boolean; everything else is
// reducible. Concrete types are dispatched on with a type switch inside
// ReduceExpr/Evaluate, the same "pattern-match on the tag" shape design
// note §9 asks for, using Go's own runtime type as the tag.
type Expression interface {
	IsReducible() bool
	String() string
}

// Number is an integer value expression.
type Number uint32

func (Number) IsReducible() bool { return false }
func (n Number) String() string  { return fmt.Sprintf("%d", uint32(n)) }

// Boolean is a boolean value expression.
type Boolean bool

func (Boolean) IsReducible() bool { return false }
func (b Boolean) String() string  { return fmt.Sprintf("%t", bool(b)) }

// Variable is a reference to a name bound in the Environment.
type Variable string

func (Variable) IsReducible() bool { return true }
func (v Variable) String() string  { return string(v) }

// Add is left + right.
type Add struct {
	Left, Right Expression
}

func (Add) IsReducible() bool { return true }
func (a Add) String() string  { return fmt.Sprintf("%s + %s", a.Left, a.Right) }

// Multiply is left * right.
type Multiply struct {
	Left, Right Expression
}

func (Multiply) IsReducible() bool { return true }
func (m Multiply) String() string  { return fmt.Sprintf("%s * %s", m.Left, m.Right) }

// LessThan is left < right.
type LessThan struct {
	Left, Right Expression
}

func (LessThan) IsReducible() bool { return true }
func (l LessThan) String() string  { return fmt.Sprintf("%s < %s", l.Left, l.Right) }

// ReduceExpr performs one small step of reduction under env, evaluating
// left-to-right (spec §4.10, §5 "leftmost-reducible subterm is reduced
// first"). It panics with cerr.ErrMisuse if e is already a value
// (reducing an irreducible term is a programmer error), with
// cerr.ErrUndefinedVariable on a variable miss, and with
// cerr.ErrTypeClash when a binary node's operands don't have the types
// the operator requires.
func ReduceExpr(e Expression, env Environment) Expression {
	switch n := e.(type) {
	case Number, Boolean:
		cerr.Panic(cerr.Misuse, "cannot reduce an irreducible expression: %s", e)
		panic("unreachable")
	case Variable:
		val, ok := env[string(n)]
		if !ok {
			cerr.Panic(cerr.UndefinedVariable, "undefined variable %q", string(n))
		}
		return val
	case Add:
		if n.Left.IsReducible() {
			return Add{Left: ReduceExpr(n.Left, env), Right: n.Right}
		}
		if n.Right.IsReducible() {
			return Add{Left: n.Left, Right: ReduceExpr(n.Right, env)}
		}
		l, r := requireNumbers(n.Left, n.Right, "Add")
		return Number(uint32(l) + uint32(r))
	case Multiply:
		if n.Left.IsReducible() {
			return Multiply{Left: ReduceExpr(n.Left, env), Right: n.Right}
		}
		if n.Right.IsReducible() {
			return Multiply{Left: n.Left, Right: ReduceExpr(n.Right, env)}
		}
		l, r := requireNumbers(n.Left, n.Right, "Multiply")
		return Number(uint32(l) * uint32(r))
	case LessThan:
		if n.Left.IsReducible() {
			return LessThan{Left: ReduceExpr(n.Left, env), Right: n.Right}
		}
		if n.Right.IsReducible() {
			return LessThan{Left: n.Left, Right: ReduceExpr(n.Right, env)}
		}
		l, r := requireNumbers(n.Left, n.Right, "LessThan")
		return Boolean(l < r)
	default:
		panic(fmt.Sprintf("unknown Expression type %T", e))
	}
}

func requireNumbers(left, right Expression, op string) (Number, Number) {
	l, lok := left.(Number)
	r, rok := right.(Number)
	if !lok || !rok {
		cerr.Panic(cerr.TypeClash, "%s requires two Numbers, got %T and %T", op, left, right)
	}
	return l, r
}

// Evaluate performs big-step evaluation of e under env in one call, using
// the same semantics as repeated ReduceExpr (spec §4.10).
func Evaluate(e Expression, env Environment) Expression {
	switch n := e.(type) {
	case Number, Boolean:
		return e
	case Variable:
		val, ok := env[string(n)]
		if !ok {
			cerr.Panic(cerr.UndefinedVariable, "undefined variable %q", string(n))
		}
		return val
	case Add:
		l, r := requireNumbers(Evaluate(n.Left, env), Evaluate(n.Right, env), "Add")
		return Number(uint32(l) + uint32(r))
	case Multiply:
		l, r := requireNumbers(Evaluate(n.Left, env), Evaluate(n.Right, env), "Multiply")
		return Number(uint32(l) * uint32(r))
	case LessThan:
		l, r := requireNumbers(Evaluate(n.Left, env), Evaluate(n.Right, env), "LessThan")
		return Boolean(l < r)
	default:
		panic(fmt.Sprintf("unknown Expression type %T", e))
	}
}
