package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMachine_Scenario5 replicates spec §8 scenario 5:
// Assignment("x", Add(Variable("x"), Number(1))) under {x: 2} terminates
// with {x: 3}.
func TestMachine_Scenario5(t *testing.T) {
	assert := assert.New(t)

	stmt := Assignment{Name: "x", Expr: Add{Left: Variable("x"), Right: Number(1)}}
	env := NewEnvironment(map[string]Expression{"x": Number(2)})

	m := NewMachine(stmt, env)
	final := m.RunSilent()

	assert.Equal(Number(3), final["x"])
	assert.Equal(DoNothing{}, m.Statement)
}

// TestMachine_Scenario6 replicates spec §8 scenario 6:
// While(LessThan(Variable("x"), Number(5)), Assignment("x",
// Multiply(Variable("x"), Number(3)))) under {x: 1} terminates with {x: 9}.
func TestMachine_Scenario6(t *testing.T) {
	assert := assert.New(t)

	stmt := While{
		Cond: LessThan{Left: Variable("x"), Right: Number(5)},
		Body: Assignment{Name: "x", Expr: Multiply{Left: Variable("x"), Right: Number(3)}},
	}
	env := NewEnvironment(map[string]Expression{"x": Number(1)})

	m := NewMachine(stmt, env)
	final := m.RunSilent()

	assert.Equal(Number(9), final["x"])
}

func TestStatement_Reduce_DoNothingPanics(t *testing.T) {
	assert := assert.New(t)
	assert.Panics(func() {
		Reduce(DoNothing{}, NewEnvironment(nil))
	})
}

func TestStatement_Reduce_IfRequiresBoolean(t *testing.T) {
	assert := assert.New(t)
	assert.Panics(func() {
		Reduce(If{Cond: Number(1), Then: DoNothing{}, Else: DoNothing{}}, NewEnvironment(nil))
	})
}

func TestStatement_Reduce_WhileUnfoldsToIf(t *testing.T) {
	assert := assert.New(t)

	w := While{Cond: Boolean(true), Body: DoNothing{}}
	next, env := Reduce(w, NewEnvironment(nil))

	ifStmt, ok := next.(If)
	assert.True(ok)
	assert.Equal(Boolean(true), ifStmt.Cond)
	assert.Equal(Sequence{First: DoNothing{}, Second: w}, ifStmt.Then)
	assert.Equal(DoNothing{}, ifStmt.Else)
	assert.Equal(NewEnvironment(nil), env)
}

// TestStatement_SmallBigEquivalence checks the "small-big equivalence
// (statements)" property from spec §8: driving a Machine to a fixpoint
// yields the same final environment as RunBigStep, and environments only
// ever grow (monotonicity).
func TestStatement_SmallBigEquivalence(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		name string
		stmt Statement
		env  Environment
	}{
		{
			"assignment",
			Assignment{Name: "x", Expr: Add{Left: Variable("x"), Right: Number(1)}},
			NewEnvironment(map[string]Expression{"x": Number(2)}),
		},
		{
			"sequence",
			Sequence{
				First:  Assignment{Name: "x", Expr: Number(1)},
				Second: Assignment{Name: "y", Expr: Add{Left: Variable("x"), Right: Number(1)}},
			},
			NewEnvironment(nil),
		},
		{
			"if-else",
			If{Cond: LessThan{Left: Number(5), Right: Number(1)}, Then: Assignment{Name: "x", Expr: Number(1)}, Else: Assignment{Name: "x", Expr: Number(2)}},
			NewEnvironment(nil),
		},
		{
			"while",
			While{
				Cond: LessThan{Left: Variable("x"), Right: Number(5)},
				Body: Assignment{Name: "x", Expr: Multiply{Left: Variable("x"), Right: Number(3)}},
			},
			NewEnvironment(map[string]Expression{"x": Number(1)}),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine(tc.stmt, tc.env)
			small := m.RunSilent()
			big := RunBigStep(tc.stmt, tc.env)

			assert.Equal(big, small)
			assert.True(small.ContainsAll(tc.env), "environment must only grow")
		})
	}
}
