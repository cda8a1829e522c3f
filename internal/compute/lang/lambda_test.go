package lang

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// No JS engine is vendored into this module, so these tests check the
// generated source's shape and recursive structure rather than actually
// running it.
func TestToLambdaExpr_Shape(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		name string
		expr Expression
	}{
		{"number", Number(5)},
		{"boolean", Boolean(true)},
		{"variable", Variable("x")},
		{"add", Add{Left: Variable("x"), Right: Number(1)}},
		{"multiply", Multiply{Left: Variable("x"), Right: Number(3)}},
		{"less-than", LessThan{Left: Variable("x"), Right: Number(5)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToLambdaExpr(tc.expr)
			assert.Contains(got, "function (e)")
			assert.Contains(got, "return")
		})
	}
}

func TestToLambda_Shape(t *testing.T) {
	assert := assert.New(t)

	x := Variable("x")
	cases := []struct {
		name string
		stmt Statement
		want []string
	}{
		{"do-nothing", DoNothing{}, []string{"return e;"}},
		{"assignment", Assignment{Name: "x", Expr: Number(1)}, []string{"Object.assign", `"x"`}},
		{"if", If{Cond: Boolean(true), Then: DoNothing{}, Else: DoNothing{}}, []string{"?", ":"}},
		{"sequence", Sequence{First: Assignment{Name: "x", Expr: Number(1)}, Second: DoNothing{}}, []string{"Object.assign"}},
		{"while", While{Cond: LessThan{Left: x, Right: Number(5)}, Body: Assignment{Name: "x", Expr: Number(1)}}, []string{"function loop(e)", "loop("}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToLambda(tc.stmt)
			for _, want := range tc.want {
				assert.Contains(got, want, fmt.Sprintf("expected %q within generated source", want))
			}
		})
	}
}

// TestToLambda_MirrorsTermStructure checks that the generated source embeds
// nested closures for nested terms (the translator is compositional, not
// flattening), by checking that a sequence of two assignments yields at
// least five "function" occurrences.
func TestToLambda_MirrorsTermStructure(t *testing.T) {
	assert := assert.New(t)

	seq := Sequence{
		First:  Assignment{Name: "x", Expr: Add{Left: Number(1), Right: Number(2)}},
		Second: Assignment{Name: "y", Expr: Multiply{Left: Variable("x"), Right: Number(3)}},
	}
	src := ToLambda(seq)
	assert.GreaterOrEqual(countSubstr(src, "function"), 5)
}

func countSubstr(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
			i += len(sub) - 1
		}
	}
	return count
}
