package lang

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachine_Run_EmitsTraceBeforeEveryStepAndOnceMore(t *testing.T) {
	assert := assert.New(t)

	stmt := Assignment{Name: "x", Expr: Number(1)}
	env := NewEnvironment(nil)

	var buf bytes.Buffer
	m := NewMachine(stmt, env)
	final := m.Run(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// one reducible statement means exactly one step: 2 trace lines
	// (before the step, and once more after the loop ends).
	assert.Len(lines, 2)
	assert.Contains(lines[0], "x = 1")
	assert.Contains(lines[1], "do-nothing")
	assert.Equal(Number(1), final["x"])
}

func TestMachine_Step_AdvancesOneReduction(t *testing.T) {
	assert := assert.New(t)

	stmt := Sequence{First: Assignment{Name: "x", Expr: Number(1)}, Second: DoNothing{}}
	m := NewMachine(stmt, NewEnvironment(nil))

	m.Step()
	assert.Equal(Sequence{First: DoNothing{}, Second: DoNothing{}}, m.Statement)

	m.Step()
	assert.Equal(DoNothing{}, m.Statement)
	assert.False(m.Statement.IsReducible())
}
