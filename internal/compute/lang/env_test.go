package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_With_PreservesOtherBindings(t *testing.T) {
	assert := assert.New(t)

	env := NewEnvironment(map[string]Expression{"x": Number(1), "y": Number(2)})
	next := env.With("x", Number(9))

	assert.Equal(Number(9), next["x"])
	assert.Equal(Number(2), next["y"])
	assert.Equal(Number(1), env["x"], "With must not mutate the receiver")
}

func TestEnvironment_ContainsAll(t *testing.T) {
	assert := assert.New(t)

	base := NewEnvironment(map[string]Expression{"x": Number(1)})
	grown := base.With("y", Number(2))

	assert.True(grown.ContainsAll(base))
	assert.False(base.ContainsAll(grown))
}

func TestEnvironment_String_IsSortedByKey(t *testing.T) {
	assert := assert.New(t)

	env := NewEnvironment(map[string]Expression{"b": Number(2), "a": Number(1)})
	assert.Equal("{a: 1, b: 2}", env.String())
}
