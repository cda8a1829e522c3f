package scenario

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltin_RunProducesOutputForEveryScenario(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	Run(&buf, Builtin())

	out := buf.String()
	for _, s := range Builtin() {
		assert.Contains(out, string(s.Kind))
		assert.Contains(out, s.Name)
	}
	assert.NotContains(out, "panic:")
}

func TestRunDFA_MatchesScenario1(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	runDFA(&buf, Scenario{Inputs: []string{"a", "baa", "baba"}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Contains(lines[0], "false")
	assert.Contains(lines[1], "false")
	assert.Contains(lines[2], "true")
}

func TestLoad_DecodesScenarioFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := dir + "/scenarios.toml"
	content := `
[[scenario]]
name = "custom-regex"
kind = "regex"
source = "a*b"
inputs = ["aaab", "c"]
`
	assert.NoError(os.WriteFile(path, []byte(content), 0o644))

	f, err := Load(path)
	assert.NoError(err)
	assert.Len(f.Scenarios, 1)
	assert.Equal(KindRegex, f.Scenarios[0].Kind)
	assert.Equal("a*b", f.Scenarios[0].Source)
}
