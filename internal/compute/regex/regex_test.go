package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseAndMatch_BookExample mirrors spec §8 scenario 3: parse
// "(a(|b))*", then match: accept "abaab", reject "abba".
func TestParseAndMatch_BookExample(t *testing.T) {
	pat, err := Parse("(a(|b))*")
	require.NoError(t, err)

	assert.True(t, Match(pat, "abaab"))
	assert.False(t, Match(pat, "abba"))
}

func TestParse_EmptyInputAndEmptyAlternative(t *testing.T) {
	pat, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, TypeEmpty, pat.Type())
	assert.True(t, Match(pat, ""))
	assert.False(t, Match(pat, "a"))

	pat, err = Parse("a|")
	require.NoError(t, err)
	assert.True(t, Match(pat, "a"))
	assert.True(t, Match(pat, ""))
	assert.False(t, Match(pat, "b"))
}

func TestParse_ResidualInputIsError(t *testing.T) {
	_, err := Parse("a)")
	assert.Error(t, err)

	_, err = Parse("a|*b")
	assert.Error(t, err)
}

func TestParse_RejectsNonAlphaLiteral(t *testing.T) {
	_, err := Parse("a1b")
	assert.Error(t, err)
}

// TestPrettyPrintParseRoundTrip checks that parse(print(R)) prints the same
// as R (spec §8 "pretty-print parse round trip"). It compares printed forms,
// so it does not tell apart ASTs that differ only in the associativity of
// '|' or concatenation.
func TestPrettyPrintParseRoundTrip(t *testing.T) {
	sources := []string{"a", "ab", "a|b", "a*", "(a|b)*", "a(a|b)", "(ab)*c|d"}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			pat, err := Parse(src)
			require.NoError(t, err)

			printed := pat.String()
			reparsed, err := Parse(printed)
			require.NoError(t, err)

			assert.Equal(t, printed, reparsed.String())
		})
	}
}

func TestThompsonRoundTrip(t *testing.T) {
	sources := []string{"a", "ab", "a|b", "a*", "(a|b)*", "(a(|b))*"}
	strs := []string{"", "a", "b", "ab", "aa", "aaab", "abab"}

	for _, src := range sources {
		pat, err := Parse(src)
		require.NoError(t, err)

		nfa := Compile(pat, &sharedAllocator)
		dfa := nfa.ToDFA()

		// The DFA only has rules for the pattern's alphabet, so a string
		// with any other symbol drives it off its rulebook (ok == false);
		// such a string cannot match the pattern either.
		for _, s := range strs {
			accepted, ok := dfa.TryAccept(s)
			assert.Equalf(t, Match(pat, s), ok && accepted, "pattern %q string %q", src, s)
		}
	}
}
