package edits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_cat(t *testing.T) {
	got := Generate("cat", English)

	for _, want := range []string{"cats", "acat", "at", "ca", "bat", "cut", "act", "tac"} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "cat")
}

// Closed form for a token of n distinct letters over k letters:
// k(n+1) insertions, n deletions, n(k-1) substitutions, n(n-1)/2 swaps,
// minus the n insertions that double a letter on either side of itself.
func TestGenerate_closedFormCount(t *testing.T) {
	k := len(English)
	for _, token := range []string{"cat", "word", "xyzzyq"[:3], "plume"} {
		n := len(token)
		want := k*(n+1) + n + n*(k-1) + n*(n-1)/2 - n
		assert.Len(t, Generate(token, English), want, "token %q", token)
	}
}

func TestGenerate_smallAlphabet(t *testing.T) {
	got := Generate("ab", Alphabet("ab"))

	want := map[string]struct{}{
		"aab": {}, "bab": {}, "abb": {}, "aba": {},
		"a": {}, "b": {},
		"bb": {}, "aa": {},
		"ba": {},
	}
	assert.Equal(t, want, got)
}

func TestGenerate_excludesIdentitySwap(t *testing.T) {
	got := Generate("aa", Alphabet("ab"))
	assert.NotContains(t, got, "aa")
	assert.Contains(t, got, "a")
	assert.Contains(t, got, "ba")
}

func TestGenerate_emptyToken(t *testing.T) {
	got := Generate("", English)
	assert.Len(t, got, len(English))
	assert.Contains(t, got, "q")
}

func TestGenerate_isPure(t *testing.T) {
	assert.Equal(t, Generate("teh", English), Generate("teh", English))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		from, to string
		want     Kind
	}{
		{"teh", "the", Swap},
		{"tha", "ath", None},
		{"cat", "cats", Insert},
		{"cat", "scat", Insert},
		{"cats", "cat", Delete},
		{"cat", "bat", Substitute},
		{"cat", "cat", None},
		{"cat", "dog", None},
		{"cat", "c", None},
		{"form", "from", Swap},
		{"acb", "bca", Swap},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "swap", Swap.String())
	assert.Equal(t, "none", None.String())
}
