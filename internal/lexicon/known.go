package lexicon

import (
	"strings"
	"unicode"
)

// DefaultExemptions are titles and marks that are never corrected.
var DefaultExemptions = []string{
	"mrs", "miss", "mr", "dr", "prof", "lt",
	"dr.", "prof.", "lt.", "\n", `"`,
}

// KnownSet is the vocabulary that bypasses spelling correction. It is built
// once and only read afterwards.
type KnownSet struct {
	words map[string]struct{}
}

// NewKnownSet unions the frequency keys with any number of extra word lists.
func NewKnownSet(freq Frequencies, extra ...[]string) *KnownSet {
	n := len(freq)
	for _, e := range extra {
		n += len(e)
	}
	words := make(map[string]struct{}, n)
	for w := range freq {
		words[w] = struct{}{}
	}
	for _, e := range extra {
		for _, w := range e {
			words[strings.ToLower(w)] = struct{}{}
		}
	}
	return &KnownSet{words: words}
}

// Contains reports whether token is a known word. Tokens made only of
// symbols (no letters or digits) are always known.
func (k *KnownSet) Contains(token string) bool {
	if _, ok := k.words[token]; ok {
		return true
	}
	return isSymbol(token)
}

// With returns a new set holding the receiver's words plus words.
func (k *KnownSet) With(words ...string) *KnownSet {
	out := make(map[string]struct{}, len(k.words)+len(words))
	for w := range k.words {
		out[w] = struct{}{}
	}
	for _, w := range words {
		out[strings.ToLower(w)] = struct{}{}
	}
	return &KnownSet{words: out}
}

func isSymbol(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
