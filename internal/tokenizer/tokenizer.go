// Package tokenizer turns raw text into lowercase word, punctuation and
// line-break tokens.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"txtcleaner/internal/lexicon"
)

// Newline is the token emitted for an explicit line break.
const Newline = "\n"

var (
	tagRe      = regexp.MustCompile(`<[^<]+?>`)
	nonASCIIRe = regexp.MustCompile(`[^\x00-\x7F]+`)
	quoteRunRe = regexp.MustCompile("''+|``+")
	fieldRe    = regexp.MustCompile(`\S+|` + Newline)
	tokenRe    = regexp.MustCompile(Newline + `|[(\[{]+|\w+(?:[-']\w+)*|[^\s\w]`)
)

// Tokenizer splits text using a fixed contraction table.
type Tokenizer struct {
	contractions lexicon.Contractions
	foldAccents  bool
}

// New returns a Tokenizer expanding the given contractions. A nil table
// disables expansion.
func New(contractions lexicon.Contractions) *Tokenizer {
	return &Tokenizer{contractions: contractions}
}

// WithAccentFolding makes the tokenizer strip diacritics before non-ASCII
// characters are blanked, so "café" survives as "cafe" instead of "caf".
func (t *Tokenizer) WithAccentFolding(enabled bool) *Tokenizer {
	t.foldAccents = enabled
	return t
}

// Tokenize returns the ordered tokens of text.
func (t *Tokenizer) Tokenize(text string) []string {
	s := StripTags(text)
	if t.foldAccents {
		s = FoldAccents(s)
	}
	s = StripNonASCII(s)
	s = StripNumberCommas(s)
	s = NormalizeQuotes(s)
	s = t.expand(s)

	var out []string
	for _, tok := range tokenRe.FindAllString(s, -1) {
		out = append(out, SplitHyphen(tok)...)
	}
	return out
}

// expand lowercases every whitespace-separated field, replacing known
// contractions by their expansion, and rejoins the fields with single spaces.
func (t *Tokenizer) expand(s string) string {
	fields := fieldRe.FindAllString(s, -1)
	for i, f := range fields {
		if e, ok := t.contractions.Expand(f); ok {
			fields[i] = strings.ToLower(e)
			continue
		}
		fields[i] = strings.ToLower(f)
	}
	return strings.Join(fields, " ")
}

// StripTags removes HTML-like markup.
func StripTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}

// StripNonASCII replaces every run of non-ASCII characters with one space.
func StripNonASCII(s string) string {
	return nonASCIIRe.ReplaceAllString(s, " ")
}

// FoldAccents decomposes s and drops combining marks.
func FoldAccents(s string) string {
	tr := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(tr, s)
	if err != nil {
		return s
	}
	return out
}

// StripNumberCommas drops thousands separators: commas with a digit on both sides.
func StripNumberCommas(s string) string {
	if !strings.Contains(s, ",") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ',' && i > 0 && i+1 < len(s) && isDigit(s[i-1]) && isDigit(s[i+1]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// NormalizeQuotes turns runs of two or more straight single quotes or
// backticks into a double quote. A lone apostrophe is left alone.
func NormalizeQuotes(s string) string {
	return quoteRunRe.ReplaceAllString(s, `"`)
}

// SplitHyphen splits a token containing a hyphen into its first character
// and the remainder. An empty remainder is dropped.
func SplitHyphen(tok string) []string {
	if !strings.Contains(tok, "-") || len(tok) < 2 {
		return []string{tok}
	}
	return []string{tok[:1], tok[1:]}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
