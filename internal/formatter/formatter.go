// Package formatter applies cosmetic clean-up to space-joined token text.
package formatter

import (
	"regexp"
	"strings"
)

type rule struct {
	re   *regexp.Regexp
	repl string
}

// Spacing rules run in order, each until the text stops changing. Removal
// only touches spaces and tabs so line breaks survive.
var spacing = []rule{
	{regexp.MustCompile(`[ \t]*\n[ \t]*`), "\n"},
	{regexp.MustCompile(`[ \t]([?.!,:;"](?:\s|$))`), "$1"},
	{regexp.MustCompile(`\b[ \t]+'\b`), "'"},
	{regexp.MustCompile(`[ \t]([)\]}](?:\s|$))`), "$1"},
	{regexp.MustCompile(`((?:^|\s)[(\[{]+)[ \t]`), "$1"},
	{regexp.MustCompile(`[ \t]-[ \t]`), "-"},
	{regexp.MustCompile(`([a-zA-Z])--`), "$1 --"},
	{regexp.MustCompile(`--([a-zA-Z])`), "-- $1"},
	{regexp.MustCompile(`,"`), `",`},
}

var (
	sentenceStartRe = regexp.MustCompile(`^[a-z]|[.?!]\s*[a-z]`)
	initialRe       = regexp.MustCompile(`\s[a-z]\.`)
	loneIRe         = regexp.MustCompile(`(^|\s)i([\s,;:!?]|$)`)
)

// Format tidies spacing and punctuation and then fixes capitalization.
// Format(Format(s)) == Format(s).
func Format(s string) string {
	return Capitalize(Tidy(s))
}

// Tidy removes the spaces the token join leaves before punctuation and
// closing brackets and after opening brackets, glues single hyphens to their
// neighbours, pads double hyphens away from letters, trims spaces around
// line breaks and moves commas outside closing quotes.
func Tidy(s string) string {
	for _, r := range spacing {
		s = replaceUntilStable(r.re, s, r.repl)
	}
	return s
}

// Capitalize uppercases the first letter of the text and of every sentence,
// single-letter initials such as " j." and the pronoun "i".
func Capitalize(s string) string {
	s = sentenceStartRe.ReplaceAllStringFunc(s, strings.ToUpper)
	s = initialRe.ReplaceAllStringFunc(s, strings.ToUpper)
	return replaceUntilStable(loneIRe, s, "${1}I${2}")
}

func replaceUntilStable(re *regexp.Regexp, s, repl string) string {
	for {
		next := re.ReplaceAllString(s, repl)
		if next == s {
			return s
		}
		s = next
	}
}
