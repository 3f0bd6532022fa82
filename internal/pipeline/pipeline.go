// Package pipeline wires the tokenizer, numeral converter, spelling
// corrector and formatter into a single text-cleaning pass.
package pipeline

import (
	"fmt"
	"log/slog"
	"strings"

	"txtcleaner/internal/corrector"
	"txtcleaner/internal/edits"
	"txtcleaner/internal/formatter"
	"txtcleaner/internal/lexicon"
	"txtcleaner/internal/numwords"
	"txtcleaner/internal/tokenizer"
	"txtcleaner/pkg/options"
)

// Class tells the pipeline which path a token takes.
type Class int

const (
	Numeric Class = iota
	Known
	Unknown
)

func (c Class) String() string {
	switch c {
	case Numeric:
		return "numeric"
	case Known:
		return "known"
	default:
		return "unknown"
	}
}

// Stats counts what happened to the tokens of one run.
type Stats struct {
	Tokens     int `json:"tokens"`
	Numerals   int `json:"numerals"`
	Known      int `json:"known"`
	Corrected  int `json:"corrected"`
	Unresolved int `json:"unresolved"`
}

// Result is the output of one run.
type Result struct {
	Text        string                 `json:"text"`
	Tokens      []string               `json:"tokens"`
	Corrections []corrector.Correction `json:"corrections"`
	Stats       Stats                  `json:"stats"`
}

// Pipeline holds the read-only tables of a run. It is safe for concurrent use.
type Pipeline struct {
	tokenizer *tokenizer.Tokenizer
	known     *lexicon.KnownSet
	corrector *corrector.SpellCorrector
	workers   int
	logger    *slog.Logger
}

// New builds a pipeline over a frequency table and a contraction table.
func New(freq lexicon.Frequencies, contractions lexicon.Contractions, opts ...options.Options) *Pipeline {
	o := options.Resolve(opts...)
	return &Pipeline{
		tokenizer: tokenizer.New(contractions).WithAccentFolding(o.FoldAccents),
		known:     lexicon.NewKnownSet(freq, lexicon.DefaultExemptions, o.Exemptions, o.WordList),
		corrector: corrector.New(freq, edits.Alphabet(o.Alphabet)),
		workers:   o.Workers,
		logger:    o.Logger,
	}
}

// WithKnown returns a pipeline sharing p's tables whose known set also holds
// words. p is left untouched.
func (p *Pipeline) WithKnown(words ...string) *Pipeline {
	cp := *p
	cp.known = p.known.With(words...)
	return &cp
}

// Classify tags a token as numeric, known or unknown, in that precedence.
func (p *Pipeline) Classify(token string) Class {
	if isNumeric(token) {
		return Numeric
	}
	if p.known.Contains(token) {
		return Known
	}
	return Unknown
}

// Run cleans text. The only failure is a numeral that cannot be spelled
// out, which aborts the run and names the offending token.
func (p *Pipeline) Run(text string) (Result, error) {
	tokens := p.tokenizer.Tokenize(text)
	out := make([]string, len(tokens))
	stats := Stats{Tokens: len(tokens)}

	var unknown []string
	var unknownAt []int

	for i, tok := range tokens {
		switch p.Classify(tok) {
		case Numeric:
			words, err := numwords.Convert(tok)
			if err != nil {
				return Result{}, fmt.Errorf("token %d %q: %w", i, tok, err)
			}
			out[i] = strings.Join(strings.Fields(words), " ")
			stats.Numerals++
		case Known:
			out[i] = tok
			stats.Known++
		case Unknown:
			unknown = append(unknown, tok)
			unknownAt = append(unknownAt, i)
		}
	}

	corrections := p.corrector.CorrectAll(unknown, p.workers)
	for j, c := range corrections {
		c.Index = unknownAt[j]
		corrections[j] = c
		out[c.Index] = c.Replacement
		if c.Resolved {
			stats.Corrected++
			continue
		}
		stats.Unresolved++
		p.logger.Debug("unresolved token", "token", c.Original, "index", c.Index)
	}

	return Result{
		Text:        formatter.Format(strings.Join(out, " ")),
		Tokens:      out,
		Corrections: corrections,
		Stats:       stats,
	}, nil
}

func isNumeric(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}
