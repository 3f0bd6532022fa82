package corrector

import (
	"runtime"
	"sync"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"txtcleaner/internal/edits"
	"txtcleaner/internal/lexicon"
)

// SpellCorrector resolves an unknown token to its most frequent single-edit
// neighbour in a frequency table. The table is only read, so one corrector
// may serve many goroutines.
type SpellCorrector struct {
	frequencies lexicon.Frequencies
	alphabet    edits.Alphabet
	maxKeyLen   int // longest table key, in runes
	cache       *lru.Cache[string, result]
}

// CacheSize bounds the number of memoized corrections.
const CacheSize = 1 << 16

// New builds a corrector over freq. An empty alphabet selects edits.English.
func New(freq lexicon.Frequencies, alphabet edits.Alphabet) *SpellCorrector {
	return newWithCache(freq, alphabet, CacheSize)
}

func newWithCache(freq lexicon.Frequencies, alphabet edits.Alphabet, size int) *SpellCorrector {
	if alphabet == "" {
		alphabet = edits.English
	}
	maxKeyLen := 0
	for w := range freq {
		if n := utf8.RuneCountInString(w); n > maxKeyLen {
			maxKeyLen = n
		}
	}
	cache, err := lru.New[string, result](size)
	if err != nil {
		panic(err)
	}
	return &SpellCorrector{
		frequencies: freq,
		alphabet:    alphabet,
		maxKeyLen:   maxKeyLen,
		cache:       cache,
	}
}

// Correct returns the highest-frequency known single-edit variant of token.
// Equal counts go to the lexicographically smallest candidate. When no
// variant is known the token comes back unchanged with ok == false.
func (sc *SpellCorrector) Correct(token string) (string, bool) {
	// a single edit changes the length by at most one rune
	if utf8.RuneCountInString(token) > sc.maxKeyLen+1 {
		return token, false
	}
	if r, ok := sc.cache.Get(token); ok {
		return r.term, r.resolved
	}

	best, bestCount, found := token, 0, false
	for cand := range edits.Generate(token, sc.alphabet) {
		count, ok := sc.frequencies.Count(cand)
		if !ok {
			continue
		}
		if !found || count > bestCount || (count == bestCount && cand < best) {
			best, bestCount, found = cand, count, true
		}
	}

	sc.cache.Add(token, result{term: best, resolved: found})
	return best, found
}

// CorrectAll corrects every token using at most workers goroutines and
// returns one Correction per token, in input order. Repeated tokens are
// corrected once. workers <= 0 means runtime.NumCPU().
func (sc *SpellCorrector) CorrectAll(tokens []string, workers int) []Correction {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	unique := make([]string, 0, len(tokens))
	seen := make(map[string]int, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; !ok {
			seen[t] = len(unique)
			unique = append(unique, t)
		}
	}
	if workers > len(unique) {
		workers = len(unique)
	}

	results := make([]result, len(unique))
	tasks := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				term, ok := sc.Correct(unique[i])
				results[i] = result{term: term, resolved: ok}
			}
		}()
	}
	for i := range unique {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	out := make([]Correction, len(tokens))
	for i, t := range tokens {
		r := results[seen[t]]
		kind := edits.Classify(t, r.term)
		out[i] = Correction{
			Index:       i,
			Original:    t,
			Replacement: r.term,
			Kind:        kind,
			Edit:        kind.String(),
			Resolved:    r.resolved,
		}
	}
	return out
}
