// Package lexicon loads the reference vocabulary used by the cleaner: word
// frequencies, extra known words, contractions and the exemption set.
package lexicon

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrEmptyTable is returned when a frequency source yields no usable entry.
var ErrEmptyTable = errors.New("frequency table is empty")

// Frequencies maps a lowercase word to its occurrence count. A missing key
// means the word is unknown; it never stands for a zero count.
type Frequencies map[string]int

// Count returns the count for word and whether it is present.
func (f Frequencies) Count(word string) (int, bool) {
	c, ok := f[word]
	return c, ok
}

// LoadFrequencies reads "word count" lines. Blank and malformed lines are
// skipped, fractional counts are truncated and repeated words are summed.
func LoadFrequencies(path string) (Frequencies, error) {
	freq := make(Frequencies)
	err := scanMapped(path, func(line []byte) {
		parts := strings.Fields(string(line))
		if len(parts) < 2 {
			return
		}
		word := strings.ToLower(parts[0])
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			fv, err2 := strconv.ParseFloat(parts[1], 64)
			if err2 != nil {
				return
			}
			count = int(fv)
		}
		if count < 0 {
			return
		}
		freq[word] += count
	})
	if err != nil {
		return nil, err
	}
	if len(freq) == 0 {
		return nil, ErrEmptyTable
	}
	return freq, nil
}

var corpusWord = regexp.MustCompile(`[a-z]+(?:'[a-z]+)*`)

// CountCorpus builds a frequency table from raw running text.
func CountCorpus(r io.Reader) (Frequencies, error) {
	freq := make(Frequencies)
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		for _, w := range corpusWord.FindAllString(strings.ToLower(s.Text()), -1) {
			freq[w]++
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(freq) == 0 {
		return nil, ErrEmptyTable
	}
	return freq, nil
}

// LoadWordList reads one known word per line (first field), lowercased.
// These words are known but carry no frequency.
func LoadWordList(path string) ([]string, error) {
	var words []string
	err := scanMapped(path, func(line []byte) {
		parts := strings.Fields(string(line))
		if len(parts) == 0 || strings.HasPrefix(parts[0], "#") {
			return
		}
		words = append(words, strings.ToLower(parts[0]))
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}
