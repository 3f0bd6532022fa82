package lexicon

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"
)

//go:embed contractions.tsv
var defaultContractions []byte

// Contractions maps a lowercase contraction to its expanded phrase.
type Contractions map[string]string

// Expand returns the expansion for token, matched case-insensitively.
func (c Contractions) Expand(token string) (string, bool) {
	e, ok := c[strings.ToLower(token)]
	return e, ok
}

// DefaultContractions returns the built-in English contraction table.
func DefaultContractions() Contractions {
	c := make(Contractions)
	s := bufio.NewScanner(bytes.NewReader(defaultContractions))
	for s.Scan() {
		c.addLine(s.Bytes())
	}
	return c
}

// LoadContractions reads "form<TAB>expansion" lines. Lines starting with #
// and lines without a tab are ignored.
func LoadContractions(path string) (Contractions, error) {
	c := make(Contractions)
	if err := scanMapped(path, c.addLine); err != nil {
		return nil, err
	}
	return c, nil
}

func (c Contractions) addLine(line []byte) {
	s := string(line)
	if strings.HasPrefix(s, "#") {
		return
	}
	form, expansion, ok := strings.Cut(s, "\t")
	if !ok {
		return
	}
	form = strings.ToLower(strings.TrimSpace(form))
	expansion = strings.TrimSpace(expansion)
	if form == "" || expansion == "" {
		return
	}
	c[form] = expansion
}
