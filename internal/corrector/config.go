package corrector

import "txtcleaner/internal/edits"

// Correction records the outcome for one token.
type Correction struct {
	Index       int        `json:"index"`
	Original    string     `json:"original"`
	Replacement string     `json:"replacement"`
	Kind        edits.Kind `json:"-"`
	Edit        string     `json:"edit"`
	Resolved    bool       `json:"resolved"`
}

type result struct {
	term     string
	resolved bool
}
