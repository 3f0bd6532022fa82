// Package edits enumerates the strings one edit away from a token.
package edits

// Alphabet is the fixed set of letters used for insertions and substitutions.
type Alphabet string

// English is the lowercase Latin alphabet.
const English Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Kind names a single edit operation.
type Kind int

const (
	None Kind = iota
	Insert
	Delete
	Substitute
	Swap
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Substitute:
		return "substitute"
	case Swap:
		return "swap"
	default:
		return "none"
	}
}

// Generate returns every string reachable from token by exactly one
// insertion, deletion, substitution, or swap of two characters at any two
// positions. The token itself is never part of the result.
func Generate(token string, alphabet Alphabet) map[string]struct{} {
	r := []rune(token)
	n := len(r)
	letters := []rune(string(alphabet))

	out := make(map[string]struct{}, len(letters)*(2*n+1)+n*(n+1)/2)
	buf := make([]rune, 0, n+1)

	// insertions, including both ends
	for i := 0; i <= n; i++ {
		for _, c := range letters {
			buf = append(buf[:0], r[:i]...)
			buf = append(buf, c)
			buf = append(buf, r[i:]...)
			out[string(buf)] = struct{}{}
		}
	}

	for i := 0; i < n; i++ {
		buf = append(buf[:0], r[:i]...)
		buf = append(buf, r[i+1:]...)
		out[string(buf)] = struct{}{}
	}

	for i := 0; i < n; i++ {
		buf = append(buf[:0], r...)
		for _, c := range letters {
			if c == r[i] {
				continue
			}
			buf[i] = c
			out[string(buf)] = struct{}{}
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			buf = append(buf[:0], r...)
			buf[i], buf[j] = buf[j], buf[i]
			out[string(buf)] = struct{}{}
		}
	}

	delete(out, token)
	return out
}

// Classify reports which single edit turns from into to, or None when the
// two strings are equal or more than one edit apart.
func Classify(from, to string) Kind {
	a, b := []rune(from), []rune(to)
	switch {
	case len(b) == len(a)+1 && isInsertion(a, b):
		return Insert
	case len(a) == len(b)+1 && isInsertion(b, a):
		return Delete
	case len(a) != len(b):
		return None
	}

	var diff []int
	for i := range a {
		if a[i] != b[i] {
			diff = append(diff, i)
			if len(diff) > 2 {
				return None
			}
		}
	}
	switch len(diff) {
	case 1:
		return Substitute
	case 2:
		i, j := diff[0], diff[1]
		if a[i] == b[j] && a[j] == b[i] {
			return Swap
		}
	}
	return None
}

// isInsertion reports whether long is short with exactly one rune added.
func isInsertion(short, long []rune) bool {
	i := 0
	for i < len(short) && short[i] == long[i] {
		i++
	}
	for ; i < len(short); i++ {
		if short[i] != long[i+1] {
			return false
		}
	}
	return true
}
