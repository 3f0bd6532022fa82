// Package numwords spells out non-negative integers in English words.
package numwords

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxDigits is the widest number Convert accepts (hundreds of trillions).
const MaxDigits = 15

// GroupSeparator joins the rendered 3-digit groups.
const GroupSeparator = ", "

// Zero is returned for an all-zero input.
const Zero = "zero"

// ErrInvalidInput is returned for negative, non-numeric or oversized input.
var ErrInvalidInput = errors.New("invalid numeral")

var ones = map[byte]string{
	'1': "one", '2': "two", '3': "three", '4': "four", '5': "five",
	'6': "six", '7': "seven", '8': "eight", '9': "nine",
}

var teens = map[string]string{
	"10": "ten", "11": "eleven", "12": "twelve", "13": "thirteen", "14": "fourteen",
	"15": "fifteen", "16": "sixteen", "17": "seventeen", "18": "eighteen", "19": "nineteen",
}

var tens = map[byte]string{
	'2': "twenty", '3': "thirty", '4': "forty", '5': "fifty",
	'6': "sixty", '7': "seventy", '8': "eighty", '9': "ninety",
}

// scales is indexed by group position, most significant first.
var scales = [MaxDigits / 3]string{" trillion", " billion", " million", " thousand", ""}

// Convert renders a decimal digit string as words. Leading zeros are ignored
// when checking the magnitude.
func Convert(digits string) (string, error) {
	if digits == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidInput)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidInput, digits)
		}
	}

	significant := strings.TrimLeft(digits, "0")
	if significant == "" {
		return Zero, nil
	}
	if len(significant) > MaxDigits {
		return "", fmt.Errorf("%w: %q exceeds %d digits", ErrInvalidInput, digits, MaxDigits)
	}

	padded := strings.Repeat("0", MaxDigits-len(significant)) + significant

	groups := make([]string, 0, len(scales))
	for i, scale := range scales {
		chunk := padded[i*3 : i*3+3]
		if chunk == "000" {
			continue
		}
		groups = append(groups, chunkWords(chunk)+scale)
	}

	return strings.Join(groups, GroupSeparator), nil
}

// ConvertInt is Convert for a machine integer.
func ConvertInt(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d is negative", ErrInvalidInput, n)
	}
	return Convert(strconv.FormatInt(n, 10))
}

// chunkWords renders one zero-padded 3-digit group. Digits with no word
// (zeros) contribute nothing; the teen check wins over the tens check, which
// wins over a lone ones digit.
func chunkWords(chunk string) string {
	var b strings.Builder

	if w, ok := ones[chunk[0]]; ok {
		b.WriteString(w)
		b.WriteString(" hundred and ")
	}

	if w, ok := teens[chunk[1:]]; ok {
		b.WriteString(w)
	} else if w, ok := tens[chunk[1]]; ok {
		b.WriteString(w)
		if o, ok := ones[chunk[2]]; ok {
			b.WriteByte(' ')
			b.WriteString(o)
		}
	} else if o, ok := ones[chunk[2]]; ok {
		b.WriteString(o)
	}

	return b.String()
}
