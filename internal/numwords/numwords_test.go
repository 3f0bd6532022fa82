package numwords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "zero", input: "0", want: "zero"},
		{name: "zero padded", input: "000", want: "zero"},
		{name: "single digit", input: "7", want: "seven"},
		{name: "round ten", input: "20", want: "twenty"},
		{name: "tens and ones", input: "21", want: "twenty one"},
		{name: "teen", input: "13", want: "thirteen"},
		{name: "ten", input: "10", want: "ten"},
		{name: "bare hundred", input: "100", want: "one hundred and "},
		{name: "hundred with teen", input: "115", want: "one hundred and fifteen"},
		{name: "hundred with zero tens", input: "305", want: "three hundred and five"},
		{name: "hundred with tens", input: "742", want: "seven hundred and forty two"},
		{name: "thousand and teen", input: "1015", want: "one thousand, fifteen"},
		{name: "thousand only", input: "2000", want: "two thousand"},
		{name: "million boundary", input: "1000000", want: "one million"},
		{name: "skips zero groups", input: "5000000003", want: "five billion, three"},
		{name: "leading zeros ignored", input: "0000000000000000007", want: "seven"},
		{
			name:  "largest supported",
			input: "999999999999999",
			want: "nine hundred and ninety nine trillion, nine hundred and ninety nine billion, " +
				"nine hundred and ninety nine million, nine hundred and ninety nine thousand, " +
				"nine hundred and ninety nine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_scaleWordAppearsOnce(t *testing.T) {
	for input, scale := range map[string]string{
		"1000":             "thousand",
		"1000000":          "million",
		"1000000000":       "billion",
		"1000000000000":    "trillion",
		"1000000000001000": "",
	} {
		got, err := Convert(input)
		if scale == "" {
			assert.ErrorIs(t, err, ErrInvalidInput)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(got, scale), "Convert(%q) = %q", input, got)
		assert.True(t, strings.HasPrefix(got, "one "), "Convert(%q) = %q", input, got)
	}
}

func TestConvert_invalid(t *testing.T) {
	for _, input := range []string{"", "-5", "12a", "3.5", "1,000", "1000000000000000"} {
		t.Run(input, func(t *testing.T) {
			_, err := Convert(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestConvertInt(t *testing.T) {
	got, err := ConvertInt(42)
	require.NoError(t, err)
	assert.Equal(t, "forty two", got)

	got, err = ConvertInt(0)
	require.NoError(t, err)
	assert.Equal(t, Zero, got)

	_, err = ConvertInt(-1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
