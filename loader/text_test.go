package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]float64
		delim string
	}{
		{"Tab", "1\t2\t3\n4\t5\t6\n", [][]float64{{1, 2, 3}, {4, 5, 6}}, "tab"},
		{"TabCRLF", "1\t2\r\n3\t4\r\n", [][]float64{{1, 2}, {3, 4}}, "tab"},
		{"Blanks", "1   2\n  3 4\n\n", [][]float64{{1, 2}, {3, 4}}, "auto:blank"},
		{"Comma", "1,2\n3,4\n", [][]float64{{1, 2}, {3, 4}}, "auto:comma"},
		{"CommaWithSpaces", "1, 2, 3\n4, 5, 6\n", [][]float64{{1, 2, 3}, {4, 5, 6}}, "auto:comma"},
		{"Semicolon", "1;2\n3;4\n", [][]float64{{1, 2}, {3, 4}}, "auto:semicolon"},
		{"SingleColumn", "1\n2\n3\n", [][]float64{{1}, {2}, {3}}, "auto:none"},
		{"BOM", "\xef\xbb\xbf1 2\n3 4\n", [][]float64{{1, 2}, {3, 4}}, "auto:blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr, delim, err := parseText([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, arr.ToRows())
			assert.Equal(t, tt.delim, delim)
		})
	}
}

func TestSplitSniffedInconsistentWidths(t *testing.T) {
	// Comma count differs per line, so the auto attempt keeps one field per line.
	records, name, err := splitSniffed([]byte("1,2\n3\n"))
	require.NoError(t, err)
	assert.Equal(t, "auto:none", name)
	assert.Equal(t, [][]string{{"1,2"}, {"3"}}, records)
}
