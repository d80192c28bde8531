package loader

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1", 1, true},
		{" -2.5 ", -2.5, true},
		{"1e3", 1000, true},
		{"", 0, false},
		{"abc", 0, false},
		{"nan", 0, false},
		{"inf", 0, false},
		{"1e400", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseCell(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			} else {
				assert.True(t, math.IsNaN(got))
			}
		})
	}
}

func TestIsHeader(t *testing.T) {
	assert.True(t, isHeader([]string{"x", "y"}))
	assert.True(t, isHeader([]string{"1", "label"}))
	assert.False(t, isHeader([]string{"1", "2"}))
	assert.False(t, isHeader([]string{"", " 3 "}))
	assert.False(t, isHeader([]string{"", ""}))
	assert.False(t, isHeader([]string{"1", "nan"}))
	assert.False(t, isHeader([]string{"-Inf", " 2 "}))
	assert.False(t, isHeader([]string{"1e400", "0"}))
}

func TestToArray(t *testing.T) {
	t.Run("RaggedPadded", func(t *testing.T) {
		arr, err := toArray([][]string{{"1", "2", ""}, {"3", "4"}})
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, arr.ToRows())
	})

	t.Run("RaggedHole", func(t *testing.T) {
		_, err := toArray([][]string{{"1", "2", "3"}, {"4", "5"}})
		assert.True(t, isParseError(err))
	})

	t.Run("NoData", func(t *testing.T) {
		_, err := toArray([][]string{{"a"}, {""}})
		assert.ErrorIs(t, err, errNoNumericData)
		_, err = toArray(nil)
		assert.ErrorIs(t, err, errNoNumericData)
	})
}
