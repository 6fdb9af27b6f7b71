package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			m, err := Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, name, m.Name())
		})
	}

	_, err := Lookup("ordered")
	require.ErrorIs(t, err, ErrUnknownMapping)
	assert.Contains(t, err.Error(), "ordinal, frequency, aesthetic")
}

func TestBijection(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			m := MustLookup(name)
			seen := make(map[int]rune)
			for c := 'a'; c <= 'z'; c++ {
				y, ok := m.Row(c)
				require.True(t, ok)
				require.GreaterOrEqual(t, y, 1)
				require.LessOrEqual(t, y, 26)
				require.NotContains(t, seen, y)
				seen[y] = c

				l, ok := m.Letter(y)
				require.True(t, ok)
				assert.Equal(t, byte(c), l)
			}
			assert.Len(t, m.Order(), 26)
		})
	}
}

func TestRows(t *testing.T) {
	tests := []struct {
		mapping string
		letter  rune
		row     int
	}{
		{Ordinal, 'a', 1},
		{Ordinal, 'z', 26},
		{Frequency, 'a', 15},
		{Frequency, 'z', 1},
		{Aesthetic, 'a', 14},
		{Aesthetic, 'q', 1},
	}

	for _, tt := range tests {
		t.Run(tt.mapping+"/"+string(tt.letter), func(t *testing.T) {
			y, ok := MustLookup(tt.mapping).Row(tt.letter)
			require.True(t, ok)
			assert.Equal(t, tt.row, y)
		})
	}
}

func TestUnmapped(t *testing.T) {
	m := MustLookup(Ordinal)

	for _, r := range []rune{'A', '1', ' ', 'ß', '_'} {
		_, ok := m.Row(r)
		assert.False(t, ok, "%q", r)
	}

	for _, y := range []int{-1, 0, 27, 28} {
		_, ok := m.Letter(y)
		assert.False(t, ok, "row %d", y)
	}
}

func TestOrder(t *testing.T) {
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", MustLookup(Ordinal).Order())
	assert.Equal(t, "etaoinsrhdlucmfywgpbvkxqjz", MustLookup(Frequency).Order())
	assert.Equal(t, "etaoinsrhdlucmfywgpbvkxqjz", MustLookup(Aesthetic).Order())
}
