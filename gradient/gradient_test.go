package gradient

import (
	"testing"

	"github.com/bodgit/grampix/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengths(t *testing.T) {
	require.Equal(t, raster.Dim-1, Len())
	for k := 1; k <= Len(); k++ {
		assert.Len(t, Ramp(k), k, "k = %d", k)
	}
	assert.Nil(t, Ramp(0))
	assert.Nil(t, Ramp(raster.Dim))
}

func TestRampEnds(t *testing.T) {
	lo, hi := 1.0/28, 27.0/28

	assert.Equal(t, []float64{lo}, Ramp(1))
	assert.Equal(t, []float64{lo, hi}, Ramp(2))

	r := Ramp(27)
	assert.Equal(t, lo, r[0])
	assert.Equal(t, hi, r[26])
	assert.InDelta(t, 14.0/28, r[13], 1e-12)
}

func TestRampIncreasing(t *testing.T) {
	for k := 2; k <= Len(); k++ {
		r := Ramp(k)
		for i := 1; i < k; i++ {
			assert.Greater(t, r[i], r[i-1], "k = %d, i = %d", k, i)
		}
	}
}

func TestRampIsCopy(t *testing.T) {
	r := Ramp(3)
	r[0] = 42
	assert.Equal(t, 1.0/28, Value(3, 0))
}
