/*
Package gradient implements the precomputed intensity ramps used to shade the
rows between two consecutive letters of a word raster.

For every row distance k from 1 to Dim-1 the table holds k values spaced
evenly from 1/Dim to (Dim-1)/Dim. A ramp of length one is just 1/Dim.
*/
package gradient

import "github.com/bodgit/grampix/raster"

// Table holds one ramp per row distance.
type Table [][]float64

func makeTable(dim int) Table {
	t := make(Table, dim)
	lo, hi := 1/float64(dim), float64(dim-1)/float64(dim)
	for k := 1; k < dim; k++ {
		ramp := make([]float64, k)
		ramp[0] = lo
		for i := 1; i < k; i++ {
			ramp[i] = lo + float64(i)*(hi-lo)/float64(k-1)
		}
		// Pin the end so it matches hi exactly
		if k > 1 {
			ramp[k-1] = hi
		}
		t[k] = ramp
	}
	return t
}

var table = makeTable(raster.Dim)

// Len returns the largest row distance with a ramp.
func Len() int { return len(table) - 1 }

// Value returns the i-th intensity of the ramp for row distance k. It panics
// if k or i is out of range.
func Value(k, i int) float64 {
	return table[k][i]
}

// Ramp returns a copy of the ramp for row distance k, or nil if there is
// none.
func Ramp(k int) []float64 {
	if k < 1 || k >= len(table) {
		return nil
	}
	return append([]float64(nil), table[k]...)
}
