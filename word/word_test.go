package word

import (
	"math"
	"strings"
	"testing"

	"github.com/bodgit/grampix/mapping"
	"github.com/bodgit/grampix/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ x, y int }

func nonZero(r *raster.Raster) map[point]float64 {
	m := make(map[point]float64)
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if v := r.Value(x, y); v != 0 {
				m[point{x, y}] = v
			}
		}
	}
	return m
}

func encode(t *testing.T, w, m string, style Style, compress bool) *raster.Raster {
	t.Helper()
	r, err := Encode(w, mapping.MustLookup(m), style, compress)
	require.NoError(t, err)
	require.Equal(t, raster.Dim, r.Width())
	require.Equal(t, raster.Dim, r.Height())
	return r
}

func decode(t *testing.T, r *raster.Raster, m string) string {
	t.Helper()
	s, err := Decode(r, mapping.MustLookup(m), nil)
	require.NoError(t, err)
	return s
}

func TestSingleLetter(t *testing.T) {
	tests := []struct {
		mapping string
		row     int
	}{
		{mapping.Ordinal, 1},
		{mapping.Frequency, 15},
		{mapping.Aesthetic, 14},
	}

	for _, tt := range tests {
		t.Run(tt.mapping, func(t *testing.T) {
			for _, style := range []Style{Binary, Gradient} {
				r := encode(t, "a", tt.mapping, style, false)
				assert.Equal(t, map[point]float64{{13, tt.row}: 1}, nonZero(r))
				assert.Equal(t, "a", decode(t, r, tt.mapping))
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	want := encode(t, "word", mapping.Aesthetic, Gradient, false)
	assert.True(t, want.Equal(encode(t, "  WoRd\t\n", mapping.Aesthetic, Gradient, false)))
}

func TestRoundTrip(t *testing.T) {
	words := []string{
		"a",
		"hello",
		"zebra",
		"abcdefghijklmnopqrstuvwxyz",
		"supercalifragilisticexpialid",
		"mississippi",
	}

	for _, name := range mapping.Names() {
		t.Run(name, func(t *testing.T) {
			for _, w := range words {
				assert.Equal(t, w, decode(t, encode(t, w, name, Binary, false), name))
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	long := "pneumonoultramicroscopicsilicovolcanoconiosis"
	require.Greater(t, len(long), raster.Dim)

	for _, name := range mapping.Names() {
		got := encode(t, long, name, Gradient, false)
		want := encode(t, long[:raster.Dim], name, Gradient, false)
		assert.True(t, want.Equal(got), name)
		assert.Equal(t, long[:raster.Dim], decode(t, got, name))
	}
}

func TestCompressOrder(t *testing.T) {
	w := "ae" + strings.Repeat("z", raster.Dim-1)

	// a goes first alphabetically
	r := encode(t, w, mapping.Ordinal, Binary, true)
	assert.Equal(t, "e"+strings.Repeat("z", raster.Dim-1), decode(t, r, mapping.Ordinal))

	// e goes first by frequency
	r = encode(t, w, mapping.Frequency, Binary, true)
	assert.Equal(t, "a"+strings.Repeat("z", raster.Dim-1), decode(t, r, mapping.Frequency))
}

func TestCompressStopsEarly(t *testing.T) {
	w := "ab" + strings.Repeat("c", raster.Dim)
	r := encode(t, w, mapping.Ordinal, Binary, true)
	assert.Equal(t, strings.Repeat("c", raster.Dim), decode(t, r, mapping.Ordinal))
}

func TestCompressFallback(t *testing.T) {
	tests := []struct {
		name string
		word string
	}{
		{"empty", strings.Repeat("z", raster.Dim+1)},
		{"symbols", strings.Repeat("1", raster.Dim+1) + "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, name := range mapping.Names() {
				assert.True(t, encode(t, tt.word, name, Gradient, true).Blank())
				assert.Empty(t, nonZero(encode(t, tt.word, name, Gradient, true)))
			}
		})
	}
}

func TestNonAlphabet(t *testing.T) {
	s := "1234567890ß@__a__><#'|>+*~:;,.µ°^´`{}[]()/&%$§!"

	r := encode(t, s, mapping.Aesthetic, Gradient, false)
	assert.Equal(t, map[point]float64{{14, 14}: 1}, nonZero(r))

	assert.Empty(t, nonZero(encode(t, s, mapping.Aesthetic, Gradient, true)))
	assert.Empty(t, nonZero(encode(t, strings.Replace(s, "a", "", 1), mapping.Aesthetic, Gradient, false)))
	assert.Empty(t, nonZero(encode(t, "0123456789.,!", mapping.Ordinal, Binary, false)))
}

func TestGradient(t *testing.T) {
	lo, hi := 1.0/raster.Dim, float64(raster.Dim-1)/raster.Dim

	tests := []struct {
		name string
		word string
		want map[point]float64
	}{
		{
			"ascending",
			"ac",
			map[point]float64{
				{13, 1}: 1,
				{14, 1}: lo,
				{14, 2}: hi,
				{14, 3}: 1,
			},
		},
		{
			"descending",
			"ca",
			map[point]float64{
				{13, 3}: 1,
				{14, 3}: lo,
				{14, 2}: hi,
				{14, 1}: 1,
			},
		},
		{
			"adjacent",
			"ab",
			map[point]float64{
				{13, 1}: 1,
				{14, 1}: lo,
				{14, 2}: 1,
			},
		},
		{
			"repeated",
			"aa",
			map[point]float64{
				{13, 1}: 1,
				{14, 1}: 1,
			},
		},
		{
			"skips unmapped",
			"a-c",
			map[point]float64{
				{12, 1}: 1,
				{14, 1}: lo,
				{14, 2}: hi,
				{14, 3}: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := encode(t, tt.word, mapping.Ordinal, Gradient, false)
			assert.Equal(t, tt.want, nonZero(r))
			assert.Equal(t, strings.Replace(tt.word, "-", "", 1), decode(t, r, mapping.Ordinal))
		})
	}
}

func TestBinaryNoShading(t *testing.T) {
	r := encode(t, "az", mapping.Ordinal, Binary, false)
	assert.Equal(t, map[point]float64{{13, 1}: 1, {14, 26}: 1}, nonZero(r))
}

func TestGradientLongRamp(t *testing.T) {
	r := encode(t, "az", mapping.Ordinal, Gradient, false)
	got := nonZero(r)
	assert.Len(t, got, 2+25)
	for y := 1; y < 26; y++ {
		assert.Less(t, got[point{14, y}], 1.0)
	}
	assert.Greater(t, got[point{14, 25}], got[point{14, 1}])
}

func TestStyle(t *testing.T) {
	s, err := ParseStyle("gradient")
	require.NoError(t, err)
	assert.Equal(t, Gradient, s)
	assert.Equal(t, "binary", Binary.String())

	_, err = ParseStyle("punchcard")
	require.ErrorIs(t, err, ErrUnknownStyle)
	assert.Contains(t, err.Error(), "binary, gradient")

	_, err = Encode("a", mapping.MustLookup(mapping.Ordinal), Style(7), false)
	require.ErrorIs(t, err, ErrUnknownStyle)
}

func TestDecodeDimensions(t *testing.T) {
	m := mapping.MustLookup(mapping.Ordinal)

	_, err := Decode(raster.New(raster.Dim, raster.Dim-1), m, nil)
	require.ErrorIs(t, err, ErrNotSquare)

	_, err = Decode(raster.New(raster.Dim+1, raster.Dim+1), m, nil)
	require.ErrorIs(t, err, ErrTooLarge)

	small := raster.New(5, 5)
	small.SetValue(2, 1, 1)
	s, err := Decode(small, m, nil)
	require.NoError(t, err)
	assert.Equal(t, "a", s)
}

func TestDecodeTopmostRow(t *testing.T) {
	r := raster.NewCell()
	r.SetValue(3, 3, 1)
	r.SetValue(3, 1, 1)
	r.SetValue(5, 0, 1) // no letter on row 0
	r.SetValue(6, 2, 0.5)
	assert.Equal(t, "a", decode(t, r, mapping.Ordinal))
}

func TestDecodeBlank(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"zero", 0},
		{"below one", 0.999},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
		{"-inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := raster.NewCell()
			for i := range r.Pix {
				r.Pix[i] = tt.v
			}

			var warnings []raster.Warning
			s, err := Decode(r, mapping.MustLookup(mapping.Aesthetic), func(w raster.Warning) {
				warnings = append(warnings, w)
			})
			require.NoError(t, err)
			assert.Equal(t, "", s)
			assert.Equal(t, []raster.Warning{raster.NoPixels}, warnings)
		})
	}
}

func TestNilMapping(t *testing.T) {
	_, err := Encode("a", nil, Binary, false)
	assert.Error(t, err)
	_, err = Decode(raster.NewCell(), nil, nil)
	assert.Error(t, err)
}
