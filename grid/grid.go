/*
Package grid packs a sequence of words into one square raster of word cells
and unpacks it again.

Cells are Dim by Dim rasters produced by package word, filled left to right,
top to bottom. Unless a side is requested, the grid is the smallest square
that holds every word, so an n by n grid holds between (n-1)²+1 and n² words
and only its trailing cells are left blank. With an explicit side n, words
beyond the first n² are dropped.
*/
package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/bodgit/grampix/mapping"
	"github.com/bodgit/grampix/raster"
	"github.com/bodgit/grampix/word"
)

// DefaultSeparator joins decoded words.
const DefaultSeparator = " "

var (
	// ErrBadSize is returned for a negative grid side
	ErrBadSize = errors.New("grid: side must not be negative")

	errNoMapping = errors.New("grid: no mapping")
)

// Options control encoding and decoding.
type Options struct {
	Mapping  *mapping.Mapping
	Style    word.Style
	Compress bool

	// Separator splits text when encoding, the empty string meaning runs of
	// whitespace. When decoding it joins the words, the empty string meaning
	// DefaultSeparator.
	Separator string

	// Side is the number of cells along each edge of the grid. Zero picks
	// the smallest square holding every word.
	Side int

	Warn raster.WarnFunc
}

// Side returns the number of cells along each edge of the smallest square
// grid that holds n words. It is never less than one.
func Side(n int) int {
	side := int(math.Sqrt(float64(n)))
	for side*side < n {
		side++
	}
	if side < 1 {
		side = 1
	}
	return side
}

// Split breaks text into words. An empty separator splits on runs of
// whitespace; otherwise empty words between adjacent separators are kept.
func Split(text, sep string) []string {
	if sep == "" {
		return strings.Fields(text)
	}
	return strings.Split(text, sep)
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
	}) >= 0
}

// Encode packs the words of text into a grid raster.
//
// Text without a single letter a-z, in either case, raises raster.NoAlphabet
// and produces one blank cell rather than a grid.
func Encode(text string, o Options) (*raster.Raster, error) {
	if o.Side < 0 {
		return nil, ErrBadSize
	}
	if o.Mapping == nil {
		return nil, errNoMapping
	}
	if !o.Style.Valid() {
		return nil, fmt.Errorf("%w %s", word.ErrUnknownStyle, o.Style)
	}

	if !hasLetter(text) {
		o.Warn.Warn(raster.NoAlphabet)
		return raster.NewCell(), nil
	}

	words := Split(text, o.Separator)

	n := o.Side
	if n == 0 {
		n = Side(len(words))
	}
	if len(words) > n*n {
		words = words[:n*n]
	}

	g := raster.New(n*raster.Dim, n*raster.Dim)

	for i, w := range words {
		row, col := i/n, i%n

		cell, err := word.Encode(w, o.Mapping, o.Style, o.Compress)
		if err != nil {
			return nil, err
		}
		g.Paste(col*raster.Dim, row*raster.Dim, cell)
	}

	return g, nil
}

// Decode unpacks every whole cell of r, left to right, top to bottom, and
// joins the words with the separator. Cells that decode to nothing still
// take a slot in the join but separators left at either end are trimmed.
//
// A raster with no set pixel raises raster.NoPixels and decodes to the empty
// string.
func Decode(r *raster.Raster, o Options) (string, error) {
	if o.Mapping == nil {
		return "", errNoMapping
	}

	sep := o.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	if r.Blank() {
		o.Warn.Warn(raster.NoPixels)
		return "", nil
	}

	rows, cols := r.Height()/raster.Dim, r.Width()/raster.Dim

	words := make([]string, 0, rows*cols)
	for i := 0; i < rows*cols; i++ {
		row, col := i/cols, i%cols

		w, err := word.Decode(r.Sub(col*raster.Dim, row*raster.Dim, raster.Dim, raster.Dim), o.Mapping, nil)
		if err != nil {
			return "", err
		}
		words = append(words, w)
	}

	s := strings.Join(words, sep)
	for strings.HasPrefix(s, sep) {
		s = s[len(sep):]
	}
	for strings.HasSuffix(s, sep) {
		s = s[:len(s)-len(sep)]
	}

	return s, nil
}
