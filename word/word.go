/*
Package word implements the encoder and decoder between a single word and a
Dim by Dim raster.

Each letter of the word occupies one column and is drawn as a single set
pixel on the row given by the chosen mapping. The word is centered
horizontally. In gradient style the rows between two consecutive letters are
additionally shaded with a ramp running from the earlier letter toward the
later one, so the raster reads as a continuous stroke.

The shading never reaches 1, so the decoder only ever sees the letters. Only
the binary style is guaranteed to round-trip though.
*/
package word

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bodgit/grampix/gradient"
	"github.com/bodgit/grampix/mapping"
	"github.com/bodgit/grampix/raster"
)

// Style selects how a word is drawn.
type Style int

const (
	// Binary draws one set pixel per letter
	Binary Style = iota
	// Gradient draws Binary plus shading between consecutive letters
	Gradient
)

var styleNames = [...]string{
	Binary:   "binary",
	Gradient: "gradient",
}

var (
	// ErrUnknownStyle is returned for a style other than binary or gradient
	ErrUnknownStyle = errors.New("word: unknown style")
	// ErrNotSquare is returned when decoding a raster that isn't square
	ErrNotSquare    = errors.New("word: raster is not square")
	// ErrTooLarge is returned when decoding a raster bigger than a cell
	ErrTooLarge     = errors.New("word: raster is larger than a cell")

	errNoMapping = errors.New("word: no mapping")
)

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	return s >= 0 && int(s) < len(styleNames)
}

func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle returns the style with the given name.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q, valid styles are: %s", ErrUnknownStyle, name, strings.Join(styleNames[:], ", "))
}

// squeeze drops every occurrence of each letter in order until the word
// fits.
func squeeze(word []rune, order string) []rune {
	for _, l := range order {
		out := word[:0:0]
		for _, c := range word {
			if c != l {
				out = append(out, c)
			}
		}
		word = out
		if len(word) <= raster.Dim {
			break
		}
	}
	return word
}

// Encode draws word into a new Dim by Dim raster.
//
// The word is lowercased and trimmed first. A word longer than Dim is cut to
// its first Dim characters, or if compress is true, letters are removed in
// the mapping's order until it fits. A word that still doesn't fit, or that
// ends up empty, produces an all-zero raster.
//
// Characters outside a-z take up a column but draw nothing; the gradient
// carries on from the last letter drawn.
func Encode(word string, m *mapping.Mapping, style Style, compress bool) (*raster.Raster, error) {
	if m == nil {
		return nil, errNoMapping
	}
	if !style.Valid() {
		return nil, fmt.Errorf("%w %s", ErrUnknownStyle, style)
	}

	r := raster.NewCell()

	w := []rune(strings.TrimSpace(strings.ToLower(word)))
	if len(w) > raster.Dim {
		if !compress {
			w = w[:raster.Dim]
		} else if w = squeeze(w, m.Order()); len(w) > raster.Dim || len(w) == 0 {
			return r, nil
		}
	}

	start := (raster.Dim - len(w)) / 2

	var prev int
	var seen bool
	for x, c := range w {
		y, ok := m.Row(c)
		if !ok {
			continue
		}

		col := start + x
		if style == Gradient && seen && y != prev {
			k, step := y-prev, 1
			if k < 0 {
				k, step = -k, -1
			}
			// Shade [prev, y) walking toward y, dark to light
			for i := 0; i < k; i++ {
				r.SetValue(col, prev+i*step, gradient.Value(k, i))
			}
		}
		r.SetValue(col, y, 1)

		prev, seen = y, true
	}

	return r, nil
}

// Decode reads a word back out of r. For each column, left to right, the
// topmost set pixel is looked up in the mapping; columns without one, or
// whose row holds no letter, are skipped.
//
// A raster with no set pixel decodes to the empty string and raises
// raster.NoPixels through warn.
func Decode(r *raster.Raster, m *mapping.Mapping, warn raster.WarnFunc) (string, error) {
	if m == nil {
		return "", errNoMapping
	}
	if !r.Square() {
		return "", ErrNotSquare
	}
	if r.Width() > raster.Dim {
		return "", fmt.Errorf("%w: side is %d, must be <= %d", ErrTooLarge, r.Width(), raster.Dim)
	}

	if r.Blank() {
		warn.Warn(raster.NoPixels)
		return "", nil
	}

	var b strings.Builder
	for x := 0; x < r.Width(); x++ {
		for y := 0; y < r.Height(); y++ {
			if !raster.IsSet(r.Value(x, y)) {
				continue
			}
			if l, ok := m.Letter(y); ok {
				b.WriteByte(l)
			}
			break
		}
	}

	return b.String(), nil
}
