/*
Package mapping holds the static letter to row tables used to place letters
within a word raster.

Each table maps the 26 lowercase Latin letters onto the rows 1 to 26 of a 28
row raster, leaving the first and last rows unused. Three tables ship:

	ordinal   - alphabetical order, a is row 1 and z is row 26
	frequency - the most frequent English letters sit in the middle rows and
	            the least frequent ones at the edges
	aesthetic - a variant of frequency with adjacent letters swapped to
	            flatten the row distribution of a sample English corpus

Every table also carries a fixed letter order. It is the order in which
letters are removed when an over-long word is compressed.
*/
package mapping

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Ordinal is the name of the alphabetical table
	Ordinal   = "ordinal"
	// Frequency is the name of the letter frequency table
	Frequency = "frequency"
	// Aesthetic is the name of the hand-tuned letter frequency table
	Aesthetic = "aesthetic"

	numLetters = 26
	minRow     = 1
	maxRow     = numLetters
)

// ErrUnknownMapping is returned when a table name is not recognised.
var ErrUnknownMapping = errors.New("mapping: unknown mapping")

// Mapping is a bijection between the letters a-z and raster rows.
type Mapping struct {
	name    string
	order   string
	rows    [numLetters]int
	letters [maxRow + 1]byte
}

func newMapping(name, order string, rows map[byte]int) *Mapping {
	m := &Mapping{
		name:  name,
		order: order,
	}
	if len(order) != numLetters || len(rows) != numLetters {
		panic(fmt.Sprintf("mapping: %s: need %d letters", name, numLetters))
	}
	for i := 0; i < len(order); i++ {
		c := order[i]
		row, ok := rows[c]
		if !ok || c < 'a' || c > 'z' {
			panic(fmt.Sprintf("mapping: %s: bad letter %q", name, c))
		}
		if row < minRow || row > maxRow || m.letters[row] != 0 {
			panic(fmt.Sprintf("mapping: %s: bad row %d for %q", name, row, c))
		}
		m.rows[c-'a'] = row
		m.letters[row] = c
	}
	return m
}

var tables = map[string]*Mapping{
	Ordinal: newMapping(Ordinal, "abcdefghijklmnopqrstuvwxyz", map[byte]int{
		'a': 1, 'b': 2, 'c': 3, 'd': 4, 'e': 5, 'f': 6, 'g': 7, 'h': 8, 'i': 9,
		'j': 10, 'k': 11, 'l': 12, 'm': 13, 'n': 14, 'o': 15, 'p': 16, 'q': 17,
		'r': 18, 's': 19, 't': 20, 'u': 21, 'v': 22, 'w': 23, 'x': 24, 'y': 25,
		'z': 26,
	}),
	Frequency: newMapping(Frequency, "etaoinsrhdlucmfywgpbvkxqjz", map[byte]int{
		'e': 14, 't': 13, 'a': 15, 'o': 12, 'i': 16, 'n': 11, 's': 17, 'r': 10,
		'h': 18, 'd': 9, 'l': 19, 'u': 8, 'c': 20, 'm': 7, 'f': 21, 'y': 6,
		'w': 22, 'g': 5, 'p': 23, 'b': 4, 'v': 24, 'k': 3, 'x': 25, 'q': 2,
		'j': 26, 'z': 1,
	}),
	Aesthetic: newMapping(Aesthetic, "etaoinsrhdlucmfywgpbvkxqjz", map[byte]int{
		'e': 15, 't': 13, 'a': 14, 'o': 17, 'i': 16, 'n': 12, 's': 11, 'r': 18,
		'h': 19, 'd': 9, 'l': 10, 'u': 8, 'c': 20, 'm': 21, 'f': 7, 'y': 5,
		'w': 6, 'g': 23, 'p': 22, 'b': 24, 'v': 25, 'k': 4, 'x': 3, 'q': 1,
		'j': 2, 'z': 26,
	}),
}

// Names returns the names of every table in a fixed order.
func Names() []string {
	return []string{Ordinal, Frequency, Aesthetic}
}

// Lookup returns the table with the given name.
func Lookup(name string) (*Mapping, error) {
	if m, ok := tables[name]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w %q, valid mappings are: %s", ErrUnknownMapping, name, strings.Join(Names(), ", "))
}

// MustLookup is like Lookup but panics if the name is not recognised.
func MustLookup(name string) *Mapping {
	m, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return m
}

// Name returns the name of the table
func (m *Mapping) Name() string {
	return m.name
}

// Order returns the letters of the table in their removal order
func (m *Mapping) Order() string {
	return m.order
}

// Row returns the row for letter r. Anything outside a-z is unmapped.
func (m *Mapping) Row(r rune) (int, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return m.rows[r-'a'], true
}

// Letter returns the letter placed on row y, if any.
func (m *Mapping) Letter(y int) (byte, bool) {
	if y < minRow || y > maxRow {
		return 0, false
	}
	return m.letters[y], true
}
