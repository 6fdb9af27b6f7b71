/*
Package grampix is a library for turning text into grayscale pictures and
back again.

Every word becomes a 28 by 28 cell in which each letter is a single pixel on
the row chosen by a letter mapping, and the cells of a text are tiled into a
square grid. The subpackages hold the pieces; this package ties them together
behind string-named options, logs advisories, and adds an SQLite archive and a
batch encoder for directories of text files.
*/
package grampix

import (
	"io/ioutil"
	"log"

	"github.com/bodgit/grampix/grid"
	"github.com/bodgit/grampix/mapping"
	"github.com/bodgit/grampix/raster"
	"github.com/bodgit/grampix/word"
)

// Options select the mapping and drawing style by name.
type Options struct {
	Mapping   string
	Style     string
	Compress  bool
	Separator string
	Side      int
}

// DefaultOptions are used by the command line tool when nothing else is
// given.
var DefaultOptions = Options{
	Mapping: mapping.Aesthetic,
	Style:   word.Gradient.String(),
}

func (o Options) grid(warn raster.WarnFunc) (grid.Options, error) {
	m, err := mapping.Lookup(o.Mapping)
	if err != nil {
		return grid.Options{}, err
	}

	s, err := word.ParseStyle(o.Style)
	if err != nil {
		return grid.Options{}, err
	}

	return grid.Options{
		Mapping:   m,
		Style:     s,
		Compress:  o.Compress,
		Separator: o.Separator,
		Side:      o.Side,
		Warn:      warn,
	}, nil
}

type Grampix struct {
	db     *ArchiveDB
	logger *log.Logger
}

// New returns a Grampix using the given archive, which may be nil, and
// logger, which may also be nil to discard everything.
func New(db *ArchiveDB, logger *log.Logger) *Grampix {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Grampix{
		db:     db,
		logger: logger,
	}
}

func (g *Grampix) warn(w raster.Warning) {
	g.logger.Printf("Warning: %s\n", w)
}

// WordToRaster encodes a single word into a cell.
func (g *Grampix) WordToRaster(w string, o Options) (*raster.Raster, error) {
	opts, err := o.grid(g.warn)
	if err != nil {
		return nil, err
	}
	return word.Encode(w, opts.Mapping, opts.Style, opts.Compress)
}

// RasterToWord decodes a single cell using the named mapping.
func (g *Grampix) RasterToWord(r *raster.Raster, mappingName string) (string, error) {
	m, err := mapping.Lookup(mappingName)
	if err != nil {
		return "", err
	}
	return word.Decode(r, m, g.warn)
}

// TextToRaster encodes text into a grid of cells.
func (g *Grampix) TextToRaster(text string, o Options) (*raster.Raster, error) {
	opts, err := o.grid(g.warn)
	if err != nil {
		return nil, err
	}
	return grid.Encode(text, opts)
}

// RasterToText decodes a grid of cells. Only the mapping and separator of o
// are used.
func (g *Grampix) RasterToText(r *raster.Raster, o Options) (string, error) {
	m, err := mapping.Lookup(o.Mapping)
	if err != nil {
		return "", err
	}
	return grid.Decode(r, grid.Options{
		Mapping:   m,
		Separator: o.Separator,
		Warn:      g.warn,
	})
}

// Archive encodes text and stores both in the archive, returning the id of
// the new entry.
func (g *Grampix) Archive(text string, o Options) (int64, error) {
	if g.db == nil {
		return 0, errNoArchive
	}
	r, err := g.TextToRaster(text, o)
	if err != nil {
		return 0, err
	}
	return g.db.Save(text, o, r)
}

// SaveRaster stores text with a raster already encoded from it using o,
// returning the id of the new entry.
func (g *Grampix) SaveRaster(text string, o Options, r *raster.Raster) (int64, error) {
	if g.db == nil {
		return 0, errNoArchive
	}
	if _, err := o.grid(nil); err != nil {
		return 0, err
	}
	return g.db.Save(text, o, r)
}
