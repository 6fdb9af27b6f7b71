package rasterfile

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image/color"
	"io"
	"math"

	"github.com/bodgit/grampix/raster"
)

var (
	errTooBig     = errors.New("rasterfile: raster is too big")
	errNoFormat   = errors.New("rasterfile: invalid format")
	errNilRaster  = errors.New("rasterfile: nil raster")
	errBadPalette = errors.New("rasterfile: too many colors")
)

type encoder struct {
	w io.Writer
}

func (e *encoder) writeHeader(f Format, r *raster.Raster) error {
	var tmp [headerBytes]byte
	copy(tmp[:], magic)
	tmp[len(magic)] = byte(f)
	binary.LittleEndian.PutUint16(tmp[4:], uint16(r.Width()))
	binary.LittleEndian.PutUint16(tmp[6:], uint16(r.Height()))
	_, err := e.w.Write(tmp[:])
	return err
}

func (e *encoder) writeFloats(r *raster.Raster) error {
	tmp := make([]byte, r.Width()*floatBytes)
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			binary.LittleEndian.PutUint64(tmp[x*floatBytes:], math.Float64bits(r.Value(x, y)))
		}
		if _, err := e.w.Write(tmp); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) writeNibbles(r *raster.Raster) error {
	pm := r.Paletted(colorsPerPalette)
	if len(pm.Palette) > colorsPerPalette {
		return errBadPalette
	}

	// Write out the palette padded to 16 levels
	var tmp [paletteBytes]byte
	for i, c := range pm.Palette {
		g := color.Gray16Model.Convert(c).(color.Gray16)
		binary.LittleEndian.PutUint16(tmp[i*2:], g.Y)
	}
	if _, err := e.w.Write(tmp[:]); err != nil {
		return err
	}

	row := make([]byte, r.Width()>>1)
	for y := 0; y < r.Height(); y++ {
		for x := range row {
			// This is masking off any bits leaving a 0-15 value
			row[x] = pm.ColorIndexAt(x<<1, y)&0x0f<<4 | pm.ColorIndexAt(x<<1+1, y)&0x0f
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, r *raster.Raster, f Format) error {
	switch {
	case r == nil:
		return errNilRaster
	case !f.Valid():
		return errNoFormat
	case r.Width() > maxSide || r.Height() > maxSide:
		return errTooBig
	case f == Packed && r.Width()%2 != 0:
		return errOddWidth
	}

	h := crc32.NewIEEE()
	e := encoder{w: io.MultiWriter(w, h)}

	if err := e.writeHeader(f, r); err != nil {
		return err
	}

	var err error
	switch f {
	case Float:
		err = e.writeFloats(r)
	case Packed:
		err = e.writeNibbles(r)
	}
	if err != nil {
		return err
	}

	var tmp [trailerBytes]byte
	binary.LittleEndian.PutUint32(tmp[:], h.Sum32())
	_, err = w.Write(tmp[:])

	return err
}
