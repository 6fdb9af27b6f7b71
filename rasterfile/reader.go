package rasterfile

import (
	"encoding/binary"
	"errors"
	"hash"
	"hash/crc32"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/bodgit/grampix/raster"
)

var (
	errNotEnough = errors.New("rasterfile: not enough data")
	errTooMuch   = errors.New("rasterfile: too much data")
	errBadMagic  = errors.New("rasterfile: not a raster file")
	errBadFormat = errors.New("rasterfile: unknown format")
	errChecksum  = errors.New("rasterfile: checksum mismatch")
	errOddWidth  = errors.New("rasterfile: packed width must be even")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func upperNibble(b byte) byte {
	return b & 0xf0
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

type decoder struct {
	r io.Reader
	h hash.Hash32

	format        Format
	width, height int

	pix     []float64
	palette [colorsPerPalette]float64
}

func (d *decoder) readHeader() error {
	var tmp [headerBytes]byte
	if err := readFull(d.r, tmp[:]); err != nil {
		return err
	}

	if string(tmp[:len(magic)]) != magic {
		return errBadMagic
	}

	d.format = Format(tmp[len(magic)])
	if !d.format.Valid() {
		return errBadFormat
	}

	d.width = int(binary.LittleEndian.Uint16(tmp[4:]))
	d.height = int(binary.LittleEndian.Uint16(tmp[6:]))

	if d.format == Packed && d.width%2 != 0 {
		return errOddWidth
	}

	return nil
}

func (d *decoder) readFloats() error {
	tmp := make([]byte, d.width*floatBytes)
	for y := 0; y < d.height; y++ {
		if err := readFull(d.r, tmp); err != nil {
			return err
		}
		for x := 0; x < d.width; x++ {
			d.pix = append(d.pix, math.Float64frombits(binary.LittleEndian.Uint64(tmp[x*floatBytes:])))
		}
	}
	return nil
}

func (d *decoder) readPalette() error {
	var tmp [paletteBytes]byte
	if err := readFull(d.r, tmp[:]); err != nil {
		return err
	}
	for i := range d.palette {
		d.palette[i] = float64(binary.LittleEndian.Uint16(tmp[i*2:])) / 0xffff
	}
	return nil
}

func (d *decoder) readNibbles() error {
	if err := d.readPalette(); err != nil {
		return err
	}

	tmp := make([]byte, d.width>>1)
	for y := 0; y < d.height; y++ {
		if err := readFull(d.r, tmp); err != nil {
			return err
		}
		for _, b := range tmp {
			d.pix = append(d.pix, d.palette[upperNibble(b)>>4], d.palette[lowerNibble(b)])
		}
	}
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.h = crc32.NewIEEE()
	d.r = io.TeeReader(r, d.h)

	if err := d.readHeader(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if configOnly {
		return nil
	}

	// Pixels are only stored as rows arrive, never sized from the header
	var err error
	switch d.format {
	case Float:
		err = d.readFloats()
	case Packed:
		err = d.readNibbles()
	}
	if err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	// Read the trailer directly so it isn't hashed
	var tmp [trailerBytes]byte
	if err := readFull(r, tmp[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}
	if binary.LittleEndian.Uint32(tmp[:]) != d.h.Sum32() {
		return errChecksum
	}

	if n, err := r.Read(tmp[:1]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	return nil
}

func (d *decoder) result() *raster.Raster {
	if d.width == 0 || d.height == 0 {
		return raster.New(d.width, d.height)
	}
	return &raster.Raster{
		Pix:    d.pix,
		Stride: d.width,
		Rect:   image.Rect(0, 0, d.width, d.height),
	}
}

// Decode reads a raster file from r.
func Decode(r io.Reader) (*raster.Raster, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.result(), nil
}

// DecodeConfig returns the dimensions of a raster file without decoding the
// pixels.
func DecodeConfig(r io.Reader) (image.Config, Format, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, 0, err
	}
	return image.Config{
		ColorModel: color.Gray16Model,
		Width:      d.width,
		Height:     d.height,
	}, d.format, nil
}
