/*
Package rasterfile implements a decoder and encoder for grampix raster files.

All values are little-endian. The file starts with an 8 byte header; the
magic "GPX", a format byte and the width and height as 16-bit values.

The float format ('F') follows with one 64-bit IEEE-754 value per pixel, row
by row, so any raster survives a round trip exactly.

The packed format ('P') is for display and archival of finished images. It
follows with a palette of sixteen 16-bit gray levels and then a 4-bit palette
index per pixel, two pixels per byte with the left pixel in the upper nibble,
so the width must be even. The palette is built by median cut quantization
with white reserved for set pixels, so a packed raster still decodes to the
same text but gradient shading is reduced to at most fifteen levels.

Both formats end with the CRC-32 (IEEE) of everything that precedes it.
*/
package rasterfile

// Format selects how pixels are stored.
type Format byte

const (
	// Float stores every pixel as a float64
	Float  Format = 'F'
	// Packed stores every pixel as a 4-bit palette index
	Packed Format = 'P'
)

const (
	magic            = "GPX"
	headerBytes      = len(magic) + 1 + 2 + 2
	trailerBytes     = 4
	floatBytes       = 8
	colorsPerPalette = 16
	paletteBytes     = colorsPerPalette * 2
	maxSide          = 1<<16 - 1
)

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f == Float || f == Packed
}

func (f Format) String() string {
	switch f {
	case Float:
		return "float"
	case Packed:
		return "packed"
	}
	return "unknown"
}
