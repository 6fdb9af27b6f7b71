package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/nfnt/resize"
)

func toGray16(v float64) color.Gray16 {
	switch {
	case math.IsNaN(v), math.IsInf(v, 0), v <= 0:
		return color.Gray16{}
	case v >= 1:
		return color.Gray16{Y: 0xffff}
	}
	return color.Gray16{Y: uint16(math.Round(v * 0xffff))}
}

// ColorModel returns the color model of the raster.
func (r *Raster) ColorModel() color.Model {
	return color.Gray16Model
}

// Bounds returns the raster bounds.
func (r *Raster) Bounds() image.Rectangle {
	return r.Rect
}

// At returns the intensity at (x, y) as a 16-bit gray. Values are clamped to
// [0, 1] and non-finite values are black.
func (r *Raster) At(x, y int) color.Color {
	return toGray16(r.Value(x, y))
}

// FromImage converts m to a raster using its 16-bit gray luminance. Pure
// white becomes exactly 1.
func FromImage(m image.Image) *Raster {
	b := m.Bounds()
	r := New(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.Gray16Model.Convert(m.At(x, y)).(color.Gray16)
			r.Pix[(y-b.Min.Y)*r.Stride+x-b.Min.X] = float64(g.Y) / 0xffff
		}
	}
	return r
}

// Fit scales m onto a grid of cols by rows cells using nearest neighbour
// sampling so that no new intensities are invented.
func Fit(m image.Image, cols, rows int) *Raster {
	if cols <= 0 || rows <= 0 {
		return &Raster{}
	}
	return FromImage(resize.Resize(uint(cols*Dim), uint(rows*Dim), m, resize.NearestNeighbor))
}
