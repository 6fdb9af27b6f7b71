/*
Package raster implements the grayscale intensity grid that words are encoded
into.

A word always occupies a square Dim by Dim raster. Larger rasters are grids of
these cells laid out left to right, top to bottom. Intensities are float64
values nominally between 0 and 1; a pixel counts as set only when its value is
finite and at least 1.

Raster implements image.Image so it can be handed straight to anything that
consumes images.
*/
package raster

import (
	"image"
	"math"
)

// Dim is the side length of a single word raster.
const Dim = 28

// Raster is a grid of intensities. The zero value is an empty raster.
type Raster struct {
	// Pix holds the intensities in row-major order
	Pix []float64
	// Stride is the distance in Pix between vertically adjacent values
	Stride int
	// Rect is always anchored at the origin
	Rect image.Rectangle
}

// New returns a zeroed raster of the given size.
func New(w, h int) *Raster {
	if w <= 0 || h <= 0 {
		return &Raster{}
	}
	return &Raster{
		Pix:    make([]float64, w*h),
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// NewCell returns a zeroed Dim by Dim raster.
func NewCell() *Raster {
	return New(Dim, Dim)
}

// IsSet reports whether v counts as a set pixel. NaN and infinities never
// do.
func IsSet(v float64) bool {
	return v >= 1 && !math.IsInf(v, 1)
}

// Width returns the number of columns.
func (r *Raster) Width() int { return r.Rect.Dx() }

// Height returns the number of rows.
func (r *Raster) Height() int { return r.Rect.Dy() }

// Square reports whether the raster has as many rows as columns.
func (r *Raster) Square() bool { return r.Width() == r.Height() }

func (r *Raster) in(x, y int) bool {
	return image.Point{X: x, Y: y}.In(r.Rect)
}

// Value returns the intensity at column x, row y, or 0 if outside the
// raster.
func (r *Raster) Value(x, y int) float64 {
	if !r.in(x, y) {
		return 0
	}
	return r.Pix[y*r.Stride+x]
}

// SetValue sets the intensity at column x, row y. Points outside the raster
// are ignored.
func (r *Raster) SetValue(x, y int, v float64) {
	if !r.in(x, y) {
		return
	}
	r.Pix[y*r.Stride+x] = v
}

// Sub returns a copy of the w by h region with its top-left corner at
// (x, y), clipped to the raster.
func (r *Raster) Sub(x, y, w, h int) *Raster {
	b := image.Rect(x, y, x+w, y+h).Intersect(r.Rect)
	dup := New(b.Dx(), b.Dy())
	for dy := 0; dy < dup.Height(); dy++ {
		copy(dup.Pix[dy*dup.Stride:(dy+1)*dup.Stride], r.Pix[(b.Min.Y+dy)*r.Stride+b.Min.X:])
	}
	return dup
}

// Paste copies src into the raster with its top-left corner at (x, y).
// Anything falling outside the raster is dropped.
func (r *Raster) Paste(x, y int, src *Raster) {
	b := src.Rect.Add(image.Pt(x, y)).Intersect(r.Rect)
	for dy := b.Min.Y; dy < b.Max.Y; dy++ {
		sy := dy - y
		copy(r.Pix[dy*r.Stride+b.Min.X:dy*r.Stride+b.Max.X], src.Pix[sy*src.Stride+b.Min.X-x:])
	}
}

// Blank reports whether no pixel in the raster is set.
func (r *Raster) Blank() bool {
	for _, v := range r.Pix {
		if IsSet(v) {
			return false
		}
	}
	return true
}

// Equal reports whether both rasters have the same size and values.
func (r *Raster) Equal(o *Raster) bool {
	if r.Rect != o.Rect {
		return false
	}
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if r.Pix[y*r.Stride+x] != o.Pix[y*o.Stride+x] {
				return false
			}
		}
	}
	return true
}
