package raster

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
)

var white = color.Gray16{Y: 0xffff}

// Paletted returns a paletted copy of the raster with no more than levels
// colors. The last palette entry is always pure white and is used for every
// set pixel and nothing else, so the copy decodes to the same text as the
// raster.
func (r *Raster) Paletted(levels int) *image.Paletted {
	switch {
	case levels < 2:
		levels = 2
	case levels > 256:
		levels = 256
	}

	var p color.Palette
	if !r.Rect.Empty() {
		q := quantize.MedianCutQuantizer{}
		p = q.Quantize(make(color.Palette, 0, levels-1), r)
	}

	// Keep white out of the quantized entries
	for i, c := range p {
		g := color.Gray16Model.Convert(c).(color.Gray16)
		if g.Y == white.Y {
			g.Y--
		}
		p[i] = g
	}
	if len(p) == 0 {
		p = append(p, color.Gray16{})
	}
	shades := len(p)
	p = append(p, white)

	pm := image.NewPaletted(r.Rect, p)
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			v := r.Value(x, y)
			if IsSet(v) {
				pm.SetColorIndex(x, y, uint8(shades))
				continue
			}
			pm.SetColorIndex(x, y, uint8(p[:shades].Index(toGray16(v))))
		}
	}
	return pm
}
