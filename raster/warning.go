package raster

// Warning is an advisory raised when the input to a codec is degenerate. The
// call still returns a well defined fallback value.
type Warning int

const (
	// NoAlphabet means the text held no letters a-z, so an all-zero cell
	// was produced
	NoAlphabet Warning = iota + 1
	// NoPixels means no pixel in the raster was set, so the empty string
	// was produced
	NoPixels
)

func (w Warning) String() string {
	switch w {
	case NoAlphabet:
		return "no English alphabet characters found, returning zero raster"
	case NoPixels:
		return "all pixel values < 1, returning empty string"
	}
	return "unknown warning"
}

// WarnFunc receives advisories. A nil WarnFunc discards them.
type WarnFunc func(Warning)

// Warn calls f with w if f is not nil.
func (f WarnFunc) Warn(w Warning) {
	if f != nil {
		f(w)
	}
}
