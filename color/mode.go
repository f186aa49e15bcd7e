package color

import "fmt"

// ColorMode is the PNG color type of an image.
type ColorMode uint8

// The numeric values are the color type numbers stored in IHDR.
const (
	Grayscale      ColorMode = 0
	Truecolor      ColorMode = 2
	Indexed        ColorMode = 3
	GrayscaleAlpha ColorMode = 4
	TruecolorAlpha ColorMode = 6
)

// SamplesPerPixel returns the number of samples a pixel of this mode stores.
// It returns 0 for unknown modes.
func (m ColorMode) SamplesPerPixel() int {
	switch m {
	case Grayscale, Indexed:
		return 1
	case GrayscaleAlpha:
		return 2
	case Truecolor:
		return 3
	case TruecolorAlpha:
		return 4
	}
	return 0
}

// UsesPalette reports whether samples are indexes into a palette.
func (m ColorMode) UsesPalette() bool {
	return m == Indexed
}

// HasAlpha reports whether every pixel carries its own alpha sample.
func (m ColorMode) HasAlpha() bool {
	return m == GrayscaleAlpha || m == TruecolorAlpha
}

// Valid reports whether m is one of the five PNG color types.
func (m ColorMode) Valid() bool {
	return m.SamplesPerPixel() != 0
}

// AllowsBitDepth reports whether depth is legal for this mode.
func (m ColorMode) AllowsBitDepth(depth int) bool {
	switch m {
	case Grayscale:
		return depth == 1 || depth == 2 || depth == 4 || depth == 8 || depth == 16
	case Indexed:
		return depth == 1 || depth == 2 || depth == 4 || depth == 8
	case Truecolor, GrayscaleAlpha, TruecolorAlpha:
		return depth == 8 || depth == 16
	}
	return false
}

func (m ColorMode) String() string {
	switch m {
	case Grayscale:
		return "grayscale"
	case Truecolor:
		return "truecolor"
	case Indexed:
		return "indexed"
	case GrayscaleAlpha:
		return "grayscale-alpha"
	case TruecolorAlpha:
		return "truecolor-alpha"
	}
	return fmt.Sprintf("colormode(%d)", uint8(m))
}

// ParseColorMode converts a mode name, as returned by String, to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	for _, m := range []ColorMode{Grayscale, Truecolor, Indexed, GrayscaleAlpha, TruecolorAlpha} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, &ArgumentError{Value: s, Reason: "unknown color mode"}
}

// PixelBytesize returns the number of bytes needed to store one pixel. Depths
// below 8 count as one byte, which is also the filter step for packed
// scanlines.
func PixelBytesize(mode ColorMode, depth int) int {
	if depth < 8 {
		return 1
	}
	return (mode.SamplesPerPixel()*depth + 7) / 8
}

// ScanlineBytesize returns the number of sample bytes in one scanline of the
// given width, excluding the filter type byte. Whole bytes are counted per 8
// pixels first so the bit count never has to fit an int.
func ScanlineBytesize(mode ColorMode, depth, width int) int {
	bits := mode.SamplesPerPixel() * depth
	return width/8*bits + (width%8*bits+7)/8
}

// PassBytesize returns the number of bytes a pass of width x height pixels
// occupies in the decompressed stream, including one filter type byte per
// scanline. It returns 0 when either dimension is 0.
func PassBytesize(mode ColorMode, depth, width, height int) int {
	if width == 0 || height == 0 {
		return 0
	}
	return (ScanlineBytesize(mode, depth, width) + 1) * height
}
