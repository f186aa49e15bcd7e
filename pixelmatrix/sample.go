package pixelmatrix

import (
	"encoding/binary"

	"github.com/brycejohnston/chunky-png/color"
)

// sampleAt returns sample i of a packed scanline. Depths below 8 are packed
// most significant bits first; depth 16 is big-endian.
func sampleAt(line []byte, i, depth int) uint16 {
	switch depth {
	case 8:
		return uint16(line[i])
	case 16:
		return binary.BigEndian.Uint16(line[2*i:])
	}
	bit := i * depth
	shift := 8 - depth - bit%8
	return uint16(line[bit/8]>>shift) & (1<<depth - 1)
}

// putSample stores sample i into a packed scanline. For depths below 8 the
// target bits must be zero.
func putSample(line []byte, i, depth int, v uint16) {
	switch depth {
	case 8:
		line[i] = byte(v)
		return
	case 16:
		binary.BigEndian.PutUint16(line[2*i:], v)
		return
	}
	bit := i * depth
	shift := 8 - depth - bit%8
	line[bit/8] |= byte(v&(1<<depth-1)) << shift
}

// toChannel scales a raw sample to an 8-bit channel. 16-bit samples keep
// their high byte.
func toChannel(v uint16, depth int) uint8 {
	switch {
	case depth == 16:
		return uint8(v >> 8)
	case depth == 8:
		return uint8(v)
	}
	return uint8(uint32(v) * color.MaxChannel / (1<<depth - 1))
}

// fromChannel is the inverse of toChannel. Depths below 8 keep the top bits;
// depth 16 repeats the byte.
func fromChannel(c uint8, depth int) uint16 {
	switch {
	case depth == 16:
		return uint16(c)<<8 | uint16(c)
	case depth == 8:
		return uint16(c)
	}
	return uint16(c >> (8 - depth))
}

// transparentKey is the single color a tRNS chunk marks as transparent in
// grayscale and truecolor images, as raw samples.
type transparentKey struct {
	samples [3]uint16
	set     bool
}

// lineDecoder turns an unfiltered scanline of width pixels into colors.
type lineDecoder struct {
	mode    color.ColorMode
	depth   int
	palette *Palette
	key     transparentKey
}

func (d *lineDecoder) decode(dst []color.Color, line []byte) error {
	depth := d.depth
	switch d.mode {
	case color.Indexed:
		for x := range dst {
			i := int(sampleAt(line, x, depth))
			if i >= d.palette.Len() {
				return &PaletteIndexError{Index: i, Size: d.palette.Len()}
			}
			dst[x] = d.palette.At(i)
		}
	case color.Grayscale:
		for x := range dst {
			v := sampleAt(line, x, depth)
			c := color.FromGrayscale(toChannel(v, depth))
			if d.key.set && v == d.key.samples[0] {
				c = color.WithAlpha(c, 0)
			}
			dst[x] = c
		}
	case color.GrayscaleAlpha:
		for x := range dst {
			dst[x] = color.FromGrayscaleAlpha(
				toChannel(sampleAt(line, 2*x, depth), depth),
				toChannel(sampleAt(line, 2*x+1, depth), depth),
			)
		}
	case color.Truecolor:
		for x := range dst {
			r, g, b := sampleAt(line, 3*x, depth), sampleAt(line, 3*x+1, depth), sampleAt(line, 3*x+2, depth)
			c := color.RGB(toChannel(r, depth), toChannel(g, depth), toChannel(b, depth))
			if d.key.set && d.key.samples == [3]uint16{r, g, b} {
				c = color.WithAlpha(c, 0)
			}
			dst[x] = c
		}
	case color.TruecolorAlpha:
		for x := range dst {
			dst[x] = color.RGBA(
				toChannel(sampleAt(line, 4*x, depth), depth),
				toChannel(sampleAt(line, 4*x+1, depth), depth),
				toChannel(sampleAt(line, 4*x+2, depth), depth),
				toChannel(sampleAt(line, 4*x+3, depth), depth),
			)
		}
	}
	return nil
}

// lineEncoder packs colors into a scanline. Modes without alpha drop it.
type lineEncoder struct {
	mode    color.ColorMode
	depth   int
	palette *Palette
}

// encode fills line, which must be zeroed, from src.
func (e *lineEncoder) encode(line []byte, src []color.Color) error {
	depth := e.depth
	switch e.mode {
	case color.Indexed:
		for x, c := range src {
			i, ok := e.palette.Index(c)
			if !ok {
				return &PaletteIndexError{Index: -1, Size: e.palette.Len(), Color: c}
			}
			putSample(line, x, depth, uint16(i))
		}
	case color.Grayscale:
		for x, c := range src {
			putSample(line, x, depth, fromChannel(color.R(c), depth))
		}
	case color.GrayscaleAlpha:
		for x, c := range src {
			putSample(line, 2*x, depth, fromChannel(color.R(c), depth))
			putSample(line, 2*x+1, depth, fromChannel(color.A(c), depth))
		}
	case color.Truecolor:
		for x, c := range src {
			putSample(line, 3*x, depth, fromChannel(color.R(c), depth))
			putSample(line, 3*x+1, depth, fromChannel(color.G(c), depth))
			putSample(line, 3*x+2, depth, fromChannel(color.B(c), depth))
		}
	case color.TruecolorAlpha:
		for x, c := range src {
			putSample(line, 4*x, depth, fromChannel(color.R(c), depth))
			putSample(line, 4*x+1, depth, fromChannel(color.G(c), depth))
			putSample(line, 4*x+2, depth, fromChannel(color.B(c), depth))
			putSample(line, 4*x+3, depth, fromChannel(color.A(c), depth))
		}
	}
	return nil
}
