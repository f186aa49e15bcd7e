package pixelmatrix

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/brycejohnston/chunky-png/color"
	"github.com/brycejohnston/chunky-png/datastream"
)

// MaxPaletteSize is the largest palette a PLTE chunk can hold.
const MaxPaletteSize = 256

// Palette is an ordered set of colors. Index returns the first entry equal
// to a color.
type Palette struct {
	colors []color.Color
	index  map[color.Color]int
}

// NewPalette returns a palette of the given colors in order.
func NewPalette(colors []color.Color) *Palette {
	p := &Palette{
		colors: slices.Clone(colors),
		index:  make(map[color.Color]int, len(colors)),
	}
	for i, c := range p.colors {
		if _, ok := p.index[c]; !ok {
			p.index[c] = i
		}
	}
	return p
}

// PaletteFromChunks decodes a PLTE chunk and, if trns is not nil, the
// per-entry alpha values of a tRNS chunk.
func PaletteFromChunks(plte, trns *datastream.Chunk) (*Palette, error) {
	if plte == nil {
		return nil, &FormatError{Reason: "missing PLTE chunk"}
	}
	n := plte.Length() / 3
	if plte.Length()%3 != 0 || n == 0 || n > MaxPaletteSize {
		return nil, &FormatError{Reason: fmt.Sprintf("PLTE chunk of %d bytes", plte.Length())}
	}
	if trns != nil && trns.Length() > n {
		return nil, &FormatError{Reason: fmt.Sprintf("tRNS chunk has %d entries for %d colors", trns.Length(), n)}
	}

	colors := make([]color.Color, n)
	for i := range colors {
		alpha := uint8(color.MaxChannel)
		if trns != nil && i < trns.Length() {
			alpha = trns.Data[i]
		}
		rgb := plte.Data[3*i : 3*i+3]
		colors[i] = color.RGBA(rgb[0], rgb[1], rgb[2], alpha)
	}
	return NewPalette(colors), nil
}

// PaletteFromMatrix collects the distinct colors of m. Colors that are not
// opaque sort first so that a tRNS chunk stays short, the rest by value.
func PaletteFromMatrix(m *Matrix) *Palette {
	seen := make(map[color.Color]struct{})
	var colors []color.Color
	for _, c := range m.pixels {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			colors = append(colors, c)
		}
	}
	slices.SortFunc(colors, func(a, b color.Color) int {
		if oa, ob := color.Opaque(a), color.Opaque(b); oa != ob {
			if ob {
				return -1
			}
			return 1
		}
		return cmp.Compare(a, b)
	})
	return NewPalette(colors)
}

// Len returns the number of entries.
func (p *Palette) Len() int { return len(p.colors) }

// At returns entry i.
func (p *Palette) At(i int) color.Color { return p.colors[i] }

// Colors returns the entries. The slice aliases the palette.
func (p *Palette) Colors() []color.Color { return p.colors }

// Index returns the position of c in the palette.
func (p *Palette) Index(c color.Color) (int, bool) {
	i, ok := p.index[c]
	return i, ok
}

// Indexable reports whether the palette fits a PLTE chunk.
func (p *Palette) Indexable() bool {
	return len(p.colors) <= MaxPaletteSize
}

// Opaque reports whether every entry is fully opaque.
func (p *Palette) Opaque() bool {
	for _, c := range p.colors {
		if !color.Opaque(c) {
			return false
		}
	}
	return true
}

// Grayscale reports whether every entry has equal red, green and blue.
func (p *Palette) Grayscale() bool {
	for _, c := range p.colors {
		if !color.IsGrayscale(c) {
			return false
		}
	}
	return true
}

// BlackAndWhite reports whether every entry is opaque black or white.
func (p *Palette) BlackAndWhite() bool {
	for _, c := range p.colors {
		if c != color.Black && c != color.White {
			return false
		}
	}
	return true
}

// BitDepth returns the smallest bit depth able to index every entry.
func (p *Palette) BitDepth() int {
	switch n := len(p.colors); {
	case n <= 2:
		return 1
	case n <= 4:
		return 2
	case n <= 16:
		return 4
	}
	return 8
}

// PLTEChunk encodes the color channels of the entries.
func (p *Palette) PLTEChunk() *datastream.Chunk {
	data := make([]byte, 0, 3*len(p.colors))
	for _, c := range p.colors {
		data = append(data, color.R(c), color.G(c), color.B(c))
	}
	return datastream.NewChunk(datastream.TypePLTE, data)
}

// TRNSChunk encodes the alpha values of the entries, leaving out trailing
// opaque ones. It returns nil when the palette is opaque.
func (p *Palette) TRNSChunk() *datastream.Chunk {
	n := len(p.colors)
	for n > 0 && color.Opaque(p.colors[n-1]) {
		n--
	}
	if n == 0 {
		return nil
	}
	data := make([]byte, n)
	for i := range data {
		data[i] = color.A(p.colors[i])
	}
	return datastream.NewChunk(datastream.TypeTRNS, data)
}
