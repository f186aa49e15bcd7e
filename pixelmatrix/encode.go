package pixelmatrix

import (
	"fmt"

	"github.com/brycejohnston/chunky-png/color"
	"github.com/brycejohnston/chunky-png/compression"
	"github.com/brycejohnston/chunky-png/datastream"
	"github.com/brycejohnston/chunky-png/logging"
)

// Encode returns m as a PNG file.
func Encode(m *Matrix, opts ...EncodeOption) ([]byte, error) {
	ds, err := ToDatastream(m, opts...)
	if err != nil {
		return nil, err
	}
	return ds.Bytes(), nil
}

// ToDatastream encodes m into a datastream. Unless WithColorMode is given,
// the color mode and bit depth are derived from the colors of m.
func ToDatastream(m *Matrix, opts ...EncodeOption) (*datastream.Datastream, error) {
	o := newOptions(opts)

	var pal *Palette
	mode, depth := o.mode, o.depth
	if !o.modeSet {
		pal = m.Palette()
		mode, depth = autoSettings(pal)
		logging.Logger().Debug("png: automatic encoding settings", "color_mode", mode, "bit_depth", depth, "colors", pal.Len())
	} else if mode.UsesPalette() {
		pal = m.Palette()
	}

	hdr := datastream.Header{
		Width:     uint32(m.width),
		Height:    uint32(m.height),
		BitDepth:  uint8(depth),
		ColorMode: mode,
		Interlace: o.interlace,
	}
	return encode(hdr, pal, m, o)
}

// EncodeHeader encodes m with a caller supplied header. pal is used for
// indexed images; when nil the palette of m is used. Color mode options are
// ignored in favor of hdr.
func EncodeHeader(hdr datastream.Header, pal *Palette, m *Matrix, opts ...EncodeOption) ([]byte, error) {
	if int(hdr.Width) != m.width || int(hdr.Height) != m.height {
		return nil, &datastream.HeaderError{
			Field:  "size",
			Reason: fmt.Sprintf("%dx%d header for a %dx%d matrix", hdr.Width, hdr.Height, m.width, m.height),
		}
	}
	if pal == nil && hdr.ColorMode.UsesPalette() {
		pal = m.Palette()
	}
	ds, err := encode(hdr, pal, m, newOptions(opts))
	if err != nil {
		return nil, err
	}
	return ds.Bytes(), nil
}

// autoSettings picks the smallest color mode that represents every color
// of the palette exactly.
func autoSettings(pal *Palette) (color.ColorMode, int) {
	switch {
	case pal.BlackAndWhite():
		return color.Grayscale, 1
	case pal.Grayscale() && pal.Opaque():
		return color.Grayscale, 8
	case pal.Indexable():
		return color.Indexed, pal.BitDepth()
	case pal.Opaque():
		return color.Truecolor, 8
	}
	return color.TruecolorAlpha, 8
}

func encode(hdr datastream.Header, pal *Palette, m *Matrix, o encodeOptions) (*datastream.Datastream, error) {
	if err := hdr.Validate(); err != nil {
		return nil, err
	}
	if !o.adaptive && o.filter > FilterPaeth {
		return nil, &color.ArgumentError{Value: o.filter, Reason: "unknown filter type"}
	}

	var plte, trns *datastream.Chunk
	if hdr.ColorMode.UsesPalette() {
		if limit := 1 << hdr.BitDepth; pal.Len() > limit {
			return nil, &PaletteIndexError{Index: pal.Len() - 1, Size: limit}
		}
		plte, trns = pal.PLTEChunk(), pal.TRNSChunk()
	}

	raw, err := encodePixels(hdr, pal, m, o)
	if err != nil {
		return nil, err
	}
	compressed, err := compression.DeflateData(raw, o.level)
	if err != nil {
		return nil, fmt.Errorf("png: deflate image data: %w", err)
	}
	logging.Logger().Debug("png: image data compressed", "raw", len(raw), "compressed", len(compressed))

	return datastream.Assemble(hdr, plte, trns, o.ancillary, compressed, o.maxIDAT)
}

// encodePixels packs and filters every pass of m.
func encodePixels(hdr datastream.Header, pal *Palette, m *Matrix, o encodeOptions) ([]byte, error) {
	mode, depth := hdr.ColorMode, int(hdr.BitDepth)
	enc := &lineEncoder{mode: mode, depth: depth, palette: pal}
	bpp := hdr.PixelBytesize()
	ps := passes(hdr.Interlace)

	total := 0
	for _, p := range ps {
		pw, ph := p.size(m.width, m.height)
		total += color.PassBytesize(mode, depth, pw, ph)
	}
	out := make([]byte, 0, total)

	for _, p := range ps {
		pw, ph := p.size(m.width, m.height)
		if pw == 0 || ph == 0 {
			continue
		}
		lineLen := color.ScanlineBytesize(mode, depth, pw)
		prev := make([]byte, lineLen)
		line := make([]byte, lineLen)
		row := make([]color.Color, pw)
		var scratch []byte
		if o.adaptive {
			scratch = make([]byte, 5*lineLen)
		}

		for y := 0; y < ph; y++ {
			for x := range row {
				row[x] = m.pixels[p.index(x, y, m.width)]
			}
			clear(line)
			if err := enc.encode(line, row); err != nil {
				return nil, err
			}

			start := len(out)
			out = out[:start+1+lineLen]
			filter := o.filter
			if o.adaptive {
				filter = adaptiveFilter(out[start+1:], line, prev, bpp, scratch)
			} else {
				filterScanline(out[start+1:], filter, line, prev, bpp)
			}
			out[start] = byte(filter)
			prev, line = line, prev
		}
	}
	return out, nil
}
