package pixelmatrix

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/brycejohnston/chunky-png/color"
	"github.com/brycejohnston/chunky-png/compression"
	"github.com/brycejohnston/chunky-png/datastream"
	"github.com/brycejohnston/chunky-png/logging"
)

// Decode parses a PNG file and decodes its image.
func Decode(data []byte) (*datastream.Datastream, *Matrix, error) {
	ds, err := datastream.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	m, err := FromDatastream(ds)
	if err != nil {
		return nil, nil, err
	}
	return ds, m, nil
}

// DecodeReader reads a PNG file from r and decodes its image.
func DecodeReader(r io.Reader) (*datastream.Datastream, *Matrix, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return Decode(data)
}

// FromDatastream decodes the image stored in ds.
func FromDatastream(ds *datastream.Datastream) (*Matrix, error) {
	log := logging.Logger()
	hdr := ds.Header()

	dec := &lineDecoder{mode: hdr.ColorMode, depth: int(hdr.BitDepth)}
	if hdr.ColorMode.UsesPalette() {
		pal, err := PaletteFromChunks(ds.PaletteChunk(), ds.TransparencyChunk())
		if err != nil {
			return nil, err
		}
		dec.palette = pal
		log.Debug("png: palette parsed", "colors", pal.Len())
	} else if trns := ds.TransparencyChunk(); trns != nil {
		if hdr.ColorMode.HasAlpha() {
			log.Warn("png: ignoring tRNS chunk", "color_mode", hdr.ColorMode)
		} else {
			key, err := parseTransparentKey(hdr.ColorMode, trns)
			if err != nil {
				return nil, err
			}
			dec.key = key
		}
	}

	ps := passes(hdr.Interlace)
	offsets, err := passOffsets(hdr, ps)
	if err != nil {
		return nil, err
	}

	payload := ds.ImageData()
	log.Debug("png: payload assembled", "bytes", len(payload), "chunks", len(ds.DataChunks()))

	// One byte past the scanlines is enough to notice trailing data.
	limit := int64(offsets[len(ps)])
	if limit < math.MaxInt64 {
		limit++
	}
	raw, err := compression.InflateDataLimit(payload, limit)
	if err != nil {
		return nil, fmt.Errorf("png: inflate image data: %w", err)
	}
	log.Debug("png: inflated", "bytes", len(raw))

	return decodePixels(hdr, dec, raw, ps, offsets)
}

func parseTransparentKey(mode color.ColorMode, trns *datastream.Chunk) (transparentKey, error) {
	var key transparentKey
	n := 1
	if mode == color.Truecolor {
		n = 3
	}
	if trns.Length() != 2*n {
		return key, &FormatError{Reason: fmt.Sprintf("tRNS chunk of %d bytes for %s", trns.Length(), mode)}
	}
	for i := 0; i < n; i++ {
		key.samples[i] = sampleAt(trns.Data, i, 16)
	}
	key.set = true
	return key, nil
}

// passOffsets returns the offset of every pass in the inflated image data,
// followed by the total length. Images whose pixel count or data length does
// not fit an int are rejected before anything is allocated.
func passOffsets(hdr datastream.Header, ps []pass) ([]int, error) {
	tooLarge := &FormatError{Reason: fmt.Sprintf("image of %dx%d pixels is too large", hdr.Width, hdr.Height)}
	if uint64(hdr.Width)*uint64(hdr.Height) > math.MaxInt {
		return nil, tooLarge
	}

	width, height := int(hdr.Width), int(hdr.Height)
	bitsPerPixel := uint64(hdr.ColorMode.SamplesPerPixel()) * uint64(hdr.BitDepth)
	offsets := make([]int, len(ps)+1)
	var total uint64
	for i, p := range ps {
		pw, ph := p.size(width, height)
		if pw > 0 && ph > 0 {
			line := (uint64(pw)*bitsPerPixel+7)/8 + 1
			if line > (math.MaxInt-total)/uint64(ph) {
				return nil, tooLarge
			}
			total += line * uint64(ph)
		}
		offsets[i+1] = int(total)
		logging.Logger().Debug("png: pass", "pass", i, "width", pw, "height", ph, "bytes", offsets[i+1]-offsets[i])
	}
	return offsets, nil
}

// decodePixels unfilters raw and scatters the passes into a new matrix.
// Interlaced passes are decoded concurrently, each into its own subgrid.
// The matrix is allocated only once raw is known to hold every scanline.
func decodePixels(hdr datastream.Header, dec *lineDecoder, raw []byte, ps []pass, offsets []int) (*Matrix, error) {
	if want := offsets[len(ps)]; len(raw) < want {
		return nil, &FormatError{Reason: fmt.Sprintf("image data too short: have %d bytes, want %d", len(raw), want)}
	} else if len(raw) > want {
		logging.Logger().Warn("png: ignoring data after the last scanline")
	}

	m := New(int(hdr.Width), int(hdr.Height))

	if len(ps) == 1 {
		if err := decodePass(m, ps[0], hdr, dec, raw); err != nil {
			return nil, err
		}
		logging.Logger().Debug("png: unfiltered")
		return m, nil
	}

	errs := make([]error, len(ps))
	var wg sync.WaitGroup
	for i, p := range ps {
		if offsets[i] == offsets[i+1] {
			continue
		}
		wg.Add(1)
		go func(i int, p pass) {
			defer wg.Done()
			errs[i] = decodePass(m, p, hdr, dec, raw[offsets[i]:offsets[i+1]])
		}(i, p)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	logging.Logger().Debug("png: unfiltered and descattered", "passes", len(ps))
	return m, nil
}

// decodePass unfilters one pass in place and writes its pixels into m.
func decodePass(m *Matrix, p pass, hdr datastream.Header, dec *lineDecoder, raw []byte) error {
	pw, ph := p.size(m.width, m.height)
	if pw == 0 || ph == 0 {
		return nil
	}
	lineLen := color.ScanlineBytesize(hdr.ColorMode, dec.depth, pw)
	bpp := hdr.PixelBytesize()

	prev := make([]byte, lineLen)
	row := make([]color.Color, pw)
	off := 0
	for y := 0; y < ph; y++ {
		filter := FilterMethod(raw[off])
		line := raw[off+1 : off+1+lineLen]
		if err := unfilterScanline(filter, line, prev, bpp); err != nil {
			return err
		}
		if err := dec.decode(row, line); err != nil {
			return err
		}
		for x, c := range row {
			m.pixels[p.index(x, y, m.width)] = c
		}
		prev = line
		off += lineLen + 1
	}
	return nil
}
