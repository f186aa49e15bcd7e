package datastream

import (
	"bytes"
	"fmt"
	"io"

	"github.com/brycejohnston/chunky-png/logging"
)

// DefaultIDATSize is the largest IDAT payload Assemble emits when no other
// size is requested.
const DefaultIDATSize = 8192

// Datastream is a parsed or assembled sequence of chunks, in file order.
type Datastream struct {
	header Header
	chunks []*Chunk
}

// Header returns the parsed IHDR fields.
func (ds *Datastream) Header() Header {
	return ds.header
}

// Chunks returns every chunk in file order.
func (ds *Datastream) Chunks() []*Chunk {
	return ds.chunks
}

func (ds *Datastream) first(typ string) *Chunk {
	for _, c := range ds.chunks {
		if c.Type == typ {
			return c
		}
	}
	return nil
}

// HeaderChunk returns the IHDR chunk.
func (ds *Datastream) HeaderChunk() *Chunk { return ds.first(TypeIHDR) }

// PaletteChunk returns the PLTE chunk, or nil.
func (ds *Datastream) PaletteChunk() *Chunk { return ds.first(TypePLTE) }

// TransparencyChunk returns the tRNS chunk, or nil.
func (ds *Datastream) TransparencyChunk() *Chunk { return ds.first(TypeTRNS) }

// EndChunk returns the IEND chunk.
func (ds *Datastream) EndChunk() *Chunk { return ds.first(TypeIEND) }

// DataChunks returns the IDAT chunks in order.
func (ds *Datastream) DataChunks() []*Chunk {
	var idat []*Chunk
	for _, c := range ds.chunks {
		if c.Type == TypeIDAT {
			idat = append(idat, c)
		}
	}
	return idat
}

// ImageData returns the concatenated IDAT payload, a single zlib stream.
func (ds *Datastream) ImageData() []byte {
	var n int
	idat := ds.DataChunks()
	for _, c := range idat {
		n += c.Length()
	}
	data := make([]byte, 0, n)
	for _, c := range idat {
		data = append(data, c.Data...)
	}
	return data
}

// Ancillary returns every chunk the codec does not interpret, in order.
func (ds *Datastream) Ancillary() []*Chunk {
	var other []*Chunk
	for _, c := range ds.chunks {
		if !reservedType(c.Type) {
			other = append(other, c)
		}
	}
	return other
}

func reservedType(typ string) bool {
	switch typ {
	case TypeIHDR, TypePLTE, TypeTRNS, TypeIDAT, TypeIEND:
		return true
	}
	return false
}

// Assemble builds a datastream from its parts: IHDR, PLTE, tRNS, the
// ancillary chunks, the payload split into IDAT chunks of at most maxIDAT
// bytes, and IEND. plte is required for indexed images; trns may be nil.
// A maxIDAT of 0 or less selects DefaultIDATSize.
func Assemble(hdr Header, plte, trns *Chunk, ancillary []*Chunk, payload []byte, maxIDAT int) (*Datastream, error) {
	if err := hdr.Validate(); err != nil {
		return nil, err
	}
	if hdr.ColorMode.UsesPalette() && plte == nil {
		return nil, &FormatError{Reason: "indexed image without PLTE chunk"}
	}
	if plte != nil && plte.Type != TypePLTE {
		return nil, &FormatError{Reason: fmt.Sprintf("%s chunk passed as palette", plte.Type)}
	}
	if trns != nil && trns.Type != TypeTRNS {
		return nil, &FormatError{Reason: fmt.Sprintf("%s chunk passed as transparency", trns.Type)}
	}
	for _, c := range ancillary {
		if reservedType(c.Type) || !validType(c.Type) {
			return nil, &FormatError{Reason: fmt.Sprintf("%q cannot be passed through", c.Type)}
		}
	}
	if maxIDAT <= 0 {
		maxIDAT = DefaultIDATSize
	}

	ds := &Datastream{header: hdr}
	ds.chunks = append(ds.chunks, hdr.Chunk())
	if plte != nil {
		ds.chunks = append(ds.chunks, plte)
	}
	if trns != nil {
		ds.chunks = append(ds.chunks, trns)
	}
	ds.chunks = append(ds.chunks, ancillary...)

	idat := 0
	for len(payload) > maxIDAT {
		ds.chunks = append(ds.chunks, NewChunk(TypeIDAT, payload[:maxIDAT]))
		payload = payload[maxIDAT:]
		idat++
	}
	ds.chunks = append(ds.chunks, NewChunk(TypeIDAT, payload))
	ds.chunks = append(ds.chunks, NewChunk(TypeIEND, nil))

	logging.Logger().Debug("png: datastream assembled", "header", hdr, "idat_chunks", idat+1, "chunks", len(ds.chunks))
	return ds, nil
}

// WriteTo writes the signature followed by every chunk.
func (ds *Datastream) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, Signature)
	total := int64(n)
	if err != nil {
		return total, err
	}
	for _, c := range ds.chunks {
		m, err := c.WriteTo(w)
		total += m
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Bytes returns the serialized datastream.
func (ds *Datastream) Bytes() []byte {
	size := len(Signature)
	for _, c := range ds.chunks {
		size += 12 + c.Length()
	}
	var buf bytes.Buffer
	buf.Grow(size)
	ds.WriteTo(&buf)
	return buf.Bytes()
}
