package datastream

import (
	"bytes"
	"fmt"
	"io"

	"github.com/brycejohnston/chunky-png/logging"
	"github.com/brycejohnston/chunky-png/utils"
)

// maxChunkLength is the largest length field PNG allows.
const maxChunkLength = 1<<31 - 1

type reader struct {
	data     []byte
	idx      uint
	finished bool
}

func isPNG(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Signature))
}

func newReader(data []byte) (*reader, error) {
	if !isPNG(data) {
		return nil, &FormatError{Reason: "missing PNG signature"}
	}
	return &reader{
		data: data,
		idx:  uint(len(Signature)),
	}, nil
}

func (p *reader) nextChunk() (*Chunk, error) {
	if p.finished {
		return nil, nil
	}
	length, err := p.tryAdvance(4, "chunk length")
	if err != nil {
		return nil, err
	}
	n := utils.BytesToLength(length)
	if n > maxChunkLength {
		return nil, &FormatError{Reason: fmt.Sprintf("chunk length %d out of range", n)}
	}
	chunkType, err := p.tryAdvance(4, "chunk type")
	if err != nil {
		return nil, err
	}
	chunkData, err := p.tryAdvance(uint(n), string(chunkType)+" data")
	if err != nil {
		return nil, err
	}
	crc, err := p.tryAdvance(4, string(chunkType)+" crc")
	if err != nil {
		return nil, err
	}
	if string(chunkType) == TypeIEND {
		p.finished = true
	}
	return &Chunk{
		Type: string(chunkType),
		Data: chunkData,
		CRC:  utils.BytesToLength(crc),
	}, nil
}

func (p *reader) tryAdvance(length uint, what string) ([]byte, error) {
	if p.idx+length > uint(len(p.data)) {
		return nil, &FormatError{Reason: "unexpected end of data reading " + what}
	}

	p.idx += length
	return p.data[p.idx-length : p.idx], nil
}

// Parse reads a complete PNG datastream. Every chunk's CRC is verified, then
// its type and the chunk order are checked; reading stops after IEND. The returned chunks
// share memory with data.
func Parse(data []byte) (*Datastream, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	log := logging.Logger()
	log.Debug("png: signature verified")

	var o orderCheck
	ds := &Datastream{}
	for !r.finished {
		chunk, err := r.nextChunk()
		if err != nil {
			return nil, err
		}
		// The CRC covers the type, so it is checked before the type itself.
		if err := chunk.Verify(); err != nil {
			return nil, err
		}
		if !validType(chunk.Type) {
			return nil, &FormatError{Reason: fmt.Sprintf("invalid chunk type %q", chunk.Type)}
		}
		if err := o.next(chunk); err != nil {
			return nil, err
		}
		if chunk.Type == TypeIHDR {
			if ds.header, err = ParseHeader(chunk.Data); err != nil {
				return nil, err
			}
			log.Debug("png: header parsed", "header", ds.header)
		}
		log.Debug("png: chunk read", "type", chunk.Type, "length", chunk.Length(), "critical", chunk.Critical())
		ds.chunks = append(ds.chunks, chunk)
	}
	if err := o.done(ds.header); err != nil {
		return nil, err
	}

	if extra := uint(len(data)) - r.idx; extra > 0 {
		log.Warn("png: ignoring data after IEND", "bytes", extra)
	}
	return ds, nil
}

// Read reads all of rd and parses it with Parse.
func Read(rd io.Reader) (*Datastream, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// orderCheck tracks the chunk ordering rules: IHDR first, at most one PLTE
// and tRNS before the image data, consecutive IDAT chunks, IEND last.
type orderCheck struct {
	count     int
	plte      bool
	trns      bool
	idat      bool
	idatEnded bool
	iend      bool
}

func (o *orderCheck) next(c *Chunk) error {
	defer func() { o.count++ }()

	if o.count == 0 && c.Type != TypeIHDR {
		return &FormatError{Reason: fmt.Sprintf("first chunk is %s, want IHDR", c.Type)}
	}
	if o.idat && c.Type != TypeIDAT {
		o.idatEnded = true
	}

	switch c.Type {
	case TypeIHDR:
		if o.count > 0 {
			return &FormatError{Reason: "duplicate IHDR chunk"}
		}
	case TypePLTE:
		if o.plte {
			return &FormatError{Reason: "duplicate PLTE chunk"}
		}
		if o.idat {
			return &FormatError{Reason: "PLTE chunk after image data"}
		}
		o.plte = true
	case TypeTRNS:
		if o.trns {
			return &FormatError{Reason: "duplicate tRNS chunk"}
		}
		if o.idat {
			return &FormatError{Reason: "tRNS chunk after image data"}
		}
		o.trns = true
	case TypeIDAT:
		if o.idatEnded {
			return &FormatError{Reason: "IDAT chunks are not consecutive"}
		}
		o.idat = true
	case TypeIEND:
		if c.Length() != 0 {
			return &FormatError{Reason: "IEND chunk carries data"}
		}
		o.iend = true
	}
	return nil
}

func (o *orderCheck) done(h Header) error {
	switch {
	case !o.iend:
		return &FormatError{Reason: "missing IEND chunk"}
	case !o.idat:
		return &FormatError{Reason: "missing IDAT chunk"}
	case h.ColorMode.UsesPalette() && !o.plte:
		return &FormatError{Reason: "indexed image without PLTE chunk"}
	}
	return nil
}
