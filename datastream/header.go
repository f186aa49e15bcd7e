package datastream

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/brycejohnston/chunky-png/color"
)

// HeaderSize is the length of the IHDR payload.
const HeaderSize = 13

// Header is the decoded IHDR chunk.
type Header struct {
	Width     uint32
	Height    uint32
	BitDepth  uint8
	ColorMode color.ColorMode
	Interlace bool
}

// ihdr mirrors the on-disk field order so it can be read with binary.Read.
type ihdr struct {
	Width             uint32
	Height            uint32
	BitDepth          byte
	ColorType         byte
	CompressionMethod byte
	FilterMethod      byte
	InterlaceMethod   byte
}

// ParseHeader decodes and validates an IHDR payload.
func ParseHeader(data []byte) (Header, error) {
	if len(data) != HeaderSize {
		return Header{}, &HeaderError{Field: "length", Reason: fmt.Sprintf("%d bytes, want %d", len(data), HeaderSize)}
	}

	var raw ihdr
	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, &raw); err != nil {
		return Header{}, err
	}
	if raw.CompressionMethod != 0 {
		return Header{}, &HeaderError{Field: "compression method", Reason: fmt.Sprintf("unsupported method %d", raw.CompressionMethod)}
	}
	if raw.FilterMethod != 0 {
		return Header{}, &HeaderError{Field: "filter method", Reason: fmt.Sprintf("unsupported method %d", raw.FilterMethod)}
	}
	if raw.InterlaceMethod > 1 {
		return Header{}, &HeaderError{Field: "interlace method", Reason: fmt.Sprintf("unsupported method %d", raw.InterlaceMethod)}
	}

	h := Header{
		Width:     raw.Width,
		Height:    raw.Height,
		BitDepth:  raw.BitDepth,
		ColorMode: color.ColorMode(raw.ColorType),
		Interlace: raw.InterlaceMethod == 1,
	}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// Validate checks the dimensions and the color mode / bit depth combination.
func (h Header) Validate() error {
	switch {
	case h.Width == 0:
		return &HeaderError{Field: "width", Reason: "must be positive"}
	case h.Height == 0:
		return &HeaderError{Field: "height", Reason: "must be positive"}
	case h.Width > 1<<31-1:
		return &HeaderError{Field: "width", Reason: "exceeds 2^31-1"}
	case h.Height > 1<<31-1:
		return &HeaderError{Field: "height", Reason: "exceeds 2^31-1"}
	case !h.ColorMode.Valid():
		return &HeaderError{Field: "color type", Reason: fmt.Sprintf("unknown color type %d", uint8(h.ColorMode))}
	case !h.ColorMode.AllowsBitDepth(int(h.BitDepth)):
		return &HeaderError{Field: "bit depth", Reason: fmt.Sprintf("%d not allowed for %s", h.BitDepth, h.ColorMode)}
	}
	return nil
}

// Bytes returns the 13-byte IHDR payload.
func (h Header) Bytes() []byte {
	var interlace byte
	if h.Interlace {
		interlace = 1
	}
	raw := ihdr{
		Width:           h.Width,
		Height:          h.Height,
		BitDepth:        h.BitDepth,
		ColorType:       byte(h.ColorMode),
		InterlaceMethod: interlace,
	}
	var buf bytes.Buffer
	buf.Grow(HeaderSize)
	binary.Write(&buf, binary.BigEndian, &raw)
	return buf.Bytes()
}

// Chunk returns the header as an IHDR chunk.
func (h Header) Chunk() *Chunk {
	return NewChunk(TypeIHDR, h.Bytes())
}

// PixelBytesize is the filter step of this image, see color.PixelBytesize.
func (h Header) PixelBytesize() int {
	return color.PixelBytesize(h.ColorMode, int(h.BitDepth))
}

func (h Header) String() string {
	interlace := "none"
	if h.Interlace {
		interlace = "adam7"
	}
	return fmt.Sprintf("%dx%d %s %d-bit, interlace %s", h.Width, h.Height, h.ColorMode, h.BitDepth, interlace)
}
