package datastream

import (
	"bytes"
	"errors"
	"testing"

	"github.com/brycejohnston/chunky-png/color"
)

var rgbHeader = Header{Width: 2, Height: 2, BitDepth: 8, ColorMode: color.Truecolor}

// build serializes chunks behind the signature without any order checks.
func build(chunks ...*Chunk) []byte {
	var buf bytes.Buffer
	buf.WriteString(Signature)
	for _, c := range chunks {
		c.WriteTo(&buf)
	}
	return buf.Bytes()
}

func payload(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i * 7)
	}
	return p
}

func TestAssemble_ParseRoundTrip(t *testing.T) {
	text := NewChunk("tEXt", []byte("Comment\x00round trip"))
	data := payload(2*DefaultIDATSize + 100)

	ds, err := Assemble(rgbHeader, nil, nil, []*Chunk{text}, data, 0)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if n := len(ds.DataChunks()); n != 3 {
		t.Errorf("Assemble produced %d IDAT chunks, want 3", n)
	}

	parsed, err := Parse(ds.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Header() != rgbHeader {
		t.Errorf("Header() = %v, want %v", parsed.Header(), rgbHeader)
	}
	if !bytes.Equal(parsed.ImageData(), data) {
		t.Error("ImageData differs from the assembled payload")
	}
	anc := parsed.Ancillary()
	if len(anc) != 1 || anc[0].Type != "tEXt" || !bytes.Equal(anc[0].Data, text.Data) {
		t.Errorf("Ancillary() = %v, want [%v]", anc, text)
	}
	if parsed.PaletteChunk() != nil || parsed.TransparencyChunk() != nil {
		t.Error("unexpected palette or transparency chunk")
	}
	if parsed.HeaderChunk() == nil || parsed.EndChunk() == nil {
		t.Error("missing IHDR or IEND accessor result")
	}

	wantOrder := []string{TypeIHDR, "tEXt", TypeIDAT, TypeIDAT, TypeIDAT, TypeIEND}
	chunks := parsed.Chunks()
	if len(chunks) != len(wantOrder) {
		t.Fatalf("got %d chunks, want %d", len(chunks), len(wantOrder))
	}
	for i, c := range chunks {
		if c.Type != wantOrder[i] {
			t.Errorf("chunk %d is %s, want %s", i, c.Type, wantOrder[i])
		}
	}
}

func TestAssemble_IDATSplit(t *testing.T) {
	tests := []struct {
		size, max int
		want      int
	}{
		{0, 0, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 7, 15},
		{DefaultIDATSize, -1, 1},
	}
	for _, tt := range tests {
		ds, err := Assemble(rgbHeader, nil, nil, nil, payload(tt.size), tt.max)
		if err != nil {
			t.Fatalf("Assemble(%d, %d): %v", tt.size, tt.max, err)
		}
		if got := len(ds.DataChunks()); got != tt.want {
			t.Errorf("Assemble(%d, %d) produced %d IDAT chunks, want %d", tt.size, tt.max, got, tt.want)
		}
	}
}

func TestAssemble_Errors(t *testing.T) {
	indexed := Header{Width: 1, Height: 1, BitDepth: 8, ColorMode: color.Indexed}
	tests := []struct {
		name      string
		hdr       Header
		plte      *Chunk
		ancillary []*Chunk
		want      any
	}{
		{"invalid header", Header{Width: 1, Height: 1, BitDepth: 3, ColorMode: color.Truecolor}, nil, nil, new(*HeaderError)},
		{"indexed without palette", indexed, nil, nil, new(*FormatError)},
		{"palette of wrong type", indexed, NewChunk("tEXt", nil), nil, new(*FormatError)},
		{"reserved ancillary", rgbHeader, nil, []*Chunk{NewChunk(TypeIDAT, nil)}, new(*FormatError)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(tt.hdr, tt.plte, nil, tt.ancillary, nil, 0)
			if err == nil || !errors.As(err, tt.want) {
				t.Errorf("Assemble error = %v, want %T", err, tt.want)
			}
		})
	}
}

func TestParse_TamperedByte(t *testing.T) {
	plte := NewChunk(TypePLTE, []byte{255, 0, 0, 0, 255, 0})
	hdr := Header{Width: 2, Height: 1, BitDepth: 1, ColorMode: color.Indexed}
	ds, err := Assemble(hdr, plte, nil, []*Chunk{NewChunk("tEXt", []byte("a\x00b"))}, payload(40), 16)
	if err != nil {
		t.Fatal(err)
	}
	original := ds.Bytes()

	// Flip bits in every type, data and crc byte of every chunk. Some flips
	// turn a type letter into a non-letter; those must still fail the CRC.
	offset := len(Signature)
	for _, c := range ds.Chunks() {
		start := offset + 4
		end := start + 4 + c.Length() + 4
		for i := start; i < end; i++ {
			for _, mask := range []byte{0x01, 0x10, 0x40, 0x80} {
				data := append([]byte(nil), original...)
				data[i] ^= mask

				_, err := Parse(data)
				var crcErr *CRCError
				if !errors.As(err, &crcErr) {
					t.Fatalf("%s byte %d ^ %#x: Parse = %v, want *CRCError", c.Type, i, mask, err)
				}
				if i >= start+4 && crcErr.Type != c.Type {
					t.Errorf("CRCError.Type = %s, want %s", crcErr.Type, c.Type)
				}
			}
		}
		offset = end
	}
}

func TestParse_InvalidTypeWithValidCRC(t *testing.T) {
	data := build(rgbHeader.Chunk(), NewChunk("I\x04AT", []byte{1}), NewChunk(TypeIEND, nil))
	var fErr *FormatError
	if _, err := Parse(data); !errors.As(err, &fErr) {
		t.Errorf("Parse = %v, want *FormatError", err)
	}
}

func TestParse_Truncated(t *testing.T) {
	ds, err := Assemble(rgbHeader, nil, nil, nil, payload(30), 0)
	if err != nil {
		t.Fatal(err)
	}
	data := ds.Bytes()
	for n := 0; n < len(data); n++ {
		var fErr *FormatError
		if _, err := Parse(data[:n]); !errors.As(err, &fErr) {
			t.Fatalf("Parse of %d/%d bytes = %v, want *FormatError", n, len(data), err)
		}
	}
}

func TestParse_TrailingDataIgnored(t *testing.T) {
	ds, err := Assemble(rgbHeader, nil, nil, nil, payload(30), 0)
	if err != nil {
		t.Fatal(err)
	}
	data := append(ds.Bytes(), "garbage after the end"...)
	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parsed.Chunks()) != 3 {
		t.Errorf("got %d chunks, want 3", len(parsed.Chunks()))
	}
}

func TestParse_Signature(t *testing.T) {
	data := []byte("\x89PNG\r\n\x1a\x0a")
	data[1] = 'J'
	var fErr *FormatError
	if _, err := Parse(data); !errors.As(err, &fErr) {
		t.Errorf("Parse = %v, want *FormatError", err)
	}
}

func TestParse_ChunkOrder(t *testing.T) {
	ihdr := rgbHeader.Chunk()
	plte := NewChunk(TypePLTE, []byte{1, 2, 3})
	idat := NewChunk(TypeIDAT, []byte{1})
	iend := NewChunk(TypeIEND, nil)
	text := NewChunk("tEXt", []byte("k\x00v"))
	indexed := Header{Width: 1, Height: 1, BitDepth: 8, ColorMode: color.Indexed}.Chunk()

	tests := []struct {
		name   string
		chunks []*Chunk
	}{
		{"IHDR not first", []*Chunk{text, ihdr, idat, iend}},
		{"duplicate IHDR", []*Chunk{ihdr, ihdr, idat, iend}},
		{"PLTE after IDAT", []*Chunk{ihdr, idat, plte, iend}},
		{"duplicate PLTE", []*Chunk{ihdr, plte, plte, idat, iend}},
		{"IDAT not consecutive", []*Chunk{ihdr, idat, text, idat, iend}},
		{"missing IDAT", []*Chunk{ihdr, iend}},
		{"missing IEND", []*Chunk{ihdr, idat}},
		{"indexed without PLTE", []*Chunk{indexed, idat, iend}},
		{"IEND with data", []*Chunk{ihdr, idat, NewChunk(TypeIEND, []byte{0})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fErr *FormatError
			if _, err := Parse(build(tt.chunks...)); !errors.As(err, &fErr) {
				t.Errorf("Parse = %v, want *FormatError", err)
			}
		})
	}

	if _, err := Parse(build(ihdr, plte, text, idat, idat, text, iend)); err != nil {
		t.Errorf("valid order rejected: %v", err)
	}
}

func TestRead(t *testing.T) {
	ds, err := Assemble(rgbHeader, nil, nil, nil, payload(5), 0)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := ds.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	parsed, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(parsed.Bytes(), ds.Bytes()) {
		t.Error("Read did not reproduce the written datastream")
	}
}
