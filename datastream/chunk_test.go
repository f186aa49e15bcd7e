package datastream

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewChunk_CRC(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		data []byte
		want uint32
	}{
		{"IEND", TypeIEND, nil, 0xae426082},
		{"IHDR 1x1 truecolor", TypeIHDR, []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 2, 0, 0, 0}, 0x907753de},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChunk(tt.typ, tt.data)
			if c.CRC != tt.want {
				t.Errorf("CRC = %#08x, want %#08x", c.CRC, tt.want)
			}
			if err := c.Verify(); err != nil {
				t.Errorf("Verify: %v", err)
			}
		})
	}
}

func TestNewChunk_CopiesData(t *testing.T) {
	data := []byte{1, 2, 3}
	c := NewChunk("tEXt", data)
	data[0] = 9
	if c.Data[0] != 1 {
		t.Error("chunk shares memory with its input")
	}
}

func TestChunk_Critical(t *testing.T) {
	for typ, want := range map[string]bool{
		TypeIHDR: true,
		TypePLTE: true,
		TypeIDAT: true,
		TypeIEND: true,
		TypeTRNS: false,
		"tEXt":   false,
		"gAMA":   false,
	} {
		if got := NewChunk(typ, nil).Critical(); got != want {
			t.Errorf("%s.Critical() = %v, want %v", typ, got, want)
		}
	}
}

func TestChunk_VerifyMismatch(t *testing.T) {
	c := NewChunk("tEXt", []byte("Comment\x00hello"))
	c.Data[3] ^= 0x20

	err := c.Verify()
	var crcErr *CRCError
	if !errors.As(err, &crcErr) {
		t.Fatalf("Verify = %v, want *CRCError", err)
	}
	if crcErr.Type != "tEXt" || crcErr.Stored == crcErr.Computed {
		t.Errorf("unexpected error fields: %+v", crcErr)
	}
}

func TestChunk_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewChunk(TypeIEND, nil).WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xae, 0x42, 0x60, 0x82}
	if n != int64(len(want)) || !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteTo wrote %d bytes %x, want %x", n, buf.Bytes(), want)
	}
}

func TestValidType(t *testing.T) {
	for typ, want := range map[string]bool{
		"IHDR":  true,
		"tEXt":  true,
		"IHD":   false,
		"IHDRX": false,
		"IH1R":  false,
		"":      false,
	} {
		if got := validType(typ); got != want {
			t.Errorf("validType(%q) = %v, want %v", typ, got, want)
		}
	}
}
