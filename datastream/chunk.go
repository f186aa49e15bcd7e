// Package datastream reads and writes the chunk layer of a PNG file.
package datastream

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/brycejohnston/chunky-png/utils"
)

// Signature is the fixed prefix of every PNG file.
const Signature = "\x89PNG\r\n\x1a\n"

// Chunk types handled by the codec. Every other type is kept as opaque data.
const (
	TypeIHDR = "IHDR"
	TypePLTE = "PLTE"
	TypeTRNS = "tRNS"
	TypeIDAT = "IDAT"
	TypeIEND = "IEND"
)

// Chunk is a single length/type/data/crc record.
type Chunk struct {
	Type string
	Data []byte
	CRC  uint32
}

// NewChunk returns a chunk holding a copy of data with its CRC computed.
func NewChunk(typ string, data []byte) *Chunk {
	c := &Chunk{Type: typ, Data: append([]byte(nil), data...)}
	c.CRC = checksum(typ, c.Data)
	return c
}

// Length returns the number of data bytes.
func (c *Chunk) Length() int {
	return len(c.Data)
}

// Critical reports whether the chunk type starts with an upper-case letter.
func (c *Chunk) Critical() bool {
	return len(c.Type) > 0 && c.Type[0] >= 'A' && c.Type[0] <= 'Z'
}

// Verify compares the stored CRC with one computed over type and data.
func (c *Chunk) Verify() error {
	if computed := checksum(c.Type, c.Data); computed != c.CRC {
		return &CRCError{Type: c.Type, Stored: c.CRC, Computed: computed}
	}
	return nil
}

// WriteTo writes the chunk in file layout. The stored CRC is written as is.
func (c *Chunk) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.appendTo(make([]byte, 0, 12+len(c.Data))))
	return int64(n), err
}

func (c *Chunk) appendTo(dst []byte) []byte {
	dst = utils.LengthToBytes(dst, uint32(len(c.Data)))
	dst = append(dst, c.Type...)
	dst = append(dst, c.Data...)
	return utils.LengthToBytes(dst, c.CRC)
}

func (c *Chunk) String() string {
	return fmt.Sprintf("%s(%d bytes, crc %#08x)", c.Type, len(c.Data), c.CRC)
}

func checksum(typ string, data []byte) uint32 {
	crc := crc32.NewIEEE()
	io.WriteString(crc, typ)
	crc.Write(data)
	return crc.Sum32()
}

func validType(typ string) bool {
	if len(typ) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		c := typ[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}
