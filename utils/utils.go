package utils

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// BytesToLength reads a big-endian uint32, as used for chunk lengths and CRCs.
func BytesToLength(data []byte) uint32 {
	return binary.BigEndian.Uint32(data)
}

// LengthToBytes appends n to dst in big-endian order.
func LengthToBytes(dst []byte, n uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, n)
}

// CreatePPM creates a binary (P6) PPM file and writes its header. The caller
// writes width*height RGB triples and closes the file.
func CreatePPM(name string, width, height int) (*os.File, error) {
	file, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	if err := WritePPMHeader(file, width, height); err != nil {
		file.Close()
		return nil, err
	}

	return file, nil
}

// WritePPMHeader writes the P6 header for an 8-bit image.
func WritePPMHeader(w io.Writer, width, height int) error {
	_, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height)
	return err
}
