package datastream

import "fmt"

// FormatError reports a byte stream that is not a well-formed PNG datastream.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "png: invalid format: " + e.Reason
}

// CRCError reports a chunk whose stored checksum does not match its contents.
type CRCError struct {
	Type     string
	Stored   uint32
	Computed uint32
}

func (e *CRCError) Error() string {
	return fmt.Sprintf("png: %s chunk crc mismatch: stored %#08x, computed %#08x", e.Type, e.Stored, e.Computed)
}

// HeaderError reports an IHDR chunk with an illegal field or field combination.
type HeaderError struct {
	Field  string
	Reason string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("png: invalid header %s: %s", e.Field, e.Reason)
}
