package pixelmatrix

import (
	"fmt"

	"github.com/brycejohnston/chunky-png/color"
)

// FormatError reports image data that cannot be decoded: a short stream,
// an unknown filter type or a malformed palette.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "png: invalid image data: " + e.Reason
}

// PaletteIndexError reports a sample that indexes past the end of the
// palette. When encoding, Index is -1 and Color is the pixel that has no
// palette entry.
type PaletteIndexError struct {
	Index int
	Size  int
	Color color.Color
}

func (e *PaletteIndexError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("png: color %s not in palette of %d colors", e.Color, e.Size)
	}
	return fmt.Sprintf("png: palette index %d out of range for %d colors", e.Index, e.Size)
}
