package pixelmatrix

import (
	"github.com/brycejohnston/chunky-png/color"
	"github.com/brycejohnston/chunky-png/compression"
	"github.com/brycejohnston/chunky-png/datastream"
)

// EncodeOption configures Encode and ToDatastream.
//
// Example:
//
//	data, err := pixelmatrix.Encode(m,
//		pixelmatrix.WithInterlace(true),
//		pixelmatrix.WithAdaptiveFilter(),
//	)
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	mode      color.ColorMode
	depth     int
	modeSet   bool
	interlace bool
	filter    FilterMethod
	adaptive  bool
	level     int
	maxIDAT   int
	ancillary []*datastream.Chunk
}

func defaultOptions() encodeOptions {
	return encodeOptions{
		filter:  FilterNone,
		level:   compression.DefaultCompression,
		maxIDAT: datastream.DefaultIDATSize,
	}
}

func newOptions(opts []EncodeOption) encodeOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithColorMode fixes the color mode and bit depth. Without it the smallest
// mode able to represent the matrix is chosen.
func WithColorMode(mode color.ColorMode, depth int) EncodeOption {
	return func(o *encodeOptions) {
		o.mode, o.depth, o.modeSet = mode, depth, true
	}
}

// WithInterlace selects Adam7 interlacing.
func WithInterlace(interlace bool) EncodeOption {
	return func(o *encodeOptions) {
		o.interlace = interlace
	}
}

// WithFilter applies a single filter to every scanline.
func WithFilter(f FilterMethod) EncodeOption {
	return func(o *encodeOptions) {
		o.filter, o.adaptive = f, false
	}
}

// WithAdaptiveFilter chooses the filter per scanline, keeping the one whose
// output has the smallest sum of absolute signed bytes.
func WithAdaptiveFilter() EncodeOption {
	return func(o *encodeOptions) {
		o.adaptive = true
	}
}

// WithCompressionLevel sets the zlib level, see the compression package.
func WithCompressionLevel(level int) EncodeOption {
	return func(o *encodeOptions) {
		o.level = level
	}
}

// WithMaxIDATSize sets the largest IDAT chunk payload.
func WithMaxIDATSize(n int) EncodeOption {
	return func(o *encodeOptions) {
		o.maxIDAT = n
	}
}

// WithAncillary adds chunks that are written, unchanged, before the image
// data.
func WithAncillary(chunks ...*datastream.Chunk) EncodeOption {
	return func(o *encodeOptions) {
		o.ancillary = append(o.ancillary, chunks...)
	}
}
