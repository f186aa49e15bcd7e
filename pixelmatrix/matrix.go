// Package pixelmatrix converts between a grid of colors and the filtered,
// interlaced and compressed image data of a PNG datastream.
package pixelmatrix

import (
	"fmt"
	"image"
	imgcolor "image/color"
	"slices"

	"github.com/brycejohnston/chunky-png/color"
)

// Matrix is a row-major grid of colors. It implements image.Image.
type Matrix struct {
	width, height int
	pixels        []color.Color
}

// New returns a width x height matrix filled with transparent pixels.
func New(width, height int) *Matrix {
	return NewFilled(width, height, color.Transparent)
}

// NewFilled returns a width x height matrix filled with c. Negative
// dimensions are treated as 0.
func NewFilled(width, height int, c color.Color) *Matrix {
	width, height = max(width, 0), max(height, 0)
	m := &Matrix{width: width, height: height, pixels: make([]color.Color, width*height)}
	if c != 0 {
		for i := range m.pixels {
			m.pixels[i] = c
		}
	}
	return m
}

// FromPixels returns a matrix holding a copy of pixels, which must contain
// exactly width*height colors in row-major order.
func FromPixels(width, height int, pixels []color.Color) (*Matrix, error) {
	if width < 0 || height < 0 || len(pixels) != width*height {
		return nil, &color.ArgumentError{
			Value:  len(pixels),
			Reason: fmt.Sprintf("pixel count for a %dx%d matrix", width, height),
		}
	}
	return &Matrix{width: width, height: height, pixels: slices.Clone(pixels)}, nil
}

// FromImage copies img into a new matrix.
func FromImage(img image.Image) *Matrix {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.pixels[y*m.width+x] = toColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return m
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.height }

func (m *Matrix) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// Get returns the pixel at (x, y).
func (m *Matrix) Get(x, y int) (color.Color, error) {
	if !m.inBounds(x, y) {
		return 0, m.boundsError(x, y)
	}
	return m.pixels[y*m.width+x], nil
}

// Set replaces the pixel at (x, y).
func (m *Matrix) Set(x, y int, c color.Color) error {
	if !m.inBounds(x, y) {
		return m.boundsError(x, y)
	}
	m.pixels[y*m.width+x] = c
	return nil
}

func (m *Matrix) boundsError(x, y int) error {
	return &color.ArgumentError{
		Value:  image.Pt(x, y),
		Reason: fmt.Sprintf("coordinates outside %dx%d matrix", m.width, m.height),
	}
}

// Row returns row y. The slice aliases the matrix.
func (m *Matrix) Row(y int) []color.Color {
	return m.pixels[y*m.width : (y+1)*m.width]
}

// Pixels returns every pixel in row-major order. The slice aliases the
// matrix.
func (m *Matrix) Pixels() []color.Color {
	return m.pixels
}

// Equal reports whether both matrices have the same size and pixels.
func (m *Matrix) Equal(o *Matrix) bool {
	return m.width == o.width && m.height == o.height && slices.Equal(m.pixels, o.pixels)
}

// Palette returns the distinct colors of the matrix.
func (m *Matrix) Palette() *Palette {
	return PaletteFromMatrix(m)
}

// ColorModel implements image.Image.
func (m *Matrix) ColorModel() imgcolor.Model {
	return colorModel
}

// Bounds implements image.Image.
func (m *Matrix) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At implements image.Image. Points outside the matrix are transparent.
func (m *Matrix) At(x, y int) imgcolor.Color {
	if !m.inBounds(x, y) {
		return color.Transparent
	}
	return m.pixels[y*m.width+x]
}

var colorModel = imgcolor.ModelFunc(func(c imgcolor.Color) imgcolor.Color {
	return toColor(c)
})

func toColor(c imgcolor.Color) color.Color {
	if pc, ok := c.(color.Color); ok {
		return pc
	}
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	return color.RGBA(n.R, n.G, n.B, n.A)
}
