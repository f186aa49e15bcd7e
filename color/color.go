// Package color implements the packed 32-bit RGBA color model used by the
// PNG codec. A Color stores red, green, blue and alpha as one byte each, in
// that order, with alpha in the least significant byte.
//
// All functions in this package are pure and safe for concurrent use.
package color

import "math"

// Color is a packed RGBA value: 0xRRGGBBAA.
type Color uint32

// MaxChannel is the largest value of a single channel.
const MaxChannel = 0xff

// Common colors
const (
	White       Color = 0xffffffff
	Black       Color = 0x000000ff
	Transparent Color = 0x00000000
)

// RGBA packs four channels into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(r)<<24 | Color(g)<<16 | Color(b)<<8 | Color(a)
}

// RGB packs three channels into a fully opaque Color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, MaxChannel)
}

// RGBAInt packs four integer channels, taking each one modulo 256.
func RGBAInt(r, g, b, a int) Color {
	return RGBA(uint8(r&0xff), uint8(g&0xff), uint8(b&0xff), uint8(a&0xff))
}

// FromGrayscale returns an opaque gray with all three color channels set to v.
func FromGrayscale(v uint8) Color {
	return RGB(v, v, v)
}

// FromGrayscaleAlpha returns a gray with the given alpha.
func FromGrayscaleAlpha(v, a uint8) Color {
	return RGBA(v, v, v, a)
}

// FromTruecolorBytes builds an opaque Color from an RGB triple.
func FromTruecolorBytes(b [3]uint8) Color {
	return RGB(b[0], b[1], b[2])
}

// FromTruecolorAlphaBytes builds a Color from an RGBA quadruple.
func FromTruecolorAlphaBytes(b [4]uint8) Color {
	return RGBA(b[0], b[1], b[2], b[3])
}

// R returns the red channel.
func R(c Color) uint8 { return uint8(c >> 24) }

// G returns the green channel.
func G(c Color) uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func B(c Color) uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func A(c Color) uint8 { return uint8(c) }

// R returns the red channel of c.
func (c Color) R() uint8 { return R(c) }

// G returns the green channel of c.
func (c Color) G() uint8 { return G(c) }

// B returns the blue channel of c.
func (c Color) B() uint8 { return B(c) }

// A returns the alpha channel of c.
func (c Color) A() uint8 { return A(c) }

// String implements fmt.Stringer using the #rrggbbaa notation.
func (c Color) String() string { return ToHex(c) }

// Opaque reports whether the alpha channel is 255.
func Opaque(c Color) bool {
	return A(c) == MaxChannel
}

// FullyTransparent reports whether the alpha channel is 0.
func FullyTransparent(c Color) bool {
	return A(c) == 0
}

// IsGrayscale reports whether the red, green and blue channels are equal.
func IsGrayscale(c Color) bool {
	return R(c) == G(c) && G(c) == B(c)
}

// Opaquify returns c with its alpha channel set to 255.
func Opaquify(c Color) Color {
	return c | MaxChannel
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c Color, a uint8) Color {
	return c&0xffffff00 | Color(a)
}

// GrayscaleTeint returns the perceived brightness of c using the weights
// 0.30 R + 0.59 G + 0.11 B, rounded half up. Alpha is ignored.
func GrayscaleTeint(c Color) uint8 {
	sum := int(R(c))*30 + int(G(c))*59 + int(B(c))*11
	return uint8((sum + 50) / 100)
}

// ToGrayscale replaces the color channels with the grayscale teint and keeps
// alpha.
func ToGrayscale(c Color) Color {
	t := GrayscaleTeint(c)
	return RGBA(t, t, t, A(c))
}

// Blend returns the channel-wise average of a and b, alpha included.
// The result does not depend on argument order.
func Blend(a, b Color) Color {
	return RGBA(
		uint8((int(R(a))+int(R(b)))>>1),
		uint8((int(G(a))+int(G(b)))>>1),
		uint8((int(B(a))+int(B(b)))>>1),
		uint8((int(A(a))+int(A(b)))>>1),
	)
}

// EuclideanDistanceRGBA returns the distance between a and b in RGBA space.
func EuclideanDistanceRGBA(a, b Color) float64 {
	dr := float64(R(a)) - float64(R(b))
	dg := float64(G(a)) - float64(G(b))
	db := float64(B(a)) - float64(B(b))
	da := float64(A(a)) - float64(A(b))
	return math.Sqrt(dr*dr + dg*dg + db*db + da*da)
}

// ToTruecolorBytes returns the R, G and B channels.
func ToTruecolorBytes(c Color) [3]uint8 {
	return [3]uint8{R(c), G(c), B(c)}
}

// ToTruecolorAlphaBytes returns the R, G, B and A channels.
func ToTruecolorAlphaBytes(c Color) [4]uint8 {
	return [4]uint8{R(c), G(c), B(c), A(c)}
}

// RGBA implements image/color.Color. The returned values are
// alpha-premultiplied 16-bit channels, computed as image/color.NRGBA does.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(A(c))
	r = uint32(R(c))
	r |= r << 8
	r = r * a / MaxChannel
	g = uint32(G(c))
	g |= g << 8
	g = g * a / MaxChannel
	b = uint32(B(c))
	b |= b << 8
	b = b * a / MaxChannel
	return r, g, b, a | a<<8
}
