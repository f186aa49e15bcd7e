package color

import (
	"fmt"
	"math"
)

// Compose alpha-composites fg over bg using the integer path.
func Compose(fg, bg Color) Color {
	return ComposeQuick(fg, bg)
}

// ComposeQuick composites fg over bg with integer arithmetic only.
//
// A fully transparent bg or a fully opaque fg yields fg; a fully transparent
// fg yields bg.
func ComposeQuick(fg, bg Color) Color {
	if Opaque(fg) || FullyTransparent(bg) {
		return fg
	}
	if FullyTransparent(fg) {
		return bg
	}

	fa := int(A(fg))
	if Opaque(bg) {
		com := int8Mult(MaxChannel-fa, MaxChannel)
		return RGBA(
			uint8(int8Mult(fa, int(R(fg)))+int8Mult(com, int(R(bg)))),
			uint8(int8Mult(fa, int(G(fg)))+int8Mult(com, int(G(bg)))),
			uint8(int8Mult(fa, int(B(fg)))+int8Mult(com, int(B(bg)))),
			MaxChannel,
		)
	}

	// Both weights are scaled by 255 so a single rounded division remains.
	fw := fa * MaxChannel
	bw := (MaxChannel - fa) * int(A(bg))
	den := fw + bw
	channel := func(f, b uint8) uint8 {
		return clampByte((fw*int(f) + bw*int(b) + den/2) / den)
	}
	return RGBA(
		channel(R(fg), R(bg)),
		channel(G(fg), G(bg)),
		channel(B(fg), B(bg)),
		clampByte((den+MaxChannel/2)/MaxChannel),
	)
}

// ComposePrecise composites fg over bg in floating point with the
// non-premultiplied "over" operator:
//
//	out_a = fg_a + bg_a*(1-fg_a)
//	out_c = (fg_c*fg_a + bg_c*bg_a*(1-fg_a)) / out_a
func ComposePrecise(fg, bg Color) Color {
	if Opaque(fg) || FullyTransparent(bg) {
		return fg
	}
	if FullyTransparent(fg) {
		return bg
	}

	fa := float64(A(fg)) / MaxChannel
	ba := float64(A(bg)) / MaxChannel
	com := (1 - fa) * ba
	outA := fa + com
	channel := func(f, b uint8) uint8 {
		return clampByte(int(math.Round((float64(f)*fa + float64(b)*com) / outA)))
	}
	return RGBA(
		channel(R(fg), R(bg)),
		channel(G(fg), G(bg)),
		channel(B(fg), B(bg)),
		clampByte(int(math.Round(outA*MaxChannel))),
	)
}

// int8Mult approximates a*b/255 with rounding.
func int8Mult(a, b int) int {
	t := a*b + 0x80
	return ((t >> 8) + t) >> 8
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > MaxChannel {
		return MaxChannel
	}
	return uint8(v)
}

// DecomposeAlpha recovers the alpha with which the opaque color fg was
// composited over bg to produce result.
//
// If result equals bg the foreground was invisible and 0 is returned. If bg
// or result equals fg the answer is 255. Otherwise the channel where fg and bg
// differ the most is solved; ties go to red, then green, then blue. The other
// channels are not consulted, see DecomposeAlphaStrict.
func DecomposeAlpha(result, fg, bg Color) uint8 {
	if a, ok := decomposeTrivial(result, fg, bg); ok {
		return a
	}
	ch := separatingChannel(fg, bg)
	return decomposeChannel(channelOf(result, ch), channelOf(fg, ch), channelOf(bg, ch))
}

// DecomposeAlphaStrict is DecomposeAlpha but fails when any channel that
// separates fg from bg disagrees with the chosen one by more than tolerance.
func DecomposeAlphaStrict(result, fg, bg Color, tolerance uint8) (uint8, error) {
	if a, ok := decomposeTrivial(result, fg, bg); ok {
		return a, nil
	}
	best := separatingChannel(fg, bg)
	alpha := decomposeChannel(channelOf(result, best), channelOf(fg, best), channelOf(bg, best))
	for ch := 0; ch < 3; ch++ {
		f, b := channelOf(fg, ch), channelOf(bg, ch)
		if f == b {
			if channelOf(result, ch) != b {
				return alpha, &ArgumentError{
					Value:  ToHex(result),
					Reason: fmt.Sprintf("channel %d differs where foreground and background agree", ch),
				}
			}
			continue
		}
		other := decomposeChannel(channelOf(result, ch), f, b)
		if absInt(int(other)-int(alpha)) > int(tolerance) {
			return alpha, &ArgumentError{
				Value:  ToHex(result),
				Reason: fmt.Sprintf("alpha of channel %d (%d) disagrees with %d", ch, other, alpha),
			}
		}
	}
	return alpha, nil
}

// DecomposeColor returns fg carrying the alpha that composes it over bg into
// result. When no consistent alpha exists within tolerance, fg is returned
// fully transparent.
func DecomposeColor(result, fg, bg Color, tolerance uint8) Color {
	alpha, err := DecomposeAlphaStrict(result, fg, bg, tolerance)
	if err != nil {
		return WithAlpha(fg, 0)
	}
	return WithAlpha(fg, alpha)
}

func decomposeTrivial(result, fg, bg Color) (uint8, bool) {
	const rgbMask = 0xffffff00
	switch {
	case result&rgbMask == bg&rgbMask:
		return 0, true
	case bg&rgbMask == fg&rgbMask, result&rgbMask == fg&rgbMask:
		return MaxChannel, true
	}
	return 0, false
}

// separatingChannel returns 0, 1 or 2 for the channel with the largest
// difference between fg and bg.
func separatingChannel(fg, bg Color) int {
	best, bestDiff := 0, -1
	for ch := 0; ch < 3; ch++ {
		d := absInt(int(channelOf(fg, ch)) - int(channelOf(bg, ch)))
		if d > bestDiff {
			best, bestDiff = ch, d
		}
	}
	return best
}

func decomposeChannel(res, fg, bg uint8) uint8 {
	switch {
	case res == bg:
		return 0
	case res == fg, fg == bg:
		return MaxChannel
	}
	v := math.Round(float64(int(bg)-int(res)) / float64(int(bg)-int(fg)) * MaxChannel)
	return clampByte(int(v))
}

func channelOf(c Color, ch int) uint8 {
	return uint8(c >> uint(24-8*ch))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
