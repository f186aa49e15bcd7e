package color

import (
	"fmt"
	"strings"
)

// FromHex parses a hexadecimal color. Accepted forms, each with an optional
// "#" or "0x" prefix, are rgb, rgba, rrggbb and rrggbbaa. The short forms
// duplicate every nibble. Forms without alpha are fully opaque.
func FromHex(s string) (Color, error) {
	return FromHexAlpha(s, MaxChannel)
}

// FromHexAlpha is like FromHex but uses alpha for the forms that do not encode
// an alpha channel.
func FromHexAlpha(s string, alpha uint8) (Color, error) {
	c, hasAlpha, err := parseHex(s)
	if err != nil {
		return 0, err
	}
	if !hasAlpha {
		c = WithAlpha(c, alpha)
	}
	return c, nil
}

// IsHex reports whether s is in one of the notations FromHex accepts.
func IsHex(s string) bool {
	_, _, err := parseHex(s)
	return err == nil
}

func parseHex(s string) (Color, bool, error) {
	digits := stripHexPrefix(s)
	var v uint32
	for i := 0; i < len(digits); i++ {
		n, ok := hexNibble(digits[i])
		if !ok {
			return 0, false, &FormatError{Input: s, Reason: fmt.Sprintf("invalid hex digit %q", digits[i])}
		}
		v = v<<4 | uint32(n)
	}

	switch len(digits) {
	case 3:
		return Color(expandNibbles(v<<4|0xf) &^ 0xff), false, nil
	case 4:
		return Color(expandNibbles(v)), true, nil
	case 6:
		return Color(v << 8), false, nil
	case 8:
		return Color(v), true, nil
	}
	return 0, false, &FormatError{Input: s, Reason: "expected 3, 4, 6 or 8 hex digits"}
}

// expandNibbles turns 0xRGBA into 0xRRGGBBAA.
func expandNibbles(v uint32) uint32 {
	var out uint32
	for shift := 12; shift >= 0; shift -= 4 {
		n := (v >> uint(shift)) & 0xf
		out = out<<8 | n<<4 | n
	}
	return out
}

func stripHexPrefix(s string) string {
	switch {
	case strings.HasPrefix(s, "#"):
		return s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return s[2:]
	}
	return s
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ToHex returns c as "#rrggbbaa".
func ToHex(c Color) string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// ToHexRGB returns c as "#rrggbb", dropping alpha.
func ToHexRGB(c Color) string {
	return fmt.Sprintf("#%06x", uint32(c)>>8)
}
