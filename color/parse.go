package color

import (
	"math"
	"strconv"
	"strings"
)

// Input is one of the ways a color can be described: RGBAInput, RGBInput,
// HexInput or NamedInput. New resolves it to a Color.
type Input interface {
	resolve() (Color, error)
}

// RGBAInput describes a color by its four channels.
type RGBAInput struct {
	R, G, B, A uint8
}

// RGBInput describes an opaque color by its three color channels.
type RGBInput struct {
	R, G, B uint8
}

// HexInput describes a color in hexadecimal notation. When HasOpacity is set,
// Opacity replaces whatever alpha the notation yields.
type HexInput struct {
	Value      string
	Opacity    uint8
	HasOpacity bool
}

// NamedInput describes a color by keyword, optionally suffixed with
// "@ opacity". When HasOpacity is set, Opacity replaces the suffix.
type NamedInput struct {
	Value      string
	Opacity    uint8
	HasOpacity bool
}

func (in RGBAInput) resolve() (Color, error) { return RGBA(in.R, in.G, in.B, in.A), nil }

func (in RGBInput) resolve() (Color, error) { return RGB(in.R, in.G, in.B), nil }

func (in HexInput) resolve() (Color, error) {
	c, err := FromHex(in.Value)
	if err != nil {
		return 0, err
	}
	if in.HasOpacity {
		c = WithAlpha(c, in.Opacity)
	}
	return c, nil
}

func (in NamedInput) resolve() (Color, error) {
	if in.HasOpacity {
		return namedColor(in.Value, in.Opacity, true)
	}
	return namedColor(in.Value, MaxChannel, false)
}

// New resolves in to a Color.
func New(in Input) (Color, error) {
	if in == nil {
		return 0, &ArgumentError{Value: in, Reason: "unknown color"}
	}
	return in.resolve()
}

// Parse converts v to a Color. Integers are taken as packed colors and
// returned unchanged. Strings are tried in order as a decimal number, hex
// notation and a color keyword, so a string of decimal digits is always a
// number; write "#123" for the hex color. Anything else is an *ArgumentError.
func Parse(v any) (Color, error) {
	switch x := v.(type) {
	case Color:
		return x, nil
	case uint32:
		return Color(x), nil
	case int:
		return fromInt(int64(x))
	case int64:
		return fromInt(x)
	case uint:
		return fromInt(int64(x))
	case uint64:
		if x > math.MaxUint32 {
			return 0, &ArgumentError{Value: v, Reason: "color out of range"}
		}
		return Color(x), nil
	case Input:
		return New(x)
	case string:
		return parseString(x)
	case []byte:
		return parseString(string(x))
	}
	return 0, &ArgumentError{Value: v, Reason: "unknown color"}
}

func fromInt(x int64) (Color, error) {
	if x < 0 || x > math.MaxUint32 {
		return 0, &ArgumentError{Value: x, Reason: "color out of range"}
	}
	return Color(x), nil
}

func parseString(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return Color(n), nil
	}
	if IsHex(s) {
		return FromHex(s)
	}
	if IsNamed(s) {
		return Named(s)
	}
	return 0, &ArgumentError{Value: s, Reason: "unknown color"}
}

// MustParse is like Parse but panics on error. It is intended for package
// level variables and tests.
func MustParse(v any) Color {
	c, err := Parse(v)
	if err != nil {
		panic(err)
	}
	return c
}
