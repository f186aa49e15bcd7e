package color

import "math"

// FromHSV converts a hue in degrees, a saturation and a value in [0, 1] to a
// Color. The hue wraps modulo 360.
func FromHSV(h, s, v float64, alpha uint8) (Color, error) {
	if err := checkUnit("saturation", s); err != nil {
		return 0, err
	}
	if err := checkUnit("value", v); err != nil {
		return 0, err
	}
	h, err := wrapHue(h)
	if err != nil {
		return 0, err
	}

	chroma := v * s
	r, g, b := cylindricalToCubic(h, chroma)
	m := v - chroma
	return RGBA(unitToByte(r+m), unitToByte(g+m), unitToByte(b+m), alpha), nil
}

// FromHSL converts a hue in degrees, a saturation and a lightness in [0, 1] to
// a Color. The hue wraps modulo 360.
func FromHSL(h, s, l float64, alpha uint8) (Color, error) {
	if err := checkUnit("saturation", s); err != nil {
		return 0, err
	}
	if err := checkUnit("lightness", l); err != nil {
		return 0, err
	}
	h, err := wrapHue(h)
	if err != nil {
		return 0, err
	}

	chroma := (1 - math.Abs(2*l-1)) * s
	r, g, b := cylindricalToCubic(h, chroma)
	m := l - chroma/2
	return RGBA(unitToByte(r+m), unitToByte(g+m), unitToByte(b+m), alpha), nil
}

// ToHSV returns the hue in [0, 360), saturation and value of c.
// The hue of a gray is 0.
func ToHSV(c Color) (h, s, v float64) {
	h, chroma, max, _ := hueAndChroma(c)
	if chroma != 0 {
		s = chroma / max
	}
	return h, s, max
}

// ToHSVA is ToHSV followed by the raw alpha byte.
func ToHSVA(c Color) (h, s, v float64, a uint8) {
	h, s, v = ToHSV(c)
	return h, s, v, A(c)
}

// ToHSL returns the hue in [0, 360), saturation and lightness of c.
// The hue of a gray is 0.
func ToHSL(c Color) (h, s, l float64) {
	h, chroma, max, min := hueAndChroma(c)
	l = (max + min) / 2
	if chroma != 0 {
		s = chroma / (1 - math.Abs(2*l-1))
	}
	return h, s, l
}

// ToHSLA is ToHSL followed by the raw alpha byte.
func ToHSLA(c Color) (h, s, l float64, a uint8) {
	h, s, l = ToHSL(c)
	return h, s, l, A(c)
}

func hueAndChroma(c Color) (hue, chroma, max, min float64) {
	r := float64(R(c)) / MaxChannel
	g := float64(G(c)) / MaxChannel
	b := float64(B(c)) / MaxChannel
	max = math.Max(r, math.Max(g, b))
	min = math.Min(r, math.Min(g, b))
	chroma = max - min
	if chroma == 0 {
		return 0, 0, max, min
	}

	var prime float64
	switch max {
	case r:
		prime = math.Mod((g-b)/chroma, 6)
	case g:
		prime = (b-r)/chroma + 2
	default:
		prime = (r-g)/chroma + 4
	}
	hue = 60 * prime
	if hue < 0 {
		hue += 360
	}
	return hue, chroma, max, min
}

// cylindricalToCubic maps a hue sector to the (r, g, b) components before the
// lightness offset is added.
func cylindricalToCubic(h, chroma float64) (r, g, b float64) {
	prime := h / 60
	x := chroma * (1 - math.Abs(math.Mod(prime, 2)-1))
	switch {
	case prime < 1:
		return chroma, x, 0
	case prime < 2:
		return x, chroma, 0
	case prime < 3:
		return 0, chroma, x
	case prime < 4:
		return 0, x, chroma
	case prime < 5:
		return x, 0, chroma
	}
	return chroma, 0, x
}

func wrapHue(h float64) (float64, error) {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, &ArgumentError{Value: h, Reason: "hue must be finite"}
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h, nil
}

func checkUnit(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return &ArgumentError{Value: v, Reason: name + " must be between 0 and 1"}
	}
	return nil
}

func unitToByte(v float64) uint8 {
	v = math.Round(v * MaxChannel)
	if v < 0 {
		return 0
	}
	if v > MaxChannel {
		return MaxChannel
	}
	return uint8(v)
}
