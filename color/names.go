package color

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

var nameStripper = strings.NewReplacer(" ", "", "_", "", "-", "")

// Named looks up a CSS color keyword such as "spring green", "SpringGreen" or
// "SPRING_GREEN". The name may end in "@ opacity", with opacity in [0, 1],
// which sets the alpha channel; otherwise the color is opaque.
func Named(name string) (Color, error) {
	return namedColor(name, MaxChannel, false)
}

// NamedAlpha is like Named but always uses alpha, ignoring any "@ opacity"
// suffix.
func NamedAlpha(name string, alpha uint8) (Color, error) {
	return namedColor(name, alpha, true)
}

// namedColor resolves name. An explicit alpha takes precedence over an
// "@ opacity" suffix.
func namedColor(name string, alpha uint8, explicit bool) (Color, error) {
	base, opacity, hasOpacity := strings.Cut(name, "@")
	if hasOpacity && !explicit {
		a, err := parseOpacity(strings.TrimSpace(opacity))
		if err != nil {
			return 0, err
		}
		alpha = a
	}

	rgba, ok := colornames.Map[nameKey(base)]
	if !ok {
		return 0, &ArgumentError{Value: name, Reason: "unknown color"}
	}
	return RGBA(rgba.R, rgba.G, rgba.B, alpha), nil
}

// IsNamed reports whether name, without any opacity suffix, is a known color
// keyword.
func IsNamed(name string) bool {
	base, _, _ := strings.Cut(name, "@")
	_, ok := colornames.Map[nameKey(base)]
	return ok
}

// nameKey folds case and drops separators. A Caser holds state, so a fresh
// one is made per call.
func nameKey(name string) string {
	return nameStripper.Replace(cases.Fold().String(strings.TrimSpace(name)))
}

func parseOpacity(s string) (uint8, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ArgumentError{Value: s, Reason: "invalid opacity"}
	}
	if math.IsNaN(f) || f < 0 || f > 1 {
		return 0, &ArgumentError{Value: s, Reason: "opacity must be between 0 and 1"}
	}
	return uint8(math.Round(f * MaxChannel)), nil
}
