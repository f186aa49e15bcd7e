package color

import "fmt"

// A FormatError reports a malformed textual color.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("color: invalid format %q: %s", e.Input, e.Reason)
}

// An ArgumentError reports an unknown color name or a numeric argument out of
// range.
type ArgumentError struct {
	Value  any
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("color: %s: %v", e.Reason, e.Value)
}
