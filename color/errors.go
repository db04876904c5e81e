package color

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedColor is matched by every error returned from this package.
var ErrMalformedColor = errors.New("malformed color")

// Cause identifies why a color could not be built or rendered.
type Cause int

const (
	CauseChannelRange Cause = iota + 1
	CauseAlphaRange
	CausePercentRange
	CauseUnsupported
	CauseSyntax
	CauseHexLength
	CauseUnknownFormat
)

func (c Cause) String() string {
	switch c {
	case CauseChannelRange:
		return "channel out of range"
	case CauseAlphaRange:
		return "alpha out of range"
	case CausePercentRange:
		return "percent out of range"
	case CauseUnsupported:
		return "unsupported color string"
	case CauseSyntax:
		return "syntax error"
	case CauseHexLength:
		return "unknown hex format"
	case CauseUnknownFormat:
		return "unknown format"
	default:
		return "unknown cause"
	}
}

// MalformedColorError describes a rejected channel value, CSS string or format name.
// Only the fields relevant to Cause are set.
type MalformedColorError struct {
	Cause   Cause
	Channel string  // channel name for range failures
	Value   float64 // offending numeric value for range failures
	Input   string  // offending CSS text or format name
	Model   string  // "RGB" or "HSL" for syntax errors
}

func (e *MalformedColorError) Error() string {
	switch e.Cause {
	case CauseChannelRange:
		return fmt.Sprintf("color channel %s value %s is out of the supported range", e.Channel, formatValue(e.Value))
	case CauseAlphaRange:
		return fmt.Sprintf("color alpha channel value %s is out of the supported range", formatValue(e.Value))
	case CausePercentRange:
		return fmt.Sprintf("percent value %s is out of the supported range", formatValue(e.Value))
	case CauseUnsupported:
		return fmt.Sprintf("color string %q is invalid or not supported", e.Input)
	case CauseSyntax:
		return fmt.Sprintf("color string %q is invalid for %s color", e.Input, e.Model)
	case CauseHexLength:
		return fmt.Sprintf("hexadecimal color %q has an unknown format", e.Input)
	case CauseUnknownFormat:
		return fmt.Sprintf("format %q is unknown", e.Input)
	default:
		return ErrMalformedColor.Error()
	}
}

// Is makes errors.Is(err, ErrMalformedColor) hold for every MalformedColorError.
func (e *MalformedColorError) Is(target error) bool {
	return target == ErrMalformedColor
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func channelRangeError(name string, v int) error {
	return &MalformedColorError{Cause: CauseChannelRange, Channel: name, Value: float64(v)}
}

func alphaRangeError(a float64) error {
	return &MalformedColorError{Cause: CauseAlphaRange, Channel: "alpha", Value: a}
}

func unsupportedError(input string) error {
	return &MalformedColorError{Cause: CauseUnsupported, Input: input}
}

func syntaxError(input, model string) error {
	return &MalformedColorError{Cause: CauseSyntax, Input: input, Model: model}
}
