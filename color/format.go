package color

import (
	"fmt"
	"strconv"
)

// Format selects the RGB notation produced by AsCSSRGB.
type Format string

const (
	FormatDecimal Format = "rgb"
	FormatHex     Format = "hex"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatDecimal, FormatHex:
		return f, nil
	default:
		return "", &MalformedColorError{Cause: CauseUnknownFormat, Input: name}
	}
}

// AsCSSRGB renders rgb()/rgba() or #rrggbb/#rrggbbaa. The alpha component is
// omitted when the color is fully opaque.
func (c *Color) AsCSSRGB(format Format) (string, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return "", err
	}

	if c.opaque() {
		if format == FormatDecimal {
			return fmt.Sprintf("rgb(%d,%d,%d)", c.red, c.green, c.blue), nil
		}
		return fmt.Sprintf("#%02x%02x%02x", c.red, c.green, c.blue), nil
	}

	if format == FormatHex {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.red, c.green, c.blue, Round(c.alpha*maxChannel)), nil
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.red, c.green, c.blue, formatAlpha(c.alpha)), nil
}

// AsCSSHSL renders hsl() or hsla().
func (c *Color) AsCSSHSL() string {
	if c.opaque() {
		return fmt.Sprintf("hsl(%d,%d%%,%d%%)", c.hue, c.saturation, c.lightness)
	}
	return fmt.Sprintf("hsla(%d,%d%%,%d%%,%s)", c.hue, c.saturation, c.lightness, formatAlpha(c.alpha))
}

// String returns the decimal RGB notation.
func (c *Color) String() string {
	s, _ := c.AsCSSRGB(FormatDecimal)
	return s
}

// MarshalText encodes the color in decimal RGB notation.
func (c *Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) opaque() bool {
	return c.alpha == 1
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(roundTo(a, 2), 'f', -1, 64)
}
