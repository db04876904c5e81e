// Package color provides an immutable sRGB color value that keeps its RGB and
// HSL channels consistent and reads and writes the CSS rgb(), #hex and hsl()
// notations.
//
// A *Color is never modified after construction. The With* methods return the
// receiver itself when the requested value is already set and a new *Color
// otherwise, so values can be shared freely between goroutines.
package color

// Color stores RGB and alpha as given; HSL is always derived from RGB.
type Color struct {
	red, green, blue           int
	hue, saturation, lightness int
	alpha                      float64
}

// FromRGB builds an opaque color from 0-255 channels.
func FromRGB(red, green, blue int) (*Color, error) {
	return FromRGBA(red, green, blue, 1)
}

// FromRGBA builds a color from 0-255 channels and an alpha in [0,1].
func FromRGBA(red, green, blue int, alpha float64) (*Color, error) {
	var err error
	c := &Color{}
	if c.red, err = validateChannel(red, "red"); err != nil {
		return nil, err
	}
	if c.green, err = validateChannel(green, "green"); err != nil {
		return nil, err
	}
	if c.blue, err = validateChannel(blue, "blue"); err != nil {
		return nil, err
	}
	if c.alpha, err = validateAlpha(alpha); err != nil {
		return nil, err
	}
	c.hue, c.saturation, c.lightness = RGBToHSL(c.red, c.green, c.blue)
	return c, nil
}

// FromHSL builds an opaque color. Hue may be any integer and is normalized
// into [0,360); saturation and lightness must be in [0,100].
func FromHSL(hue, saturation, lightness int) (*Color, error) {
	return HSLToRGB(hue, saturation, lightness, 1)
}

// FromHSLA is FromHSL with an explicit alpha in [0,1].
func FromHSLA(hue, saturation, lightness int, alpha float64) (*Color, error) {
	return HSLToRGB(hue, saturation, lightness, alpha)
}

// Red returns the red channel in [0,255].
func (c *Color) Red() int { return c.red }

// Green returns the green channel in [0,255].
func (c *Color) Green() int { return c.green }

// Blue returns the blue channel in [0,255].
func (c *Color) Blue() int { return c.blue }

// Hue returns the hue in degrees, [0,360).
func (c *Color) Hue() int { return c.hue }

// Saturation returns the HSL saturation in percent.
func (c *Color) Saturation() int { return c.saturation }

// Lightness returns the HSL lightness in percent.
func (c *Color) Lightness() int { return c.lightness }

// Alpha returns the opacity in [0,1], exactly as given.
func (c *Color) Alpha() float64 { return c.alpha }

// Equal reports whether both colors render to the same decimal RGB notation,
// so alphas that agree to two decimals compare equal.
func (c *Color) Equal(other *Color) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.String() == other.String()
}

// WithRed returns a color with the red channel replaced. HSL is derived again
// from the new RGB triple.
func (c *Color) WithRed(red int) (*Color, error) {
	if _, err := validateChannel(red, "red"); err != nil {
		return nil, err
	}
	if red == c.red {
		return c, nil
	}
	return FromRGBA(red, c.green, c.blue, c.alpha)
}

// WithGreen returns a color with the green channel replaced.
func (c *Color) WithGreen(green int) (*Color, error) {
	if _, err := validateChannel(green, "green"); err != nil {
		return nil, err
	}
	if green == c.green {
		return c, nil
	}
	return FromRGBA(c.red, green, c.blue, c.alpha)
}

// WithBlue returns a color with the blue channel replaced.
func (c *Color) WithBlue(blue int) (*Color, error) {
	if _, err := validateChannel(blue, "blue"); err != nil {
		return nil, err
	}
	if blue == c.blue {
		return c, nil
	}
	return FromRGBA(c.red, c.green, blue, c.alpha)
}

// WithHue returns a color rebuilt from the normalized hue and the current
// saturation, lightness and alpha.
func (c *Color) WithHue(hue int) (*Color, error) {
	hue = NormalizeHue(hue)
	if hue == c.hue {
		return c, nil
	}
	return HSLToRGB(hue, c.saturation, c.lightness, c.alpha)
}

// WithSaturation returns a color rebuilt from the given saturation.
func (c *Color) WithSaturation(saturation int) (*Color, error) {
	if _, err := validateChannelPercent(saturation, "saturation"); err != nil {
		return nil, err
	}
	if saturation == c.saturation {
		return c, nil
	}
	return HSLToRGB(c.hue, saturation, c.lightness, c.alpha)
}

// WithLightness returns a color rebuilt from the given lightness.
func (c *Color) WithLightness(lightness int) (*Color, error) {
	if _, err := validateChannelPercent(lightness, "lightness"); err != nil {
		return nil, err
	}
	if lightness == c.lightness {
		return c, nil
	}
	return HSLToRGB(c.hue, c.saturation, lightness, c.alpha)
}

// WithAlpha returns a copy with only the alpha replaced.
func (c *Color) WithAlpha(alpha float64) (*Color, error) {
	if _, err := validateAlpha(alpha); err != nil {
		return nil, err
	}
	if alpha == c.alpha {
		return c, nil
	}
	clone := *c
	clone.alpha = alpha
	return &clone, nil
}
