package color

import "math"

// Round rounds half away from zero. The value is first snapped to 1e-9 so a
// product such as 0.1*255 that lands on 25.499999999999996 rounds like 25.5.
func Round(x float64) int {
	return int(math.Round(math.Round(x*1e9) / 1e9))
}

// roundTo rounds x to the given number of decimal places, half away from zero.
func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return float64(Round(x*p)) / p
}

// RGBToHSL converts 0-255 channels to hue in [0,360) and saturation and
// lightness in [0,100].
func RGBToHSL(red, green, blue int) (hue, saturation, lightness int) {
	r := clampUnit(float64(red) / maxChannel)
	g := clampUnit(float64(green) / maxChannel)
	b := clampUnit(float64(blue) / maxChannel)

	maxv := math.Max(r, math.Max(g, b))
	minv := math.Min(r, math.Min(g, b))
	l := (maxv + minv) / 2

	// Achromatic
	if maxv == minv {
		return 0, 0, Round(l * 100)
	}

	delta := maxv - minv
	var s float64
	if l > 0.5 {
		s = delta / (2 - maxv - minv)
	} else {
		s = delta / (maxv + minv)
	}

	var h float64
	switch maxv {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	// A red-dominant hue just below 6 rounds up to 360.
	return NormalizeHue(Round(h / 6 * fullTurn)), Round(s * 100), Round(l * 100)
}

// HSLToRGB builds a color from hue in degrees (any integer, normalized) and
// saturation and lightness in [0,100].
func HSLToRGB(hue, saturation, lightness int, alpha float64) (*Color, error) {
	if _, err := validateChannelPercent(saturation, "saturation"); err != nil {
		return nil, err
	}
	if _, err := validateChannelPercent(lightness, "lightness"); err != nil {
		return nil, err
	}

	h := float64(NormalizeHue(hue)) / fullTurn
	s := float64(saturation) / maxPercent
	l := float64(lightness) / maxPercent

	v := l + s - l*s
	if l <= 0.5 {
		v = l * (1 + s)
	}

	// Gray, black or white
	if v == 0 {
		c := Round(l * maxChannel)
		return FromRGBA(c, c, c, alpha)
	}

	h *= 6
	minv := 2*l - v
	sector := int(math.Floor(h))
	frac := v * ((v - minv) / v) * (h - float64(sector))

	var r, g, b float64
	switch sector % 6 {
	case 1:
		r, g, b = v-frac, v, minv
	case 2:
		r, g, b = minv, v, minv+frac
	case 3:
		r, g, b = minv, v-frac, v
	case 4:
		r, g, b = minv+frac, minv, v
	case 5:
		r, g, b = v, minv, v-frac
	default:
		r, g, b = v, minv+frac, minv
	}

	return FromRGBA(Round(r*maxChannel), Round(g*maxChannel), Round(b*maxChannel), alpha)
}

func clampUnit(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
