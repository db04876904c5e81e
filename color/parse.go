package color

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rgbDecimalPattern = regexp.MustCompile(`(?i)^(rgba?)\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*([0-1]\.\d+)\s*)?\)$`)
	rgbHexPattern     = regexp.MustCompile(`(?i)^#([0-9a-f]+)$`)
	hslPattern        = regexp.MustCompile(`(?i)^(hsla?)\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*(?:,\s*([0-1]\.\d+)\s*)?\)$`)
)

type cssSyntax struct {
	pattern *regexp.Regexp
	build   func(input string, m []string) (*Color, error)
}

// Tried in order; the first matching pattern decides the outcome.
var cssSyntaxes = []cssSyntax{
	{rgbDecimalPattern, fromCSSRGBDecimal},
	{rgbHexPattern, fromCSSRGBHex},
	{hslPattern, fromCSSHSL},
}

// FromCSS parses rgb(), rgba(), #hex, hsl() and hsla() notations.
// Surrounding whitespace and whitespace around commas and parentheses is ignored.
func FromCSS(text string) (*Color, error) {
	input := strings.TrimSpace(text)
	for _, syntax := range cssSyntaxes {
		if m := syntax.pattern.FindStringSubmatch(input); m != nil {
			return syntax.build(input, m)
		}
	}
	return nil, unsupportedError(input)
}

func fromCSSRGBDecimal(input string, m []string) (*Color, error) {
	alpha, err := keywordAlpha(input, m[1], "rgb", m[5], "RGB")
	if err != nil {
		return nil, err
	}
	return FromRGBA(atoi(m[2]), atoi(m[3]), atoi(m[4]), alpha)
}

func fromCSSHSL(input string, m []string) (*Color, error) {
	alpha, err := keywordAlpha(input, m[1], "hsl", m[5], "HSL")
	if err != nil {
		return nil, err
	}
	return HSLToRGB(atoi(m[2]), atoi(m[3]), atoi(m[4]), alpha)
}

// keywordAlpha enforces that the short keyword (rgb, hsl) carries no alpha
// and the long one (rgba, hsla) always does.
func keywordAlpha(input, keyword, short, alpha, model string) (float64, error) {
	if strings.EqualFold(keyword, short) {
		if alpha != "" {
			return 0, syntaxError(input, model)
		}
		return 1, nil
	}
	if alpha == "" {
		return 0, syntaxError(input, model)
	}
	return strconv.ParseFloat(alpha, 64)
}

func fromCSSRGBHex(input string, m []string) (*Color, error) {
	hex := strings.ToLower(m[1])

	var red, green, blue string
	alpha := "ff"
	switch len(hex) {
	case 8:
		red, green, blue, alpha = hex[0:2], hex[2:4], hex[4:6], hex[6:8]
	case 6:
		red, green, blue = hex[0:2], hex[2:4], hex[4:6]
	case 4:
		red, green, blue, alpha = double(hex[0]), double(hex[1]), double(hex[2]), double(hex[3])
	case 3:
		red, green, blue = double(hex[0]), double(hex[1]), double(hex[2])
	default:
		return nil, &MalformedColorError{Cause: CauseHexLength, Input: input}
	}

	a := float64(hexByte(alpha)) / maxChannel
	return FromRGBA(hexByte(red), hexByte(green), hexByte(blue), a)
}

func double(digit byte) string {
	return string([]byte{digit, digit})
}

// hexByte decodes two hex digits already checked by rgbHexPattern.
func hexByte(s string) int {
	v, _ := strconv.ParseUint(s, 16, 8)
	return int(v)
}

// atoi decodes a digit run already checked by a pattern. Values too large for
// an int saturate so range validation still rejects them.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return math.MaxInt
	}
	return n
}
