// Package info computes display metrics for colors: perceived brightness,
// WCAG 2.0 relative luminance and contrast ratios.
package info

import (
	"math"

	"github.com/MeKo-Tech/csscolor/color"
)

// Level is a WCAG 2.0 conformance level for a foreground/background pair.
type Level string

const (
	LevelAAA    Level = "AAA"
	LevelAA     Level = "AA"
	LevelFailed Level = ""
)

// FontSize selects the contrast thresholds that apply to text.
type FontSize string

const (
	FontNormal FontSize = "normal"
	FontLarge  FontSize = "large"
)

// IsLight reports whether the YIQ brightness is at least 128.
// See http://24ways.org/2010/calculating-color-contrast
func IsLight(c *color.Color) bool {
	yiq := (299*c.Red() + 587*c.Green() + 114*c.Blue()) / 1000
	return yiq >= 128
}

// IsDark is the negation of IsLight.
func IsDark(c *color.Color) bool {
	return !IsLight(c)
}

// Luminosity returns the relative luminance rounded to two decimals.
// See http://www.w3.org/TR/WCAG20/#relativeluminancedef
func Luminosity(c *color.Color) float64 {
	linear := func(channel int) float64 {
		v := float64(channel) / 255
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}

	l := 0.2126*linear(c.Red()) + 0.7152*linear(c.Green()) + 0.0722*linear(c.Blue())
	return math.Round(l*100) / 100
}

// Contrast returns the contrast ratio between two colors, always >= 1.
func Contrast(a, b *color.Color) float64 {
	la, lb := Luminosity(a), Luminosity(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// GradeContrast grades the contrast between two colors for the given text size.
// A size other than FontNormal or FontLarge gets AA from the large-text
// threshold but never the large-text AAA.
// See https://www.w3.org/TR/UNDERSTANDING-WCAG20/visual-audio-contrast-contrast.html
func GradeContrast(a, b *color.Color, size FontSize) Level {
	contrast := Contrast(a, b)
	switch {
	case contrast >= 7:
		return LevelAAA
	case contrast >= 4.5:
		if size == FontLarge {
			return LevelAAA
		}
		return LevelAA
	case size != FontNormal && contrast >= 3:
		return LevelAA
	default:
		return LevelFailed
	}
}
