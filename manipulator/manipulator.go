// Package manipulator derives new colors from existing ones. Every function
// is pure and works only through the public color.Color API.
package manipulator

import (
	"math"
	"sync"

	"github.com/MeKo-Tech/csscolor/color"
)

var (
	white = sync.OnceValue(func() *color.Color { return mustRGB(255, 255, 255) })
	black = sync.OnceValue(func() *color.Color { return mustRGB(0, 0, 0) })
)

func mustRGB(r, g, b int) *color.Color {
	c, err := color.FromRGB(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// Saturate raises saturation by percent of its current value.
func Saturate(c *color.Color, percent int) (*color.Color, error) {
	if _, err := color.ValidatePercent(percent); err != nil {
		return nil, err
	}
	s := float64(c.Saturation()) + float64(c.Saturation()*percent)/100
	return c.WithSaturation(clampPercent(float64(color.Round(s))))
}

// Desaturate lowers saturation by percent of its current value.
func Desaturate(c *color.Color, percent int) (*color.Color, error) {
	if _, err := color.ValidatePercent(percent); err != nil {
		return nil, err
	}
	s := float64(c.Saturation()) - float64(c.Saturation()*percent)/100
	return c.WithSaturation(clampPercent(float64(color.Round(s))))
}

// Lighten adds percent points to lightness.
func Lighten(c *color.Color, percent int) (*color.Color, error) {
	if _, err := color.ValidatePercent(percent); err != nil {
		return nil, err
	}
	return c.WithLightness(clampPercent(float64(c.Lightness() + percent)))
}

// Darken subtracts percent points from lightness.
func Darken(c *color.Color, percent int) (*color.Color, error) {
	if _, err := color.ValidatePercent(percent); err != nil {
		return nil, err
	}
	return c.WithLightness(clampPercent(float64(c.Lightness() - percent)))
}

// Spin rotates the hue by degrees; any integer is accepted.
func Spin(c *color.Color, degrees int) (*color.Color, error) {
	return c.WithHue((c.Hue() + degrees) % 360)
}

// FadeIn raises alpha by percent of its current value.
func FadeIn(c *color.Color, percent int) (*color.Color, error) {
	if _, err := color.ValidatePercent(percent); err != nil {
		return nil, err
	}
	return c.WithAlpha(math.Min(1, c.Alpha()+c.Alpha()*float64(percent)/100))
}

// FadeOut lowers alpha by percent of its current value.
func FadeOut(c *color.Color, percent int) (*color.Color, error) {
	if _, err := color.ValidatePercent(percent); err != nil {
		return nil, err
	}
	return c.WithAlpha(math.Max(0, c.Alpha()-c.Alpha()*float64(percent)/100))
}

// Mix blends a and b the way Sass does, taking alpha into account. percent is
// the weight given to b: 0 yields a and 100 yields b.
func Mix(a, b *color.Color, percent int) (*color.Color, error) {
	if _, err := color.ValidatePercent(percent); err != nil {
		return nil, err
	}

	p := float64(percent) / 100
	weight := 2*p - 1
	delta := a.Alpha() - b.Alpha()

	adjusted := weight
	if weight*delta != -1 {
		adjusted = (weight + delta) / (1 + weight*delta)
	}

	weightB := (adjusted + 1) / 2
	weightA := 1 - weightB

	blend := func(x, y int) int {
		return color.Round(float64(x)*weightA + float64(y)*weightB)
	}
	alpha := a.Alpha()*p + b.Alpha()*(1-p)

	return color.FromRGBA(
		blend(a.Red(), b.Red()),
		blend(a.Green(), b.Green()),
		blend(a.Blue(), b.Blue()),
		math.Max(0, math.Min(1, alpha)),
	)
}

// Tint mixes c with white.
func Tint(c *color.Color, percent int) (*color.Color, error) {
	return Mix(c, white(), percent)
}

// Shade mixes c with black.
func Shade(c *color.Color, percent int) (*color.Color, error) {
	return Mix(c, black(), percent)
}

// Grayscale drops saturation to zero.
func Grayscale(c *color.Color) (*color.Color, error) {
	return c.WithSaturation(0)
}

// Invert replaces every RGB channel with its complement and keeps alpha.
func Invert(c *color.Color) (*color.Color, error) {
	return color.FromRGBA(255-c.Red(), 255-c.Green(), 255-c.Blue(), c.Alpha())
}

// Brighten shifts all RGB channels up by percent of the full channel range.
func Brighten(c *color.Color, percent int) (*color.Color, error) {
	if _, err := color.ValidatePercent(percent); err != nil {
		return nil, err
	}
	delta := color.Round(255 * float64(percent) / 100)
	return color.FromRGBA(
		clampChannel(c.Red()+delta),
		clampChannel(c.Green()+delta),
		clampChannel(c.Blue()+delta),
		c.Alpha(),
	)
}

func clampPercent(x float64) int {
	return int(math.Max(0, math.Min(100, x)))
}

func clampChannel(x int) int {
	return max(0, min(255, x))
}
