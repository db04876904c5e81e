package swatch

import (
	stdcolor "image/color"
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/MeKo-Tech/csscolor/color"
	"github.com/MeKo-Tech/csscolor/manipulator"
)

const (
	grainLevels    = 4  // Steps on each side of the base color
	grainMaxPoints = 16 // Lightness points at full strength
)

// grainField samples Perlin noise in canvas coordinates.
type grainField struct {
	noise *perlin.Perlin
	scale float64
}

func newGrainField(seed int64, scale float64) *grainField {
	return &grainField{
		noise: perlin.NewPerlin(2.0, 2.0, 3, seed),
		scale: math.Max(scale, 1),
	}
}

// level maps the noise at (x, y) to an index into a grain LUT.
func (g *grainField) level(x, y int) int {
	v := g.noise.Noise2D(float64(x)/g.scale, float64(y)/g.scale)
	v = math.Max(-1, math.Min(1, v))
	return int(math.Round(v*grainLevels)) + grainLevels
}

// grainLUT precomputes the darkened and lightened variants of c. Index
// grainLevels is c itself.
func grainLUT(c *color.Color, strength float64) ([]stdcolor.NRGBA, error) {
	lut := make([]stdcolor.NRGBA, 2*grainLevels+1)
	for i := range lut {
		step := i - grainLevels
		points := int(math.Round(strength * grainMaxPoints * math.Abs(float64(step)) / grainLevels))

		variant := c
		var err error
		switch {
		case step < 0:
			variant, err = manipulator.Darken(c, points)
		case step > 0:
			variant, err = manipulator.Lighten(c, points)
		}
		if err != nil {
			return nil, err
		}
		lut[i] = toNRGBA(variant)
	}
	return lut, nil
}
