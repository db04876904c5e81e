package swatch

import (
	"fmt"

	"github.com/MeKo-Tech/csscolor/color"
	"github.com/MeKo-Tech/csscolor/manipulator"
)

// Ramp returns steps shades of base (darkest first), base itself, then
// steps tints, evenly spaced between black and white.
func Ramp(base *color.Color, steps int) ([]Cell, error) {
	if steps < 0 || steps > 20 {
		return nil, fmt.Errorf("ramp steps must be between 0 and 20, got %d", steps)
	}

	cells := make([]Cell, 0, 2*steps+1)
	for i := steps; i >= 1; i-- {
		pct := i * 100 / (steps + 1)
		c, err := manipulator.Shade(base, pct)
		if err != nil {
			return nil, err
		}
		cells = append(cells, Cell{Color: c, Label: fmt.Sprintf("shade %d%%", pct)})
	}

	cells = append(cells, Cell{Color: base, Label: "base"})

	for i := 1; i <= steps; i++ {
		pct := i * 100 / (steps + 1)
		c, err := manipulator.Tint(base, pct)
		if err != nil {
			return nil, err
		}
		cells = append(cells, Cell{Color: c, Label: fmt.Sprintf("tint %d%%", pct)})
	}

	return cells, nil
}
