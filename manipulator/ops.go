package manipulator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MeKo-Tech/csscolor/color"
)

// Op names a single-color adjustment for command line and HTTP callers.
type Op string

const (
	OpSaturate   Op = "saturate"
	OpDesaturate Op = "desaturate"
	OpLighten    Op = "lighten"
	OpDarken     Op = "darken"
	OpSpin       Op = "spin"
	OpFadeIn     Op = "fadein"
	OpFadeOut    Op = "fadeout"
	OpTint       Op = "tint"
	OpShade      Op = "shade"
	OpBrighten   Op = "brighten"
	OpGrayscale  Op = "grayscale"
	OpInvert     Op = "invert"
)

var ops = map[Op]func(c *color.Color, amount int) (*color.Color, error){
	OpSaturate:   Saturate,
	OpDesaturate: Desaturate,
	OpLighten:    Lighten,
	OpDarken:     Darken,
	OpSpin:       Spin,
	OpFadeIn:     FadeIn,
	OpFadeOut:    FadeOut,
	OpTint:       Tint,
	OpShade:      Shade,
	OpBrighten:   Brighten,
	OpGrayscale:  func(c *color.Color, _ int) (*color.Color, error) { return Grayscale(c) },
	OpInvert:     func(c *color.Color, _ int) (*color.Color, error) { return Invert(c) },
}

// Ops lists the known operation names in sorted order.
func Ops() []Op {
	names := make([]Op, 0, len(ops))
	for op := range ops {
		names = append(names, op)
	}
	slices.Sort(names)
	return names
}

// ParseOp resolves a case-insensitive operation name. "fade-in" and
// "fade-out" are accepted as aliases.
func ParseOp(name string) (Op, error) {
	op := Op(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", ""))
	if _, ok := ops[op]; !ok {
		return "", fmt.Errorf("unknown operation %q", name)
	}
	return op, nil
}

// Apply runs op on c. amount is ignored by grayscale and invert; for spin it
// is in degrees, for the others a percentage.
func Apply(c *color.Color, op Op, amount int) (*color.Color, error) {
	fn, ok := ops[op]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", op)
	}
	return fn(c, amount)
}
