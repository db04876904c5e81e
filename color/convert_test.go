package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		h, s, l int
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 0, 100},
		{"gray", 128, 128, 128, 0, 0, 50},
		{"red", 255, 0, 0, 0, 100, 50},
		{"green", 0, 255, 0, 120, 100, 50},
		{"blue", 0, 0, 255, 240, 100, 50},
		{"orange", 255, 128, 0, 30, 100, 50},
		{"steel", 51, 102, 153, 210, 50, 40},
		{"teal tie between green and blue", 64, 191, 191, 180, 50, 50},
		{"red hue wraps from 360", 255, 0, 1, 0, 100, 50},
		{"dim", 67, 122, 134, 191, 33, 39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
			assert.Equal(t, [3]int{tt.h, tt.s, tt.l}, [3]int{h, s, l})
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l int
		want    string
	}{
		{"black", 0, 0, 0, "rgb(0,0,0)"},
		{"white", 0, 0, 100, "rgb(255,255,255)"},
		{"gray", 120, 0, 50, "rgb(128,128,128)"},
		{"sector 0", 0, 50, 50, "rgb(191,64,64)"},
		{"sector 1", 60, 10, 10, "rgb(28,28,23)"},
		{"sector 1 fraction", 100, 40, 50, "rgb(111,179,77)"},
		{"sector 2", 120, 50, 20, "rgb(26,77,26)"},
		{"sector 3", 180, 50, 50, "rgb(64,191,191)"},
		{"sector 3 fraction", 210, 50, 40, "rgb(51,102,153)"},
		{"sector 4", 240, 10, 10, "rgb(23,23,28)"},
		{"sector 5 fraction", 330, 100, 50, "rgb(255,0,128)"},
		{"light branch", 100, 80, 60, "rgb(126,235,71)"},
		{"negative hue", -150, 50, 40, "rgb(51,102,153)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := HSLToRGB(tt.h, tt.s, tt.l, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestHSLToRGB_KeepsAlpha(t *testing.T) {
	c, err := HSLToRGB(30, 100, 50, 0.7)
	require.NoError(t, err)
	assert.Equal(t, "rgba(255,128,0,0.7)", c.String())
	assert.Equal(t, "hsla(30,100%,50%,0.7)", c.AsCSSHSL())
}

func TestRoundTrip_ExactForCommonColors(t *testing.T) {
	colors := [][3]int{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{0, 0, 0}, {255, 255, 255}, {128, 128, 128},
		{255, 128, 0}, {51, 102, 153}, {64, 191, 191},
	}

	for _, rgb := range colors {
		want, err := FromRGBA(rgb[0], rgb[1], rgb[2], 0.5)
		require.NoError(t, err)

		h, s, l := RGBToHSL(rgb[0], rgb[1], rgb[2])
		got, err := HSLToRGB(h, s, l, 0.5)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "%v -> hsl(%d,%d,%d) -> %s", rgb, h, s, l, got)
	}
}

// Integer HSL cannot address every RGB triple, so the round trip is only
// close, never further than a few units per channel.
func TestRoundTrip_LossyWithinBound(t *testing.T) {
	const maxDrift = 5

	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				h, s, l := RGBToHSL(r, g, b)
				got, err := HSLToRGB(h, s, l, 1)
				require.NoError(t, err)

				assert.LessOrEqual(t, absInt(got.Red()-r), maxDrift)
				assert.LessOrEqual(t, absInt(got.Green()-g), maxDrift)
				assert.LessOrEqual(t, absInt(got.Blue()-b), maxDrift)
			}
		}
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 26, Round(0.1*255))
	assert.Equal(t, 91, Round(80*0.94+255*0.06))
	assert.Equal(t, 3, Round(2.5))
	assert.Equal(t, -3, Round(-2.5))
	assert.Equal(t, 2, Round(2.4999))
}

func TestNormalizeHue(t *testing.T) {
	tests := map[int]int{0: 0, 359: 359, 360: 0, 361: 1, -1: 359, -360: 0, -540: 180, 1080: 0}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeHue(in), "NormalizeHue(%d)", in)
	}
}

func TestValidatePercent(t *testing.T) {
	for _, p := range []int{0, 50, 100} {
		got, err := ValidatePercent(p)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	for _, p := range []int{-1, 101} {
		_, err := ValidatePercent(p)
		assert.ErrorIs(t, err, ErrMalformedColor)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
