package color

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCSS(t *testing.T, css string) *Color {
	t.Helper()
	c, err := FromCSS(css)
	require.NoError(t, err, "FromCSS(%q)", css)
	return c
}

func TestFromRGBA_WithTransparency(t *testing.T) {
	c, err := FromRGBA(255, 128, 0, 0.7)
	require.NoError(t, err)

	assert.Equal(t, 255, c.Red())
	assert.Equal(t, 128, c.Green())
	assert.Equal(t, 0, c.Blue())
	assert.Equal(t, 0.7, c.Alpha())
	assert.Equal(t, 30, c.Hue())
	assert.Equal(t, 100, c.Saturation())
	assert.Equal(t, 50, c.Lightness())

	dec, err := c.AsCSSRGB(FormatDecimal)
	require.NoError(t, err)
	assert.Equal(t, "rgba(255,128,0,0.7)", dec)
	assert.Equal(t, "hsla(30,100%,50%,0.7)", c.AsCSSHSL())

	hex, err := c.AsCSSRGB(FormatHex)
	require.NoError(t, err)
	assert.Equal(t, "#ff8000b3", hex)
	assert.True(t, c.Equal(mustCSS(t, hex)))
}

func TestFromRGB_Opaque(t *testing.T) {
	c, err := FromRGB(255, 128, 0)
	require.NoError(t, err)

	assert.Equal(t, 1.0, c.Alpha())
	assert.Equal(t, 30, c.Hue())
	assert.Equal(t, "rgb(255,128,0)", c.String())
	assert.Equal(t, "hsl(30,100%,50%)", c.AsCSSHSL())

	hex, err := c.AsCSSRGB(FormatHex)
	require.NoError(t, err)
	assert.Equal(t, "#ff8000", hex)
}

func TestFromRGBA_OutOfRange(t *testing.T) {
	tests := []struct {
		name        string
		r, g, b     int
		a           float64
		wantCause   Cause
		wantChannel string
	}{
		{"red above", 256, 0, 0, 1, CauseChannelRange, "red"},
		{"green below", 0, -1, 0, 1, CauseChannelRange, "green"},
		{"blue above", 0, 0, 300, 1, CauseChannelRange, "blue"},
		{"alpha above", 0, 0, 0, 4, CauseAlphaRange, "alpha"},
		{"alpha below", 0, 0, 0, -0.0001, CauseAlphaRange, "alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromRGBA(tt.r, tt.g, tt.b, tt.a)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrMalformedColor)

			var mErr *MalformedColorError
			require.True(t, errors.As(err, &mErr))
			assert.Equal(t, tt.wantCause, mErr.Cause)
			assert.Equal(t, tt.wantChannel, mErr.Channel)
		})
	}
}

func TestFromHSL_OutOfRange(t *testing.T) {
	_, err := FromHSL(0, 101, 50)
	assert.ErrorIs(t, err, ErrMalformedColor)

	_, err = FromHSL(0, 50, -1)
	assert.ErrorIs(t, err, ErrMalformedColor)

	_, err = FromHSLA(0, 50, 50, 1.5)
	assert.ErrorIs(t, err, ErrMalformedColor)
}

func TestFromHSL_NormalizesHue(t *testing.T) {
	for _, hue := range []int{-540, -180, 180, 540, 900} {
		c, err := FromHSL(hue, 50, 50)
		require.NoError(t, err)
		assert.Equal(t, 180, c.Hue(), "hue %d", hue)
		assert.Equal(t, "rgb(64,191,191)", c.String(), "hue %d", hue)
	}
}

func TestWhiteFromCSS(t *testing.T) {
	c := mustCSS(t, "rgb(255,255,255)")

	assert.Equal(t, 255, c.Red())
	assert.Equal(t, 255, c.Green())
	assert.Equal(t, 255, c.Blue())
	assert.Equal(t, 1.0, c.Alpha())
	assert.Equal(t, 0, c.Hue())
	assert.Equal(t, 0, c.Saturation())
	assert.Equal(t, 100, c.Lightness())

	hex, err := c.AsCSSRGB(FormatHex)
	require.NoError(t, err)
	assert.Equal(t, "rgb(255,255,255)", c.String())
	assert.Equal(t, "#ffffff", hex)
	assert.Equal(t, "hsl(0,0%,100%)", c.AsCSSHSL())

	assert.True(t, mustCSS(t, "#fff").Equal(c))
	assert.True(t, mustCSS(t, "hsl(0,0%,100%)").Equal(c))
}

func TestWith_SameValueReturnsSameInstance(t *testing.T) {
	c := mustCSS(t, "rgb(255,255,255)")

	steps := []func(*Color) (*Color, error){
		func(c *Color) (*Color, error) { return c.WithAlpha(1.0) },
		func(c *Color) (*Color, error) { return c.WithGreen(255) },
		func(c *Color) (*Color, error) { return c.WithRed(255) },
		func(c *Color) (*Color, error) { return c.WithBlue(255) },
		func(c *Color) (*Color, error) { return c.WithHue(0) },
		func(c *Color) (*Color, error) { return c.WithHue(720) },
		func(c *Color) (*Color, error) { return c.WithSaturation(0) },
		func(c *Color) (*Color, error) { return c.WithLightness(100) },
	}

	got := c
	for i, step := range steps {
		next, err := step(got)
		require.NoError(t, err, "step %d", i)
		require.Same(t, got, next, "step %d", i)
		got = next
	}
	assert.True(t, got.Equal(c))
}

func TestWith_NewValueReturnsNewInstance(t *testing.T) {
	c := mustCSS(t, "rgb(255,255,255)")

	got, err := c.WithAlpha(0.5)
	require.NoError(t, err)
	for _, step := range []func(*Color) (*Color, error){
		func(c *Color) (*Color, error) { return c.WithGreen(255) },
		func(c *Color) (*Color, error) { return c.WithRed(255) },
		func(c *Color) (*Color, error) { return c.WithBlue(255) },
		func(c *Color) (*Color, error) { return c.WithHue(0) },
		func(c *Color) (*Color, error) { return c.WithSaturation(0) },
		func(c *Color) (*Color, error) { return c.WithLightness(100) },
	} {
		got, err = step(got)
		require.NoError(t, err)
	}

	assert.NotSame(t, c, got)
	assert.False(t, got.Equal(c))
	assert.Equal(t, 1.0, c.Alpha(), "original must be untouched")

	for name, with := range map[string]func(*Color) (*Color, error){
		"red":       func(c *Color) (*Color, error) { return c.WithRed(0) },
		"green":     func(c *Color) (*Color, error) { return c.WithGreen(0) },
		"blue":      func(c *Color) (*Color, error) { return c.WithBlue(0) },
		"lightness": func(c *Color) (*Color, error) { return c.WithLightness(40) },
		"alpha":     func(c *Color) (*Color, error) { return c.WithAlpha(0.2) },
	} {
		changed, err := with(c)
		require.NoError(t, err, name)
		assert.NotSame(t, c, changed, name)
		assert.False(t, changed.Equal(c), name)
	}
}

func TestWith_OutOfRange(t *testing.T) {
	c := mustCSS(t, "rgb(255,255,255)")

	calls := map[string]func() (*Color, error){
		"green 256":      func() (*Color, error) { return c.WithGreen(256) },
		"green -1":       func() (*Color, error) { return c.WithGreen(-1) },
		"red 256":        func() (*Color, error) { return c.WithRed(256) },
		"blue -1":        func() (*Color, error) { return c.WithBlue(-1) },
		"alpha -0.0001":  func() (*Color, error) { return c.WithAlpha(-0.0001) },
		"alpha 1.0001":   func() (*Color, error) { return c.WithAlpha(1.0001) },
		"saturation 101": func() (*Color, error) { return c.WithSaturation(101) },
		"lightness -1":   func() (*Color, error) { return c.WithLightness(-1) },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			got, err := call()
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrMalformedColor)
		})
	}
}

func TestWithChannel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		with     func(*Color) (*Color, error)
		expected string
	}{
		{"red", "#000", func(c *Color) (*Color, error) { return c.WithRed(255) }, "#f00"},
		{"red same", "#f00", func(c *Color) (*Color, error) { return c.WithRed(255) }, "#f00"},
		{"green", "#f00", func(c *Color) (*Color, error) { return c.WithGreen(255) }, "#ff0"},
		{"green same", "#f00", func(c *Color) (*Color, error) { return c.WithGreen(0) }, "#f00"},
		{"blue", "#000", func(c *Color) (*Color, error) { return c.WithBlue(255) }, "#00f"},
		{"blue same", "#00f", func(c *Color) (*Color, error) { return c.WithBlue(255) }, "#00f"},
		{"hue", "hsl(180, 50%, 50%)", func(c *Color) (*Color, error) { return c.WithHue(360) }, "hsl(360, 50%, 50%)"},
		{"hue same", "hsl(180, 50%, 50%)", func(c *Color) (*Color, error) { return c.WithHue(180) }, "hsl(180, 50%, 50%)"},
		{"hue spin", "hsl(180, 50%, 50%)", func(c *Color) (*Color, error) { return c.WithHue(540) }, "hsl(180, 50%, 50%)"},
		{"hue negative spin", "hsl(180, 50%, 50%)", func(c *Color) (*Color, error) { return c.WithHue(-540) }, "hsl(180, 50%, 50%)"},
		{"saturation", "hsl(180, 50%, 50%)", func(c *Color) (*Color, error) { return c.WithSaturation(0) }, "hsl(360, 0%, 50%)"},
		{"saturation same", "hsl(180, 50%, 50%)", func(c *Color) (*Color, error) { return c.WithSaturation(50) }, "hsl(180, 50%, 50%)"},
		{"lightness", "hsl(180, 50%, 50%)", func(c *Color) (*Color, error) { return c.WithLightness(0) }, "hsl(180, 50%, 0%)"},
		{"lightness same", "hsl(180, 50%, 50%)", func(c *Color) (*Color, error) { return c.WithLightness(50) }, "hsl(180, 50%, 50%)"},
		{"alpha", "rgba(180, 50, 50, 0.7)", func(c *Color) (*Color, error) { return c.WithAlpha(0.9) }, "rgba(180, 50, 50, 0.9)"},
		{"alpha same", "rgba(180, 50, 50, 0.9)", func(c *Color) (*Color, error) { return c.WithAlpha(0.9) }, "rgba(180, 50, 50, 0.9)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustCSS(t, tt.input)
			want := mustCSS(t, tt.expected)

			got, err := tt.with(c)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
			if tt.input == tt.expected {
				assert.Same(t, c, got)
			}
		})
	}
}

func TestWithHue_Normalization(t *testing.T) {
	c, err := FromHSL(180, 100, 50)
	require.NoError(t, err)

	for h := -1080; h <= 1080; h += 7 {
		got, err := c.WithHue(h)
		require.NoError(t, err)
		assert.Equal(t, ((h%360)+360)%360, got.Hue(), "WithHue(%d)", h)
	}
}

func TestWithAlpha_KeepsOtherChannels(t *testing.T) {
	c := mustCSS(t, "hsl(210,50%,40%)")

	got, err := c.WithAlpha(0.25)
	require.NoError(t, err)

	assert.Equal(t, c.Red(), got.Red())
	assert.Equal(t, c.Green(), got.Green())
	assert.Equal(t, c.Blue(), got.Blue())
	assert.Equal(t, c.Hue(), got.Hue())
	assert.Equal(t, c.Saturation(), got.Saturation())
	assert.Equal(t, c.Lightness(), got.Lightness())
	assert.Equal(t, 0.25, got.Alpha())
}

func TestEqual_UsesRoundedAlpha(t *testing.T) {
	a, err := FromRGBA(10, 20, 30, 0.701)
	require.NoError(t, err)
	b, err := FromRGBA(10, 20, 30, 0.699)
	require.NoError(t, err)
	c, err := FromRGBA(10, 20, 30, 0.71)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
