package swatch

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/csscolor/color"
)

func mustCSS(t *testing.T, css string) *color.Color {
	t.Helper()
	c, err := color.FromCSS(css)
	require.NoError(t, err)
	return c
}

func TestRender_Layout(t *testing.T) {
	cells := []Cell{
		{Color: mustCSS(t, "#ff0000")},
		{Color: mustCSS(t, "#00ff00")},
		{Color: mustCSS(t, "#0000ff")},
	}

	img, err := Render(cells, Options{CellSize: 10, Gap: 2, Columns: 2})
	require.NoError(t, err)

	// 2 columns, 2 rows: 2 + 2*(10+2)
	assert.Equal(t, image.Rect(0, 0, 26, 26), img.Bounds())

	// Cell centers carry the exact color
	assert.Equal(t, uint8(255), img.NRGBAAt(7, 7).R)
	assert.Equal(t, uint8(255), img.NRGBAAt(19, 7).G)
	assert.Equal(t, uint8(255), img.NRGBAAt(7, 19).B)

	// Gaps and the empty fourth slot stay transparent
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), img.NRGBAAt(19, 19).A)
}

func TestSize(t *testing.T) {
	assert.Equal(t, image.Pt(26, 26), Size(3, Options{CellSize: 10, Gap: 2, Columns: 2}))
	// Defaults: 96px cells, 8px gaps, at most one row of 8
	assert.Equal(t, image.Pt(320, 112), Size(3, Options{}))
	// Negative gaps collapse to 0
	assert.Equal(t, image.Pt(80, 30), Size(20, Options{CellSize: 10, Gap: -3}))

	cells := []Cell{{Color: mustCSS(t, "#123")}, {Color: mustCSS(t, "#456")}, {Color: mustCSS(t, "#789")}}
	opts := Options{CellSize: 7, Gap: 3, Columns: 2}
	img, err := Render(cells, opts)
	require.NoError(t, err)
	assert.Equal(t, Size(len(cells), opts), img.Bounds().Size())
}

func TestRender_Background(t *testing.T) {
	img, err := Render([]Cell{{Color: mustCSS(t, "#000")}}, Options{
		CellSize:   8,
		Gap:        4,
		Background: mustCSS(t, "#ffffff"),
	})
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())
	bg := img.NRGBAAt(1, 1)
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, [4]uint8{bg.R, bg.G, bg.B, bg.A})
	fg := img.NRGBAAt(8, 8)
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, [4]uint8{fg.R, fg.G, fg.B, fg.A})
}

func TestRender_TranslucentColor(t *testing.T) {
	img, err := Render([]Cell{{Color: mustCSS(t, "rgba(0,0,255,0.5)")}}, Options{CellSize: 8, Gap: 0})
	require.NoError(t, err)

	px := img.NRGBAAt(4, 4)
	assert.Equal(t, uint8(255), px.B)
	assert.InDelta(t, 128, int(px.A), 1)
}

func TestRender_RoundedCorners(t *testing.T) {
	img, err := Render([]Cell{{Color: mustCSS(t, "#000")}}, Options{CellSize: 40, Gap: 0, Radius: 12})
	require.NoError(t, err)

	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A, "corner should be cut")
	assert.Equal(t, uint8(255), img.NRGBAAt(20, 20).A)
	assert.Equal(t, uint8(255), img.NRGBAAt(20, 0).A, "edge midpoint stays covered")
}

func TestRender_BlurSoftensEdges(t *testing.T) {
	opts := Options{CellSize: 20, Gap: 10}
	sharp, err := Render([]Cell{{Color: mustCSS(t, "#000")}}, opts)
	require.NoError(t, err)

	opts.Blur = 2
	soft, err := Render([]Cell{{Color: mustCSS(t, "#000")}}, opts)
	require.NoError(t, err)

	// Just outside the cell
	assert.Equal(t, uint8(0), sharp.NRGBAAt(9, 20).A)
	assert.Greater(t, soft.NRGBAAt(9, 20).A, uint8(0))
	// Cell center stays opaque
	assert.Equal(t, uint8(255), soft.NRGBAAt(20, 20).A)
}

func TestRender_GrainIsDeterministic(t *testing.T) {
	cells := []Cell{{Color: mustCSS(t, "hsl(210,50%,50%)")}}
	opts := Options{CellSize: 64, Gap: 0, Grain: 1, Seed: 42}

	a, err := Render(cells, opts)
	require.NoError(t, err)
	b, err := Render(cells, opts)
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix)

	plain, err := Render(cells, Options{CellSize: 64, Gap: 0})
	require.NoError(t, err)
	assert.NotEqual(t, plain.Pix, a.Pix, "grain should vary the cell")
}

func TestRender_Labels(t *testing.T) {
	cells := []Cell{{Color: mustCSS(t, "#000")}, {Color: mustCSS(t, "#fff")}}

	plain, err := Render(cells, Options{CellSize: 80})
	require.NoError(t, err)
	labeled, err := Render(cells, Options{CellSize: 80, Labels: true})
	require.NoError(t, err)

	assert.NotEqual(t, plain.Pix, labeled.Pix)
}

func TestRender_Errors(t *testing.T) {
	_, err := Render(nil, Options{})
	assert.Error(t, err)

	_, err = Render([]Cell{{}}, Options{})
	assert.Error(t, err)

	_, err = Render(make([]Cell, maxCells+1), Options{})
	assert.Error(t, err)
}

func TestEncodePNG(t *testing.T) {
	img, err := Render([]Cell{{Color: mustCSS(t, "#336699")}}, Options{CellSize: 4, Gap: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestRamp(t *testing.T) {
	base := mustCSS(t, "#ff0000")

	cells, err := Ramp(base, 1)
	require.NoError(t, err)
	require.Len(t, cells, 3)

	assert.Equal(t, "rgb(128,0,0)", cells[0].Color.String())
	assert.Same(t, base, cells[1].Color)
	assert.Equal(t, "rgb(255,128,128)", cells[2].Color.String())

	cells, err = Ramp(base, 3)
	require.NoError(t, err)
	require.Len(t, cells, 7)
	assert.Equal(t, "shade 75%", cells[0].Label)
	assert.Equal(t, "tint 75%", cells[6].Label)

	_, err = Ramp(base, 21)
	assert.Error(t, err)
}
