// Package swatch renders colors as a grid of rounded cells in a PNG image.
package swatch

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/MeKo-Tech/csscolor/color"
)

const (
	DefaultCellSize = 96
	DefaultGap      = 8
	DefaultColumns  = 8
	maxCells        = 1024
)

// Cell is one colored square of a swatch.
type Cell struct {
	Color *color.Color
	Label string
}

// Options controls swatch layout and effects.
type Options struct {
	Background *color.Color // nil leaves the canvas transparent
	CellSize   int
	Gap        int
	Columns    int
	Radius     float64 // Corner radius in pixels
	Blur       float32 // Gaussian sigma applied to cell edges, 0 disables
	Grain      float64 // Paper grain strength 0..1, 0 disables
	Seed       int64
	Labels     bool
}

func (o Options) withDefaults(n int) Options {
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Gap < 0 {
		o.Gap = 0
	}
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
	}
	o.Columns = max(1, min(o.Columns, n))
	o.Radius = math.Min(math.Max(o.Radius, 0), float64(o.CellSize)/2)
	o.Grain = math.Min(math.Max(o.Grain, 0), 1)
	return o
}

// Size returns the canvas dimensions Render uses for n cells, without
// allocating anything.
func Size(n int, opts Options) image.Point {
	opts = opts.withDefaults(n)
	rows := (n + opts.Columns - 1) / opts.Columns
	pitch := opts.CellSize + opts.Gap
	return image.Pt(opts.Columns*pitch+opts.Gap, rows*pitch+opts.Gap)
}

// Render draws cells row by row.
func Render(cells []Cell, opts Options) (*image.NRGBA, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("no colors to render")
	}
	if len(cells) > maxCells {
		return nil, fmt.Errorf("too many colors: %d (max %d)", len(cells), maxCells)
	}
	for i, c := range cells {
		if c.Color == nil {
			return nil, fmt.Errorf("cell %d has no color", i)
		}
	}

	size := Size(len(cells), opts)
	opts = opts.withDefaults(len(cells))
	pitch := opts.CellSize + opts.Gap

	canvas := image.NewNRGBA(image.Rectangle{Max: size})
	if opts.Background != nil {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(toNRGBA(opts.Background)), image.Point{}, draw.Src)
	}

	var grain *grainField
	if opts.Grain > 0 {
		grain = newGrainField(opts.Seed, float64(opts.CellSize)/3)
	}

	for i, c := range cells {
		col, row := i%opts.Columns, i/opts.Columns
		x0 := opts.Gap + col*pitch
		y0 := opts.Gap + row*pitch
		rect := image.Rect(x0, y0, x0+opts.CellSize, y0+opts.CellSize)

		if err := drawCell(canvas, rect, c.Color, opts, grain); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		if opts.Labels {
			label := c.Label
			if label == "" {
				label, _ = c.Color.AsCSSRGB(color.FormatHex)
			}
			drawLabel(canvas, rect, label, c.Color)
		}
	}

	return canvas, nil
}

// drawCell composites one cell through its coverage mask.
func drawCell(dst *image.NRGBA, rect image.Rectangle, c *color.Color, opts Options, grain *grainField) error {
	pad := 0
	if opts.Blur > 0 {
		pad = int(math.Ceil(float64(opts.Blur) * 3))
	}
	region := rect.Inset(-pad).Intersect(dst.Bounds())

	mask := roundedRectMask(region.Size(), rect.Sub(region.Min), opts.Radius)
	if opts.Blur > 0 {
		mask = blurMask(mask, opts.Blur)
	}

	src := image.NewNRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	if grain == nil {
		draw.Draw(src, src.Bounds(), image.NewUniform(toNRGBA(c)), image.Point{}, draw.Src)
	} else {
		lut, err := grainLUT(c, opts.Grain)
		if err != nil {
			return err
		}
		for y := 0; y < region.Dy(); y++ {
			for x := 0; x < region.Dx(); x++ {
				src.SetNRGBA(x, y, lut[grain.level(region.Min.X+x, region.Min.Y+y)])
			}
		}
	}

	draw.DrawMask(dst, region, src, image.Point{}, asAlpha(mask), image.Point{}, draw.Over)
	return nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func toNRGBA(c *color.Color) stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: uint8(c.Red()),
		G: uint8(c.Green()),
		B: uint8(c.Blue()),
		A: uint8(math.Round(c.Alpha() * 255)),
	}
}
