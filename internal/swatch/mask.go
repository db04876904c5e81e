package swatch

import (
	"image"

	"github.com/disintegration/gift"
	"golang.org/x/image/vector"
)

// roundedRectMask rasterizes rect, with corners of the given radius, into a
// coverage mask of the given size. White means fully covered.
func roundedRectMask(size image.Point, rect image.Rectangle, radius float64) *image.Gray {
	mask := image.NewGray(image.Rectangle{Max: size})

	ras := vector.NewRasterizer(size.X, size.Y)
	x0, y0 := float32(rect.Min.X), float32(rect.Min.Y)
	x1, y1 := float32(rect.Max.X), float32(rect.Max.Y)
	r := float32(radius)

	ras.MoveTo(x0+r, y0)
	ras.LineTo(x1-r, y0)
	ras.QuadTo(x1, y0, x1, y0+r)
	ras.LineTo(x1, y1-r)
	ras.QuadTo(x1, y1, x1-r, y1)
	ras.LineTo(x0+r, y1)
	ras.QuadTo(x0, y1, x0, y1-r)
	ras.LineTo(x0, y0+r)
	ras.QuadTo(x0, y0, x0+r, y0)
	ras.ClosePath()

	ras.Draw(mask, mask.Bounds(), image.White, image.Point{})
	return mask
}

// blurMask softens mask edges with a Gaussian blur.
func blurMask(mask *image.Gray, sigma float32) *image.Gray {
	g := gift.New(gift.GaussianBlur(sigma))
	dst := image.NewGray(g.Bounds(mask.Bounds()))
	g.Draw(dst, mask)
	return dst
}

// asAlpha reinterprets gray levels as alpha coverage for draw.DrawMask.
func asAlpha(g *image.Gray) *image.Alpha {
	return &image.Alpha{Pix: g.Pix, Stride: g.Stride, Rect: g.Rect}
}
