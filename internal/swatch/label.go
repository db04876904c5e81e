package swatch

import (
	"image"
	stdcolor "image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/MeKo-Tech/csscolor/color"
	"github.com/MeKo-Tech/csscolor/info"
)

// drawLabel writes text at the bottom left of rect, black on light colors
// and white on dark ones. Text that doesn't fit is cut at the cell edge.
func drawLabel(dst *image.NRGBA, rect image.Rectangle, text string, bg *color.Color) {
	ink := stdcolor.NRGBA{A: 255}
	if info.IsDark(bg) {
		ink = stdcolor.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}

	face := basicfont.Face7x13
	clip := dst.SubImage(rect).(*image.NRGBA)
	d := &font.Drawer{
		Dst:  clip,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(rect.Min.X+4, rect.Max.Y-face.Descent-4),
	}
	d.DrawString(text)
}
