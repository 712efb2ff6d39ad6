// Package text places single lines of text on a gg context, either as a plain
// run with an optional drop shadow or as a width-limited line with per-glyph
// font fallback.
package text

import (
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

var shadowColor = color.NRGBA{0, 0, 0, 128}

// Measure returns the advance width of s in pixels.
func Measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

// Draw draws s with its baseline at y.
func Draw(dc *gg.Context, s string, x, y float64, face font.Face, col color.Color) {
	dc.SetFontFace(face)
	dc.SetColor(col)
	dc.DrawString(s, x, y)
}

// DrawShadow draws a half-transparent black copy of s shifted by offset, then s itself.
// No wrapping or truncation is applied.
func DrawShadow(dc *gg.Context, s string, x, y float64, face font.Face, col color.Color, offset float64) {
	if offset > 0 {
		Draw(dc, s, x+offset, y+offset, face, shadowColor)
	}
	Draw(dc, s, x, y, face, col)
}

// DrawCentered draws s horizontally centered on cx, returning its width.
func DrawCentered(dc *gg.Context, s string, cx, y float64, face font.Face, col color.Color, shadow float64) float64 {
	w := Measure(face, s)
	DrawShadow(dc, s, cx-w/2, y, face, col, shadow)
	return w
}
