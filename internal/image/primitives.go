package imagepkg

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

const starInnerRatio = 0.4

// StarPoints returns the 10 vertices of a five-pointed star centered on (cx, cy),
// alternating outer radius r and inner radius 0.4r, starting straight up.
func StarPoints(cx, cy, r float64) []gg.Point {
	pts := make([]gg.Point, 10)
	for i := range pts {
		rad := r
		if i%2 == 1 {
			rad = r * starInnerRatio
		}
		a := gg.Radians(-90 + float64(i)*36)
		pts[i] = gg.Point{X: cx + rad*math.Cos(a), Y: cy + rad*math.Sin(a)}
	}
	return pts
}

func DrawStar(dc *gg.Context, cx, cy, r float64, col color.Color) {
	fillPolygon(dc, StarPoints(cx, cy, r), col)
}

// ArrowPoints returns a right-pointing triangle centered on (cx, cy).
func ArrowPoints(cx, cy, size float64) []gg.Point {
	hh := size * 0.5
	hw := size * 0.4
	return []gg.Point{
		{X: cx - hw, Y: cy - hh},
		{X: cx + hw, Y: cy},
		{X: cx - hw, Y: cy + hh},
	}
}

func DrawArrow(dc *gg.Context, cx, cy, size float64, col color.Color) {
	fillPolygon(dc, ArrowPoints(cx, cy, size), col)
}

func fillPolygon(dc *gg.Context, pts []gg.Point, col color.Color) {
	dc.NewSubPath()
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.SetColor(col)
	dc.Fill()
}

// FillRoundedRect fills a rounded rectangle with a solid color.
func FillRoundedRect(dc *gg.Context, x, y, w, h, r float64, col color.Color) {
	dc.DrawRoundedRectangle(x, y, w, h, r)
	dc.SetColor(col)
	dc.Fill()
}

// StrokeRoundedRect outlines a rounded rectangle centered on its edge.
func StrokeRoundedRect(dc *gg.Context, x, y, w, h, r, width float64, col color.Color) {
	dc.DrawRoundedRectangle(x, y, w, h, r)
	dc.SetLineWidth(width)
	dc.SetColor(col)
	dc.Stroke()
}
