package imagepkg

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// DrawRoundedImage draws img stretched into the box (x, y, w, h) with rounded corners.
// The rounding is applied on an offscreen layer, so any clip already set on dc still holds.
func DrawRoundedImage(dc *gg.Context, img image.Image, x, y, w, h, radius float64) {
	iw, ih := int(math.Round(w)), int(math.Round(h))
	if iw <= 0 || ih <= 0 {
		return
	}
	scaled := imaging.Resize(img, iw, ih, imaging.Lanczos)
	layer := gg.NewContext(iw, ih)
	layer.DrawRoundedRectangle(0, 0, float64(iw), float64(ih), radius)
	layer.Clip()
	layer.DrawImage(scaled, 0, 0)
	dc.DrawImage(layer.Image(), int(math.Round(x)), int(math.Round(y)))
}

// DrawRoundedCover crops img to the aspect of the box before drawing it rounded.
func DrawRoundedCover(dc *gg.Context, img image.Image, x, y, w, h, radius float64) {
	DrawRoundedImage(dc, CropImage(img, w/h), x, y, w, h, radius)
}

// BlurredFill crops img to cover w x h, centered, and applies a Gaussian blur.
func BlurredFill(img image.Image, w, h int, sigma float64) *image.NRGBA {
	filled := CropResize(img, w, h)
	if sigma <= 0 {
		return filled
	}
	return imaging.Blur(filled, sigma)
}

// DrawBlurredShape paints a filled rounded rectangle blurred by sigma, used for soft glows.
func DrawBlurredShape(dc *gg.Context, x, y, w, h, radius, sigma float64, col color.Color) {
	pad := int(math.Ceil(sigma * 3))
	lw, lh := int(math.Round(w))+2*pad, int(math.Round(h))+2*pad
	layer := gg.NewContext(lw, lh)
	layer.DrawRoundedRectangle(float64(pad), float64(pad), w, h, radius)
	layer.SetColor(col)
	layer.Fill()
	blurred := imaging.Blur(layer.Image(), sigma)
	dc.DrawImage(blurred, int(math.Round(x))-pad, int(math.Round(y))-pad)
}
