package imagepkg

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

const (
	Aspect16x9   = 16.0 / 9.0
	AspectSquare = 1.0
)

// CropRect is a sub-rectangle of a source image in source pixels.
type CropRect struct {
	X, Y, W, H float64
}

// CropToCover returns the largest centered rectangle of the given aspect ratio
// that fits inside a srcW x srcH image. Dimensions must be positive.
func CropToCover(srcW, srcH int, aspect float64) CropRect {
	if srcW <= 0 || srcH <= 0 || aspect <= 0 {
		panic(fmt.Sprintf("imagepkg: invalid crop input %dx%d aspect %v", srcW, srcH, aspect))
	}
	w, h := float64(srcW), float64(srcH)
	if w/h > aspect {
		cw := h * aspect
		return CropRect{X: (w - cw) / 2, Y: 0, W: cw, H: h}
	}
	ch := w / aspect
	return CropRect{X: 0, Y: (h - ch) / 2, W: w, H: ch}
}

// Rect rounds the crop to whole pixels.
func (r CropRect) Rect() image.Rectangle {
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	return image.Rect(x0, y0, x0+int(math.Round(r.W)), y0+int(math.Round(r.H)))
}

// CropImage cuts the centered aspect-ratio region out of img.
func CropImage(img image.Image, aspect float64) *image.NRGBA {
	b := img.Bounds()
	r := CropToCover(b.Dx(), b.Dy(), aspect).Rect().Add(b.Min)
	return imaging.Crop(img, r)
}

// CropResize crops img to the aspect ratio of w x h and scales it to exactly that size.
func CropResize(img image.Image, w, h int) *image.NRGBA {
	cropped := CropImage(img, float64(w)/float64(h))
	return imaging.Resize(cropped, w, h, imaging.Lanczos)
}
