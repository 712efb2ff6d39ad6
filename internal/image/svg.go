package imagepkg

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// rasterizeSVG renders an SVG document into a w x h bitmap with a uniform scale,
// centering the view box on the free axis.
func rasterizeSVG(src string, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		vw, vh = float64(w), float64(h)
	}
	scale := min(float64(w)/vw, float64(h)/vh)
	outW, outH := vw*scale, vh*scale
	icon.SetTarget((float64(w)-outW)/2, (float64(h)-outH)/2, outW, outH)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}
