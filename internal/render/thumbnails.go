package render

import (
	"context"
	"image"
	"math"
	"time"

	"github.com/fogleman/gg"

	"github.com/youruser/mapcards/internal/fonts"
	imagepkg "github.com/youruser/mapcards/internal/image"
	"github.com/youruser/mapcards/internal/text"
)

const (
	BatchWidth   = 1920
	BatchHeight  = 1080
	PlaylistSize = 512

	monthFamily = "Aller"
)

type thumbLayout struct {
	w, h      int
	logoScale float64
	logoY     float64
	monthSize float64
	monthBold bool
	monthItal bool
	baseline  float64
	shadow    float64
}

var (
	batchLayout = thumbLayout{
		w: BatchWidth, h: BatchHeight,
		logoScale: 1.0, logoY: 100,
		monthSize: 130, monthBold: true,
		baseline: 760, shadow: 3,
	}
	playlistLayout = thumbLayout{
		w: PlaylistSize, h: PlaylistSize,
		logoScale: 0.30, logoY: 50,
		monthSize: 54, monthItal: true,
		baseline: 460, shadow: 2,
	}
)

// BatchThumbnail renders the 1920x1080 monthly batch thumbnail.
func (r *Renderer) BatchThumbnail(ctx context.Context, source, month string, t *Transform) (string, error) {
	return r.thumbnail(ctx, "batch", batchLayout, source, month, t)
}

// PlaylistThumbnail renders the 512x512 playlist cover.
func (r *Renderer) PlaylistThumbnail(ctx context.Context, source, month string, t *Transform) (string, error) {
	return r.thumbnail(ctx, "playlist", playlistLayout, source, month, t)
}

func (r *Renderer) thumbnail(ctx context.Context, kind string, l thumbLayout, source, month string, t *Transform) (string, error) {
	bg, err := r.fetcher.FetchImage(ctx, source)
	if err != nil {
		return "", err
	}
	start := time.Now()
	s, err := r.renderThumbnail(l, bg, month, t)
	if err != nil {
		return "", err
	}
	return r.finish(ctx, kind, start, s)
}

func (r *Renderer) renderThumbnail(l thumbLayout, bg image.Image, month string, t *Transform) (*imagepkg.Surface, error) {
	s, err := imagepkg.NewSurface(l.w, l.h)
	if err != nil {
		return nil, err
	}
	p := r.painter(s)
	dc := p.dc

	dc.Push()
	t.apply(dc)
	dc.DrawImage(imagepkg.CropResize(bg, l.w, l.h), 0, 0)
	dc.Pop()

	r.drawLogo(dc, l.w, l.logoScale, l.logoY)

	weight := fonts.Regular
	if l.monthBold {
		weight = fonts.Bold
	}
	face, err := p.face(monthFamily, weight, l.monthItal, l.monthSize)
	if err != nil {
		return nil, err
	}
	text.DrawCentered(dc, month, float64(l.w)/2, l.baseline, face, white, l.shadow)

	if p.err != nil {
		return nil, p.err
	}
	return s, nil
}

func (r *Renderer) drawLogo(dc *gg.Context, canvasW int, scale, y float64) {
	if r.logo == nil {
		return
	}
	img := r.logo.Scaled(scale)
	x := (float64(canvasW) - imagepkg.LogoWidth*scale) / 2
	dc.DrawImage(img, int(math.Round(x)), int(math.Round(y)))
}
