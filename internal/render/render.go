// Package render holds the five image generators. Each one fetches its inputs,
// then composes a fixed layout synchronously and returns a PNG data URL.
package render

import (
	"context"
	"image/color"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fogleman/gg"
	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/youruser/mapcards/internal/fonts"
	imagepkg "github.com/youruser/mapcards/internal/image"
	"github.com/youruser/mapcards/internal/logger"
	"github.com/youruser/mapcards/internal/text"
)

var white = color.NRGBA{255, 255, 255, 255}

// Options wires a Renderer. Only Fonts and Fetcher have useful defaults;
// a nil Logo leaves thumbnails without the mark.
type Options struct {
	Fetcher *imagepkg.Fetcher
	Fonts   *fonts.Resolver
	Logo    *imagepkg.Logo
	Logger  *zap.Logger
}

// Renderer is safe for concurrent use; every call owns its own surface.
type Renderer struct {
	fetcher *imagepkg.Fetcher
	fonts   *fonts.Resolver
	logo    *imagepkg.Logo
	log     *zap.Logger
}

func New(opts Options) *Renderer {
	r := &Renderer{
		fetcher: opts.Fetcher,
		fonts:   opts.Fonts,
		logo:    opts.Logo,
		log:     opts.Logger,
	}
	if r.fetcher == nil {
		r.fetcher = imagepkg.NewFetcher(nil)
	}
	if r.fonts == nil {
		r.fonts = fonts.NewResolver(fonts.NewRegistry())
	}
	if r.log == nil {
		r.log = logger.L()
	}
	return r
}

// Transform is applied to a thumbnail background before it is drawn:
// translate by (X, Y), then scale. A nil or zero Scale means 1.
type Transform struct {
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Scale *float64 `json:"scale,omitempty"`
}

func (t *Transform) apply(dc *gg.Context) {
	if t == nil {
		return
	}
	dc.Translate(t.X, t.Y)
	if t.Scale != nil && *t.Scale > 0 {
		dc.Scale(*t.Scale, *t.Scale)
	}
}

func (r *Renderer) finish(ctx context.Context, kind string, start time.Time, s *imagepkg.Surface) (string, error) {
	png, err := s.EncodePNG()
	if err != nil {
		return "", err
	}
	r.logger(ctx).Info("rendered image",
		zap.String("kind", kind),
		zap.Int("width", s.Width()),
		zap.Int("height", s.Height()),
		zap.String("size", humanize.Bytes(uint64(len(png)))),
		zap.Duration("took", time.Since(start)))
	return imagepkg.PNGDataURL(png), nil
}

func (r *Renderer) logger(ctx context.Context) *zap.Logger {
	if l := logger.FromContext(ctx); l != logger.L() {
		return l
	}
	return r.log
}

// painter draws on one surface and keeps the first font error it meets,
// so layout code can stay linear.
type painter struct {
	dc  *gg.Context
	res *fonts.Resolver
	err error
}

func (r *Renderer) painter(s *imagepkg.Surface) *painter {
	return &painter{dc: s.Context(), res: r.fonts}
}

func (p *painter) face(family string, w fonts.Weight, italic bool, size float64) (font.Face, error) {
	return p.res.Resolve(family, w, italic).Face(size)
}

// paragraph and icon record the first failure; after it they draw nothing.
func (p *painter) paragraph(par text.Paragraph) {
	if par.Text == "" || p.err != nil {
		return
	}
	if _, err := text.DrawParagraph(p.dc, p.res, par); err != nil && p.err == nil {
		p.err = err
	}
}

func (p *painter) icon(id imagepkg.IconID, x, y, size float64) {
	if p.err != nil {
		return
	}
	if err := imagepkg.DrawIcon(p.dc, id, x, y, size); err != nil && p.err == nil {
		p.err = err
	}
}

// ratingLabel describes how a rating is set inside its box: sentinels as
// centered text, numbers followed by a star occupying starSpan pixels after gap.
type ratingLabel struct {
	face     font.Face
	baseline float64
	gap      float64
	starSpan float64
	starR    float64
	starY    float64
}

func (p *painter) drawRatingCentered(value string, cx float64, l ratingLabel, sentinel bool) {
	if sentinel {
		text.DrawCentered(p.dc, value, cx, l.baseline, l.face, white, 0)
		return
	}
	tw := text.Measure(l.face, value)
	start := cx - (tw+l.gap+l.starSpan)/2
	text.Draw(p.dc, value, start, l.baseline, l.face, white)
	imagepkg.DrawStar(p.dc, start+tw+l.gap+l.starSpan/2, l.starY, l.starR, white)
}
