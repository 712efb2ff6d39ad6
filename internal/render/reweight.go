package render

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/youruser/mapcards/internal/beatmap"
	"github.com/youruser/mapcards/internal/fonts"
	imagepkg "github.com/youruser/mapcards/internal/image"
	"github.com/youruser/mapcards/internal/text"
)

const (
	ReweightWidth  = 600
	ReweightHeight = 270

	reweightTextX   = 270
	reweightTextMax = 300
	compareCenterX  = 405
	compareY        = 218
)

// ReweightCard renders the 600x270 card comparing the old and new rating of one difficulty.
func (r *Renderer) ReweightCard(ctx context.Context, info *beatmap.MapInfo, oldRatings, newRatings beatmap.RatingSet, diff beatmap.Difficulty) (string, error) {
	coverURL, err := info.CoverURL()
	if err != nil {
		return "", err
	}
	cover, err := r.fetcher.FetchImage(ctx, coverURL)
	if err != nil {
		return "", err
	}
	start := time.Now()
	oldV, hasOld := oldRatings.Get(diff)
	newV, hasNew := newRatings.Get(diff)

	var cmp *comparison
	if hasOld && hasNew {
		cmp = &comparison{old: oldV, new: newV}
	}
	s, err := r.renderReweight(cover, info, diff, TrendOf(oldV, newV), cmp)
	if err != nil {
		return "", err
	}
	return r.finish(ctx, "reweight", start, s)
}

// comparison is the pair of labels shown in the chips. It is only drawn
// when both ratings exist.
type comparison struct {
	old, new string
}

func (r *Renderer) renderReweight(cover image.Image, info *beatmap.MapInfo, diff beatmap.Difficulty, trend Trend, cmp *comparison) (*imagepkg.Surface, error) {
	s, err := imagepkg.NewSurface(ReweightWidth, ReweightHeight)
	if err != nil {
		return nil, err
	}
	p := r.painter(s)
	dc := p.dc

	imagepkg.FillRoundedRect(dc, 0, 0, ReweightWidth, ReweightHeight, 40, color.NRGBA{0, 0, 0, 77})
	imagepkg.DrawBlurredShape(dc, 40, 40, 520, 190, 20, 20, trend.GlowColor())
	imagepkg.DrawRoundedCover(dc, cover, 20, 20, 230, 230, 20)

	md := info.Metadata
	line := func(v string, y, size float64, w fonts.Weight, col color.Color) {
		p.paragraph(text.Paragraph{
			Text: v, X: reweightTextX, Y: y,
			Families: cardFamilies, Size: size, Weight: w,
			Color: col, MaxWidth: reweightTextMax,
		})
	}
	line(md.SongAuthorName, 55, 24, fonts.Light, white)
	line(md.SongName, 90, 30, fonts.Bold, white)
	line(md.SongSubName, 120, 20, fonts.Regular, color.NRGBA{200, 200, 200, 255})
	line(info.MapperLine(), 170, 20, fonts.Medium, white)

	if cmp != nil {
		face, err := p.face(cardFamilies[0], fonts.WeightFromValue(700), false, 24)
		if err != nil {
			return nil, err
		}
		chip := diff.Color()
		label := ratingLabel{
			face:     face,
			baseline: compareY + 8,
			gap:      4,
			starSpan: 10,
			starR:    10,
			starY:    compareY,
		}
		imagepkg.FillRoundedRect(dc, compareCenterX-135, compareY-17, 100, 34, 10, chip)
		p.drawRatingCentered(cmp.old, compareCenterX-85, label, beatmap.IsSentinel(cmp.old))

		imagepkg.DrawArrow(dc, compareCenterX, compareY, 20, trend.Color())

		imagepkg.FillRoundedRect(dc, compareCenterX+35, compareY-17, 100, 34, 10, chip)
		p.drawRatingCentered(cmp.new, compareCenterX+85, label, beatmap.IsSentinel(cmp.new))
	}

	if p.err != nil {
		return nil, p.err
	}
	return s, nil
}
