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
	CardWidth  = 900
	CardHeight = 300

	cardBoxY    = 220
	cardBoxW    = 107
	cardBoxH    = 50
	cardBoxStep = 118
	cardTextX   = 320
	cardTextMax = 380
	cardRightX  = 830
	cardIconX   = 840
)

var cardFamilies = []string{"Torus Pro", "Segoe UI", "Arial"}

// Card renders the 900x300 map info card.
func (r *Renderer) Card(ctx context.Context, info *beatmap.MapInfo, ratings beatmap.RatingSet, useBackground bool) (string, error) {
	coverURL, err := info.CoverURL()
	if err != nil {
		return "", err
	}
	cover, err := r.fetcher.FetchImage(ctx, coverURL)
	if err != nil {
		return "", err
	}
	start := time.Now()
	s, err := r.renderCard(cover, info, ratings, useBackground)
	if err != nil {
		return "", err
	}
	return r.finish(ctx, "card", start, s)
}

type cardBox struct {
	entry beatmap.Entry
	x     float64
}

// cardBoxes places one box per present rating, left to right.
func cardBoxes(rs beatmap.RatingSet) []cardBox {
	var out []cardBox
	x := 300.0
	for _, e := range rs.Present() {
		out = append(out, cardBox{entry: e, x: x})
		x += cardBoxStep
	}
	return out
}

func (r *Renderer) renderCard(cover image.Image, info *beatmap.MapInfo, ratings beatmap.RatingSet, useBackground bool) (*imagepkg.Surface, error) {
	s, err := imagepkg.NewSurface(CardWidth, CardHeight)
	if err != nil {
		return nil, err
	}
	p := r.painter(s)
	dc := p.dc

	dc.DrawRoundedRectangle(0, 0, CardWidth, CardHeight, 20)
	dc.Clip()

	if useBackground {
		dc.DrawImage(imagepkg.BlurredFill(cover, CardWidth, CardHeight, 10), 0, 0)
		imagepkg.FillRoundedRect(dc, 0, 0, CardWidth, CardHeight, 20, color.NRGBA{0, 0, 0, 102})
	}

	imagepkg.DrawRoundedCover(dc, cover, 20, 20, 260, 260, 10)
	imagepkg.FillRoundedRect(dc, 300, 20, 580, 180, 10, color.NRGBA{0, 0, 0, 51})

	md := info.Metadata
	line := func(v string, y, size float64, w fonts.Weight) {
		p.paragraph(text.Paragraph{
			Text: v, X: cardTextX, Y: y,
			Families: cardFamilies, Size: size, Weight: w,
			Color: white, MaxWidth: cardTextMax,
		})
	}
	line(md.SongAuthorName, 55, 24, fonts.Regular)
	line(md.SongName, 90, 30, fonts.Heavy)
	line(md.SongSubName, 125, 20, fonts.Medium)
	line(info.MapperLine(), 180, 20, fonts.SemiBold)

	right, err := p.face(cardFamilies[0], fonts.Regular, false, 24)
	if err != nil {
		return nil, err
	}
	rightText := func(v string, y float64) {
		text.Draw(dc, v, cardRightX-text.Measure(right, v), y, right, white)
	}
	rightText(info.ID, 55)
	p.icon(imagepkg.IconKey, cardIconX, 34, 24)
	if md.BPM != nil {
		rightText(beatmap.FormatBPM(*md.BPM), 85)
		p.icon(imagepkg.IconMetronome, cardIconX, 64, 24)
	}
	if md.Duration != nil {
		rightText(beatmap.FormatDuration(*md.Duration), 115)
		p.icon(imagepkg.IconClock, cardIconX, 94, 24)
	}

	sentinelFace, err := p.face(cardFamilies[0], fonts.Bold, false, 20)
	if err != nil {
		return nil, err
	}
	numericFace, err := p.face(cardFamilies[0], fonts.Bold, false, 28)
	if err != nil {
		return nil, err
	}
	sentinel := ratingLabel{face: sentinelFace, baseline: 252}
	numeric := ratingLabel{
		face:     numericFace,
		baseline: 252,
		gap:      4,
		starSpan: 18,
		starR:    9,
		starY:    244,
	}
	for _, b := range cardBoxes(ratings) {
		imagepkg.FillRoundedRect(dc, b.x, cardBoxY, cardBoxW, cardBoxH, 10, b.entry.Difficulty.Color())
		cx := b.x + cardBoxW/2.0
		if beatmap.IsSentinel(b.entry.Value) {
			p.drawRatingCentered(b.entry.Value, cx, sentinel, true)
		} else {
			p.drawRatingCentered(b.entry.Value, cx, numeric, false)
		}
	}

	dc.ResetClip()
	if p.err != nil {
		return nil, p.err
	}
	return s, nil
}
