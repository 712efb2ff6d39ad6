package render

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"github.com/youruser/mapcards/internal/beatmap"
	"github.com/youruser/mapcards/internal/fonts"
	imagepkg "github.com/youruser/mapcards/internal/image"
	"github.com/youruser/mapcards/internal/text"
)

const (
	VideoWidth  = 1920
	VideoHeight = 1080

	videoTextX   = 50
	videoTextMax = 560
	videoBoxCX   = 330
	dividerX     = 640
	dividerCount = 17
	dividerR     = 15
)

var (
	videoFamilies = []string{"Heebo", "Segoe UI", "Arial"}

	gradientFrom = color.NRGBA{15, 8, 208, 255}
	gradientTo   = color.NRGBA{155, 11, 57, 255}
	panelColor   = color.NRGBA{20, 20, 20, 255}
)

// VideoThumbnail renders the 1920x1080 video thumbnail for one difficulty.
// When the background cannot be fetched the cover is used in its place.
func (r *Renderer) VideoThumbnail(ctx context.Context, info *beatmap.MapInfo, diff beatmap.Difficulty, ratings beatmap.RatingSet, background string) (string, error) {
	coverURL, err := info.CoverURL()
	if err != nil {
		return "", err
	}
	coverBytes, err := r.fetcher.Fetch(ctx, coverURL)
	if err != nil {
		return "", err
	}
	bgBytes, err := r.fetcher.Fetch(ctx, background)
	if err != nil {
		r.logger(ctx).Warn("background fetch failed, using cover",
			zap.String("map", info.ID),
			zap.Error(err))
		bgBytes = coverBytes
	}

	start := time.Now()
	cover, err := imagepkg.DecodeImage(coverBytes)
	if err != nil {
		return "", err
	}
	bg, err := imagepkg.DecodeImage(bgBytes)
	if err != nil {
		return "", err
	}
	rating, _ := ratings.Get(diff)
	s, err := r.renderVideo(cover, bg, info, diff, rating)
	if err != nil {
		return "", err
	}
	return r.finish(ctx, "video", start, s)
}

// DividerDots returns the centers of the dotted divider.
func DividerDots() []gg.Point {
	pts := make([]gg.Point, dividerCount)
	for i := range pts {
		pts[i] = gg.Point{X: dividerX, Y: 50 + float64(i)*61}
	}
	return pts
}

func (r *Renderer) renderVideo(cover, bg image.Image, info *beatmap.MapInfo, diff beatmap.Difficulty, rating string) (*imagepkg.Surface, error) {
	s, err := imagepkg.NewSurface(VideoWidth, VideoHeight)
	if err != nil {
		return nil, err
	}
	p := r.painter(s)
	dc := p.dc

	grad := gg.NewLinearGradient(0, 0, VideoWidth, VideoHeight)
	grad.AddColorStop(0, gradientFrom)
	grad.AddColorStop(1, gradientTo)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, VideoWidth, VideoHeight)
	dc.Fill()

	dc.DrawRoundedRectangle(20, 20, 1880, 1040, 50)
	dc.Clip()
	dc.DrawImage(imagepkg.BlurredFill(bg, VideoWidth, VideoHeight, 10), 0, 0)
	dc.ResetClip()

	imagepkg.FillRoundedRect(dc, 20, 20, 620, 1040, 50, panelColor)
	imagepkg.DrawRoundedCover(dc, cover, 75, 495, 510, 510, 50)
	imagepkg.StrokeRoundedRect(dc, 75, 495, 510, 510, 50, 10, white)
	imagepkg.StrokeRoundedRect(dc, 20, 20, 1880, 1040, 50, 10, white)

	md := info.Metadata
	line := func(v string, y, size float64, w fonts.Weight) {
		p.paragraph(text.Paragraph{
			Text: v, X: videoTextX, Y: y,
			Families: videoFamilies, Size: size, Weight: w,
			Color: white, MaxWidth: videoTextMax,
		})
	}
	line(md.SongAuthorName, 95, 48, fonts.Regular)
	line(md.SongName, 160, 56, fonts.Bold)
	line(md.SongSubName, 220, 48, fonts.Regular)
	line(info.MapperLine(), 295, 40, fonts.Regular)

	if rating != "" {
		face, err := p.face(videoFamilies[0], fonts.Bold, false, 48)
		if err != nil {
			return nil, err
		}
		imagepkg.FillRoundedRect(dc, 75, 360, 510, 100, 25, diff.Color())
		label := ratingLabel{
			face:     face,
			baseline: 425,
			gap:      8,
			starSpan: 40,
			starR:    20,
			starY:    410,
		}
		display := diff.Name() + " " + rating
		p.drawRatingCentered(display, videoBoxCX, label, beatmap.IsSentinel(rating))
	}

	dc.SetColor(diff.Color())
	for _, pt := range DividerDots() {
		dc.DrawCircle(pt.X, pt.Y, dividerR)
		dc.Fill()
	}

	if p.err != nil {
		return nil, p.err
	}
	return s, nil
}
