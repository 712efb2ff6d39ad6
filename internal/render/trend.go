package render

import (
	"image/color"

	"github.com/youruser/mapcards/internal/beatmap"
)

// Trend is the direction of a rating change.
type Trend int

const (
	Neutral Trend = iota
	Buff
	Nerf
)

const glowAlpha = 26

var neutralGray = color.NRGBA{136, 136, 136, 255}

// TrendOf compares two rating labels numerically; non-numeric labels count as 0.
func TrendOf(oldRating, newRating string) Trend {
	o, n := beatmap.ParseStars(oldRating), beatmap.ParseStars(newRating)
	switch {
	case n > o:
		return Buff
	case n < o:
		return Nerf
	}
	return Neutral
}

// Color is the accent of the trend.
func (t Trend) Color() color.NRGBA {
	switch t {
	case Buff:
		return beatmap.Easy.Color()
	case Nerf:
		return beatmap.Expert.Color()
	}
	return neutralGray
}

// GlowColor is the faint backdrop tint of the trend.
func (t Trend) GlowColor() color.NRGBA {
	return beatmap.WithAlpha(t.Color(), glowAlpha)
}

func (t Trend) String() string {
	switch t {
	case Buff:
		return "buff"
	case Nerf:
		return "nerf"
	}
	return "neutral"
}
