package beatmap

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Difficulty is one of the five standard difficulty slots.
type Difficulty string

const (
	Easy       Difficulty = "ES"
	Normal     Difficulty = "NOR"
	Hard       Difficulty = "HARD"
	Expert     Difficulty = "EX"
	ExpertPlus Difficulty = "EXP"
)

// Difficulties lists the slots in display order.
var Difficulties = []Difficulty{Easy, Normal, Hard, Expert, ExpertPlus}

type difficultyInfo struct {
	name       string
	hex        string
	scoreSaber int
}

var difficultyTable = map[Difficulty]difficultyInfo{
	Easy:       {"Easy", "#16a34a", 1},
	Normal:     {"Normal", "#3b82f6", 3},
	Hard:       {"Hard", "#f97316", 5},
	Expert:     {"Expert", "#dc2626", 7},
	ExpertPlus: {"Expert+", "#7e22ce", 9},
}

const unknownHex = "#888888"

// ParseDifficulty accepts a slot key in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := difficultyTable[d]; !ok {
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrMalformedInput, s)
	}
	return d, nil
}

func (d Difficulty) Valid() bool {
	_, ok := difficultyTable[d]
	return ok
}

// Name is the display name, or "" for unknown keys.
func (d Difficulty) Name() string {
	return difficultyTable[d].name
}

// Color is the accent color of the slot; unknown keys are gray.
func (d Difficulty) Color() color.NRGBA {
	hex := unknownHex
	if info, ok := difficultyTable[d]; ok {
		hex = info.hex
	}
	return toNRGBA(colorful.MustParseHex(hex), 255)
}

// ScoreSaberID is the leaderboard difficulty number, or 0 for unknown keys.
func (d Difficulty) ScoreSaberID() int {
	return difficultyTable[d].scoreSaber
}

func toNRGBA(c colorful.Color, alpha uint8) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

// WithAlpha returns col with its alpha replaced.
func WithAlpha(col color.NRGBA, alpha uint8) color.NRGBA {
	col.A = alpha
	return col
}
