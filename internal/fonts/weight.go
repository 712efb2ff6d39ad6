package fonts

import (
	"strconv"
	"strings"
)

// Weight is a font weight class.
type Weight int

const (
	Thin     Weight = 100
	Light    Weight = 300
	Regular  Weight = 400
	Medium   Weight = 500
	SemiBold Weight = 600
	Bold     Weight = 700
	Heavy    Weight = 800
)

// WeightFromValue buckets a numeric CSS-style weight into a Weight.
func WeightFromValue(v int) Weight {
	switch {
	case v <= 100:
		return Thin
	case v <= 300:
		return Light
	case v <= 400:
		return Regular
	case v <= 500:
		return Medium
	case v <= 600:
		return SemiBold
	case v <= 700:
		return Bold
	default:
		return Heavy
	}
}

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case Light:
		return "Light"
	case Regular:
		return "Regular"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case Heavy:
		return "Heavy"
	}
	return "Weight(" + strconv.Itoa(int(w)) + ")"
}

// styleKeywords is checked in order; compound names come before their suffixes.
var styleKeywords = []struct {
	word   string
	weight Weight
}{
	{"extralight", Light},
	{"ultralight", Light},
	{"hairline", Thin},
	{"thin", Thin},
	{"light", Light},
	{"semibold", SemiBold},
	{"demibold", SemiBold},
	{"extrabold", Heavy},
	{"ultrabold", Heavy},
	{"black", Heavy},
	{"heavy", Heavy},
	{"bold", Bold},
	{"medium", Medium},
}

// ParseStyle reads weight and slant out of a subfamily name such as "SemiBold Italic".
func ParseStyle(subfamily string) (Weight, bool) {
	s := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(subfamily))
	italic := strings.Contains(s, "italic") || strings.Contains(s, "oblique")
	for _, k := range styleKeywords {
		if strings.Contains(s, k.word) {
			return k.weight, italic
		}
	}
	return Regular, italic
}
