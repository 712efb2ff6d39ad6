package beatmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	Unranked  = "Unranked"
	Qualified = "Qualified"
)

// RatingSet holds the star rating label of each difficulty. A label is a
// number like "6.82" or one of the sentinels Unranked and Qualified.
// Missing or empty entries mean the difficulty is absent.
type RatingSet map[Difficulty]string

// Entry is a present rating in display order.
type Entry struct {
	Difficulty Difficulty
	Value      string
}

// Get returns the label for d and whether it is present.
func (rs RatingSet) Get(d Difficulty) (string, bool) {
	v, ok := rs[d]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// Present lists the non-empty ratings in fixed difficulty order.
func (rs RatingSet) Present() []Entry {
	var out []Entry
	for _, d := range Difficulties {
		if v, ok := rs.Get(d); ok {
			out = append(out, Entry{Difficulty: d, Value: v})
		}
	}
	return out
}

// UnmarshalJSON accepts strings or numbers per key. Nulls and unknown keys are skipped.
func (rs *RatingSet) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: ratings: %w", ErrMalformedInput, err)
	}
	out := make(RatingSet, len(raw))
	for k, v := range raw {
		d := Difficulty(strings.ToUpper(k))
		if !d.Valid() {
			continue
		}
		v = bytes.TrimSpace(v)
		switch {
		case bytes.Equal(v, []byte("null")):
			continue
		case len(v) > 0 && v[0] == '"':
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("%w: rating %s: %w", ErrMalformedInput, k, err)
			}
			if s != "" {
				out[d] = s
			}
		default:
			var n json.Number
			if err := json.Unmarshal(v, &n); err != nil {
				return fmt.Errorf("%w: rating %s must be a string or number", ErrMalformedInput, k)
			}
			out[d] = n.String()
		}
	}
	*rs = out
	return nil
}

// IsSentinel reports whether v is a text-only label.
func IsSentinel(v string) bool {
	return v == Unranked || v == Qualified
}

// ParseStars reads a numeric label; anything else counts as 0.
func ParseStars(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// FormatStars renders a leaderboard star value, mapping 0 to the sentinels.
func FormatStars(stars float64, qualified bool) string {
	if stars == 0 {
		if qualified {
			return Qualified
		}
		return Unranked
	}
	return strconv.FormatFloat(stars, 'f', -1, 64)
}
