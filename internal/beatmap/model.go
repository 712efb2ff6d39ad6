package beatmap

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrMissingCover   = errors.New("map has no cover image")
)

// MapInfo is the subset of a BeatSaver map document the generators read.
type MapInfo struct {
	ID       string    `json:"id"`
	Metadata Metadata  `json:"metadata"`
	Versions []Version `json:"versions"`
}

type Metadata struct {
	SongAuthorName  string   `json:"songAuthorName"`
	SongName        string   `json:"songName"`
	SongSubName     string   `json:"songSubName,omitempty"`
	LevelAuthorName string   `json:"levelAuthorName"`
	Duration        *int     `json:"duration,omitempty"`
	BPM             *float64 `json:"bpm,omitempty"`
}

type Version struct {
	CoverURL string `json:"coverURL"`
	Hash     string `json:"hash"`
}

// CoverURL returns the cover of the first version.
func (m *MapInfo) CoverURL() (string, error) {
	if len(m.Versions) == 0 || m.Versions[0].CoverURL == "" {
		return "", fmt.Errorf("map %q: %w", m.ID, ErrMissingCover)
	}
	return m.Versions[0].CoverURL, nil
}

// Hash returns the hash of the first version, or "".
func (m *MapInfo) Hash() string {
	if len(m.Versions) == 0 {
		return ""
	}
	return m.Versions[0].Hash
}

// MapperLine is the credit line shown under the titles.
func (m *MapInfo) MapperLine() string {
	return "Mapped by " + m.Metadata.LevelAuthorName
}

// FormatDuration renders seconds as m:ss.
func FormatDuration(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// FormatBPM renders a tempo without decimals.
func FormatBPM(bpm float64) string {
	return fmt.Sprintf("%.0f", bpm)
}
