package beatmap

import (
	"encoding/json"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMap = `{
  "id": "3f1a2",
  "metadata": {
    "songAuthorName": "Camellia",
    "songName": "Ghost",
    "songSubName": "",
    "levelAuthorName": "Nixie",
    "duration": 185,
    "bpm": 172.6
  },
  "versions": [{"coverURL": "https://cdn.example/cover.jpg", "hash": "abc123"}]
}`

func TestDecode(t *testing.T) {
	m, err := Decode(strings.NewReader(sampleMap))
	require.NoError(t, err)
	assert.Equal(t, "3f1a2", m.ID)
	assert.Equal(t, "Ghost", m.Metadata.SongName)
	require.NotNil(t, m.Metadata.Duration)
	assert.Equal(t, 185, *m.Metadata.Duration)
	require.NotNil(t, m.Metadata.BPM)
	assert.Equal(t, "173", FormatBPM(*m.Metadata.BPM))
	assert.Equal(t, "abc123", m.Hash())
	assert.Equal(t, "Mapped by Nixie", m.MapperLine())

	cover, err := m.CoverURL()
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/cover.jpg", cover)
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{`{"id": 12}`, `not json`, `{"versions": {}}`} {
		_, err := Decode(strings.NewReader(in))
		assert.True(t, errors.Is(err, ErrMalformedInput), in)
	}
}

func TestCoverURLMissing(t *testing.T) {
	m := &MapInfo{ID: "x"}
	_, err := m.CoverURL()
	assert.True(t, errors.Is(err, ErrMissingCover))

	m.Versions = []Version{{Hash: "h"}}
	_, err = m.CoverURL()
	assert.True(t, errors.Is(err, ErrMissingCover))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleMap), 0o644))
	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Camellia", m.Metadata.SongAuthorName)

	rpath := filepath.Join(dir, "ratings.json")
	require.NoError(t, os.WriteFile(rpath, []byte(`{"EX": 7.1}`), 0o644))
	rs, err := LoadRatingsFile(rpath)
	require.NoError(t, err)
	assert.Equal(t, "7.1", rs[Expert])
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(0))
	assert.Equal(t, "3:05", FormatDuration(185))
	assert.Equal(t, "61:01", FormatDuration(3661))
	assert.Equal(t, "0:00", FormatDuration(-4))
}

func TestRatingSetJSON(t *testing.T) {
	var rs RatingSet
	err := json.Unmarshal([]byte(`{"ES":"Unranked","NOR":null,"hard":5.2,"EX":"","EXP":"12.04","XX":"1"}`), &rs)
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Easy, "Unranked"},
		{Hard, "5.2"},
		{ExpertPlus, "12.04"},
	}, rs.Present())

	_, ok := rs.Get(Expert)
	assert.False(t, ok)

	err = json.Unmarshal([]byte(`{"ES": true}`), &rs)
	assert.True(t, errors.Is(err, ErrMalformedInput))
}

func TestEmptyRatingsHaveNoEntries(t *testing.T) {
	assert.Empty(t, RatingSet{}.Present())
	assert.Empty(t, RatingSet{Easy: "", Hard: "  "}.Present())
}

func TestSentinelsAndStars(t *testing.T) {
	assert.True(t, IsSentinel("Unranked"))
	assert.True(t, IsSentinel("Qualified"))
	assert.False(t, IsSentinel("6.8"))
	assert.False(t, IsSentinel("unranked"))

	assert.Equal(t, 6.8, ParseStars("6.8"))
	assert.Zero(t, ParseStars("Unranked"))
	assert.Zero(t, ParseStars("NaN"))

	assert.Equal(t, "Qualified", FormatStars(0, true))
	assert.Equal(t, "Unranked", FormatStars(0, false))
	assert.Equal(t, "6.82", FormatStars(6.82, false))
}

func TestDifficulty(t *testing.T) {
	d, err := ParseDifficulty("exp")
	require.NoError(t, err)
	assert.Equal(t, ExpertPlus, d)
	assert.Equal(t, "Expert+", d.Name())
	assert.Equal(t, 9, d.ScoreSaberID())
	assert.Equal(t, color.NRGBA{126, 34, 206, 255}, d.Color())

	assert.Equal(t, color.NRGBA{22, 163, 74, 255}, Easy.Color())
	assert.Equal(t, color.NRGBA{59, 130, 246, 255}, Normal.Color())
	assert.Equal(t, color.NRGBA{249, 115, 22, 255}, Hard.Color())
	assert.Equal(t, color.NRGBA{220, 38, 38, 255}, Expert.Color())
	assert.Equal(t, color.NRGBA{136, 136, 136, 255}, Difficulty("??").Color())
	assert.Empty(t, Difficulty("??").Name())

	_, err = ParseDifficulty("legendary")
	assert.True(t, errors.Is(err, ErrMalformedInput))
}
