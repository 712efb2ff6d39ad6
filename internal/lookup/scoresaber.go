package lookup

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/youruser/mapcards/internal/beatmap"
	"github.com/youruser/mapcards/internal/util"
)

// ScoreSaber reads ranked star values from leaderboards.
type ScoreSaber struct {
	http *util.HTTPClient
	base string
	log  *zap.Logger
}

func NewScoreSaber(client *util.HTTPClient, base string, log *zap.Logger) *ScoreSaber {
	if base == "" {
		base = DefaultScoreSaberURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ScoreSaber{http: client, base: strings.TrimSuffix(base, "/"), log: log}
}

type leaderboardInfo struct {
	Stars     float64 `json:"stars"`
	Qualified bool    `json:"qualified"`
	Ranked    bool    `json:"ranked"`
}

// Rating returns the label of one difficulty of a map.
func (s *ScoreSaber) Rating(ctx context.Context, hash string, d beatmap.Difficulty) (string, error) {
	if !d.Valid() {
		return "", fmt.Errorf("%w: unknown difficulty %q", beatmap.ErrMalformedInput, d)
	}
	u := fmt.Sprintf("%s/leaderboard/by-hash/%s/info?difficulty=%d", s.base, strings.ToLower(hash), d.ScoreSaberID())
	var info leaderboardInfo
	if err := s.http.GetJSON(ctx, u, &info); err != nil {
		return "", fmt.Errorf("scoresaber %s %s: %w", hash, d, err)
	}
	return beatmap.FormatStars(info.Stars, info.Qualified), nil
}

// Ratings queries every difficulty concurrently. Difficulties that fail to
// load are left out of the result.
func (s *ScoreSaber) Ratings(ctx context.Context, hash string) beatmap.RatingSet {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = beatmap.RatingSet{}
	)
	for _, d := range beatmap.Difficulties {
		wg.Add(1)
		go func(d beatmap.Difficulty) {
			defer wg.Done()
			v, err := s.Rating(ctx, hash, d)
			if err != nil {
				s.log.Debug("no rating", zap.String("hash", hash), zap.String("difficulty", string(d)), zap.Error(err))
				return
			}
			mu.Lock()
			out[d] = v
			mu.Unlock()
		}(d)
	}
	wg.Wait()
	return out
}
