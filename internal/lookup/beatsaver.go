// Package lookup fetches map documents and star ratings from public services.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/youruser/mapcards/internal/beatmap"
	"github.com/youruser/mapcards/internal/util"
)

const (
	DefaultBeatSaverURL  = "https://api.beatsaver.com"
	DefaultScoreSaberURL = "https://scoresaber.com/api"
)

var ErrNotFound = errors.New("not found")

// BeatSaver reads map documents.
type BeatSaver struct {
	http       *util.HTTPClient
	base       string
	maxRetries int
	retryDelay time.Duration
	log        *zap.Logger
}

func NewBeatSaver(client *util.HTTPClient, base string, log *zap.Logger) *BeatSaver {
	if base == "" {
		base = DefaultBeatSaverURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BeatSaver{
		http:       client,
		base:       strings.TrimSuffix(base, "/"),
		maxRetries: 3,
		retryDelay: 2 * time.Second,
		log:        log,
	}
}

// SetRetry changes how rate-limited requests are retried.
func (b *BeatSaver) SetRetry(max int, delay time.Duration) {
	b.maxRetries = max
	b.retryDelay = delay
}

func (b *BeatSaver) MapByID(ctx context.Context, id string) (*beatmap.MapInfo, error) {
	return b.get(ctx, "/maps/id/"+url.PathEscape(id))
}

func (b *BeatSaver) MapByHash(ctx context.Context, hash string) (*beatmap.MapInfo, error) {
	return b.get(ctx, "/maps/hash/"+url.PathEscape(strings.ToLower(hash)))
}

func (b *BeatSaver) get(ctx context.Context, path string) (*beatmap.MapInfo, error) {
	var m beatmap.MapInfo
	for attempt := 0; ; attempt++ {
		err := b.http.GetJSON(ctx, b.base+path, &m)
		if err == nil {
			return &m, nil
		}
		var se *util.StatusError
		if errors.As(err, &se) {
			switch {
			case se.Code == http.StatusNotFound:
				return nil, fmt.Errorf("beatsaver %s: %w", path, ErrNotFound)
			case se.Code == http.StatusTooManyRequests && attempt < b.maxRetries:
				b.log.Warn("beatsaver rate limited, retrying",
					zap.String("path", path),
					zap.Int("attempt", attempt+1),
					zap.Duration("delay", b.retryDelay))
				if err := sleep(ctx, b.retryDelay); err != nil {
					return nil, err
				}
				continue
			}
		}
		return nil, fmt.Errorf("beatsaver %s: %w", path, err)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
