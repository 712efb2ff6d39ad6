// Command mapcards renders thumbnails and cards to PNG files.
//
// Usage:
//
//	mapcards batch    -bg <image> -month <name> -o out.png
//	mapcards playlist -bg <image> -month <name> -o out.png
//	mapcards card     -map map.json [-ratings ratings.json] [-background] -o out.png
//	mapcards reweight -map map.json -old old.json -new new.json -diff EXP -o out.png
//	mapcards video    -map map.json -diff EXP [-ratings ratings.json] [-bg <image>] -o out.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/youruser/mapcards/internal/app"
	"github.com/youruser/mapcards/internal/beatmap"
	"github.com/youruser/mapcards/internal/config"
	imagepkg "github.com/youruser/mapcards/internal/image"
	"github.com/youruser/mapcards/internal/logger"
	"github.com/youruser/mapcards/internal/render"
)

var errUsage = errors.New("usage: mapcards <batch|playlist|card|reweight|video> [flags]")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	lg, err := logger.New(logger.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		return err
	}
	defer lg.Sync()
	logger.Set(lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, rest := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	out := fs.String("o", cmd+".png", "output PNG path")
	bg := fs.String("bg", "", "background image: URL, data URL or file path")
	month := fs.String("month", "", "month label")
	mapPath := fs.String("map", "", "map info JSON file")
	ratingsPath := fs.String("ratings", "", "ratings JSON file")
	oldPath := fs.String("old", "", "ratings before the reweight")
	newPath := fs.String("new", "", "ratings after the reweight")
	diffName := fs.String("diff", "", "difficulty: ES, NOR, HARD, EX or EXP")
	useBackground := fs.Bool("background", false, "blur the cover behind the card")
	x := fs.Float64("x", 0, "background offset x")
	y := fs.Float64("y", 0, "background offset y")
	scale := fs.Float64("scale", 1, "background scale")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	r := app.New(cfg, lg, app.AnyLocalFile()).Renderer
	var url string
	switch cmd {
	case "batch", "playlist":
		if *bg == "" {
			return fmt.Errorf("%s: -bg is required", cmd)
		}
		t := &render.Transform{X: *x, Y: *y, Scale: scale}
		if cmd == "batch" {
			url, err = r.BatchThumbnail(ctx, *bg, *month, t)
		} else {
			url, err = r.PlaylistThumbnail(ctx, *bg, *month, t)
		}
	case "card":
		var info *beatmap.MapInfo
		var ratings beatmap.RatingSet
		if info, err = loadMap(*mapPath); err != nil {
			return err
		}
		if ratings, err = loadRatings(*ratingsPath); err != nil {
			return err
		}
		url, err = r.Card(ctx, info, ratings, *useBackground)
	case "reweight":
		var info *beatmap.MapInfo
		var oldRatings, newRatings beatmap.RatingSet
		var diff beatmap.Difficulty
		if info, err = loadMap(*mapPath); err != nil {
			return err
		}
		if oldRatings, err = loadRatings(*oldPath); err != nil {
			return err
		}
		if newRatings, err = loadRatings(*newPath); err != nil {
			return err
		}
		if diff, err = beatmap.ParseDifficulty(*diffName); err != nil {
			return err
		}
		url, err = r.ReweightCard(ctx, info, oldRatings, newRatings, diff)
	case "video":
		var info *beatmap.MapInfo
		var ratings beatmap.RatingSet
		var diff beatmap.Difficulty
		if info, err = loadMap(*mapPath); err != nil {
			return err
		}
		if ratings, err = loadRatings(*ratingsPath); err != nil {
			return err
		}
		if diff, err = beatmap.ParseDifficulty(*diffName); err != nil {
			return err
		}
		url, err = r.VideoThumbnail(ctx, info, diff, ratings, *bg)
	default:
		return errUsage
	}
	if err != nil {
		return err
	}

	n, err := imagepkg.SaveDataURL(*out, url)
	if err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	lg.Info("wrote image", zap.String("path", *out), zap.String("size", humanize.Bytes(uint64(n))))
	return nil
}

func loadMap(path string) (*beatmap.MapInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: -map is required", beatmap.ErrMalformedInput)
	}
	return beatmap.LoadFile(path)
}

// loadRatings treats a missing path as an empty rating set.
func loadRatings(path string) (beatmap.RatingSet, error) {
	if path == "" {
		return beatmap.RatingSet{}, nil
	}
	return beatmap.LoadRatingsFile(path)
}
