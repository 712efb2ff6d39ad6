// Package app wires the rendering and lookup services from a Config.
package app

import (
	"go.uber.org/zap"

	"github.com/youruser/mapcards/internal/config"
	"github.com/youruser/mapcards/internal/fonts"
	imagepkg "github.com/youruser/mapcards/internal/image"
	"github.com/youruser/mapcards/internal/lookup"
	"github.com/youruser/mapcards/internal/render"
	"github.com/youruser/mapcards/internal/util"
)

type App struct {
	Renderer   *render.Renderer
	BeatSaver  *lookup.BeatSaver
	ScoreSaber *lookup.ScoreSaber
	Fetcher    *imagepkg.Fetcher
}

type Option func(*settings)

type settings struct {
	anyFile bool
}

// AnyLocalFile lets image sources name any readable path, ignoring
// assets.root. The command-line tool uses it.
func AnyLocalFile() Option {
	return func(s *settings) { s.anyFile = true }
}

// New builds the services. Font directories that fail to load and a broken
// logo file are logged and skipped; nothing here is fatal.
//
// File sources are limited to assets.root, and refused when it is unset.
func New(cfg *config.Config, log *zap.Logger, opts ...Option) *App {
	var set settings
	for _, opt := range opts {
		opt(&set)
	}
	client := util.NewHTTPClient(cfg.FetchTimeout(), cfg.UserAgent())

	var fetchOpts []imagepkg.FetcherOption
	switch {
	case set.anyFile:
		fetchOpts = append(fetchOpts, imagepkg.WithFileRoot(""))
	case cfg.Assets.Root != "":
		fetchOpts = append(fetchOpts, imagepkg.WithFileRoot(cfg.Assets.Root))
	}
	fetcher := imagepkg.NewFetcher(client, fetchOpts...)

	reg := fonts.NewRegistry()
	for _, dir := range cfg.Fonts.Dirs {
		n, err := reg.RegisterDir(dir)
		if err != nil {
			log.Warn("some fonts failed to load", zap.String("dir", dir), zap.Error(err))
		}
		log.Info("registered fonts", zap.String("dir", dir), zap.Int("count", n))
	}
	var fontOpts []fonts.Option
	if cfg.UseSystemFonts() {
		fontOpts = append(fontOpts, fonts.WithSystemFonts(fonts.NewSystemFonts()))
	}

	return &App{
		Renderer: render.New(render.Options{
			Fetcher: fetcher,
			Fonts:   fonts.NewResolver(reg, fontOpts...),
			Logo:    loadLogo(cfg.Assets.Logo, log),
			Logger:  log,
		}),
		BeatSaver:  lookup.NewBeatSaver(client, lookup.DefaultBeatSaverURL, log),
		ScoreSaber: lookup.NewScoreSaber(client, lookup.DefaultScoreSaberURL, log),
		Fetcher:    fetcher,
	}
}

func loadLogo(path string, log *zap.Logger) *imagepkg.Logo {
	if path != "" {
		logo, err := imagepkg.LoadLogo(path)
		if err == nil {
			return logo
		}
		log.Warn("custom logo unusable, falling back to built-in", zap.String("path", path), zap.Error(err))
	}
	logo, err := imagepkg.DefaultLogo()
	if err != nil {
		log.Error("built-in logo failed to rasterize", zap.Error(err))
		return nil
	}
	return logo
}
