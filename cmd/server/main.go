package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/mapcards/internal/api"
	"github.com/youruser/mapcards/internal/app"
	"github.com/youruser/mapcards/internal/config"
	"github.com/youruser/mapcards/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("loading config: ", err)
	}
	lg, err := logger.New(logger.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		log.Fatal("building logger: ", err)
	}
	defer lg.Sync()
	logger.Set(lg)

	a := app.New(cfg, lg)

	gin.SetMode(cfg.GinMode())
	r := api.NewEngine(api.NewHandler(a.Renderer, a.Fetcher, a.BeatSaver, a.ScoreSaber), lg)

	addr := cfg.ListenAddr()
	lg.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Fatal("server stopped", zap.Error(err))
	}
}
