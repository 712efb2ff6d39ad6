package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewEngine builds the gin engine with logging, recovery and all routes.
func NewEngine(h *Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(log), gin.Recovery())
	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/qr", qrHandler)

		api.POST("/thumbnails/batch", h.batchThumbnail)
		api.POST("/thumbnails/playlist", h.playlistThumbnail)
		api.POST("/thumbnails/video", h.videoThumbnail)
		api.POST("/cards", h.card)
		api.POST("/cards/reweight", h.reweightCard)
		api.POST("/images/inline", h.inlineImage)

		api.GET("/maps/id/:id", h.mapByID)
		api.GET("/maps/id/:id/qr", mapQR)
		api.GET("/maps/hash/:hash", h.mapByHash)
		api.GET("/maps/hash/:hash/ratings", h.mapRatings)
	}
}
