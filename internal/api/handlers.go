package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/mapcards/internal/beatmap"
	imagepkg "github.com/youruser/mapcards/internal/image"
	"github.com/youruser/mapcards/internal/lookup"
	"github.com/youruser/mapcards/internal/render"
)

const (
	defaultQRSize = 400
	maxQRSize     = 2048
)

type MapSource interface {
	MapByID(ctx context.Context, id string) (*beatmap.MapInfo, error)
	MapByHash(ctx context.Context, hash string) (*beatmap.MapInfo, error)
}

type RatingSource interface {
	Ratings(ctx context.Context, hash string) beatmap.RatingSet
}

// Handler serves the image and lookup endpoints.
type Handler struct {
	renderer *render.Renderer
	fetcher  *imagepkg.Fetcher
	maps     MapSource
	ratings  RatingSource
}

func NewHandler(r *render.Renderer, fetcher *imagepkg.Fetcher, maps MapSource, ratings RatingSource) *Handler {
	return &Handler{renderer: r, fetcher: fetcher, maps: maps, ratings: ratings}
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusFor maps the error taxonomy to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, beatmap.ErrMalformedInput), errors.Is(err, beatmap.ErrMissingCover):
		return http.StatusBadRequest
	case errors.Is(err, lookup.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, imagepkg.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, imagepkg.ErrDecode):
		return http.StatusUnprocessableEntity
	case errors.Is(err, imagepkg.ErrFetch):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func respond(c *gin.Context, url string, err error) {
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dataUrl": url})
}

type thumbnailRequest struct {
	Background string            `json:"background" binding:"required"`
	Month      string            `json:"month"`
	Transform  *render.Transform `json:"transform"`
}

func (h *Handler) batchThumbnail(c *gin.Context) {
	var req thumbnailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	url, err := h.renderer.BatchThumbnail(c.Request.Context(), req.Background, req.Month, req.Transform)
	respond(c, url, err)
}

func (h *Handler) playlistThumbnail(c *gin.Context) {
	var req thumbnailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	url, err := h.renderer.PlaylistThumbnail(c.Request.Context(), req.Background, req.Month, req.Transform)
	respond(c, url, err)
}

type cardRequest struct {
	Map           *beatmap.MapInfo  `json:"map" binding:"required"`
	Ratings       beatmap.RatingSet `json:"ratings"`
	UseBackground bool              `json:"useBackground"`
}

func (h *Handler) card(c *gin.Context) {
	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	url, err := h.renderer.Card(c.Request.Context(), req.Map, req.Ratings, req.UseBackground)
	respond(c, url, err)
}

type reweightRequest struct {
	Map        *beatmap.MapInfo  `json:"map" binding:"required"`
	OldRatings beatmap.RatingSet `json:"oldRatings"`
	NewRatings beatmap.RatingSet `json:"newRatings"`
	Difficulty string            `json:"difficulty" binding:"required"`
}

func (h *Handler) reweightCard(c *gin.Context) {
	var req reweightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	diff, err := beatmap.ParseDifficulty(req.Difficulty)
	if err != nil {
		fail(c, err)
		return
	}
	url, err := h.renderer.ReweightCard(c.Request.Context(), req.Map, req.OldRatings, req.NewRatings, diff)
	respond(c, url, err)
}

type videoRequest struct {
	Map        *beatmap.MapInfo  `json:"map" binding:"required"`
	Difficulty string            `json:"difficulty" binding:"required"`
	Ratings    beatmap.RatingSet `json:"ratings"`
	Background string            `json:"background"`
}

func (h *Handler) videoThumbnail(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	diff, err := beatmap.ParseDifficulty(req.Difficulty)
	if err != nil {
		fail(c, err)
		return
	}
	url, err := h.renderer.VideoThumbnail(c.Request.Context(), req.Map, diff, req.Ratings, req.Background)
	respond(c, url, err)
}

func (h *Handler) inlineImage(c *gin.Context) {
	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	url, err := h.fetcher.InlineFile(req.Path)
	respond(c, url, err)
}

func (h *Handler) mapByID(c *gin.Context) {
	m, err := h.maps.MapByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) mapByHash(c *gin.Context) {
	m, err := h.maps.MapByHash(c.Request.Context(), c.Param("hash"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) mapRatings(c *gin.Context) {
	c.JSON(http.StatusOK, h.ratings.Ratings(c.Request.Context(), c.Param("hash")))
}

func qrSize(c *gin.Context) int {
	size := defaultQRSize
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = min(v, maxQRSize)
	}
	return size
}

// qrHandler returns a PNG QR code for the "text" query parameter.
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		badRequest(c, errors.New("missing text"))
		return
	}
	b, err := imagepkg.GenerateQRPNG(text, qrSize(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// mapQR returns a PNG QR code linking to a map page.
func mapQR(c *gin.Context) {
	b, err := imagepkg.MapQRPNG(c.Param("id"), qrSize(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
