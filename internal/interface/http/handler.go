package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fitr-app/fitr-backend/internal/domain/outfit"
	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
	"github.com/fitr-app/fitr-backend/internal/domain/weather"
	"github.com/fitr-app/fitr-backend/internal/infra/config"
	apperrors "github.com/fitr-app/fitr-backend/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	outfitSvc    outfit.Service
	wardrobeRepo wardrobe.Repository
	history      outfit.History
	cache        outfit.Cache
	weatherProv  weather.Provider
	cfg          *config.Config
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(
	outfitSvc outfit.Service,
	wardrobeRepo wardrobe.Repository,
	history outfit.History,
	cache outfit.Cache,
	weatherProv weather.Provider,
	cfg *config.Config,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		outfitSvc:    outfitSvc,
		wardrobeRepo: wardrobeRepo,
		history:      history,
		cache:        cache,
		weatherProv:  weatherProv,
		cfg:          cfg,
		logger:       logger.With("component", "http.handler"),
	}
}

type recommendRequest struct {
	OwnerID string            `json:"ownerId"`
	Vibe    string            `json:"vibe"`
	Weather *weather.Snapshot `json:"weather"`
	City    string            `json:"city"`
	Lat     *float64          `json:"lat"`
	Lon     *float64          `json:"lon"`
}

// RecommendOutfit produces an outfit for the owner's current wardrobe and
// weather, serving from the per-owner cache when possible.
func (h *Handler) RecommendOutfit(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if strings.TrimSpace(req.OwnerID) == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "ownerId is required", nil))
		return
	}

	ctx := c.Request.Context()

	if cached, ok, err := h.cache.Get(ctx, req.OwnerID, req.Vibe); err != nil {
		h.logger.Warn("recommendation cache read failed", "owner", req.OwnerID, "error", err)
	} else if ok {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, cached)
		return
	}

	snap := h.resolveWeather(c, req)

	items, err := h.wardrobeRepo.ListClean(ctx, req.OwnerID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "wardrobe_error", "could not load wardrobe", err))
		return
	}

	result, err := h.outfitSvc.Recommend(ctx, outfit.Request{
		OwnerID: req.OwnerID,
		Vibe:    req.Vibe,
		Weather: snap,
		Items:   items,
	})
	if err != nil {
		status := http.StatusInternalServerError
		code := "recommendation_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "insufficient_wardrobe"):
			status = http.StatusUnprocessableEntity
			code = "insufficient_wardrobe"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	if err := h.history.Save(ctx, result); err != nil {
		h.logger.Warn("outfit history save failed", "owner", req.OwnerID, "error", err)
	}
	if err := h.cache.Put(ctx, result, h.cfg.Recommendation.CacheTTL); err != nil {
		h.logger.Warn("recommendation cache write failed", "owner", req.OwnerID, "error", err)
	}

	c.JSON(http.StatusOK, result)
}

// resolveWeather prefers the snapshot the client supplied, otherwise asks the
// provider. A provider outage degrades to the neutral default snapshot so a
// recommendation is still produced.
func (h *Handler) resolveWeather(c *gin.Context, req recommendRequest) weather.Snapshot {
	if req.Weather != nil {
		return *req.Weather
	}

	q := weather.Query{City: req.City}
	if req.Lat != nil && req.Lon != nil {
		q.Lat, q.Lon = *req.Lat, *req.Lon
		q.HasCoords = true
	}
	if q.City == "" && !q.ByCoordinates() {
		q.City = h.cfg.Weather.DefaultLocation
	}
	snap, err := h.weatherProv.Current(c.Request.Context(), q)
	if err != nil {
		h.logger.Warn("weather lookup failed, using default snapshot", "owner", req.OwnerID, "error", err)
		return weather.DefaultSnapshot(h.cfg.Weather.DefaultLocation, time.Now())
	}
	return snap
}

// ListOutfits returns the owner's recommendation history, newest first.
func (h *Handler) ListOutfits(c *gin.Context) {
	ownerID := c.Query("ownerId")
	if ownerID == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "ownerId is required", nil))
		return
	}
	outfits, err := h.history.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "history_error", "could not load outfit history", err))
		return
	}
	if outfits == nil {
		outfits = []outfit.Outfit{}
	}
	c.JSON(http.StatusOK, gin.H{"outfits": outfits})
}

// CurrentWeather returns the current snapshot by city or coordinates.
func (h *Handler) CurrentWeather(c *gin.Context) {
	q := weather.Query{City: c.Query("city")}
	if q.City == "" {
		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
		if latErr != nil || lonErr != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "city or lat/lon is required", nil))
			return
		}
		q.Lat, q.Lon = lat, lon
		q.HasCoords = true
	}

	snap, err := h.weatherProv.Current(c.Request.Context(), q)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadGateway, "weather_error", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ListWardrobe returns the owner's items, optionally including soiled ones.
func (h *Handler) ListWardrobe(c *gin.Context) {
	ownerID := c.Query("ownerId")
	if ownerID == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "ownerId is required", nil))
		return
	}

	var (
		items []wardrobe.ClothingItem
		err   error
	)
	if c.Query("includeSoiled") == "true" {
		items, err = h.wardrobeRepo.ListAll(c.Request.Context(), ownerID)
	} else {
		items, err = h.wardrobeRepo.ListClean(c.Request.Context(), ownerID)
	}
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "wardrobe_error", "could not load wardrobe", err))
		return
	}
	if items == nil {
		items = []wardrobe.ClothingItem{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddWardrobeItem stores a new clothing item and invalidates cached
// recommendations for the owner.
func (h *Handler) AddWardrobeItem(c *gin.Context) {
	var item wardrobe.ClothingItem
	if err := c.ShouldBindJSON(&item); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if strings.TrimSpace(item.OwnerID) == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "user_id is required", nil))
		return
	}
	if !item.Type.Valid() {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "unknown clothing type", nil))
		return
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	if err := h.wardrobeRepo.Save(c.Request.Context(), item); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "wardrobe_error", "could not save item", err))
		return
	}
	h.invalidateRecommendations(c, item.OwnerID)
	c.JSON(http.StatusCreated, item)
}

// DeleteWardrobeItem removes one item from the owner's wardrobe.
func (h *Handler) DeleteWardrobeItem(c *gin.Context) {
	ownerID := c.Query("ownerId")
	if ownerID == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "ownerId is required", nil))
		return
	}
	if err := h.wardrobeRepo.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "wardrobe_error", "could not delete item", err))
		return
	}
	h.invalidateRecommendations(c, ownerID)
	c.Status(http.StatusNoContent)
}

// SoilWardrobeItem flags an item as laundry; it disappears from
// recommendations until washed.
func (h *Handler) SoilWardrobeItem(c *gin.Context) {
	ownerID := c.Query("ownerId")
	if ownerID == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "ownerId is required", nil))
		return
	}
	if err := h.wardrobeRepo.SetSoiled(c.Request.Context(), ownerID, c.Param("id"), true); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "wardrobe_error", "could not update item", err))
		return
	}
	h.invalidateRecommendations(c, ownerID)
	c.Status(http.StatusNoContent)
}

// ListLaundry returns the owner's soiled items.
func (h *Handler) ListLaundry(c *gin.Context) {
	ownerID := c.Query("ownerId")
	if ownerID == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "ownerId is required", nil))
		return
	}
	items, err := h.wardrobeRepo.ListSoiled(c.Request.Context(), ownerID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "wardrobe_error", "could not load laundry", err))
		return
	}
	if items == nil {
		items = []wardrobe.ClothingItem{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// WashLaundry marks every soiled item clean again.
func (h *Handler) WashLaundry(c *gin.Context) {
	var req struct {
		OwnerID string `json:"ownerId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if strings.TrimSpace(req.OwnerID) == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "ownerId is required", nil))
		return
	}
	washed, err := h.wardrobeRepo.WashAll(c.Request.Context(), req.OwnerID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "wardrobe_error", "could not wash items", err))
		return
	}
	h.invalidateRecommendations(c, req.OwnerID)
	c.JSON(http.StatusOK, gin.H{"washed": washed})
}

// invalidateRecommendations drops cached outfits after a wardrobe mutation so
// stale items never resurface.
func (h *Handler) invalidateRecommendations(c *gin.Context, ownerID string) {
	if err := h.cache.Invalidate(c.Request.Context(), ownerID); err != nil {
		h.logger.Warn("recommendation cache invalidation failed", "owner", ownerID, "error", err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
