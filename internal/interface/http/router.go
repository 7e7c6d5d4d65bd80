package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitr-app/fitr-backend/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/outfits/recommendations", handler.RecommendOutfit)
		api.GET("/outfits", handler.ListOutfits)
		api.GET("/weather", handler.CurrentWeather)

		api.GET("/wardrobe", handler.ListWardrobe)
		api.POST("/wardrobe/items", handler.AddWardrobeItem)
		api.DELETE("/wardrobe/items/:id", handler.DeleteWardrobeItem)
		api.POST("/wardrobe/items/:id/soil", handler.SoilWardrobeItem)

		api.GET("/laundry", handler.ListLaundry)
		api.POST("/laundry/wash", handler.WashLaundry)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
