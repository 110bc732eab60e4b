package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mnakagawa/eatmap-backend-go/internal/config"
	"github.com/mnakagawa/eatmap-backend-go/internal/handler"
	"github.com/mnakagawa/eatmap-backend-go/internal/middleware"
	"github.com/mnakagawa/eatmap-backend-go/internal/service"
)

// SetupRouter wires the HTTP routes
func SetupRouter(cfg *config.Config, mapService *service.MapService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	mapHandler := handler.NewMapHandler(mapService)
	qrHandler := handler.NewQRHandler(cfg.AppBaseURL)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Eatmap Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/map", mapHandler.GetMap)
		api.GET("/qr", qrHandler.GetQR)
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.Auth(cfg.JWTSecret))
	{
		// backfill calls the paid geocoding API row by row
		admin.POST("/backfill", middleware.RateLimit(5, time.Minute), mapHandler.Backfill)
	}

	return r
}
