package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/parkgrid/citations-backend-go/internal/config"
	"github.com/parkgrid/citations-backend-go/internal/handler"
	"github.com/parkgrid/citations-backend-go/internal/middleware"
)

// Handlers groups the route handlers wired by SetupRouter.
type Handlers struct {
	Citations *handler.CitationHandler
	Stats     *handler.StatsHandler
	Density   *handler.DensityHandler
	Rate      *handler.RateHandler
	Ingest    *handler.IngestHandler
}

// SetupRouter wires middleware and routes.
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Citation density API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		api.GET("/citations", h.Citations.List)
		api.GET("/stats/summary", h.Stats.Summary)

		api.GET("/density", h.Density.Grid)
		api.GET("/density/image.png", h.Density.Image)

		api.GET("/rate", h.Rate.Estimate)
		api.GET("/nearby", h.Rate.Nearby)

		ingest := api.Group("/ingest")
		{
			ingest.GET("/tasks", h.Ingest.ListTasks)
			ingest.GET("/tasks/:id", h.Ingest.GetTask)

			protected := ingest.Group("")
			protected.Use(middleware.RequireJWT(cfg.JWTSecret))
			{
				protected.POST("/raw", h.Ingest.CreateRaw)
				protected.POST("/reduced", h.Ingest.CreateReduced)
			}
		}
	}

	return r
}
