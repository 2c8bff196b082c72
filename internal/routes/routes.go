package routes

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"stays/internal/config"
	"stays/internal/handler"
	mid "stays/internal/middleware"
	"stays/internal/obs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// BuildInfo is reported by /health and /version
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the router wires together
type Deps struct {
	Search      *handler.SearchHandler
	Booking     *handler.BookingHandler
	Metrics     *obs.Metrics
	RateLimiter *mid.IPRateLimiter // nil disables rate limiting
	Logger      *slog.Logger
	Build       BuildInfo
	Database    Pinger // nil when the catalog is served from memory
}

func GetRoutes(cfg config.ServerConfig, d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(mid.RequestID())
	router.Use(mid.Logging(d.Logger))
	if d.Metrics != nil {
		router.Use(mid.Metrics(d.Metrics))
	}

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", mid.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{mid.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if d.Database != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := d.Database.Ping(ctx); err != nil {
				d.Logger.Warn("database health check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":   "unhealthy",
					"service":  "stays-catalog",
					"database": "unreachable",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    "stays-catalog",
			"version":    d.Build.Version,
			"build_time": d.Build.BuildTime,
			"git_commit": d.Build.GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    d.Build.Version,
			"build_time": d.Build.BuildTime,
			"git_commit": d.Build.GitCommit,
		})
	})

	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// API routes
	apiV1 := router.Group("/api/v1")
	if d.RateLimiter != nil {
		apiV1.Use(mid.RateLimit(d.RateLimiter, d.Metrics))
	}
	{
		// Listings
		apiV1.GET("/listings", d.Search.ListAll)
		apiV1.GET("/listings/:id", d.Search.GetListing)
		apiV1.GET("/listings/:id/similar", d.Search.Similar)
		apiV1.POST("/listings/:id/quote", d.Booking.Quote)

		// Search endpoints
		apiV1.GET("/search", d.Search.Search)
		apiV1.POST("/search", d.Search.Search)

		// Filter affordances
		apiV1.GET("/categories", d.Search.Categories)
		apiV1.GET("/cities", d.Search.Cities)
	}

	setupStaticFiles(router, cfg.StaticDir)

	return router
}

// setupStaticFiles serves a built frontend from dir when configured.
// Unknown API paths always get a JSON 404.
func setupStaticFiles(router *gin.Engine, dir string) {
	if dir != "" {
		router.Static("/assets", dir+"/assets")
		router.StaticFile("/favicon.ico", dir+"/favicon.ico")
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		if dir == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		// SPA routing falls back to index.html
		c.File(dir + "/index.html")
	})
}
