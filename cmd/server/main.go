package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stays/internal/catalog"
	"stays/internal/config"
	"stays/internal/handler"
	mid "stays/internal/middleware"
	"stays/internal/obs"
	"stays/internal/repository"
	"stays/internal/routes"
	"stays/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := obs.NewLogger(cfg.Logging, os.Stdout)
	slog.SetDefault(logger)
	logger.Info("stays catalog service",
		"version", Version,
		"build_time", BuildTime,
		"git_commit", GitCommit,
	)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	metrics := obs.NewMetrics(prometheus.NewRegistry())

	repo, database, cleanup, err := buildRepository(cfg, metrics, logger)
	if err != nil {
		logger.Error("failed to initialize repository", "source", cfg.Catalog.Source, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Initialize services
	searchService := service.NewSearchService(repo, metrics, cfg.Search.DefaultLimit, cfg.Search.MaxLimit, cfg.Search.SimilarLimit)
	bookingService := service.NewBookingService(repo, cfg.Booking, metrics)
	logger.Info("services initialized")

	var limiter *mid.IPRateLimiter
	if cfg.RateLimit.Enabled {
		limiter = mid.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	router := routes.GetRoutes(cfg.Server, routes.Deps{
		Search:      handler.NewSearchHandler(searchService),
		Booking:     handler.NewBookingHandler(bookingService),
		Metrics:     metrics,
		RateLimiter: limiter,
		Logger:      logger,
		Build:       routes.BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit},
		Database:    database,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if limiter != nil {
		go sweepLimiter(ctx, limiter, logger)
	}

	// Start server
	go func() {
		logger.Info("starting server", "addr", addr, "catalog_source", cfg.Catalog.Source)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}

// buildRepository picks the listing source. The postgres source is wrapped
// with the result cache when enabled and is also returned for health checks.
func buildRepository(cfg *config.Config, metrics *obs.Metrics, logger *slog.Logger) (repository.Repository, routes.Pinger, func(), error) {
	if cfg.Catalog.Source == config.SourceMemory {
		c := catalog.Sample()
		logger.Info("using in-memory catalog", "listings", c.Len())
		return repository.NewMemoryRepository(c), nil, func() {}, nil
	}

	pg, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("connected to PostgreSQL database")

	if !cfg.Cache.Enabled {
		return pg, pg, func() { pg.Close() }, nil
	}

	cached := repository.NewCachedRepository(pg, repository.CacheOptions{
		TTL:           cfg.Cache.TTL,
		LocalMaxSize:  cfg.Cache.LocalMaxSize,
		MemcachedHost: cfg.Cache.MemcachedHost,
		Metrics:       metrics,
		Logger:        logger,
	})
	logger.Info("result cache enabled", "ttl", cfg.Cache.TTL.String(), "memcached", cfg.Cache.MemcachedHost != "")

	return cached, pg, func() {
		cached.Stop()
		pg.Close()
	}, nil
}

func sweepLimiter(ctx context.Context, limiter *mid.IPRateLimiter, logger *slog.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := limiter.Sweep(10 * time.Minute); n > 0 {
				logger.Debug("rate limiter swept idle clients", "count", n)
			}
		}
	}
}
