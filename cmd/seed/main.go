package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"stays/internal/catalog"
	"stays/internal/config"
	"stays/internal/obs"
	"stays/internal/repository"
)

// seed creates the listings table and loads the sample catalog with embeddings.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := obs.NewLogger(cfg.Logging, os.Stdout)

	if err := run(cfg, logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	repo, err := repository.NewPostgresRepository(cfg.GetPostgreSQLDSN(), 2, 1)
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	sample := catalog.Sample()
	n, err := repo.Seed(ctx, sample.All())
	if err != nil {
		return fmt.Errorf("failed to seed listings: %w", err)
	}
	logger.Info("seeded listings", "count", n, "categories", len(sample.Categories()))
	return nil
}
