package repository

import (
	"context"

	"stays/internal/model"
)

// Repository is a read-only source of listings. Every method returns
// listings in catalog order; callers sort afterwards.
type Repository interface {
	FetchAll(ctx context.Context) ([]model.Listing, error)
	// FetchByID returns nil, nil when no listing has the id
	FetchByID(ctx context.Context, id string) (*model.Listing, error)
	Search(ctx context.Context, spec *model.FilterSpec) ([]model.Listing, error)
	Categories(ctx context.Context) ([]string, error)
	Cities(ctx context.Context) ([]string, error)
	// Similar returns up to limit listings nearest to id, excluding id itself.
	// An unknown id yields an empty result.
	Similar(ctx context.Context, id string, limit int) ([]model.Listing, error)
}
