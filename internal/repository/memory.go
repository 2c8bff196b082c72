package repository

import (
	"context"

	"stays/internal/catalog"
	"stays/internal/model"
	"stays/internal/query"
)

// MemoryRepository serves listings from an in-process catalog
type MemoryRepository struct {
	catalog *catalog.Catalog
}

// NewMemoryRepository creates a repository over c
func NewMemoryRepository(c *catalog.Catalog) *MemoryRepository {
	return &MemoryRepository{catalog: c}
}

// FetchAll returns every listing in catalog order
func (r *MemoryRepository) FetchAll(ctx context.Context) ([]model.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.catalog.All(), nil
}

// FetchByID returns the listing with id, or nil when there is none
func (r *MemoryRepository) FetchByID(ctx context.Context, id string) (*model.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l, ok := r.catalog.ByID(id)
	if !ok {
		return nil, nil
	}
	return &l, nil
}

// Search returns the listings matching spec in catalog order
func (r *MemoryRepository) Search(ctx context.Context, spec *model.FilterSpec) ([]model.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return query.Filter(r.catalog.All(), spec), nil
}

// Categories returns the distinct categories in catalog order
func (r *MemoryRepository) Categories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.catalog.Categories(), nil
}

// Cities returns the distinct cities in catalog order
func (r *MemoryRepository) Cities(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.catalog.Cities(), nil
}

// Similar returns up to limit listings nearest to id, empty when id is unknown
func (r *MemoryRepository) Similar(ctx context.Context, id string, limit int) ([]model.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, ok := r.catalog.ByID(id)
	if !ok {
		return []model.Listing{}, nil
	}
	return query.Similar(target, r.catalog.All(), limit), nil
}
