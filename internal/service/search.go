package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stays/internal/model"
	"stays/internal/obs"
	"stays/internal/query"
	"stays/internal/repository"
)

// ErrListingNotFound is returned when an operation targets an unknown listing id
var ErrListingNotFound = errors.New("listing not found")

// SearchService handles search business logic
type SearchService struct {
	repo         repository.Repository
	metrics      *obs.Metrics
	defaultLimit int
	maxLimit     int
	similarLimit int
}

// NewSearchService creates a new search service
func NewSearchService(
	repo repository.Repository,
	metrics *obs.Metrics,
	defaultLimit, maxLimit, similarLimit int,
) *SearchService {
	return &SearchService{
		repo:         repo,
		metrics:      metrics,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		similarLimit: similarLimit,
	}
}

// Search filters, sorts and paginates listings.
// Errors from request parsing wrap model.ErrInvalidSortMode or model.ErrInvalidDate.
func (s *SearchService) Search(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error) {
	startTime := time.Now()

	mode, err := model.ParseSortMode(req.Sort)
	if err != nil {
		return nil, err
	}
	spec, err := req.Filters()
	if err != nil {
		return nil, err
	}

	repoStart := time.Now()
	listings, err := s.repo.Search(ctx, spec)
	observeRepository(s.metrics, "search", repoStart)
	if err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}
	sorted := query.Sort(listings, mode)

	limit, offset := s.page(req.Limit, req.Offset)
	results := query.Paginate(sorted, offset, limit)

	s.metrics.ObserveSearch(len(sorted))

	return &model.SearchResponse{
		Results:  results,
		Total:    len(sorted),
		Offset:   offset,
		PageSize: limit,
		HasMore:  offset+len(results) < len(sorted),
		Sort:     mode,
		Took:     time.Since(startTime).Milliseconds(),
	}, nil
}

// page applies the configured defaults and caps
func (s *SearchService) page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if s.maxLimit > 0 && limit > s.maxLimit {
		limit = s.maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListAll returns the home feed in catalog order
func (s *SearchService) ListAll(ctx context.Context) ([]model.Listing, error) {
	start := time.Now()
	listings, err := s.repo.FetchAll(ctx)
	observeRepository(s.metrics, "fetch_all", start)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return listings, nil
}

// GetListing retrieves a single listing by ID, nil when missing
func (s *SearchService) GetListing(ctx context.Context, id string) (*model.Listing, error) {
	start := time.Now()
	listing, err := s.repo.FetchByID(ctx, id)
	observeRepository(s.metrics, "fetch_by_id", start)
	if err != nil {
		return nil, fmt.Errorf("failed to get listing %s: %w", id, err)
	}
	return listing, nil
}

// Categories lists the distinct categories for the filter bar
func (s *SearchService) Categories(ctx context.Context) ([]string, error) {
	start := time.Now()
	categories, err := s.repo.Categories(ctx)
	observeRepository(s.metrics, "categories", start)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Cities lists the distinct cities for the location picker
func (s *SearchService) Cities(ctx context.Context) ([]string, error) {
	start := time.Now()
	cities, err := s.repo.Cities(ctx)
	observeRepository(s.metrics, "cities", start)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

// Similar returns listings close to id. limit <= 0 uses the configured default.
func (s *SearchService) Similar(ctx context.Context, id string, limit int) ([]model.Listing, error) {
	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("%w: %s", ErrListingNotFound, id)
	}

	if limit <= 0 {
		limit = s.similarLimit
	}
	if s.maxLimit > 0 && limit > s.maxLimit {
		limit = s.maxLimit
	}
	start := time.Now()
	similar, err := s.repo.Similar(ctx, id, limit)
	observeRepository(s.metrics, "similar", start)
	if err != nil {
		return nil, fmt.Errorf("failed to find similar listings: %w", err)
	}
	return similar, nil
}

// observeRepository records the latency of one repository call under operation
func observeRepository(m *obs.Metrics, operation string, start time.Time) {
	m.ObserveRepository(operation, time.Since(start).Seconds())
}
