package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for check-in and check-out dates
const DateLayout = "2006-01-02"

var (
	ErrInvalidSortMode = errors.New("invalid sort mode")
	ErrInvalidDate     = errors.New("invalid date")
)

// FilterSpec is a caller-built set of optional search constraints.
// A nil field imposes no constraint on its dimension.
type FilterSpec struct {
	Location     *string    `json:"location,omitempty"`
	CheckIn      *time.Time `json:"check_in,omitempty"`  // accepted, not applied
	CheckOut     *time.Time `json:"check_out,omitempty"` // accepted, not applied
	Guests       *int       `json:"guests,omitempty"`
	MinPrice     *float64   `json:"min_price,omitempty"`
	MaxPrice     *float64   `json:"max_price,omitempty"`
	PropertyType *string    `json:"property_type,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Amenities    []string   `json:"amenities,omitempty"` // every entry must match
}

// SortMode names an ordering applied after filtering
type SortMode string

const (
	SortRecommended SortMode = "recommended"
	SortPriceLow    SortMode = "price_low"
	SortPriceHigh   SortMode = "price_high"
	SortRating      SortMode = "rating"
)

// ParseSortMode maps a raw value to a SortMode; empty means recommended
func ParseSortMode(s string) (SortMode, error) {
	switch mode := SortMode(strings.TrimSpace(s)); mode {
	case "":
		return SortRecommended, nil
	case SortRecommended, SortPriceLow, SortPriceHigh, SortRating:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortMode, s)
	}
}

// SearchRequest represents a search query request
type SearchRequest struct {
	Location     string   `json:"location" form:"location"`
	CheckIn      string   `json:"check_in" form:"check_in"`
	CheckOut     string   `json:"check_out" form:"check_out"`
	Guests       *int     `json:"guests" form:"guests"`
	MinPrice     *float64 `json:"min_price" form:"min_price"`
	MaxPrice     *float64 `json:"max_price" form:"max_price"`
	PropertyType string   `json:"property_type" form:"property_type"`
	Category     string   `json:"category" form:"category"`
	Amenities    []string `json:"amenities" form:"amenities"`
	Sort         string   `json:"sort" form:"sort"`
	Limit        int      `json:"limit" form:"limit"`
	Offset       int      `json:"offset" form:"offset"`
}

// Filters converts the request into a FilterSpec. Empty strings are absent;
// other text values are kept exactly as sent.
func (r *SearchRequest) Filters() (*FilterSpec, error) {
	spec := &FilterSpec{
		Guests:   r.Guests,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
	}
	if s := r.Location; s != "" {
		spec.Location = &s
	}
	if s := r.PropertyType; s != "" {
		spec.PropertyType = &s
	}
	if s := r.Category; s != "" {
		spec.Category = &s
	}

	var err error
	if spec.CheckIn, err = ParseDate(r.CheckIn); err != nil {
		return nil, fmt.Errorf("check_in: %w", err)
	}
	if spec.CheckOut, err = ParseDate(r.CheckOut); err != nil {
		return nil, fmt.Errorf("check_out: %w", err)
	}

	// amenities=pool,wifi and amenities=pool&amenities=wifi are equivalent
	for _, raw := range r.Amenities {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				spec.Amenities = append(spec.Amenities, a)
			}
		}
	}
	return spec, nil
}

// ParseDate parses a YYYY-MM-DD value; empty input yields nil
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return &t, nil
}

// SearchResponse represents a search result response
type SearchResponse struct {
	Results  []Listing `json:"results"`
	Total    int       `json:"total"`
	Offset   int       `json:"offset"`
	PageSize int       `json:"page_size"`
	HasMore  bool      `json:"has_more"`
	Sort     SortMode  `json:"sort"`
	Took     int64     `json:"took_ms"` // Response time in milliseconds
}

// ListResponse wraps an unpaginated collection
type ListResponse[T any] struct {
	Results []T `json:"results"`
	Total   int `json:"total"`
}
