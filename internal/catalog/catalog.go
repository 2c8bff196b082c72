// Package catalog holds the fixed, read-only set of listings.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"stays/internal/model"
)

var (
	ErrEmptyID     = errors.New("listing id is empty")
	ErrDuplicateID = errors.New("duplicate listing id")
	ErrNoImages    = errors.New("listing has no cover image")
)

// Catalog is an immutable collection of listings in definition order.
// It is safe for concurrent use.
type Catalog struct {
	listings []model.Listing
	byID     map[string]int
}

// New builds a catalog from listings. The input is copied.
func New(listings []model.Listing) (*Catalog, error) {
	c := &Catalog{
		listings: make([]model.Listing, 0, len(listings)),
		byID:     make(map[string]int, len(listings)),
	}
	for _, l := range listings {
		if strings.TrimSpace(l.ID) == "" {
			return nil, ErrEmptyID
		}
		if _, dup := c.byID[l.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, l.ID)
		}
		if strings.TrimSpace(l.CoverImage()) == "" {
			return nil, fmt.Errorf("%w: %s", ErrNoImages, l.ID)
		}
		c.byID[l.ID] = len(c.listings)
		c.listings = append(c.listings, l.Clone())
	}
	return c, nil
}

// MustNew is like New but panics on invalid input
func MustNew(listings []model.Listing) *Catalog {
	c, err := New(listings)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of listings
func (c *Catalog) Len() int { return len(c.listings) }

// All returns every listing in catalog order
func (c *Catalog) All() []model.Listing {
	out := make([]model.Listing, len(c.listings))
	for i, l := range c.listings {
		out[i] = l.Clone()
	}
	return out
}

// ByID returns the listing with the given id. ok is false when no such listing exists.
func (c *Catalog) ByID(id string) (listing model.Listing, ok bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Listing{}, false
	}
	return c.listings[i].Clone(), true
}

// Categories returns the distinct category labels in first-occurrence order
func (c *Catalog) Categories() []string {
	return distinct(c.listings, func(l model.Listing) string { return l.Category })
}

// Cities returns the distinct city labels in first-occurrence order
func (c *Catalog) Cities() []string {
	return distinct(c.listings, func(l model.Listing) string { return l.City })
}

func distinct(listings []model.Listing, key func(model.Listing) string) []string {
	seen := make(map[string]struct{}, len(listings))
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		k := key(l)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
