// Package query evaluates filter specs against listings and orders the results.
// Every function here is pure: inputs are never mutated.
package query

import (
	"strings"

	"stays/internal/model"
	"stays/internal/utils"
)

// Filter returns the listings that satisfy every present predicate of spec,
// in input order. A nil spec matches everything.
func Filter(listings []model.Listing, spec *model.FilterSpec) []model.Listing {
	out := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if Matches(l, spec) {
			out = append(out, l)
		}
	}
	return out
}

// Matches reports whether l satisfies every present predicate of spec.
// Bounds are applied literally; min > max simply matches nothing.
func Matches(l model.Listing, spec *model.FilterSpec) bool {
	if spec == nil {
		return true
	}
	if spec.Location != nil && !matchLocation(l, *spec.Location) {
		return false
	}
	if spec.Guests != nil && l.MaxGuests < *spec.Guests {
		return false
	}
	if spec.MinPrice != nil && l.PricePerNight < *spec.MinPrice {
		return false
	}
	if spec.MaxPrice != nil && l.PricePerNight > *spec.MaxPrice {
		return false
	}
	if spec.PropertyType != nil && *spec.PropertyType != "" &&
		!strings.EqualFold(l.PropertyType, *spec.PropertyType) {
		return false
	}
	// categories come from a fixed internal set, so this one is case-sensitive
	if spec.Category != nil && *spec.Category != "" && l.Category != *spec.Category {
		return false
	}
	if len(spec.Amenities) > 0 && !utils.MatchAllAmenities(spec.Amenities, l.Amenities) {
		return false
	}
	return true
}

func matchLocation(l model.Listing, q string) bool {
	q = strings.ToLower(q)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.City), q) ||
		strings.Contains(strings.ToLower(l.Country), q) ||
		strings.Contains(strings.ToLower(l.Location), q)
}
