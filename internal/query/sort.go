package query

import (
	"cmp"
	"slices"

	"stays/internal/model"
)

// Sort returns a copy of listings ordered by mode. The sort is stable and
// ties keep their input order; recommended (or any unknown mode) keeps input order.
func Sort(listings []model.Listing, mode model.SortMode) []model.Listing {
	out := slices.Clone(listings)

	var compare func(a, b model.Listing) int
	switch mode {
	case model.SortPriceLow:
		compare = func(a, b model.Listing) int { return cmp.Compare(a.PricePerNight, b.PricePerNight) }
	case model.SortPriceHigh:
		compare = func(a, b model.Listing) int { return cmp.Compare(b.PricePerNight, a.PricePerNight) }
	case model.SortRating:
		compare = func(a, b model.Listing) int { return cmp.Compare(b.Rating, a.Rating) }
	default:
		return out
	}

	slices.SortStableFunc(out, compare)
	return out
}

// Paginate slices an ordered result set. limit <= 0 means no limit.
func Paginate(listings []model.Listing, offset, limit int) []model.Listing {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(listings) {
		return []model.Listing{}
	}
	end := len(listings)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return listings[offset:end]
}
