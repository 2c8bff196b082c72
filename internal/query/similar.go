package query

import (
	"math"
	"slices"

	"stays/internal/model"
)

// EmbeddingDimensions is the length of FeatureVector output
const EmbeddingDimensions = 5

// normalisation ceilings for each feature
const (
	maxPrice     = 1000.0
	maxGuests    = 10.0
	maxBedrooms  = 5.0
	maxBathrooms = 4.0
	maxRating    = 5.0
)

// FeatureVector encodes the comparable attributes of a listing into a
// fixed-length vector. Values are scaled to roughly [0, 1].
func FeatureVector(l model.Listing) []float32 {
	return []float32{
		float32(l.PricePerNight / maxPrice),
		float32(float64(l.MaxGuests) / maxGuests),
		float32(float64(l.Bedrooms) / maxBedrooms),
		float32(float64(l.Bathrooms) / maxBathrooms),
		float32(l.Rating / maxRating),
	}
}

// Distance is the euclidean distance between two feature vectors
func Distance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		if i >= len(b) {
			break
		}
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Similar returns up to limit candidates closest to target, nearest first.
// The target itself is excluded and equal distances keep candidate order.
func Similar(target model.Listing, candidates []model.Listing, limit int) []model.Listing {
	type scored struct {
		listing  model.Listing
		distance float64
	}

	tv := FeatureVector(target)
	pool := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == target.ID {
			continue
		}
		pool = append(pool, scored{listing: c, distance: Distance(tv, FeatureVector(c))})
	}

	slices.SortStableFunc(pool, func(a, b scored) int {
		switch {
		case a.distance < b.distance:
			return -1
		case a.distance > b.distance:
			return 1
		}
		return 0
	})

	if limit > 0 && len(pool) > limit {
		pool = pool[:limit]
	}
	out := make([]model.Listing, len(pool))
	for i, s := range pool {
		out[i] = s.listing
	}
	return out
}
