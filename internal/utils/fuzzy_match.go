package utils

import (
	"strings"
	"unicode"
)

// amenityAliases maps a search keyword to amenity phrases it should also match
var amenityAliases = map[string][]string{
	"pool":      {"pool", "swimming pool", "infinity pool"},
	"wifi":      {"wifi", "wi fi", "wireless internet", "internet"},
	"wi fi":     {"wifi", "wireless internet"},
	"ac":        {"air conditioning", "air conditioner", "aircon", "a c"},
	"aircon":    {"air conditioning", "air conditioner", "aircon"},
	"parking":   {"parking", "car park", "garage"},
	"gym":       {"gym", "fitness", "fitness center"},
	"bbq":       {"bbq", "barbecue", "grill"},
	"beach":     {"beach access", "beachfront", "private beach"},
	"view":      {"ocean view", "mountain view", "city view", "forest view"},
	"fireplace": {"fireplace", "wood stove"},
	"heating":   {"heating", "heater"},
	"kitchen":   {"kitchen", "kitchenette"},
	"garden":    {"garden", "yard", "terrace", "private terrace"},
	"spa":       {"spa", "hot tub", "jacuzzi"},
}

// normalize lowercases s and collapses every non letter/digit run into one space
func normalize(s string) string {
	var b strings.Builder
	space := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}

// containsPhrase reports whether phrase occurs in text on word boundaries
func containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}

// FuzzyMatchAmenity performs fuzzy matching for amenity names
// Returns true if the search term fuzzy matches the amenity
func FuzzyMatchAmenity(searchTerm, amenity string) bool {
	search := normalize(searchTerm)
	name := normalize(amenity)
	if search == "" || name == "" {
		return false
	}

	// Exact or whole-word match ("pool" matches "Infinity Pool")
	if containsPhrase(name, search) {
		return true
	}

	for key, values := range amenityAliases {
		if !containsPhrase(search, key) {
			continue
		}
		for _, alias := range values {
			if containsPhrase(name, alias) {
				return true
			}
		}
	}
	return false
}

// MatchAllAmenities reports whether every wanted term matches at least one of the amenities
func MatchAllAmenities(wanted, amenities []string) bool {
	for _, w := range wanted {
		found := false
		for _, a := range amenities {
			if FuzzyMatchAmenity(w, a) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
