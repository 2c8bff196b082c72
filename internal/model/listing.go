package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Listing represents a rentable short-term stay
type Listing struct {
	ID            string    `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	Location      string    `json:"location" db:"location"`
	City          string    `json:"city" db:"city"`
	Country       string    `json:"country" db:"country"`
	PricePerNight float64   `json:"price_per_night" db:"price_per_night"`
	MaxGuests     int       `json:"max_guests" db:"max_guests"`
	Bedrooms      int       `json:"bedrooms" db:"bedrooms"`
	Bathrooms     int       `json:"bathrooms" db:"bathrooms"`
	PropertyType  string    `json:"property_type" db:"property_type"`
	Category      string    `json:"category" db:"category"`
	Amenities     JSONArray `json:"amenities" db:"amenities"`
	Images        JSONArray `json:"images" db:"images"`
	Latitude      float64   `json:"latitude" db:"latitude"`
	Longitude     float64   `json:"longitude" db:"longitude"`
	Rating        float64   `json:"rating" db:"rating"`
	ReviewCount   int       `json:"review_count" db:"review_count"`
	HostID        string    `json:"host_id" db:"host_id"`
}

// Clone returns a copy that shares no slices with l
func (l Listing) Clone() Listing {
	out := l
	if l.Amenities != nil {
		out.Amenities = append(JSONArray(nil), l.Amenities...)
	}
	if l.Images != nil {
		out.Images = append(JSONArray(nil), l.Images...)
	}
	return out
}

// CoverImage returns the first image reference
func (l Listing) CoverImage() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}

// JSONArray represents a JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	// lib/pq sends []byte as bytea, which jsonb columns reject
	return string(b), nil
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("unsupported JSONArray source %T", value)
	}
}
