package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		input   string
		want    SortMode
		wantErr bool
	}{
		{input: "", want: SortRecommended},
		{input: "recommended", want: SortRecommended},
		{input: "price_low", want: SortPriceLow},
		{input: " price_high ", want: SortPriceHigh},
		{input: "rating", want: SortRating},
		{input: "PRICE_LOW", wantErr: true},
		{input: "newest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortMode(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSortMode) {
					t.Fatalf("expected ErrInvalidSortMode, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseSortMode(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestSearchRequest_Filters(t *testing.T) {
	guests := 3
	req := &SearchRequest{
		Location:     "  Paris ",
		CheckIn:      "2025-05-01",
		Guests:       &guests,
		PropertyType: "",
		Category:     "city",
		Amenities:    []string{"pool, wifi", "", "ac"},
	}

	spec, err := req.Filters()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Location == nil || *spec.Location != "  Paris " {
		t.Errorf("expected location kept as sent, got %v", spec.Location)
	}
	if spec.PropertyType != nil {
		t.Error("empty property type must be absent")
	}
	if spec.Category == nil || *spec.Category != "city" {
		t.Errorf("unexpected category %v", spec.Category)
	}
	if spec.Guests == nil || *spec.Guests != 3 {
		t.Errorf("unexpected guests %v", spec.Guests)
	}
	if spec.CheckIn == nil || spec.CheckIn.Day() != 1 || spec.CheckOut != nil {
		t.Errorf("unexpected dates %v %v", spec.CheckIn, spec.CheckOut)
	}
	if want := []string{"pool", "wifi", "ac"}; !reflect.DeepEqual(spec.Amenities, want) {
		t.Errorf("amenities = %v, want %v", spec.Amenities, want)
	}
}

func TestSearchRequest_FiltersBlankValues(t *testing.T) {
	tests := []struct {
		name string
		req  SearchRequest
	}{
		{name: "Whitespace location", req: SearchRequest{Location: "   "}},
		{name: "Whitespace property type", req: SearchRequest{PropertyType: " "}},
		{name: "Whitespace category", req: SearchRequest{Category: "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := tt.req.Filters()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if spec.Location == nil && spec.PropertyType == nil && spec.Category == nil {
				t.Error("whitespace-only value must stay a present filter")
			}
		})
	}
}

func TestSearchRequest_FiltersBadDate(t *testing.T) {
	_, err := (&SearchRequest{CheckOut: "2025-13-01"}).Filters()
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestJSONArray(t *testing.T) {
	var arr JSONArray
	if err := arr.Scan([]byte(`["WiFi","Pool"]`)); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if !reflect.DeepEqual(arr, JSONArray{"WiFi", "Pool"}) {
		t.Errorf("unexpected scan result %v", arr)
	}

	if err := arr.Scan(`["Kitchen"]`); err != nil || len(arr) != 1 {
		t.Errorf("scan string: %v %v", arr, err)
	}
	if err := arr.Scan(nil); err != nil || arr != nil {
		t.Errorf("scan nil: %v %v", arr, err)
	}
	if err := arr.Scan(42); err == nil {
		t.Error("expected error for unsupported source")
	}

	v, err := JSONArray{"a"}.Value()
	if err != nil || v != `["a"]` {
		t.Errorf("Value() = %v, %v", v, err)
	}
}

func TestListing_Clone(t *testing.T) {
	l := Listing{ID: "x", Amenities: JSONArray{"WiFi"}, Images: JSONArray{"a.jpg", "b.jpg"}}
	c := l.Clone()
	c.Amenities[0] = "changed"
	c.Images[0] = "changed"

	if l.Amenities[0] != "WiFi" || l.Images[0] != "a.jpg" {
		t.Fatal("clone shares slices with its source")
	}
	if l.CoverImage() != "a.jpg" || (Listing{}).CoverImage() != "" {
		t.Error("unexpected cover image")
	}
}
