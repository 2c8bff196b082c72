package model

// BookingQuoteRequest represents a price quote request for a stay
type BookingQuoteRequest struct {
	CheckIn  string `json:"check_in" form:"check_in" binding:"required"`
	CheckOut string `json:"check_out" form:"check_out" binding:"required"`
	Guests   int    `json:"guests" form:"guests"`
}

// BookingQuote is the fixed-fee price breakdown for a stay
type BookingQuote struct {
	ListingID     string  `json:"listing_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Guests        int     `json:"guests"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"price_per_night"`
	Subtotal      float64 `json:"subtotal"`
	CleaningFee   float64 `json:"cleaning_fee"`
	ServiceFee    float64 `json:"service_fee"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}
