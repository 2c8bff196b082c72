package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"stays/internal/config"
	"stays/internal/model"
	"stays/internal/obs"
	"stays/internal/repository"
)

var (
	ErrInvalidStay   = errors.New("check-out must be at least one night after check-in")
	ErrGuestCapacity = errors.New("guest count outside listing capacity")
)

// BookingService prices stays. Nothing is reserved or persisted.
type BookingService struct {
	repo    repository.Repository
	fees    config.BookingConfig
	metrics *obs.Metrics
}

// NewBookingService creates a new booking service
func NewBookingService(repo repository.Repository, fees config.BookingConfig, metrics *obs.Metrics) *BookingService {
	if fees.Currency == "" {
		fees.Currency = "USD"
	}
	return &BookingService{repo: repo, fees: fees, metrics: metrics}
}

// Quote computes the price of staying at listing id.
// A zero guest count is treated as one guest.
func (s *BookingService) Quote(ctx context.Context, id string, req *model.BookingQuoteRequest) (*model.BookingQuote, error) {
	quote, err := s.quote(ctx, id, req)
	switch {
	case err == nil:
		s.metrics.IncQuote("ok")
	case errors.Is(err, ErrListingNotFound):
		s.metrics.IncQuote("not_found")
	default:
		s.metrics.IncQuote("rejected")
	}
	return quote, err
}

func (s *BookingService) quote(ctx context.Context, id string, req *model.BookingQuoteRequest) (*model.BookingQuote, error) {
	checkIn, err := model.ParseDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("check_in: %w", err)
	}
	checkOut, err := model.ParseDate(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("check_out: %w", err)
	}
	if checkIn == nil || checkOut == nil {
		return nil, ErrInvalidStay
	}

	nights := int(math.Ceil(checkOut.Sub(*checkIn).Hours() / 24))
	if nights < 1 {
		return nil, ErrInvalidStay
	}

	start := time.Now()
	listing, err := s.repo.FetchByID(ctx, id)
	observeRepository(s.metrics, "fetch_by_id", start)
	if err != nil {
		return nil, fmt.Errorf("failed to get listing %s: %w", id, err)
	}
	if listing == nil {
		return nil, fmt.Errorf("%w: %s", ErrListingNotFound, id)
	}

	guests := req.Guests
	if guests == 0 {
		guests = 1
	}
	if guests < 1 || guests > listing.MaxGuests {
		return nil, fmt.Errorf("%w: %d guests, max %d", ErrGuestCapacity, guests, listing.MaxGuests)
	}

	subtotal := listing.PricePerNight * float64(nights)
	return &model.BookingQuote{
		ListingID:     listing.ID,
		CheckIn:       checkIn.Format(model.DateLayout),
		CheckOut:      checkOut.Format(model.DateLayout),
		Guests:        guests,
		Nights:        nights,
		PricePerNight: listing.PricePerNight,
		Subtotal:      subtotal,
		CleaningFee:   s.fees.CleaningFee,
		ServiceFee:    s.fees.ServiceFee,
		Total:         subtotal + s.fees.CleaningFee + s.fees.ServiceFee,
		Currency:      s.fees.Currency,
	}, nil
}
