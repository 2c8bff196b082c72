package handler

import (
	"net/http"

	"stays/internal/model"
	"stays/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking quote HTTP requests
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// Quote handles POST /api/v1/listings/:id/quote
func (h *BookingHandler) Quote(c *gin.Context) {
	var req model.BookingQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	quote, err := h.bookingService.Quote(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, "Failed to quote stay", err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
