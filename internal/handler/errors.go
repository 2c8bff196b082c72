package handler

import (
	"errors"
	"net/http"

	"stays/internal/model"
	"stays/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to status codes. Anything unrecognised is
// a backend failure and is attached to the context for the request logger.
func respondError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidSortMode),
		errors.Is(err, model.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidStay),
		errors.Is(err, service.ErrGuestCapacity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": action})
	}
}
