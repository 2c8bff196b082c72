package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"stays/internal/model"
	"stays/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles listing and search HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search handles GET and POST /api/v1/search.
// GET binds the query string, POST binds a JSON body; an empty body means no filters.
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.searchService.Search(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "Search failed", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListAll handles GET /api/v1/listings
func (h *SearchHandler) ListAll(c *gin.Context) {
	listings, err := h.searchService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list listings", err)
		return
	}

	c.JSON(http.StatusOK, model.ListResponse[model.Listing]{Results: listings, Total: len(listings)})
}

// GetListing handles GET /api/v1/listings/:id
func (h *SearchHandler) GetListing(c *gin.Context) {
	listing, err := h.searchService.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get listing", err)
		return
	}

	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Similar handles GET /api/v1/listings/:id/similar?limit=n
func (h *SearchHandler) Similar(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}

	listings, err := h.searchService.Similar(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, "Failed to find similar listings", err)
		return
	}

	c.JSON(http.StatusOK, model.ListResponse[model.Listing]{Results: listings, Total: len(listings)})
}

// Categories handles GET /api/v1/categories
func (h *SearchHandler) Categories(c *gin.Context) {
	categories, err := h.searchService.Categories(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list categories", err)
		return
	}

	c.JSON(http.StatusOK, model.ListResponse[string]{Results: categories, Total: len(categories)})
}

// Cities handles GET /api/v1/cities
func (h *SearchHandler) Cities(c *gin.Context) {
	cities, err := h.searchService.Cities(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list cities", err)
		return
	}

	c.JSON(http.StatusOK, model.ListResponse[string]{Results: cities, Total: len(cities)})
}
