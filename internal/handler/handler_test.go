package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"stays/internal/catalog"
	"stays/internal/config"
	"stays/internal/model"
	"stays/internal/repository"
	"stays/internal/service"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// brokenRepository fails every call that reaches it
type brokenRepository struct {
	repository.Repository
}

func (brokenRepository) FetchAll(context.Context) ([]model.Listing, error) {
	return nil, errors.New("connection refused")
}

func (brokenRepository) Search(context.Context, *model.FilterSpec) ([]model.Listing, error) {
	return nil, errors.New("connection refused")
}

func newTestRouter(repo repository.Repository) *gin.Engine {
	searchHandler := NewSearchHandler(service.NewSearchService(repo, nil, 20, 50, 4))
	bookingHandler := NewBookingHandler(service.NewBookingService(repo, config.BookingConfig{CleaningFee: 75, ServiceFee: 67}, nil))

	router := gin.New()
	router.GET("/listings", searchHandler.ListAll)
	router.GET("/listings/:id", searchHandler.GetListing)
	router.GET("/listings/:id/similar", searchHandler.Similar)
	router.POST("/listings/:id/quote", bookingHandler.Quote)
	router.GET("/search", searchHandler.Search)
	router.POST("/search", searchHandler.Search)
	router.GET("/categories", searchHandler.Categories)
	router.GET("/cities", searchHandler.Cities)
	return router
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func resultIDs(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var resp struct {
		Results []model.Listing `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	out := make([]string, len(resp.Results))
	for i, l := range resp.Results {
		out[i] = l.ID
	}
	return out
}

func TestSearchHandler_Search(t *testing.T) {
	router := newTestRouter(repository.NewMemoryRepository(catalog.Sample()))

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantIDs    []string
	}{
		{
			name:       "Query string filters",
			method:     http.MethodGet,
			target:     "/search?location=usa&guests=6&max_price=400&sort=price_high",
			wantStatus: http.StatusOK,
			wantIDs:    []string{"prop_7", "prop_2"},
		},
		{
			name:       "Repeated amenities",
			method:     http.MethodGet,
			target:     "/search?amenities=pool&amenities=ac",
			wantStatus: http.StatusOK,
			wantIDs:    []string{"prop_1", "prop_7"},
		},
		{
			name:       "JSON body",
			method:     http.MethodPost,
			target:     "/search",
			body:       `{"category":"city","sort":"price_low","limit":2}`,
			wantStatus: http.StatusOK,
			wantIDs:    []string{"prop_9", "prop_3"},
		},
		{
			name:       "Empty POST body",
			method:     http.MethodPost,
			target:     "/search",
			wantStatus: http.StatusOK,
			wantIDs:    []string{"prop_1", "prop_2", "prop_3", "prop_4", "prop_5", "prop_6", "prop_7", "prop_8", "prop_9", "prop_10"},
		},
		{
			name:       "Inverted price range is not an error",
			method:     http.MethodGet,
			target:     "/search?min_price=500&max_price=100",
			wantStatus: http.StatusOK,
			wantIDs:    []string{},
		},
		{
			name:       "Unknown sort",
			method:     http.MethodGet,
			target:     "/search?sort=cheapest",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Bad number",
			method:     http.MethodGet,
			target:     "/search?guests=many",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Bad date",
			method:     http.MethodGet,
			target:     "/search?check_in=next-friday",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Malformed JSON",
			method:     http.MethodPost,
			target:     "/search",
			body:       `{"guests":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, tt.method, tt.target, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantIDs != nil {
				if got := resultIDs(t, rec); !reflect.DeepEqual(got, tt.wantIDs) {
					t.Errorf("results = %v, want %v", got, tt.wantIDs)
				}
			}
		})
	}
}

func TestSearchHandler_Listings(t *testing.T) {
	router := newTestRouter(repository.NewMemoryRepository(catalog.Sample()))

	rec := serve(router, http.MethodGet, "/listings", "")
	if rec.Code != http.StatusOK || len(resultIDs(t, rec)) != 10 {
		t.Fatalf("unexpected home feed: %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(router, http.MethodGet, "/listings/prop_9", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var listing model.Listing
	if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil || listing.City != "Paris" {
		t.Fatalf("unexpected listing %+v, %v", listing, err)
	}

	rec = serve(router, http.MethodGet, "/listings/prop_404", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestSearchHandler_Similar(t *testing.T) {
	router := newTestRouter(repository.NewMemoryRepository(catalog.Sample()))

	rec := serve(router, http.MethodGet, "/listings/prop_1/similar?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := resultIDs(t, rec); !reflect.DeepEqual(got, []string{"prop_4", "prop_7"}) {
		t.Errorf("similar = %v", got)
	}

	if rec := serve(router, http.MethodGet, "/listings/prop_1/similar?limit=x", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad limit, got %d", rec.Code)
	}
	if rec := serve(router, http.MethodGet, "/listings/prop_404/similar", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown listing, got %d", rec.Code)
	}
}

func TestSearchHandler_Affordances(t *testing.T) {
	router := newTestRouter(repository.NewMemoryRepository(catalog.Sample()))

	for _, tt := range []struct {
		target string
		first  string
		total  int
	}{
		{target: "/categories", first: "beachfront", total: 8},
		{target: "/cities", first: "Malibu", total: 10},
	} {
		rec := serve(router, http.MethodGet, tt.target, "")
		var resp model.ListResponse[string]
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: invalid json: %v", tt.target, err)
		}
		if resp.Total != tt.total || resp.Results[0] != tt.first {
			t.Errorf("%s: unexpected response %+v", tt.target, resp)
		}
	}
}

func TestSearchHandler_BackendFailure(t *testing.T) {
	router := newTestRouter(brokenRepository{})

	for _, target := range []string{"/listings", "/search"} {
		rec := serve(router, http.MethodGet, target, "")
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("%s: expected 500, got %d", target, rec.Code)
		}
		if strings.Contains(rec.Body.String(), "connection refused") {
			t.Errorf("%s: backend error leaked to client: %s", target, rec.Body.String())
		}
	}
}

func TestBookingHandler_Quote(t *testing.T) {
	router := newTestRouter(repository.NewMemoryRepository(catalog.Sample()))

	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantTotal  float64
	}{
		{
			name:       "Two nights",
			target:     "/listings/prop_1/quote",
			body:       `{"check_in":"2025-06-10","check_out":"2025-06-12","guests":2}`,
			wantStatus: http.StatusOK,
			wantTotal:  1042,
		},
		{
			name:       "Missing check-out",
			target:     "/listings/prop_1/quote",
			body:       `{"check_in":"2025-06-10"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Zero nights",
			target:     "/listings/prop_1/quote",
			body:       `{"check_in":"2025-06-10","check_out":"2025-06-10"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Over capacity",
			target:     "/listings/prop_6/quote",
			body:       `{"check_in":"2025-06-10","check_out":"2025-06-12","guests":5}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unknown listing",
			target:     "/listings/prop_404/quote",
			body:       `{"check_in":"2025-06-10","check_out":"2025-06-12"}`,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodPost, tt.target, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var quote model.BookingQuote
			if err := json.Unmarshal(rec.Body.Bytes(), &quote); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if quote.Total != tt.wantTotal {
				t.Errorf("total = %.2f, want %.2f", quote.Total, tt.wantTotal)
			}
		})
	}
}
