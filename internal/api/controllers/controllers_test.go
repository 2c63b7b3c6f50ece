package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"globetrotter/internal/pricing"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	mem "globetrotter/pkg/memcache"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newTestRouter wires the itinerary and booking controllers over in-memory
// stores. Requests carrying X-User are treated as authenticated.
func newTestRouter() *gin.Engine {
	logger := zap.NewNop()
	cache := repositories.NewMemoryPlanCache(mem.NewTTLStore[repositories.CachedPlan](), time.Hour)
	itineraries := services.NewItineraryService(cache, logger)
	bookings := services.NewBookingService(
		repositories.NewMemoryBookingStore(),
		pricing.DefaultCatalog(),
		services.NewSimulatedPaymentService(logger),
		itineraries,
		services.NewLogMailService(logger),
		logger,
	)

	ic := NewItineraryController(itineraries, services.NewExportService(itineraries, logger), services.NewAssistantService(nil, logger))
	bc := NewBookingController(bookings)

	auth := func(c *gin.Context) {
		if user := c.GetHeader("X-User"); user != "" {
			c.Set("user_id", user)
		}
		c.Next()
	}

	r := gin.New()
	r.POST("/itineraries/compose", ic.Compose)
	r.POST("/itineraries/suggest", ic.Suggest)
	r.GET("/itineraries/:planId", ic.GetPlan)
	r.GET("/itineraries/:planId/:tierId", ic.GetOption)
	r.GET("/itineraries/:planId/:tierId/pdf", ic.ExportPDF)
	r.GET("/services", bc.ListServices)
	r.POST("/bookings/quote", bc.Quote)
	r.POST("/bookings/checkout", auth, bc.Checkout)
	r.GET("/bookings", auth, bc.ListBookings)
	r.POST("/bookings/:id/cancel", auth, bc.CancelBooking)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}, user string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "application/pdf" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func TestComposeAndFetchPlan(t *testing.T) {
	r := newTestRouter()

	w, env := do(t, r, http.MethodPost, "/itineraries/compose", gin.H{
		"destination": "Goa", "days": 5, "total_budget": 25000, "interests": "beaches",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("compose status = %d, body %s", w.Code, w.Body.String())
	}
	var plan struct {
		PlanID  string `json:"plan_id"`
		Options []struct {
			TierID    string `json:"tier_id"`
			TotalCost int64  `json:"total_cost"`
		} `json:"options"`
	}
	if err := json.Unmarshal(env.Data, &plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if len(plan.Options) != 4 || plan.Options[1].TotalCost != 25000 {
		t.Fatalf("plan = %+v", plan)
	}

	if w, _ := do(t, r, http.MethodGet, "/itineraries/"+plan.PlanID, nil, ""); w.Code != http.StatusOK {
		t.Fatalf("get plan status = %d", w.Code)
	}
	if w, _ := do(t, r, http.MethodGet, "/itineraries/"+plan.PlanID+"/luxury-experience", nil, ""); w.Code != http.StatusOK {
		t.Fatalf("get option status = %d", w.Code)
	}
	if w, _ := do(t, r, http.MethodGet, "/itineraries/"+plan.PlanID+"/backpacker", nil, ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown tier status = %d, want 404", w.Code)
	}
	if w, _ := do(t, r, http.MethodGet, "/itineraries/"+uuid.NewString(), nil, ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown plan status = %d, want 404", w.Code)
	}

	w, _ = do(t, r, http.MethodGet, "/itineraries/"+plan.PlanID+"/comfort-traveler/pdf", nil, "")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("pdf status = %d, content type %q", w.Code, w.Header().Get("Content-Type"))
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("pdf body lacks PDF header")
	}
}

func TestComposeValidation(t *testing.T) {
	r := newTestRouter()
	bodies := []gin.H{
		{"destination": "Goa", "days": 0, "total_budget": 1000},
		{"destination": "Goa", "days": 31, "total_budget": 1000},
		{"destination": "Goa", "days": 3, "total_budget": -5},
		{"destination": "", "days": 3, "total_budget": 1000},
		{"destination": "Goa", "days": 3},
	}
	for _, b := range bodies {
		if w, _ := do(t, r, http.MethodPost, "/itineraries/compose", b, ""); w.Code != http.StatusBadRequest {
			t.Fatalf("body %v: status = %d, want 400", b, w.Code)
		}
	}

	// zero budget is a valid request
	if w, _ := do(t, r, http.MethodPost, "/itineraries/compose", gin.H{"destination": "Goa", "days": 2, "total_budget": 0}, ""); w.Code != http.StatusCreated {
		t.Fatalf("zero budget status = %d, want 201", w.Code)
	}
}

func TestSuggestComposesWithoutProvider(t *testing.T) {
	r := newTestRouter()
	w, env := do(t, r, http.MethodPost, "/itineraries/suggest", gin.H{"destination": "Dubai", "days": 3, "budget": 9000}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var s struct {
		Source   string            `json:"source"`
		DayPlans []json.RawMessage `json:"day_plans"`
	}
	if err := json.Unmarshal(env.Data, &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Source != services.SourceComposed || len(s.DayPlans) != 3 {
		t.Fatalf("suggestion = %+v", s)
	}
}

func TestQuoteEndpoint(t *testing.T) {
	r := newTestRouter()

	w, env := do(t, r, http.MethodPost, "/bookings/quote", gin.H{
		"service_ids": []string{"flight-1", "hotel-1", "ghost"},
		"tiers":       gin.H{"flight-1": "luxury"},
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var q struct {
		Total   int64    `json:"total"`
		Unknown []string `json:"unknown"`
	}
	if err := json.Unmarshal(env.Data, &q); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if q.Total != 27500 || len(q.Unknown) != 1 {
		t.Fatalf("quote = %+v", q)
	}

	if w, _ := do(t, r, http.MethodPost, "/bookings/quote", gin.H{"service_ids": []string{}}, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("empty selection status = %d, want 400", w.Code)
	}
	if w, _ := do(t, r, http.MethodGet, "/services", nil, ""); w.Code != http.StatusOK {
		t.Fatalf("services status = %d", w.Code)
	}
}

func TestCheckoutListAndCancel(t *testing.T) {
	r := newTestRouter()
	user := uuid.NewString()
	checkout := gin.H{"service_ids": []string{"train-1", "bus-1"}, "service_date": "2026-12-24", "payment_method": "upi"}

	if w, _ := do(t, r, http.MethodPost, "/bookings/checkout", checkout, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous checkout status = %d, want 401", w.Code)
	}

	w, env := do(t, r, http.MethodPost, "/bookings/checkout", checkout, user)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Bookings []struct {
			ID          string `json:"id"`
			BookingType string `json:"booking_type"`
		} `json:"bookings"`
	}
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Bookings) != 2 || resp.Bookings[0].BookingType != "transport" {
		t.Fatalf("checkout = %+v", resp)
	}

	w, env = do(t, r, http.MethodGet, "/bookings?status=confirmed", nil, user)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var list struct {
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &list); err != nil || list.Total != 2 {
		t.Fatalf("list = %+v, %v", list, err)
	}

	id := resp.Bookings[0].ID
	if w, _ := do(t, r, http.MethodPost, "/bookings/"+id+"/cancel", nil, uuid.NewString()); w.Code != http.StatusForbidden {
		t.Fatalf("stranger cancel status = %d, want 403", w.Code)
	}
	if w, _ := do(t, r, http.MethodPost, "/bookings/"+id+"/cancel", gin.H{"reason": "weather"}, user); w.Code != http.StatusOK {
		t.Fatalf("cancel status = %d", w.Code)
	}
	if w, _ := do(t, r, http.MethodPost, "/bookings/"+id+"/cancel", nil, user); w.Code != http.StatusConflict {
		t.Fatalf("second cancel status = %d, want 409", w.Code)
	}
	if w, _ := do(t, r, http.MethodPost, "/bookings/not-a-uuid/cancel", nil, user); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d, want 400", w.Code)
	}
}

func TestHealth(t *testing.T) {
	ok := HealthCheck{Name: "postgres", Check: func(context.Context) error { return nil }}
	down := HealthCheck{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }}

	cases := []struct {
		checks []HealthCheck
		want   int
	}{
		{[]HealthCheck{ok}, http.StatusOK},
		{[]HealthCheck{ok, down}, http.StatusServiceUnavailable},
	}
	for _, c := range cases {
		r := gin.New()
		r.GET("/health", NewHealthController(c.checks).Health)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if w.Code != c.want {
			t.Fatalf("status = %d, want %d", w.Code, c.want)
		}
	}
}
