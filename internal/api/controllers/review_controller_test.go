package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

// stubReviews answers from fixed values so the tests exercise only the HTTP
// layer.
type stubReviews struct {
	services.ReviewServiceInterface
	owner   uuid.UUID
	created request_models.CreateReviewRequest
}

func (s *stubReviews) CreateReview(_ context.Context, userID uuid.UUID, req request_models.CreateReviewRequest) (*response_models.ReviewResponse, error) {
	if userID == s.owner {
		return nil, utils.ErrAlreadyReviewed
	}
	s.created = req
	return &response_models.ReviewResponse{ID: uuid.NewString(), UserID: userID.String(), Rating: req.Rating}, nil
}

func (s *stubReviews) DeleteReview(_ context.Context, userID, _ uuid.UUID) error {
	if userID != s.owner {
		return utils.ErrForbidden
	}
	return nil
}

func (s *stubReviews) ListDestinationReviews(_ context.Context, _ uuid.UUID, query request_models.ReviewListQuery) (*response_models.ReviewListResponse, error) {
	if query.Sort == "random" {
		return nil, utils.ErrInvalidInput
	}
	return &response_models.ReviewListResponse{Reviews: []response_models.ReviewResponse{}, Page: 1, PageSize: 20}, nil
}

type stubDestinations struct {
	services.DestinationServiceInterface
}

func (stubDestinations) GetDestination(context.Context, uuid.UUID) (*response_models.DestinationResponse, error) {
	return nil, utils.ErrDestinationNotFound
}

func (stubDestinations) NearbyDestinations(_ context.Context, q request_models.NearbyQuery) ([]response_models.DestinationResponse, error) {
	dist := 0.0
	return []response_models.DestinationResponse{{Name: "Goa", Latitude: *q.Lat, Longitude: *q.Lng, DistanceKm: &dist}}, nil
}

func newReviewRouter(reviews *stubReviews) *gin.Engine {
	auth := func(c *gin.Context) {
		if user := c.GetHeader("X-User"); user != "" {
			c.Set("user_id", user)
		}
		c.Next()
	}
	dc := NewDestinationController(stubDestinations{}, reviews)
	rc := NewReviewController(reviews)

	r := gin.New()
	r.GET("/destinations/nearby", dc.NearbyDestinations)
	r.GET("/destinations/:id", dc.GetDestination)
	r.GET("/destinations/:id/reviews", dc.ListReviews)
	r.POST("/reviews", auth, rc.CreateReview)
	r.DELETE("/reviews/:id", auth, rc.DeleteReview)
	return r
}

func TestReviewEndpoints(t *testing.T) {
	reviews := &stubReviews{owner: uuid.New()}
	r := newReviewRouter(reviews)
	body := gin.H{"destination_id": uuid.NewString(), "rating": 5, "content": "Worth every rupee."}

	if w, _ := do(t, r, http.MethodPost, "/reviews", body, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous create status = %d, want 401", w.Code)
	}
	if w, _ := do(t, r, http.MethodPost, "/reviews", gin.H{"rating": 5}, uuid.NewString()); w.Code != http.StatusBadRequest {
		t.Fatalf("incomplete create status = %d, want 400", w.Code)
	}

	w, env := do(t, r, http.MethodPost, "/reviews", body, uuid.NewString())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var created response_models.ReviewResponse
	if err := json.Unmarshal(env.Data, &created); err != nil || created.Rating != 5 {
		t.Fatalf("created = %+v, %v", created, err)
	}
	if reviews.created.Content != "Worth every rupee." {
		t.Fatalf("service got %+v", reviews.created)
	}

	if w, _ := do(t, r, http.MethodPost, "/reviews", body, reviews.owner.String()); w.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", w.Code)
	}

	if w, _ := do(t, r, http.MethodDelete, "/reviews/"+uuid.NewString(), nil, uuid.NewString()); w.Code != http.StatusForbidden {
		t.Fatalf("stranger delete status = %d, want 403", w.Code)
	}
	if w, _ := do(t, r, http.MethodDelete, "/reviews/nope", nil, reviews.owner.String()); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d, want 400", w.Code)
	}
	if w, _ := do(t, r, http.MethodDelete, "/reviews/"+uuid.NewString(), nil, reviews.owner.String()); w.Code != http.StatusOK {
		t.Fatalf("owner delete status = %d, want 200", w.Code)
	}
}

func TestDestinationEndpoints(t *testing.T) {
	r := newReviewRouter(&stubReviews{})

	if w, _ := do(t, r, http.MethodGet, "/destinations/"+uuid.NewString(), nil, ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown destination status = %d, want 404", w.Code)
	}
	if w, _ := do(t, r, http.MethodGet, "/destinations/goa", nil, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d, want 400", w.Code)
	}
	if w, _ := do(t, r, http.MethodGet, "/destinations/"+uuid.NewString()+"/reviews?sort=random", nil, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad sort status = %d, want 400", w.Code)
	}

	if w, _ := do(t, r, http.MethodGet, "/destinations/nearby?lat=15.3", nil, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("missing lng status = %d, want 400", w.Code)
	}
	w, env := do(t, r, http.MethodGet, "/destinations/nearby?lat=15.3&lng=74.1", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("nearby status = %d, body %s", w.Code, w.Body.String())
	}
	var nearby []response_models.DestinationResponse
	if err := json.Unmarshal(env.Data, &nearby); err != nil || len(nearby) != 1 || nearby[0].Longitude != 74.1 {
		t.Fatalf("nearby = %+v, %v", nearby, err)
	}
}
