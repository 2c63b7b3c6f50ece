package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"globetrotter/internal/composer"
	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/pkg/utils"
)

func TestCreateTripAppliesDefaults(t *testing.T) {
	svc := NewTripService(&fakeTripRepo{}, newTestItineraryService(), zap.NewNop())

	trip, err := svc.CreateTrip(context.Background(), uuid.New(), request_models.CreateTripRequest{
		Title:     " Monsoon in Kerala ",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-08",
		Interests: []string{"backwaters", " ", "food"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Title != "Monsoon in Kerala" {
		t.Fatalf("title = %q", trip.Title)
	}
	if trip.TravelerCount != 1 || trip.Currency != "USD" || trip.PrivacyLevel != "private" || trip.Status != "draft" {
		t.Fatalf("defaults not applied: %+v", trip)
	}
	if len(trip.Interests) != 2 {
		t.Fatalf("interests = %v", trip.Interests)
	}
}

func TestCreateTripValidation(t *testing.T) {
	svc := NewTripService(&fakeTripRepo{}, newTestItineraryService(), zap.NewNop())
	negative := int64(-1)

	cases := []struct {
		name string
		req  request_models.CreateTripRequest
	}{
		{"end equals start", request_models.CreateTripRequest{Title: "x", StartDate: "2026-07-01", EndDate: "2026-07-01"}},
		{"end before start", request_models.CreateTripRequest{Title: "x", StartDate: "2026-07-05", EndDate: "2026-07-01"}},
		{"negative travelers", request_models.CreateTripRequest{Title: "x", StartDate: "2026-07-01", EndDate: "2026-07-02", TravelerCount: -2}},
		{"negative budget", request_models.CreateTripRequest{Title: "x", StartDate: "2026-07-01", EndDate: "2026-07-02", TotalBudget: &negative}},
		{"bad currency", request_models.CreateTripRequest{Title: "x", StartDate: "2026-07-01", EndDate: "2026-07-02", Currency: "EURO"}},
		{"bad privacy", request_models.CreateTripRequest{Title: "x", StartDate: "2026-07-01", EndDate: "2026-07-02", PrivacyLevel: "secret"}},
		{"bad date", request_models.CreateTripRequest{Title: "x", StartDate: "01/07/2026", EndDate: "2026-07-02"}},
	}
	for _, c := range cases {
		if _, err := svc.CreateTrip(context.Background(), uuid.New(), c.req); !errors.Is(err, utils.ErrInvalidInput) {
			t.Fatalf("%s: err = %v, want ErrInvalidInput", c.name, err)
		}
	}
}

func TestSaveItineraryAsTrip(t *testing.T) {
	itineraries := newTestItineraryService()
	repo := &fakeTripRepo{}
	svc := NewTripService(repo, itineraries, zap.NewNop())
	ctx := context.Background()
	owner := uuid.New()

	planID, err := composeGoa(itineraries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	trip, err := svc.SaveItineraryAsTrip(ctx, owner, request_models.SaveItineraryTripRequest{
		PlanID:        planID,
		TierID:        string(composer.ComfortTraveler),
		StartDate:     "2026-12-01",
		TravelerCount: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Title != "Goa - Comfort Traveler" {
		t.Fatalf("title = %q", trip.Title)
	}
	if trip.EndDate != "2026-12-06" || trip.TotalBudget != 25000 || trip.Status != "planned" {
		t.Fatalf("trip = %+v", trip)
	}
	if len(repo.trips) != 1 || len(repo.trips[0].Itinerary) == 0 {
		t.Fatal("itinerary was not stored with the trip")
	}

	list, err := svc.ListTrips(ctx, owner, request_models.PageQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Total != 1 || list.Trips[0].PlanID != planID {
		t.Fatalf("list = %+v", list)
	}

	got, err := svc.GetTrip(ctx, owner, uuid.MustParse(trip.ID))
	if err != nil || got.ID != trip.ID {
		t.Fatalf("GetTrip = %v, %v", got, err)
	}
	if _, err := svc.GetTrip(ctx, uuid.New(), uuid.MustParse(trip.ID)); !errors.Is(err, utils.ErrTripNotFound) {
		t.Fatalf("private trip visible to stranger: %v", err)
	}
}

func TestGetTripPrivacy(t *testing.T) {
	repo := &fakeTripRepo{}
	svc := NewTripService(repo, newTestItineraryService(), zap.NewNop())
	ctx := context.Background()
	owner, stranger := uuid.New(), uuid.New()

	cases := []struct {
		privacy      db_models.PrivacyLevel
		strangerSees bool
	}{
		{db_models.PrivacyPrivate, false},
		{db_models.PrivacyFriends, false},
		{db_models.PrivacyPublic, true},
	}
	for _, c := range cases {
		trip := &db_models.Trip{OwnerID: owner, Title: "Lisbon", PrivacyLevel: c.privacy}
		trip.ID = uuid.New()
		if err := repo.Insert(ctx, trip); err != nil {
			t.Fatalf("insert: %v", err)
		}

		if got, err := svc.GetTrip(ctx, owner, trip.ID); err != nil || got.ID != trip.ID.String() {
			t.Fatalf("%s: owner read = %v, %v", c.privacy, got, err)
		}
		_, err := svc.GetTrip(ctx, stranger, trip.ID)
		if c.strangerSees && err != nil {
			t.Fatalf("%s: stranger read err = %v, want nil", c.privacy, err)
		}
		if !c.strangerSees && !errors.Is(err, utils.ErrTripNotFound) {
			t.Fatalf("%s: stranger read err = %v, want ErrTripNotFound", c.privacy, err)
		}
	}
}

func TestListTripsRejectsBadPaging(t *testing.T) {
	svc := NewTripService(&fakeTripRepo{}, newTestItineraryService(), zap.NewNop())
	if _, err := svc.ListTrips(context.Background(), uuid.New(), request_models.PageQuery{Page: -1}); !errors.Is(err, utils.ErrInvalidPage) {
		t.Fatalf("err = %v, want ErrInvalidPage", err)
	}
}
