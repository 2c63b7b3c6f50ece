package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, ownerID uuid.UUID, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	SaveItineraryAsTrip(ctx context.Context, ownerID uuid.UUID, req request_models.SaveItineraryTripRequest) (*response_models.TripResponse, error)
	GetTrip(ctx context.Context, viewerID, tripID uuid.UUID) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, ownerID uuid.UUID, query request_models.PageQuery) (*response_models.TripListResponse, error)
}

type TripService struct {
	tripRepo    repositories.TripRepository
	itineraries ItineraryServiceInterface
	logger      *zap.Logger
}

func NewTripService(tripRepo repositories.TripRepository, itineraries ItineraryServiceInterface, logger *zap.Logger) TripServiceInterface {
	return &TripService{
		tripRepo:    tripRepo,
		itineraries: itineraries,
		logger:      logger,
	}
}

// tripDraft holds the fields shared by both ways of creating a trip.
type tripDraft struct {
	title         string
	start, end    time.Time
	travelerCount int
	budget        int64
	currency      string
	privacy       string
}

func (d tripDraft) validate() (*db_models.Trip, error) {
	title := strings.TrimSpace(d.title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", utils.ErrInvalidInput)
	}
	if !d.end.After(d.start) {
		return nil, fmt.Errorf("%w: end date must be after start date", utils.ErrInvalidInput)
	}

	travelers := d.travelerCount
	if travelers == 0 {
		travelers = 1
	}
	if travelers < 1 {
		return nil, fmt.Errorf("%w: traveler count must be at least 1", utils.ErrInvalidInput)
	}
	if d.budget < 0 {
		return nil, fmt.Errorf("%w: total budget must not be negative", utils.ErrInvalidInput)
	}

	currency, err := normalizeCurrency(d.currency)
	if err != nil {
		return nil, fmt.Errorf("%w: currency must be a three letter code", err)
	}

	privacy := db_models.PrivacyLevel(strings.ToLower(strings.TrimSpace(d.privacy)))
	if privacy == "" {
		privacy = db_models.PrivacyPrivate
	}
	if !privacy.Valid() {
		return nil, fmt.Errorf("%w: privacy level %q", utils.ErrInvalidInput, d.privacy)
	}

	return &db_models.Trip{
		Title:         title,
		StartDate:     d.start,
		EndDate:       d.end,
		TravelerCount: travelers,
		TotalBudget:   d.budget,
		Currency:      currency,
		PrivacyLevel:  privacy,
		Status:        db_models.TripDraft,
	}, nil
}

func (s *TripService) CreateTrip(ctx context.Context, ownerID uuid.UUID, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	var budget int64
	if req.TotalBudget != nil {
		budget = *req.TotalBudget
	}

	trip, err := tripDraft{
		title:         req.Title,
		start:         start,
		end:           end,
		travelerCount: req.TravelerCount,
		budget:        budget,
		currency:      req.Currency,
		privacy:       req.PrivacyLevel,
	}.validate()
	if err != nil {
		return nil, err
	}
	trip.OwnerID = ownerID
	trip.Description = strings.TrimSpace(req.Description)
	trip.Destination = strings.TrimSpace(req.Destination)
	trip.Interests = cleanTags(req.Interests)

	if err := s.tripRepo.Insert(ctx, trip); err != nil {
		s.logger.Error("failed to insert trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toTripResponse(trip), nil
}

// SaveItineraryAsTrip stores a cached option as a trip. The trip ends the
// option's day count after the start and budgets the option's total.
func (s *TripService) SaveItineraryAsTrip(ctx context.Context, ownerID uuid.UUID, req request_models.SaveItineraryTripRequest) (*response_models.TripResponse, error) {
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	plan, option, err := s.itineraries.GetOption(ctx, req.PlanID, req.TierID)
	if err != nil {
		return nil, err
	}

	trip, err := tripDraft{
		title:         fmt.Sprintf("%s - %s", plan.Request.Destination, option.Title),
		start:         start,
		end:           start.AddDate(0, 0, len(option.Days)),
		travelerCount: req.TravelerCount,
		budget:        option.TotalCost,
		currency:      req.Currency,
		privacy:       req.PrivacyLevel,
	}.validate()
	if err != nil {
		return nil, err
	}

	itinerary, err := json.Marshal(option)
	if err != nil {
		return nil, fmt.Errorf("encode itinerary: %w", err)
	}

	trip.OwnerID = ownerID
	trip.Description = option.Description
	trip.Destination = plan.Request.Destination
	trip.Interests = plan.Request.InterestTags()
	trip.Status = db_models.TripPlanned
	trip.PlanID = plan.PlanID
	trip.TierID = string(option.TierID)
	trip.Itinerary = itinerary

	if err := s.tripRepo.Insert(ctx, trip); err != nil {
		s.logger.Error("failed to insert trip", zap.String("plan_id", plan.PlanID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toTripResponse(trip), nil
}

// GetTrip returns a trip to its owner, or to anyone when it is public.
// Friends-only trips stay hidden from other viewers since trips carry no
// sharing list.
func (s *TripService) GetTrip(ctx context.Context, viewerID, tripID uuid.UUID) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.FindById(ctx, tripID)
	if err != nil {
		s.logger.Error("failed to load trip", zap.String("trip_id", tripID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.OwnerID != viewerID && trip.PrivacyLevel != db_models.PrivacyPublic {
		return nil, utils.ErrTripNotFound
	}
	return toTripResponse(trip), nil
}

func (s *TripService) ListTrips(ctx context.Context, ownerID uuid.UUID, query request_models.PageQuery) (*response_models.TripListResponse, error) {
	page, pageSize, err := normalizePage(query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}

	trips, total, err := s.tripRepo.ListByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		s.logger.Error("failed to list trips", zap.String("owner_id", ownerID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.TripListResponse{
		Trips:    make([]response_models.TripResponse, 0, len(trips)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range trips {
		resp.Trips = append(resp.Trips, *toTripResponse(&trips[i]))
	}
	return resp, nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func toTripResponse(t *db_models.Trip) *response_models.TripResponse {
	interests := []string(t.Interests)
	if interests == nil {
		interests = []string{}
	}
	return &response_models.TripResponse{
		ID:            t.ID.String(),
		Title:         t.Title,
		Description:   t.Description,
		Destination:   t.Destination,
		StartDate:     utils.FormatDate(t.StartDate),
		EndDate:       utils.FormatDate(t.EndDate),
		TravelerCount: t.TravelerCount,
		TotalBudget:   t.TotalBudget,
		Currency:      t.Currency,
		PrivacyLevel:  string(t.PrivacyLevel),
		Status:        string(t.Status),
		Interests:     interests,
		PlanID:        t.PlanID,
		TierID:        t.TierID,
		CreatedAt:     t.CreatedAt,
	}
}
