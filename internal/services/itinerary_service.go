package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"globetrotter/internal/composer"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type ItineraryServiceInterface interface {
	Compose(ctx context.Context, req request_models.ComposeItineraryRequest) (*response_models.PlanResponse, error)
	GetPlan(ctx context.Context, planID string) (*response_models.PlanResponse, error)
	// GetOption returns the cached plan and the option for one of its tiers.
	GetOption(ctx context.Context, planID, tierID string) (*repositories.CachedPlan, composer.ItineraryOption, error)
}

type ItineraryService struct {
	cache  repositories.PlanCache
	logger *zap.Logger
}

func NewItineraryService(cache repositories.PlanCache, logger *zap.Logger) ItineraryServiceInterface {
	return &ItineraryService{
		cache:  cache,
		logger: logger,
	}
}

func (s *ItineraryService) Compose(ctx context.Context, req request_models.ComposeItineraryRequest) (*response_models.PlanResponse, error) {
	var budget float64
	if req.TotalBudget != nil {
		budget = *req.TotalBudget
	}
	planReq := composer.PlanRequest{
		Destination: req.Destination,
		Days:        req.Days,
		TotalBudget: budget,
		Interests:   req.Interests,
	}

	options, err := composer.Compose(planReq)
	if err != nil {
		if errors.Is(err, composer.ErrInvalidRequest) {
			return nil, fmt.Errorf("%w: %w", utils.ErrInvalidInput, err)
		}
		return nil, err
	}
	planReq.Destination = strings.TrimSpace(planReq.Destination)

	plan := &repositories.CachedPlan{
		PlanID:    uuid.NewString(),
		Request:   planReq,
		Options:   options,
		CreatedAt: utils.NowUnixSeconds(),
	}
	if err := s.cache.Put(ctx, plan); err != nil {
		s.logger.Error("failed to cache plan", zap.String("plan_id", plan.PlanID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", utils.ErrCacheError, err)
	}

	s.logger.Debug("plan composed",
		zap.String("plan_id", plan.PlanID),
		zap.String("destination", planReq.Destination),
		zap.Int("days", planReq.Days),
	)
	return toPlanResponse(plan), nil
}

func (s *ItineraryService) GetPlan(ctx context.Context, planID string) (*response_models.PlanResponse, error) {
	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

func (s *ItineraryService) GetOption(ctx context.Context, planID, tierID string) (*repositories.CachedPlan, composer.ItineraryOption, error) {
	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, composer.ItineraryOption{}, err
	}
	option, ok := composer.FindOption(plan.Options, composer.TierID(tierID))
	if !ok {
		return nil, composer.ItineraryOption{}, fmt.Errorf("%w: %s", utils.ErrTierNotFound, tierID)
	}
	return plan, option, nil
}

func (s *ItineraryService) loadPlan(ctx context.Context, planID string) (*repositories.CachedPlan, error) {
	plan, err := s.cache.Get(ctx, planID)
	if err != nil {
		s.logger.Error("failed to read plan", zap.String("plan_id", planID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", utils.ErrCacheError, err)
	}
	if plan == nil {
		return nil, fmt.Errorf("%w: %s", utils.ErrPlanNotFound, planID)
	}
	return plan, nil
}

func toPlanResponse(plan *repositories.CachedPlan) *response_models.PlanResponse {
	return &response_models.PlanResponse{
		PlanID:      plan.PlanID,
		Destination: plan.Request.Destination,
		Days:        plan.Request.Days,
		TotalBudget: plan.Request.TotalBudget,
		Interests:   plan.Request.InterestTags(),
		Options:     plan.Options,
		CreatedAt:   plan.CreatedAt,
	}
}
