package services

import (
	"context"
	"errors"
	"testing"

	"globetrotter/internal/composer"
	"globetrotter/internal/models/request_models"
	"globetrotter/pkg/utils"
)

func TestComposeCachesPlan(t *testing.T) {
	svc := newTestItineraryService()
	ctx := context.Background()

	planID, err := composeGoa(svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan, err := svc.GetPlan(ctx, planID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Destination != "Goa" {
		t.Fatalf("destination = %q, want trimmed Goa", plan.Destination)
	}
	if len(plan.Options) != 4 {
		t.Fatalf("options = %d, want 4", len(plan.Options))
	}
	if len(plan.Interests) != 2 || plan.Interests[0] != "beaches" {
		t.Fatalf("interests = %v", plan.Interests)
	}

	_, option, err := svc.GetOption(ctx, planID, string(composer.LuxuryExperience))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if option.TotalCost != 37500 {
		t.Fatalf("luxury total = %d, want 37500", option.TotalCost)
	}
}

func TestGetOptionErrors(t *testing.T) {
	svc := newTestItineraryService()
	ctx := context.Background()

	planID, err := composeGoa(svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := svc.GetOption(ctx, planID, "backpacker"); !errors.Is(err, utils.ErrTierNotFound) {
		t.Fatalf("err = %v, want ErrTierNotFound", err)
	}
	if _, err := svc.GetPlan(ctx, "missing"); !errors.Is(err, utils.ErrPlanNotFound) {
		t.Fatalf("err = %v, want ErrPlanNotFound", err)
	}
}

func TestComposeRejectsNegativeBudget(t *testing.T) {
	svc := newTestItineraryService()
	_, err := svc.Compose(context.Background(), request_models.ComposeItineraryRequest{
		Destination: "Goa",
		Days:        3,
		TotalBudget: budget(-10),
	})
	if !errors.Is(err, utils.ErrInvalidInput) || !errors.Is(err, composer.ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidInput wrapping ErrInvalidRequest", err)
	}
}
