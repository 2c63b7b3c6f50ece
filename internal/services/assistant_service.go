package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"globetrotter/internal/composer"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/pkg/utils"
)

const (
	SourceAI       = "ai"
	SourceComposed = "composed"
)

const assistantSystemPrompt = `You are a travel planner. Reply with a single JSON object and nothing else:
{"summary": string, "estimated_cost": integer, "day_plans": [{"day": integer, "title": string, "morning": string, "afternoon": string, "evening": string, "tip": string}]}
Write exactly one entry per day, numbered from 1. Keep the estimated cost within the budget.`

type AssistantServiceInterface interface {
	Suggest(ctx context.Context, req request_models.SuggestItineraryRequest) (*response_models.SuggestionResponse, error)
}

// AssistantService asks an LLM for a narrative itinerary. Without a client,
// or when the model answers with something unusable, it renders the
// comfort tier of a composed plan instead.
type AssistantService struct {
	client utils.LLMClient
	logger *zap.Logger
}

// NewAssistantService accepts a nil client.
func NewAssistantService(client utils.LLMClient, logger *zap.Logger) AssistantServiceInterface {
	return &AssistantService{client: client, logger: logger}
}

type llmSuggestion struct {
	Summary       string                           `json:"summary"`
	EstimatedCost int64                            `json:"estimated_cost"`
	DayPlans      []response_models.DaySuggestion `json:"day_plans"`
}

func (s *AssistantService) Suggest(ctx context.Context, req request_models.SuggestItineraryRequest) (*response_models.SuggestionResponse, error) {
	var budget float64
	if req.Budget != nil {
		budget = *req.Budget
	}
	planReq := composer.PlanRequest{
		Destination: strings.TrimSpace(req.Destination),
		Days:        req.Days,
		TotalBudget: budget,
		Interests:   req.Interests,
	}
	if err := planReq.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrInvalidInput, err)
	}

	if s.client != nil {
		resp, err := s.askModel(ctx, planReq)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("assistant falling back to composed itinerary",
			zap.String("provider", s.client.Provider()),
			zap.Error(err),
		)
	}
	return composedSuggestion(planReq)
}

func (s *AssistantService) askModel(ctx context.Context, req composer.PlanRequest) (*response_models.SuggestionResponse, error) {
	prompt := fmt.Sprintf("Plan a %d day trip to %s with a total budget of %.0f.", req.Days, req.Destination, req.TotalBudget)
	if tags := req.InterestTags(); len(tags) > 0 {
		prompt += " The traveler is interested in " + strings.Join(tags, ", ") + "."
	}

	raw, err := s.client.CompleteJSON(ctx, assistantSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var out llmSuggestion
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &out); err != nil {
		return nil, fmt.Errorf("decode suggestion: %w", err)
	}
	if len(out.DayPlans) != req.Days {
		return nil, fmt.Errorf("suggestion has %d days, want %d", len(out.DayPlans), req.Days)
	}
	for i := range out.DayPlans {
		out.DayPlans[i].Day = i + 1
	}
	if out.EstimatedCost < 0 {
		return nil, errors.New("suggestion has a negative cost")
	}

	return &response_models.SuggestionResponse{
		Source:        SourceAI,
		Provider:      s.client.Provider(),
		Destination:   req.Destination,
		Days:          req.Days,
		Summary:       strings.TrimSpace(out.Summary),
		EstimatedCost: out.EstimatedCost,
		DayPlans:      out.DayPlans,
	}, nil
}

func composedSuggestion(req composer.PlanRequest) (*response_models.SuggestionResponse, error) {
	options, err := composer.Compose(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrInvalidInput, err)
	}
	comfort, ok := composer.FindOption(options, composer.ComfortTraveler)
	if !ok {
		return nil, utils.ErrTierNotFound
	}

	resp := &response_models.SuggestionResponse{
		Source:        SourceComposed,
		Destination:   req.Destination,
		Days:          req.Days,
		Summary:       fmt.Sprintf("%d days in %s: %s", req.Days, req.Destination, comfort.Description),
		EstimatedCost: comfort.TotalCost,
		DayPlans:      make([]response_models.DaySuggestion, 0, len(comfort.Days)),
	}
	for _, d := range comfort.Days {
		resp.DayPlans = append(resp.DayPlans, response_models.DaySuggestion{
			Day:       d.DayIndex,
			Title:     d.Title,
			Morning:   describeActivity(d.Activities[0]),
			Afternoon: describeActivity(d.Activities[1]),
			Evening:   describeActivity(d.Activities[2]),
		})
	}
	return resp, nil
}

func describeActivity(a composer.Activity) string {
	return fmt.Sprintf("%s at %s (%s)", a.Name, a.Location, a.TimeWindow)
}
