package response_models

import "globetrotter/internal/composer"

type PlanResponse struct {
	PlanID      string                     `json:"plan_id"`
	Destination string                     `json:"destination"`
	Days        int                        `json:"days"`
	TotalBudget float64                    `json:"total_budget"`
	Interests   []string                   `json:"interests"`
	Options     []composer.ItineraryOption `json:"options"`
	CreatedAt   int64                      `json:"created_at"`
}

type DaySuggestion struct {
	Day       int    `json:"day"`
	Title     string `json:"title"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
	Tip       string `json:"tip,omitempty"`
}

// SuggestionResponse is a narrative itinerary. Source is "ai" when a model
// wrote it and "composed" when it was rendered from the built-in catalog.
type SuggestionResponse struct {
	Source        string          `json:"source"`
	Provider      string          `json:"provider,omitempty"`
	Destination   string          `json:"destination"`
	Days          int             `json:"days"`
	Summary       string          `json:"summary"`
	EstimatedCost int64           `json:"estimated_cost"`
	DayPlans      []DaySuggestion `json:"day_plans"`
}
