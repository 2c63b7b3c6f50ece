// Package composer turns a trip planning request into priced, day-structured
// itinerary options, one per budget tier.
//
// Everything in this package is pure: no I/O, no clocks, no randomness. The
// lookup tables are package-level and never mutated, so Compose is safe to
// call concurrently.
package composer

import "strings"

// Slot is one of the three fixed daily time windows.
type Slot string

const (
	Morning   Slot = "morning"
	Afternoon Slot = "afternoon"
	Evening   Slot = "evening"
)

// Slots lists the daily windows in the order activities are scheduled.
var Slots = [3]Slot{Morning, Afternoon, Evening}

// PlanRequest is the user's planning input.
type PlanRequest struct {
	Destination string  `json:"destination"`
	Days        int     `json:"days"`
	TotalBudget float64 `json:"total_budget"`
	Interests   string  `json:"interests"`
}

// InterestTags splits the comma-separated interests, dropping blanks.
func (r PlanRequest) InterestTags() []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(r.Interests, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

type Activity struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Slot        Slot   `json:"slot"`
	TimeWindow  string `json:"time_window"`
	Duration    string `json:"duration"`
	Cost        int64  `json:"cost"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageRef    string `json:"image_ref"`
}

// DayPlan always holds exactly three activities: morning, afternoon, evening.
type DayPlan struct {
	DayIndex   int         `json:"day"`
	Title      string      `json:"title"`
	Activities [3]Activity `json:"activities"`
	TotalCost  int64       `json:"total_cost"`
}

type ItineraryOption struct {
	TierID        TierID    `json:"tier_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Style         string    `json:"style"`
	Highlights    []string  `json:"highlights"`
	Accommodation string    `json:"accommodation_type"`
	Transport     string    `json:"transport_mode"`
	UniqueFeature string    `json:"unique_feature"`
	Days          []DayPlan `json:"days"`
	TotalCost     int64     `json:"total_cost"`
}
