package composer

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidRequest = errors.New("invalid plan request")

const (
	// MaxTotalBudget bounds the budget so integer cost arithmetic cannot overflow.
	MaxTotalBudget = 1e12
	// MaxDays bounds the number of day plans built for one request.
	MaxDays = 30
)

// Validate reports why a request cannot be composed, if it cannot.
func (r PlanRequest) Validate() error {
	if r.Days < 1 {
		return fmt.Errorf("%w: days must be at least 1, got %d", ErrInvalidRequest, r.Days)
	}
	if r.Days > MaxDays {
		return fmt.Errorf("%w: days must be at most %d, got %d", ErrInvalidRequest, MaxDays, r.Days)
	}
	if math.IsNaN(r.TotalBudget) || math.IsInf(r.TotalBudget, 0) {
		return fmt.Errorf("%w: total budget must be a finite number", ErrInvalidRequest)
	}
	if r.TotalBudget < 0 {
		return fmt.Errorf("%w: total budget must not be negative, got %.2f", ErrInvalidRequest, r.TotalBudget)
	}
	if r.TotalBudget > MaxTotalBudget {
		return fmt.Errorf("%w: total budget exceeds %.0f", ErrInvalidRequest, MaxTotalBudget)
	}
	return nil
}

// DailyBase is floor(totalBudget / days), before any tier multiplier.
func (r PlanRequest) DailyBase() int64 {
	return int64(math.Floor(r.TotalBudget / float64(r.Days)))
}

// Compose builds one itinerary option per tier, in the fixed tier order.
// Invalid requests are rejected before any work is done.
func Compose(req PlanRequest) ([]ItineraryOption, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	destination := strings.TrimSpace(req.Destination)
	base := req.DailyBase()

	options := make([]ItineraryOption, 0, len(tiers))
	for _, tier := range tiers {
		options = append(options, composeTier(destination, req.Days, tier, DayBudget{Base: base, Pct: tier.MultiplierPct}))
	}
	return options, nil
}

func composeTier(destination string, days int, tier BudgetTier, budget DayBudget) ItineraryOption {
	opt := ItineraryOption{
		TierID:        tier.ID,
		Title:         tier.Title,
		Description:   tier.Description,
		Style:         tier.Style,
		Highlights:    append([]string(nil), tier.Highlights...),
		Accommodation: tier.Accommodation,
		Transport:     tier.Transport,
		UniqueFeature: tier.UniqueFeature,
		Days:          make([]DayPlan, 0, days),
	}

	for d := 1; d <= days; d++ {
		day := BuildDay(destination, d, tier, budget)
		opt.Days = append(opt.Days, day)
		opt.TotalCost += day.TotalCost
	}
	return opt
}

// FindOption returns the option for a tier from a composed set.
func FindOption(options []ItineraryOption, id TierID) (ItineraryOption, bool) {
	for _, o := range options {
		if o.TierID == id {
			return o, true
		}
	}
	return ItineraryOption{}, false
}
