package composer

import "fmt"

type slotProfile struct {
	percent     int64
	duration    string
	window      string
	category    string
	description string
}

// The three percentages must add up to 100.
var slotProfiles = map[Slot]slotProfile{
	Morning: {
		percent:     30,
		duration:    "2-3 hours",
		window:      "9:00 AM - 12:00 PM",
		category:    "Culture",
		description: "Start your day exploring the cultural and historical aspects of %s",
	},
	Afternoon: {
		percent:     40,
		duration:    "3-4 hours",
		window:      "1:00 PM - 5:00 PM",
		category:    "Adventure",
		description: "Experience the main attractions and activities that %s is famous for",
	},
	Evening: {
		percent:     30,
		duration:    "2-3 hours",
		window:      "6:00 PM - 9:00 PM",
		category:    "Entertainment",
		description: "Enjoy the nightlife and dining scene of %s",
	},
}

var dayTitles = [7]string{
	"Arrival and City Exploration",
	"Main Attractions Tour",
	"Cultural Immersion",
	"Adventure and Nature",
	"Relaxation and Shopping",
	"Hidden Gems Discovery",
	"Farewell and Departure",
}

// DayBudget is a day's allocation expressed as base × pct / 100, kept as a
// ratio so slot costs can be floored without float error.
type DayBudget struct {
	Base int64
	Pct  int64
}

// Value returns the budget as a decimal, for display.
func (b DayBudget) Value() float64 {
	return float64(b.Base*b.Pct) / 100
}

// share returns floor(base × pct/100 × slotPct/100).
func (b DayBudget) share(slotPct int64) int64 {
	return b.Base * b.Pct * slotPct / 10000
}

// DayTitle renders "Day N - [prefix ]base" with the base cycling every 7 days.
func DayTitle(dayIndex int, tier BudgetTier) string {
	base := dayTitles[(dayIndex-1)%len(dayTitles)]
	if tier.TitlePrefix != "" {
		base = tier.TitlePrefix + " " + base
	}
	return fmt.Sprintf("Day %d - %s", dayIndex, base)
}

// BuildDay assembles one day of a tier's itinerary. dayIndex is 1-based and
// budget must be non-negative.
func BuildDay(destination string, dayIndex int, tier BudgetTier, budget DayBudget) DayPlan {
	day := DayPlan{
		DayIndex: dayIndex,
		Title:    DayTitle(dayIndex, tier),
	}

	for i, slot := range Slots {
		p := slotProfiles[slot]
		name := tier.Namer.Adjust(LookupActivity(destination, slot, dayIndex), slot)
		act := Activity{
			Name:        name,
			Location:    LookupLocation(destination, dayIndex, slot),
			Slot:        slot,
			TimeWindow:  p.window,
			Duration:    p.duration,
			Cost:        budget.share(p.percent),
			Category:    p.category,
			Description: fmt.Sprintf(p.description, destination),
			ImageRef:    ImageFor(name, destination),
		}
		day.Activities[i] = act
		day.TotalCost += act.Cost
	}

	return day
}
