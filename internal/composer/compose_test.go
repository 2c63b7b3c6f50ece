package composer

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func goaRequest() PlanRequest {
	return PlanRequest{Destination: "Goa", Days: 5, TotalBudget: 25000, Interests: "beaches, nightlife"}
}

func TestComposeReturnsFourOptionsInTierOrder(t *testing.T) {
	want := []TierID{BudgetExplorer, ComfortTraveler, LuxuryExperience, AdventureSeeker}

	for _, interests := range []string{"", "beaches, nightlife", ",,, ", "anything at all"} {
		req := goaRequest()
		req.Interests = interests

		options, err := Compose(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(options) != 4 {
			t.Fatalf("interests %q: expected 4 options, got %d", interests, len(options))
		}
		for i, o := range options {
			if o.TierID != want[i] {
				t.Fatalf("option %d tier = %q, want %q", i, o.TierID, want[i])
			}
		}
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	a, err := Compose(goaRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Compose(goaRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two compositions of the same request differ")
	}
}

func TestComposeTotalsAddUp(t *testing.T) {
	requests := []PlanRequest{
		goaRequest(),
		{Destination: "Dubai", Days: 9, TotalBudget: 100001},
		{Destination: "Reykjavik", Days: 3, TotalBudget: 7777.77},
		{Destination: "kerala", Days: 30, TotalBudget: 0},
	}

	for _, req := range requests {
		options, err := Compose(req)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", req.Destination, err)
		}
		for _, o := range options {
			if len(o.Days) != req.Days {
				t.Fatalf("%s/%s: %d days, want %d", req.Destination, o.TierID, len(o.Days), req.Days)
			}
			var optionSum int64
			for _, d := range o.Days {
				var daySum int64
				for i, a := range d.Activities {
					if a.Slot != Slots[i] {
						t.Fatalf("day %d activity %d slot = %q, want %q", d.DayIndex, i, a.Slot, Slots[i])
					}
					daySum += a.Cost
				}
				if d.TotalCost != daySum {
					t.Fatalf("day %d total = %d, activities sum to %d", d.DayIndex, d.TotalCost, daySum)
				}
				optionSum += d.TotalCost
			}
			if o.TotalCost != optionSum {
				t.Fatalf("%s total = %d, days sum to %d", o.TierID, o.TotalCost, optionSum)
			}
		}
	}
}

func TestComposeGoaExample(t *testing.T) {
	options, err := Compose(goaRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	comfort, ok := FindOption(options, ComfortTraveler)
	if !ok {
		t.Fatal("comfort option missing")
	}
	if got := comfort.Days[0].Activities[0].Cost; got != 1500 {
		t.Fatalf("day 1 morning cost = %d, want 1500", got)
	}
	if got := comfort.Days[0].Activities[1].Cost; got != 2000 {
		t.Fatalf("day 1 afternoon cost = %d, want 2000", got)
	}
	if comfort.TotalCost != 25000 {
		t.Fatalf("comfort total = %d, want 25000", comfort.TotalCost)
	}

	totals := map[TierID]int64{}
	for _, o := range options {
		totals[o.TierID] = o.TotalCost
	}
	want := map[TierID]int64{
		BudgetExplorer:   17500,
		ComfortTraveler:  25000,
		LuxuryExperience: 37500,
		AdventureSeeker:  22500,
	}
	if !reflect.DeepEqual(totals, want) {
		t.Fatalf("totals = %v, want %v", totals, want)
	}
	if !(totals[LuxuryExperience] > totals[ComfortTraveler] && totals[ComfortTraveler] > totals[AdventureSeeker]) {
		t.Fatalf("tier cost ordering violated: %v", totals)
	}
	// 22500 / 17500 == 0.9 / 0.7
	if totals[AdventureSeeker]*7 != totals[BudgetExplorer]*9 {
		t.Fatalf("adventure/budget ratio off: %v", totals)
	}
}

func TestComposeSingleDayTitles(t *testing.T) {
	options, err := Compose(PlanRequest{Destination: "Goa", Days: 1, TotalBudget: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[TierID]string{
		BudgetExplorer:   "Day 1 - Local Arrival and City Exploration",
		ComfortTraveler:  "Day 1 - Arrival and City Exploration",
		LuxuryExperience: "Day 1 - Luxury Arrival and City Exploration",
		AdventureSeeker:  "Day 1 - Adventure Arrival and City Exploration",
	}
	for _, o := range options {
		if len(o.Days) != 1 {
			t.Fatalf("%s: %d days, want 1", o.TierID, len(o.Days))
		}
		if o.Days[0].Title != want[o.TierID] {
			t.Fatalf("%s title = %q, want %q", o.TierID, o.Days[0].Title, want[o.TierID])
		}
	}
}

func TestComposeUnknownDestinationFallsBack(t *testing.T) {
	options, err := Compose(PlanRequest{Destination: "Atlantis", Days: 2, TotalBudget: 5000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	comfort, _ := FindOption(options, ComfortTraveler)
	day1 := comfort.Days[0]
	if day1.Activities[0].Name != "Morning Sightseeing in Atlantis" {
		t.Fatalf("morning name = %q", day1.Activities[0].Name)
	}
	if day1.Activities[0].Location != "Atlantis Center" {
		t.Fatalf("morning location = %q", day1.Activities[0].Location)
	}
	if day1.Activities[1].Location != "Atlantis District" {
		t.Fatalf("afternoon location = %q", day1.Activities[1].Location)
	}
	if day1.Activities[2].Location != "Atlantis Center" {
		t.Fatalf("evening location = %q", day1.Activities[2].Location)
	}
}

func TestComposeRejectsInvalidRequests(t *testing.T) {
	cases := []PlanRequest{
		{Destination: "Goa", Days: 0, TotalBudget: 1000},
		{Destination: "Goa", Days: -3, TotalBudget: 1000},
		{Destination: "Goa", Days: 3, TotalBudget: -1},
		{Destination: "Goa", Days: 3, TotalBudget: 2e12},
		{Destination: "Goa", Days: MaxDays + 1, TotalBudget: 1000},
		{Destination: "Goa", Days: 1_000_000_000, TotalBudget: 1000},
	}
	for _, req := range cases {
		options, err := Compose(req)
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("%+v: err = %v, want ErrInvalidRequest", req, err)
		}
		if options != nil {
			t.Fatalf("%+v: expected no options on rejection", req)
		}
	}
}

func TestDayTitleCyclesEverySevenDays(t *testing.T) {
	comfort, _ := TierByID(ComfortTraveler)
	if got := DayTitle(8, comfort); got != "Day 8 - Arrival and City Exploration" {
		t.Fatalf("day 8 title = %q", got)
	}
	if got := DayTitle(14, comfort); got != "Day 14 - Farewell and Departure" {
		t.Fatalf("day 14 title = %q", got)
	}
}

func TestBuildDayLuxuryPrefixesNames(t *testing.T) {
	lux, _ := TierByID(LuxuryExperience)
	day := BuildDay("Dubai", 1, lux, DayBudget{Base: 1000, Pct: lux.MultiplierPct})

	for _, a := range day.Activities {
		if !strings.HasPrefix(a.Name, "Premium ") {
			t.Fatalf("luxury activity %q lacks Premium prefix", a.Name)
		}
	}
	if day.TotalCost != 1500 {
		t.Fatalf("day total = %d, want 1500", day.TotalCost)
	}
}

func TestBuildDayTruncatesConsistently(t *testing.T) {
	adv, _ := TierByID(AdventureSeeker)
	// 3333 × 0.9 = 2999.7 → 899.91, 1199.88, 899.91
	day := BuildDay("Goa", 1, adv, DayBudget{Base: 3333, Pct: adv.MultiplierPct})

	costs := []int64{day.Activities[0].Cost, day.Activities[1].Cost, day.Activities[2].Cost}
	if !reflect.DeepEqual(costs, []int64{899, 1199, 899}) {
		t.Fatalf("costs = %v", costs)
	}
	if day.TotalCost != 2997 {
		t.Fatalf("day total = %d, want 2997", day.TotalCost)
	}
}

func TestInterestTags(t *testing.T) {
	got := PlanRequest{Interests: " beaches, ,nightlife ,food"}.InterestTags()
	want := []string{"beaches", "nightlife", "food"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
}
