package pricing

import (
	"errors"
	"reflect"
	"testing"
)

func TestComputeTotalFlightLuxuryHotelCostEffective(t *testing.T) {
	sel, err := NewSelection(
		[]string{"flight-1", "hotel-1"},
		map[string]PriceTier{"flight-1": Luxury, "hotel-1": CostEffective},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total, err := ComputeTotal(sel, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 27500 {
		t.Fatalf("total = %d, want 27500", total)
	}
}

func TestComputeTotalDefaultsMissingTier(t *testing.T) {
	sel, err := NewSelection([]string{"cab-1", "bus-1"}, map[string]PriceTier{"bus-1": Customization})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total, err := ComputeTotal(sel, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 800+1400 {
		t.Fatalf("total = %d, want %d", total, 800+1400)
	}
}

func TestComputeTotalSkipsUnknownServices(t *testing.T) {
	sel, _ := NewSelection([]string{"train-1", "yacht-9", "hotel-1"}, nil)

	total, err := ComputeTotal(sel, DefaultCatalog())
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("err = %v, want ErrServiceNotFound", err)
	}
	if total != 1200+2500 {
		t.Fatalf("total = %d, want %d", total, 1200+2500)
	}

	q := NewQuote(sel, DefaultCatalog())
	if !reflect.DeepEqual(q.Unknown, []string{"yacht-9"}) {
		t.Fatalf("unknown = %v", q.Unknown)
	}
	if len(q.Lines) != 2 || q.Lines[0].ServiceID != "train-1" || q.Lines[1].ServiceID != "hotel-1" {
		t.Fatalf("lines out of selection order: %+v", q.Lines)
	}
}

func TestEmptySelectionTotalsZero(t *testing.T) {
	total, err := ComputeTotal(&Selection{}, DefaultCatalog())
	if err != nil || total != 0 {
		t.Fatalf("total = %d, err = %v; want 0, nil", total, err)
	}
}

func TestToggleLeavesNoOrphanTiers(t *testing.T) {
	sel := &Selection{}

	if !sel.Toggle("flight-1") {
		t.Fatal("first toggle should select")
	}
	if sel.TierFor("flight-1") != CostEffective {
		t.Fatalf("default tier = %q", sel.TierFor("flight-1"))
	}
	if err := sel.SetTier("flight-1", Luxury); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Toggle("flight-1") {
		t.Fatal("second toggle should unselect")
	}
	if len(sel.tiers) != 0 || sel.Len() != 0 {
		t.Fatalf("orphaned state after unselect: ids=%v tiers=%v", sel.ids, sel.tiers)
	}

	// reselecting starts from the default tier again
	sel.Toggle("flight-1")
	if sel.TierFor("flight-1") != CostEffective {
		t.Fatalf("tier after reselect = %q", sel.TierFor("flight-1"))
	}
}

func TestToggleTrimsIDs(t *testing.T) {
	sel, err := NewSelection([]string{"hotel-1"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sel.Toggle(" hotel-1 ") {
		t.Fatal("padded id should unselect hotel-1")
	}
	if sel.Len() != 0 {
		t.Fatalf("ids = %v, want none", sel.IDs())
	}
	if !sel.Toggle("\tcab-1 ") || !sel.Has("cab-1") {
		t.Fatalf("ids = %v, want [cab-1]", sel.IDs())
	}
	if sel.Toggle("   ") || sel.Len() != 1 {
		t.Fatalf("blank id changed the selection: %v", sel.IDs())
	}
}

func TestSetTierRequiresSelection(t *testing.T) {
	sel := &Selection{}
	if err := sel.SetTier("hotel-1", Luxury); !errors.Is(err, ErrNotSelected) {
		t.Fatalf("err = %v, want ErrNotSelected", err)
	}
	if sel.Has("hotel-1") {
		t.Fatal("SetTier must not select")
	}

	sel.Toggle("hotel-1")
	if err := sel.SetTier("hotel-1", "platinum"); !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("err = %v, want ErrInvalidTier", err)
	}
}

func TestNewSelectionDropsOrphansAndDuplicates(t *testing.T) {
	sel, err := NewSelection(
		[]string{"hotel-1", " ", "hotel-1", "cab-1"},
		map[string]PriceTier{"hotel-1": Luxury, "bus-1": Luxury},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(sel.IDs(), []string{"hotel-1", "cab-1"}) {
		t.Fatalf("ids = %v", sel.IDs())
	}
	if sel.Has("bus-1") {
		t.Fatal("tier choice for an unselected id leaked into the selection")
	}
	if sel.TierFor("hotel-1") != Luxury {
		t.Fatalf("hotel tier = %q", sel.TierFor("hotel-1"))
	}

	if _, err := NewSelection([]string{"cab-1"}, map[string]PriceTier{"cab-1": "gold"}); !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("err = %v, want ErrInvalidTier", err)
	}
}

func TestDefaultCatalogIsACopy(t *testing.T) {
	c := DefaultCatalog()
	c[0].Pricing[Luxury] = 1
	if DefaultCatalog()[0].Pricing[Luxury] != 25000 {
		t.Fatal("catalog mutation leaked across calls")
	}
}
