package composer

import "strings"

// NameAdjuster gives a raw catalog activity name the flavour of a tier.
type NameAdjuster interface {
	Adjust(raw string, slot Slot) string
}

type plainNamer struct{}

func (plainNamer) Adjust(raw string, _ Slot) string { return raw }

// budgetNamer swaps the first premium-sounding word for a local one.
type budgetNamer struct{}

func (budgetNamer) Adjust(raw string, _ Slot) string {
	name := strings.Replace(raw, "Premium", "Local", 1)
	return strings.Replace(name, "Luxury", "Budget", 1)
}

type luxuryNamer struct{}

func (luxuryNamer) Adjust(raw string, _ Slot) string {
	if strings.HasPrefix(raw, "Premium") {
		return raw
	}
	return "Premium " + raw
}

// adventureNamer only touches the afternoon slot.
type adventureNamer struct{}

func (adventureNamer) Adjust(raw string, slot Slot) string {
	if slot != Afternoon || strings.Contains(strings.ToLower(raw), "adventure") {
		return raw
	}
	return "Adventure " + raw
}
