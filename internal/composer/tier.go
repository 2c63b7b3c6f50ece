package composer

type TierID string

const (
	BudgetExplorer   TierID = "budget-explorer"
	ComfortTraveler  TierID = "comfort-traveler"
	LuxuryExperience TierID = "luxury-experience"
	AdventureSeeker  TierID = "adventure-seeker"
)

// BudgetTier is a named budget/quality profile. MultiplierPct scales the daily
// budget in percent (70 means 0.7x).
type BudgetTier struct {
	ID            TierID
	Title         string
	Description   string
	Style         string
	MultiplierPct int64
	Highlights    []string
	Accommodation string
	Transport     string
	UniqueFeature string
	TitlePrefix   string
	Namer         NameAdjuster
}

// Multiplier returns the cost multiplier as a decimal.
func (t BudgetTier) Multiplier() float64 {
	return float64(t.MultiplierPct) / 100
}

const (
	budgetMultiplierPct    = 70
	comfortMultiplierPct   = 100
	luxuryMultiplierPct    = 150
	adventureMultiplierPct = 90
)

var tiers = [4]BudgetTier{
	{
		ID:            BudgetExplorer,
		Title:         "Budget Explorer",
		Description:   "Maximum value for money with authentic local experiences",
		Style:         "Budget-friendly with local experiences",
		MultiplierPct: budgetMultiplierPct,
		Highlights:    []string{"Local markets", "Street food", "Public transport", "Free attractions", "Budget stays"},
		Accommodation: "Budget hotels & hostels",
		Transport:     "Public transport & walking",
		UniqueFeature: "Local guide recommendations",
		TitlePrefix:   "Local",
		Namer:         budgetNamer{},
	},
	{
		ID:            ComfortTraveler,
		Title:         "Comfort Traveler",
		Description:   "Perfect balance of comfort and exploration",
		Style:         "Mid-range comfort with popular attractions",
		MultiplierPct: comfortMultiplierPct,
		Highlights:    []string{"Popular attractions", "Good restaurants", "Comfortable transport", "Quality hotels", "Guided tours"},
		Accommodation: "3-star hotels with amenities",
		Transport:     "Private cabs & comfortable transport",
		UniqueFeature: "Curated experiences",
		Namer:         plainNamer{},
	},
	{
		ID:            LuxuryExperience,
		Title:         "Luxury Experience",
		Description:   "Premium experiences with top-tier services",
		Style:         "High-end luxury with exclusive experiences",
		MultiplierPct: luxuryMultiplierPct,
		Highlights:    []string{"Premium hotels", "Fine dining", "Private tours", "Exclusive access", "Luxury transport"},
		Accommodation: "5-star luxury resorts",
		Transport:     "Private luxury vehicles",
		UniqueFeature: "VIP access & concierge service",
		TitlePrefix:   "Luxury",
		Namer:         luxuryNamer{},
	},
	{
		ID:            AdventureSeeker,
		Title:         "Adventure Seeker",
		Description:   "Thrilling activities and off-the-beaten-path experiences",
		Style:         "Adventure-focused with unique experiences",
		MultiplierPct: adventureMultiplierPct,
		Highlights:    []string{"Adventure sports", "Hidden gems", "Local guides", "Unique experiences", "Outdoor activities"},
		Accommodation: "Adventure lodges & camps",
		Transport:     "Adventure vehicles & trekking",
		UniqueFeature: "Extreme sports & wilderness",
		TitlePrefix:   "Adventure",
		Namer:         adventureNamer{},
	},
}

// Tiers returns the four tiers in their fixed presentation order. Highlights
// slices are shared with the package table and must not be modified.
func Tiers() [4]BudgetTier {
	return tiers
}

func TierByID(id TierID) (BudgetTier, bool) {
	for _, t := range tiers {
		if t.ID == id {
			return t, true
		}
	}
	return BudgetTier{}, false
}

func MultiplierFor(id TierID) (float64, bool) {
	t, ok := TierByID(id)
	if !ok {
		return 0, false
	}
	return t.Multiplier(), true
}
