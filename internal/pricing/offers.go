// Package pricing holds the bookable service catalog and computes booking
// totals for a user's selection of services and price tiers.
package pricing

// Money is an amount in the smallest unit the catalog is priced in.
type Money int64

type PriceTier string

const (
	CostEffective PriceTier = "costEffective"
	Luxury        PriceTier = "luxury"
	Customization PriceTier = "customization"
)

// PriceTiers lists the tiers in display order.
var PriceTiers = [3]PriceTier{CostEffective, Luxury, Customization}

func (t PriceTier) Valid() bool {
	switch t {
	case CostEffective, Luxury, Customization:
		return true
	}
	return false
}

func (t PriceTier) Label() string {
	switch t {
	case CostEffective:
		return "Cost Effective"
	case Luxury:
		return "Luxury"
	case Customization:
		return "Customization"
	}
	return string(t)
}

type ServiceType string

const (
	Flight ServiceType = "flight"
	Hotel  ServiceType = "hotel"
	Cab    ServiceType = "cab"
	Train  ServiceType = "train"
	Bus    ServiceType = "bus"
)

type ServiceOffer struct {
	ID          string                 `json:"id"`
	Type        ServiceType            `json:"type"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Pricing     map[PriceTier]Money    `json:"pricing"`
	Features    map[PriceTier][]string `json:"features"`
	Rating      float64                `json:"rating"`
	Reviews     int                    `json:"reviews"`
}

// Price returns the offer's price for a tier, falling back to the
// cost-effective price when the tier is empty.
func (o ServiceOffer) Price(tier PriceTier) Money {
	if tier == "" {
		tier = CostEffective
	}
	return o.Pricing[tier]
}

// Catalog is an ordered list of offers.
type Catalog []ServiceOffer

func (c Catalog) Find(id string) (ServiceOffer, bool) {
	for _, o := range c {
		if o.ID == id {
			return o, true
		}
	}
	return ServiceOffer{}, false
}

// DefaultCatalog returns a fresh copy of the built-in service offers.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			ID:          "flight-1",
			Type:        Flight,
			Name:        "Flight Booking",
			Description: "Book flights to your destination",
			Pricing:     map[PriceTier]Money{CostEffective: 8500, Luxury: 25000, Customization: 18000},
			Features: map[PriceTier][]string{
				CostEffective: {"Economy Class", "Basic Meal", "20kg Baggage", "Standard Seat"},
				Luxury:        {"Business Class", "Premium Meal", "40kg Baggage", "Priority Boarding", "Lounge Access"},
				Customization: {"Premium Economy", "Meal Choice", "30kg Baggage", "Seat Selection", "Fast Track"},
			},
			Rating:  4.2,
			Reviews: 1250,
		},
		{
			ID:          "hotel-1",
			Type:        Hotel,
			Name:        "Hotel Accommodation",
			Description: "Comfortable stay at your destination",
			Pricing:     map[PriceTier]Money{CostEffective: 2500, Luxury: 12000, Customization: 6500},
			Features: map[PriceTier][]string{
				CostEffective: {"Standard Room", "Basic Amenities", "WiFi", "Daily Housekeeping"},
				Luxury:        {"Suite", "Premium Amenities", "Spa Access", "Concierge Service", "Fine Dining", "Pool"},
				Customization: {"Deluxe Room", "Enhanced Amenities", "Room Service", "Gym Access", "Restaurant"},
			},
			Rating:  4.5,
			Reviews: 890,
		},
		{
			ID:          "cab-1",
			Type:        Cab,
			Name:        "Local Transportation",
			Description: "Convenient cab services for local travel",
			Pricing:     map[PriceTier]Money{CostEffective: 800, Luxury: 3500, Customization: 1800},
			Features: map[PriceTier][]string{
				CostEffective: {"Shared Cab", "AC Vehicle", "Basic Insurance"},
				Luxury:        {"Private Luxury Car", "Professional Driver", "Premium Insurance", "Refreshments"},
				Customization: {"Private Sedan", "Experienced Driver", "Comprehensive Insurance", "Flexible Timing"},
			},
			Rating:  4.1,
			Reviews: 2100,
		},
		{
			ID:          "train-1",
			Type:        Train,
			Name:        "Train Journey",
			Description: "Scenic train travel to your destination",
			Pricing:     map[PriceTier]Money{CostEffective: 1200, Luxury: 4500, Customization: 2800},
			Features: map[PriceTier][]string{
				CostEffective: {"Sleeper Class", "Basic Bedding", "Meals Available"},
				Luxury:        {"First AC", "Premium Bedding", "Gourmet Meals", "Personal Attendant"},
				Customization: {"Second AC", "Comfortable Bedding", "Quality Meals", "Priority Booking"},
			},
			Rating:  4.0,
			Reviews: 750,
		},
		{
			ID:          "bus-1",
			Type:        Bus,
			Name:        "Bus Travel",
			Description: "Affordable bus transportation",
			Pricing:     map[PriceTier]Money{CostEffective: 600, Luxury: 2200, Customization: 1400},
			Features: map[PriceTier][]string{
				CostEffective: {"Standard Seat", "AC Bus", "Basic Amenities"},
				Luxury:        {"Luxury Sleeper", "Premium AC", "Entertainment System", "Refreshments"},
				Customization: {"Semi-Sleeper", "Enhanced AC", "USB Charging", "Snacks"},
			},
			Rating:  3.8,
			Reviews: 1800,
		},
	}
}
