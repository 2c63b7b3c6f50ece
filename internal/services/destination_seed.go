package services

import (
	"globetrotter/internal/composer"
	"globetrotter/internal/models/db_models"
)

// seedDestinations are stored on startup when missing. Every destination
// the itinerary composer knows by name is among them.
var seedDestinations = []db_models.Destination{
	{
		Name:             "Goa",
		City:             "Panaji",
		Country:          "India",
		Continent:        db_models.Asia,
		Latitude:         15.2993,
		Longitude:        74.1240,
		ShortDescription: "Beaches, Portuguese heritage and a lively night scene on India's west coast.",
		Categories:       []string{"Beach", "Nightlife", "Culture", "Food"},
		Languages:        []string{"Konkani", "English", "Hindi"},
		Timezone:         "Asia/Kolkata",
		AveragePrice:     4000,
		Currency:         "INR",
		PriceRange:       db_models.PriceBudget,
		IsFeatured:       true,
	},
	{
		Name:             "Dubai",
		City:             "Dubai",
		Country:          "United Arab Emirates",
		Continent:        db_models.Asia,
		Latitude:         25.2048,
		Longitude:        55.2708,
		ShortDescription: "Skyscrapers, desert safaris and souks on the Persian Gulf.",
		Categories:       []string{"Shopping", "Adventure", "Urban", "Relaxation"},
		Languages:        []string{"Arabic", "English"},
		Timezone:         "Asia/Dubai",
		AveragePrice:     250,
		Currency:         "USD",
		PriceRange:       db_models.PriceLuxury,
		IsFeatured:       true,
	},
	{
		Name:             "Kerala",
		City:             "Kochi",
		Country:          "India",
		Continent:        db_models.Asia,
		Latitude:         9.9312,
		Longitude:        76.2673,
		ShortDescription: "Backwaters, tea hills and Ayurvedic retreats in southern India.",
		Categories:       []string{"Nature", "Relaxation", "Culture", "Food"},
		Languages:        []string{"Malayalam", "English"},
		Timezone:         "Asia/Kolkata",
		AveragePrice:     3500,
		Currency:         "INR",
		PriceRange:       db_models.PriceMidRange,
		IsFeatured:       true,
	},
	{
		Name:             "Lisbon",
		City:             "Lisbon",
		Country:          "Portugal",
		Continent:        db_models.Europe,
		Latitude:         38.7223,
		Longitude:        -9.1393,
		ShortDescription: "Hilly streets, trams and seafood on the Atlantic coast.",
		Categories:       []string{"History", "Food", "Urban", "Art"},
		Languages:        []string{"Portuguese"},
		Timezone:         "Europe/Lisbon",
		AveragePrice:     120,
		Currency:         "EUR",
		PriceRange:       db_models.PriceMidRange,
	},
	{
		Name:             "Queenstown",
		City:             "Queenstown",
		Country:          "New Zealand",
		Continent:        db_models.Oceania,
		Latitude:         -45.0312,
		Longitude:        168.6626,
		ShortDescription: "Lakes, peaks and bungee jumps on New Zealand's South Island.",
		Categories:       []string{"Adventure", "Mountains", "Nature", "Sports"},
		Languages:        []string{"English"},
		Timezone:         "Pacific/Auckland",
		AveragePrice:     180,
		Currency:         "NZD",
		PriceRange:       db_models.PriceLuxury,
	},
}

// catalogSeed returns fresh copies of the seed rows, with the derived fields
// filled in and a placeholder row for any composer destination not listed.
func catalogSeed() []db_models.Destination {
	out := make([]db_models.Destination, 0, len(seedDestinations))
	seen := make(map[string]bool, len(seedDestinations))
	for _, d := range seedDestinations {
		d.Categories = append([]string(nil), d.Categories...)
		d.Languages = append([]string(nil), d.Languages...)
		d.Slug = db_models.Slugify(d.Name)
		d.IsActive = true
		seen[d.Slug] = true
		out = append(out, d)
	}
	for _, name := range composer.KnownDestinations() {
		if slug := db_models.Slugify(name); !seen[slug] {
			out = append(out, db_models.Destination{Name: name, Slug: slug, Currency: DefaultCurrency, IsActive: true})
		}
	}
	return out
}
