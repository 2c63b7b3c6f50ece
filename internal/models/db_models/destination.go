package db_models

import (
	"strings"

	"github.com/lib/pq"
)

type Continent string

const (
	Africa       Continent = "Africa"
	Asia         Continent = "Asia"
	Europe       Continent = "Europe"
	NorthAmerica Continent = "North America"
	SouthAmerica Continent = "South America"
	Oceania      Continent = "Oceania"
)

func (c Continent) Valid() bool {
	switch c {
	case Africa, Asia, Europe, NorthAmerica, SouthAmerica, Oceania:
		return true
	}
	return false
}

type PriceRange string

const (
	PriceBudget   PriceRange = "budget"
	PriceMidRange PriceRange = "mid-range"
	PriceLuxury   PriceRange = "luxury"
)

// ActivityCategories are the tags a destination can be filtered by.
var ActivityCategories = []string{
	"Adventure", "Culture", "Food", "Nature", "Nightlife", "Relaxation", "Shopping",
	"Sports", "History", "Art", "Beach", "Mountains", "Urban",
}

// CanonicalCategory maps a category name to its stored spelling, ignoring case.
func CanonicalCategory(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, c := range ActivityCategories {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

type Destination struct {
	BaseModel
	Name             string         `gorm:"size:100;not null"`
	Slug             string         `gorm:"size:120;uniqueIndex"`
	City             string         `gorm:"size:100"`
	Country          string         `gorm:"size:100;index"`
	Continent        Continent      `gorm:"size:20;index"`
	Latitude         float64        `gorm:"not null"`
	Longitude        float64        `gorm:"not null"`
	Description      string         `gorm:"type:text"`
	ShortDescription string         `gorm:"size:500"`
	ImageURL         string
	Categories       pq.StringArray `gorm:"type:text[]"`
	Languages        pq.StringArray `gorm:"type:text[]"`
	Timezone         string         `gorm:"size:64"`
	VisaRequired     bool

	// Maintained from approved reviews.
	AvgRating   float64 `gorm:"index"`
	ReviewCount int

	AveragePrice int64
	Currency     string     `gorm:"size:3"`
	PriceRange   PriceRange `gorm:"size:10"`
	IsActive     bool       `gorm:"index"`
	IsFeatured   bool       `gorm:"index"`
}

// Slugify lower-cases name, drops everything but letters, digits, spaces and
// hyphens, and joins the words with single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n':
			b.WriteRune(' ')
		}
	}
	words := strings.FieldsFunc(b.String(), func(r rune) bool { return r == ' ' || r == '-' })
	return strings.Join(words, "-")
}
