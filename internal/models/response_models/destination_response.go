package response_models

type DestinationResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	City             string   `json:"city"`
	Country          string   `json:"country"`
	Continent        string   `json:"continent"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Description      string   `json:"description,omitempty"`
	ShortDescription string   `json:"short_description"`
	ImageURL         string   `json:"image_url,omitempty"`
	Categories       []string `json:"categories"`
	Languages        []string `json:"languages,omitempty"`
	Timezone         string   `json:"timezone,omitempty"`
	VisaRequired     bool     `json:"visa_required"`
	AvgRating        float64  `json:"avg_rating"`
	ReviewCount      int      `json:"review_count"`
	AveragePrice     int64    `json:"average_price"`
	Currency         string   `json:"currency"`
	PriceRange       string   `json:"price_range"`
	IsFeatured       bool     `json:"is_featured"`

	// HasItineraryCatalog is set when composed itineraries use activities
	// written for this destination rather than generic ones.
	HasItineraryCatalog bool     `json:"has_itinerary_catalog"`
	DistanceKm          *float64 `json:"distance_km,omitempty"`
}

type DestinationListResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

type ReviewResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	DestinationID string `json:"destination_id"`
	TripID        string `json:"trip_id,omitempty"`
	Rating        int    `json:"rating"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	HelpfulVotes  int    `json:"helpful_votes"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

type ReviewListResponse struct {
	Reviews  []ReviewResponse `json:"reviews"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
