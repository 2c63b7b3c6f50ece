package response_models

type TripResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Destination   string   `json:"destination"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	TravelerCount int      `json:"traveler_count"`
	TotalBudget   int64    `json:"total_budget"`
	Currency      string   `json:"currency"`
	PrivacyLevel  string   `json:"privacy_level"`
	Status        string   `json:"status"`
	Interests     []string `json:"interests"`
	PlanID        string   `json:"plan_id,omitempty"`
	TierID        string   `json:"tier_id,omitempty"`
	CreatedAt     int64    `json:"created_at"`
}

type TripListResponse struct {
	Trips    []TripResponse `json:"trips"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
