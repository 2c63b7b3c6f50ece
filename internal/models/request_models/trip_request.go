package request_models

type CreateTripRequest struct {
	Title         string   `json:"title" binding:"required,max=100"`
	Description   string   `json:"description" binding:"max=1000"`
	Destination   string   `json:"destination" binding:"max=100"`
	StartDate     string   `json:"start_date" binding:"required"`
	EndDate       string   `json:"end_date" binding:"required"`
	TravelerCount int      `json:"traveler_count"`
	TotalBudget   *int64   `json:"total_budget"`
	Currency      string   `json:"currency"`
	PrivacyLevel  string   `json:"privacy_level"`
	Interests     []string `json:"interests"`
}

type SaveItineraryTripRequest struct {
	PlanID        string `json:"plan_id" binding:"required"`
	TierID        string `json:"tier_id" binding:"required"`
	StartDate     string `json:"start_date" binding:"required"`
	TravelerCount int    `json:"traveler_count"`
	Currency      string `json:"currency"`
	PrivacyLevel  string `json:"privacy_level"`
}

type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}
