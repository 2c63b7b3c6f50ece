package request_models

// ComposeItineraryRequest is the planning form. Days are capped at 30.
type ComposeItineraryRequest struct {
	Destination string   `json:"destination" binding:"required,max=100"`
	Days        int      `json:"days" binding:"required,min=1,max=30"`
	TotalBudget *float64 `json:"total_budget" binding:"required,gte=0"`
	Interests   string   `json:"interests" binding:"max=500"`
}

type SuggestItineraryRequest struct {
	Destination string   `json:"destination" binding:"required,max=100"`
	Days        int      `json:"days" binding:"required,min=1,max=30"`
	Budget      *float64 `json:"budget" binding:"required,gte=0"`
	Interests   string   `json:"interests" binding:"max=500"`
}
