package request_models

type CreateReviewRequest struct {
	DestinationID string `json:"destination_id" binding:"required"`
	TripID        string `json:"trip_id"`
	Rating        int    `json:"rating" binding:"required"`
	Title         string `json:"title" binding:"max=255"`
	Content       string `json:"content" binding:"required"`
}

// UpdateReviewRequest changes only the fields that are present.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type ReviewListQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Sort     string `form:"sort"`
}
