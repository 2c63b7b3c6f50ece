package db_models

import "github.com/google/uuid"

// Review is one traveler's rating of a destination. A user reviews a
// destination at most once.
type Review struct {
	BaseModel
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_destination"`
	DestinationID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_destination;index"`
	TripID        *uuid.UUID `gorm:"type:uuid"`
	Rating        int        `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Title         string     `gorm:"size:255"`
	Content       string     `gorm:"type:text;not null"`
	IsApproved    bool       `gorm:"index"`
	HelpfulVotes  int        `gorm:"not null;default:0"`
}
