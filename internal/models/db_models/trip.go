package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type PrivacyLevel string

const (
	PrivacyPrivate PrivacyLevel = "private"
	PrivacyFriends PrivacyLevel = "friends"
	PrivacyPublic  PrivacyLevel = "public"
)

func (p PrivacyLevel) Valid() bool {
	switch p {
	case PrivacyPrivate, PrivacyFriends, PrivacyPublic:
		return true
	}
	return false
}

type TripStatus string

const (
	TripDraft     TripStatus = "draft"
	TripPlanned   TripStatus = "planned"
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

type Trip struct {
	BaseModel
	OwnerID       uuid.UUID      `gorm:"type:uuid;index"`
	Title         string         `gorm:"size:100"`
	Description   string         `gorm:"size:1000"`
	Destination   string         `gorm:"size:100"`
	StartDate     time.Time
	EndDate       time.Time
	TravelerCount int
	TotalBudget   int64
	Currency      string         `gorm:"size:3"`
	PrivacyLevel  PrivacyLevel   `gorm:"size:10"`
	Status        TripStatus     `gorm:"size:10;index"`
	Interests     pq.StringArray `gorm:"type:text[]"`

	// Set when the trip was saved from a composed plan.
	PlanID    string
	TierID    string
	Itinerary datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
