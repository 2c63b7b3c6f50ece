package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BookingType string

const (
	BookingFlight    BookingType = "flight"
	BookingHotel     BookingType = "hotel"
	BookingActivity  BookingType = "activity"
	BookingTransport BookingType = "transport"
	BookingPackage   BookingType = "package"
)

func (t BookingType) Valid() bool {
	switch t {
	case BookingFlight, BookingHotel, BookingActivity, BookingTransport, BookingPackage:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Cancellable reports whether a booking in this status may still be cancelled.
func (s BookingStatus) Cancellable() bool {
	return s == BookingPending || s == BookingConfirmed
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	BaseModel
	UserID           uuid.UUID     `gorm:"type:uuid;index"`
	TripID           *uuid.UUID    `gorm:"type:uuid;index"`
	BookingType      BookingType   `gorm:"size:20;index"`
	Status           BookingStatus `gorm:"size:20;index"`
	PaymentStatus    PaymentStatus `gorm:"size:20"`
	Amount           int64
	Currency         string `gorm:"size:3"`
	ServiceDate      time.Time
	ConfirmationCode string `gorm:"size:9;uniqueIndex"`

	PaymentProvider  string
	PaymentReference string `gorm:"index"`

	// Details holds the encoded BookingDetails envelope.
	Details datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	CancellationReason string
	CancelledAt        *int64
}
