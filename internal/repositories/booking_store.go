package repositories

import (
	"context"

	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
)

// BookingFilter narrows List. Zero values mean "any" and, for PageSize, "all".
type BookingFilter struct {
	Status   db_models.BookingStatus
	Type     db_models.BookingType
	Page     int
	PageSize int
}

// BookingStore persists bookings. List returns the user's bookings newest
// first together with the total number matching the filter. Get returns
// nil, nil when no booking has the id.
type BookingStore interface {
	Append(ctx context.Context, booking *db_models.Booking) error
	// AppendAll stores all bookings or none of them.
	AppendAll(ctx context.Context, bookings []*db_models.Booking) error
	List(ctx context.Context, userID uuid.UUID, filter BookingFilter) ([]db_models.Booking, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*db_models.Booking, error)
	// UpdateStatus records a status change. Moving to cancelled also stamps
	// the cancellation reason and time.
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus, reason string) error
}
