package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/pkg/utils"
)

// memoryBookingStore keeps bookings in process memory. It is meant for local
// runs and tests; contents are lost on restart.
type memoryBookingStore struct {
	mu       sync.RWMutex
	bookings []db_models.Booking
}

func NewMemoryBookingStore() BookingStore {
	return &memoryBookingStore{}
}

func (s *memoryBookingStore) Append(ctx context.Context, booking *db_models.Booking) error {
	return s.AppendAll(ctx, []*db_models.Booking{booking})
}

func (s *memoryBookingStore) AppendAll(_ context.Context, bookings []*db_models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range bookings {
		b.Touch()
		s.bookings = append(s.bookings, *b)
	}
	return nil
}

func (s *memoryBookingStore) List(_ context.Context, userID uuid.UUID, filter BookingFilter) ([]db_models.Booking, int64, error) {
	s.mu.RLock()
	matched := make([]db_models.Booking, 0)
	for i := len(s.bookings) - 1; i >= 0; i-- {
		b := s.bookings[i]
		if b.UserID != userID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.Type != "" && b.BookingType != filter.Type {
			continue
		}
		matched = append(matched, b)
	}
	s.mu.RUnlock()

	// newest first; matched is already in reverse append order, which
	// breaks ties
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt > matched[j].CreatedAt
	})

	start, end := pageBounds(len(matched), filter.Page, filter.PageSize)
	return matched[start:end], int64(len(matched)), nil
}

func (s *memoryBookingStore) Get(_ context.Context, id uuid.UUID) (*db_models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memoryBookingStore) UpdateStatus(_ context.Context, id uuid.UUID, status db_models.BookingStatus, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		b := &s.bookings[i]
		if b.ID != id {
			continue
		}
		b.Status = status
		now := utils.NowUnixSeconds()
		b.UpdatedAt = now
		if status == db_models.BookingCancelled {
			b.CancellationReason = reason
			b.CancelledAt = &now
		}
		return nil
	}
	return utils.ErrBookingNotFound
}
