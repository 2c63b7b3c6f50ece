package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/pkg/utils"
)

func newBooking(user uuid.UUID, t db_models.BookingType, amount int64) *db_models.Booking {
	return &db_models.Booking{
		UserID:      user,
		BookingType: t,
		Status:      db_models.BookingConfirmed,
		Amount:      amount,
		Currency:    "USD",
	}
}

func TestMemoryBookingStoreAppendAndList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBookingStore()
	alice, bob := uuid.New(), uuid.New()

	if err := store.Append(ctx, newBooking(alice, db_models.BookingFlight, 8500)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.AppendAll(ctx, []*db_models.Booking{
		newBooking(alice, db_models.BookingHotel, 2500),
		newBooking(bob, db_models.BookingTransport, 800),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, total, err := store.List(ctx, alice, BookingFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("total = %d, len = %d; want 2, 2", total, len(got))
	}
	// newest first
	if got[0].BookingType != db_models.BookingHotel {
		t.Fatalf("first booking = %s, want hotel", got[0].BookingType)
	}
	for _, b := range got {
		if b.ID == uuid.Nil || b.CreatedAt == 0 {
			t.Fatalf("booking not stamped: %+v", b)
		}
	}

	got, total, _ = store.List(ctx, alice, BookingFilter{Type: db_models.BookingFlight})
	if total != 1 || got[0].Amount != 8500 {
		t.Fatalf("type filter: total = %d, got = %+v", total, got)
	}

	got, total, _ = store.List(ctx, alice, BookingFilter{Page: 2, PageSize: 1})
	if total != 2 || len(got) != 1 || got[0].BookingType != db_models.BookingFlight {
		t.Fatalf("page 2: total = %d, got = %+v", total, got)
	}

	got, _, _ = store.List(ctx, alice, BookingFilter{Page: 5, PageSize: 10})
	if len(got) != 0 {
		t.Fatalf("page past the end returned %d bookings", len(got))
	}
}

func TestMemoryBookingStoreUpdateStatus(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBookingStore()
	b := newBooking(uuid.New(), db_models.BookingPackage, 50000)
	_ = store.Append(ctx, b)

	if err := store.UpdateStatus(ctx, b.ID, db_models.BookingCancelled, "change of plans"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := store.Get(ctx, b.ID)
	if err != nil || got == nil {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if got.Status != db_models.BookingCancelled || got.CancellationReason != "change of plans" || got.CancelledAt == nil {
		t.Fatalf("cancellation not recorded: %+v", got)
	}

	if err := store.UpdateStatus(ctx, uuid.New(), db_models.BookingCancelled, ""); !errors.Is(err, utils.ErrBookingNotFound) {
		t.Fatalf("err = %v, want ErrBookingNotFound", err)
	}
	if missing, err := store.Get(ctx, uuid.New()); missing != nil || err != nil {
		t.Fatalf("Get(unknown) = %v, %v; want nil, nil", missing, err)
	}
}

func TestPageBounds(t *testing.T) {
	cases := []struct{ n, page, size, start, end int }{
		{10, 1, 3, 0, 3},
		{10, 4, 3, 9, 10},
		{10, 5, 3, 10, 10},
		{10, 0, 0, 0, 10},
	}
	for _, c := range cases {
		s, e := pageBounds(c.n, c.page, c.size)
		if s != c.start || e != c.end {
			t.Fatalf("pageBounds(%d, %d, %d) = %d, %d; want %d, %d", c.n, c.page, c.size, s, e, c.start, c.end)
		}
	}
}
