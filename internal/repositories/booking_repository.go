package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"globetrotter/internal/infra"
	"globetrotter/internal/models/db_models"
	"globetrotter/pkg/utils"
)

type gormBookingStore struct {
	db *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) BookingStore {
	return &gormBookingStore{db: db}
}

func (s *gormBookingStore) Append(ctx context.Context, booking *db_models.Booking) error {
	return s.db.WithContext(ctx).Create(booking).Error
}

func (s *gormBookingStore) AppendAll(ctx context.Context, bookings []*db_models.Booking) (err error) {
	if len(bookings) == 0 {
		return nil
	}

	tx, err := infra.StartTransaction(s.db.WithContext(ctx))
	if err != nil {
		return err
	}
	defer func() {
		err = infra.ReleaseTransaction(tx, err)
	}()

	for _, b := range bookings {
		if err = tx.Create(b).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *gormBookingStore) List(ctx context.Context, userID uuid.UUID, filter BookingFilter) ([]db_models.Booking, int64, error) {
	var (
		bookings []db_models.Booking
		total    int64
	)

	q := s.db.WithContext(ctx).Model(&db_models.Booking{}).Where("user_id = ?", userID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("booking_type = ?", filter.Type)
	}
	q = q.Session(&gorm.Session{})

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Scopes(paginate(filter.Page, filter.PageSize)).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (s *gormBookingStore) Get(ctx context.Context, id uuid.UUID) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := s.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (s *gormBookingStore) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus, reason string) error {
	updates := map[string]interface{}{"status": status}
	if status == db_models.BookingCancelled {
		updates["cancellation_reason"] = reason
		updates["cancelled_at"] = utils.NowUnixSeconds()
	}

	res := s.db.WithContext(ctx).Model(&db_models.Booking{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrBookingNotFound
	}
	return nil
}
