package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]db_models.Trip, int64, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]db_models.Trip, int64, error) {
	var (
		trips []db_models.Trip
		total int64
	)

	q := r.db.WithContext(ctx).Model(&db_models.Trip{}).Where("owner_id = ?", ownerID).
		Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Scopes(paginate(page, pageSize)).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}
