package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type ReviewSort string

const (
	ReviewsNewest     ReviewSort = "newest"
	ReviewsOldest     ReviewSort = "oldest"
	ReviewsRatingHigh ReviewSort = "rating_high"
	ReviewsRatingLow  ReviewSort = "rating_low"
	ReviewsHelpful    ReviewSort = "helpful"
)

var reviewOrders = map[ReviewSort]string{
	ReviewsNewest:     "created_at DESC",
	ReviewsOldest:     "created_at ASC",
	ReviewsRatingHigh: "rating DESC, created_at DESC",
	ReviewsRatingLow:  "rating ASC, created_at DESC",
	ReviewsHelpful:    "helpful_votes DESC, created_at DESC",
}

func (s ReviewSort) Valid() bool {
	_, ok := reviewOrders[s]
	return ok
}

// ReviewRepository stores destination reviews. Lookups return nil, nil when
// nothing matches.
type ReviewRepository interface {
	Insert(ctx context.Context, review *db_models.Review) error
	Update(ctx context.Context, review *db_models.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Review, error)
	FindByUserAndDestination(ctx context.Context, userID, destinationID uuid.UUID) (*db_models.Review, error)
	// ListByDestination returns approved reviews only.
	ListByDestination(ctx context.Context, destinationID uuid.UUID, sort ReviewSort, page, pageSize int) ([]db_models.Review, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Review, int64, error)
	IncrementHelpful(ctx context.Context, id uuid.UUID) error
	// RatingStats averages the approved ratings of a destination.
	RatingStats(ctx context.Context, destinationID uuid.UUID) (float64, int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) Update(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

// Delete removes the row outright so the user may review the destination again.
func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&db_models.Review{}, "id = ?", id).Error
}

func (r *reviewRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Review, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *reviewRepository) FindByUserAndDestination(ctx context.Context, userID, destinationID uuid.UUID) (*db_models.Review, error) {
	return r.first(ctx, "user_id = ? AND destination_id = ?", userID, destinationID)
}

func (r *reviewRepository) first(ctx context.Context, query string, args ...interface{}) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).Where(query, args...).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByDestination(ctx context.Context, destinationID uuid.UUID, sort ReviewSort, page, pageSize int) ([]db_models.Review, int64, error) {
	order, ok := reviewOrders[sort]
	if !ok {
		order = reviewOrders[ReviewsNewest]
	}
	q := r.db.WithContext(ctx).Model(&db_models.Review{}).
		Where("destination_id = ? AND is_approved = ?", destinationID, true)
	return r.list(q, order, page, pageSize)
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Review, int64, error) {
	q := r.db.WithContext(ctx).Model(&db_models.Review{}).Where("user_id = ?", userID)
	return r.list(q, reviewOrders[ReviewsNewest], page, pageSize)
}

func (r *reviewRepository) list(q *gorm.DB, order string, page, pageSize int) ([]db_models.Review, int64, error) {
	var (
		reviews []db_models.Review
		total   int64
	)

	q = q.Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Scopes(paginate(page, pageSize)).
		Order(order).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) IncrementHelpful(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.Review{}).
		Where("id = ?", id).
		UpdateColumn("helpful_votes", gorm.Expr("helpful_votes + ?", 1)).Error
}

func (r *reviewRepository) RatingStats(ctx context.Context, destinationID uuid.UUID) (float64, int64, error) {
	var stats struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&db_models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("destination_id = ? AND is_approved = ?", destinationID, true).
		Scan(&stats).Error
	if err != nil {
		return 0, 0, err
	}
	return stats.Avg, stats.Count, nil
}
