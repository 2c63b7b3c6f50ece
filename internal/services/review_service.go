package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

const (
	defaultReviewPageSize = 20
	maxReviewPageSize     = 50

	minReviewContent = 10
	maxReviewContent = 2000
	maxReviewTitle   = 255
)

type ReviewServiceInterface interface {
	ListDestinationReviews(ctx context.Context, destinationID uuid.UUID, query request_models.ReviewListQuery) (*response_models.ReviewListResponse, error)
	ListMyReviews(ctx context.Context, userID uuid.UUID, query request_models.PageQuery) (*response_models.ReviewListResponse, error)
	CreateReview(ctx context.Context, userID uuid.UUID, req request_models.CreateReviewRequest) (*response_models.ReviewResponse, error)
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, req request_models.UpdateReviewRequest) (*response_models.ReviewResponse, error)
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
	MarkHelpful(ctx context.Context, reviewID uuid.UUID) (*response_models.ReviewResponse, error)
}

type ReviewService struct {
	reviewRepo      repositories.ReviewRepository
	destinationRepo repositories.DestinationRepository
	logger          *zap.Logger
}

func NewReviewService(reviewRepo repositories.ReviewRepository, destinationRepo repositories.DestinationRepository, logger *zap.Logger) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:      reviewRepo,
		destinationRepo: destinationRepo,
		logger:          logger,
	}
}

func reviewPage(page, pageSize int) (int, int, error) {
	if pageSize == 0 {
		pageSize = defaultReviewPageSize
	}
	if pageSize > maxReviewPageSize {
		return 0, 0, utils.ErrInvalidPageSize
	}
	return normalizePage(page, pageSize)
}

func (s *ReviewService) ListDestinationReviews(ctx context.Context, destinationID uuid.UUID, query request_models.ReviewListQuery) (*response_models.ReviewListResponse, error) {
	page, pageSize, err := reviewPage(query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}
	order := repositories.ReviewsNewest
	if sort := strings.ToLower(strings.TrimSpace(query.Sort)); sort != "" {
		order = repositories.ReviewSort(sort)
		if !order.Valid() {
			return nil, fmt.Errorf("%w: sort must be newest, oldest, rating_high, rating_low or helpful", utils.ErrInvalidInput)
		}
	}
	if _, err := s.activeDestination(ctx, destinationID); err != nil {
		return nil, err
	}

	reviews, total, err := s.reviewRepo.ListByDestination(ctx, destinationID, order, page, pageSize)
	if err != nil {
		s.logger.Error("failed to list reviews", zap.String("destination_id", destinationID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toReviewListResponse(reviews, total, page, pageSize), nil
}

func (s *ReviewService) ListMyReviews(ctx context.Context, userID uuid.UUID, query request_models.PageQuery) (*response_models.ReviewListResponse, error) {
	page, pageSize, err := reviewPage(query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}
	reviews, total, err := s.reviewRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		s.logger.Error("failed to list user reviews", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toReviewListResponse(reviews, total, page, pageSize), nil
}

// CreateReview stores an approved review and refreshes the destination's
// rating. A user reviews each destination once.
func (s *ReviewService) CreateReview(ctx context.Context, userID uuid.UUID, req request_models.CreateReviewRequest) (*response_models.ReviewResponse, error) {
	destinationID, err := uuid.Parse(strings.TrimSpace(req.DestinationID))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid destination id", utils.ErrInvalidInput)
	}
	tripID, err := parseOptionalUUID(req.TripID)
	if err != nil {
		return nil, err
	}
	review := &db_models.Review{
		UserID:        userID,
		DestinationID: destinationID,
		TripID:        tripID,
		IsApproved:    true,
	}
	if err := applyReviewFields(review, &req.Rating, &req.Title, &req.Content); err != nil {
		return nil, err
	}

	if _, err := s.activeDestination(ctx, destinationID); err != nil {
		return nil, err
	}
	existing, err := s.reviewRepo.FindByUserAndDestination(ctx, userID, destinationID)
	if err != nil {
		s.logger.Error("failed to check existing review", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrAlreadyReviewed
	}

	if err := s.reviewRepo.Insert(ctx, review); err != nil {
		s.logger.Error("failed to insert review", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	s.refreshRating(ctx, destinationID)
	return toReviewResponse(review), nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, req request_models.UpdateReviewRequest) (*response_models.ReviewResponse, error) {
	review, err := s.ownedReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}
	if err := applyReviewFields(review, req.Rating, req.Title, req.Content); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		s.logger.Error("failed to update review", zap.String("review_id", reviewID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	s.refreshRating(ctx, review.DestinationID)
	return toReviewResponse(review), nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	review, err := s.ownedReview(ctx, userID, reviewID)
	if err != nil {
		return err
	}
	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		s.logger.Error("failed to delete review", zap.String("review_id", reviewID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	s.refreshRating(ctx, review.DestinationID)
	return nil
}

func (s *ReviewService) MarkHelpful(ctx context.Context, reviewID uuid.UUID) (*response_models.ReviewResponse, error) {
	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if err := s.reviewRepo.IncrementHelpful(ctx, reviewID); err != nil {
		s.logger.Error("failed to record helpful vote", zap.String("review_id", reviewID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	review.HelpfulVotes++
	return toReviewResponse(review), nil
}

func (s *ReviewService) activeDestination(ctx context.Context, id uuid.UUID) (*db_models.Destination, error) {
	d, err := s.destinationRepo.FindById(ctx, id)
	if err != nil {
		s.logger.Error("failed to load destination", zap.String("destination_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if d == nil {
		return nil, utils.ErrDestinationNotFound
	}
	return d, nil
}

func (s *ReviewService) findReview(ctx context.Context, id uuid.UUID) (*db_models.Review, error) {
	review, err := s.reviewRepo.FindById(ctx, id)
	if err != nil {
		s.logger.Error("failed to load review", zap.String("review_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if review == nil {
		return nil, utils.ErrReviewNotFound
	}
	return review, nil
}

func (s *ReviewService) ownedReview(ctx context.Context, userID, id uuid.UUID) (*db_models.Review, error) {
	review, err := s.findReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, utils.ErrForbidden
	}
	return review, nil
}

// refreshRating recomputes a destination's average over approved reviews,
// rounded to one decimal. The review change stands even if this fails.
func (s *ReviewService) refreshRating(ctx context.Context, destinationID uuid.UUID) {
	avg, count, err := s.reviewRepo.RatingStats(ctx, destinationID)
	if err == nil {
		err = s.destinationRepo.UpdateRating(ctx, destinationID, math.Round(avg*10)/10, int(count))
	}
	if err != nil {
		s.logger.Error("failed to refresh destination rating",
			zap.String("destination_id", destinationID.String()),
			zap.Error(err),
		)
	}
}

// applyReviewFields validates and copies the non-nil fields onto review.
func applyReviewFields(review *db_models.Review, rating *int, title, content *string) error {
	if rating != nil {
		if *rating < 1 || *rating > 5 {
			return fmt.Errorf("%w: rating must be between 1 and 5", utils.ErrInvalidInput)
		}
		review.Rating = *rating
	}
	if title != nil {
		t := strings.TrimSpace(*title)
		if utf8.RuneCountInString(t) > maxReviewTitle {
			return fmt.Errorf("%w: title must be at most %d characters", utils.ErrInvalidInput, maxReviewTitle)
		}
		review.Title = t
	}
	if content != nil {
		c := strings.TrimSpace(*content)
		if n := utf8.RuneCountInString(c); n < minReviewContent || n > maxReviewContent {
			return fmt.Errorf("%w: content must be %d to %d characters", utils.ErrInvalidInput, minReviewContent, maxReviewContent)
		}
		review.Content = c
	}
	return nil
}

func toReviewListResponse(reviews []db_models.Review, total int64, page, pageSize int) *response_models.ReviewListResponse {
	resp := &response_models.ReviewListResponse{
		Reviews:  make([]response_models.ReviewResponse, 0, len(reviews)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range reviews {
		resp.Reviews = append(resp.Reviews, *toReviewResponse(&reviews[i]))
	}
	return resp
}

func toReviewResponse(r *db_models.Review) *response_models.ReviewResponse {
	resp := &response_models.ReviewResponse{
		ID:            r.ID.String(),
		UserID:        r.UserID.String(),
		DestinationID: r.DestinationID.String(),
		Rating:        r.Rating,
		Title:         r.Title,
		Content:       r.Content,
		HelpfulVotes:  r.HelpfulVotes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.TripID != nil {
		resp.TripID = r.TripID.String()
	}
	return resp
}
