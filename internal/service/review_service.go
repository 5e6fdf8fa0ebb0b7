package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"simusmart/internal/model"
	"simusmart/internal/repository"

	"github.com/rs/zerolog"
)

// reviewDateLayout is the calendar date format stored on reviews.
const reviewDateLayout = "2006-01-02"

// reviewService implements ReviewService.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	logger     zerolog.Logger
	now        func() time.Time
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, logger zerolog.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		logger:     logger.With().Str("service", "review").Logger(),
		now:        time.Now,
	}
}

func (s *reviewService) ListReviews(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, model.Invalidf("unknown review status %q", filter.Status)
	}

	reviews, err := s.reviewRepo.ListReviews(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list reviews")
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) GetReview(ctx context.Context, id string) (*model.Review, error) {
	return s.reviewRepo.GetReview(ctx, id)
}

// SubmitReview stores a shopper review as Pending, dated today when the
// date is missing.
func (s *reviewService) SubmitReview(ctx context.Context, r model.Review) (model.Review, error) {
	r.ProductID = strings.TrimSpace(r.ProductID)
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	if r.ProductID == "" {
		return model.Review{}, model.Invalidf("product ID is required")
	}
	if r.CustomerName == "" {
		return model.Review{}, model.Invalidf("customer name is required")
	}
	if r.Date == "" {
		r.Date = s.now().Format(reviewDateLayout)
	}
	r.ID = ""
	r.Status = model.ReviewStatusPending

	added, err := s.reviewRepo.AddReview(ctx, r)
	if err != nil {
		s.logger.Warn().Err(err).Str("product_id", r.ProductID).Msg("review rejected")
		return model.Review{}, err
	}

	s.logger.Info().
		Str("review_id", added.ID).
		Str("product_id", added.ProductID).
		Int("rating", added.Rating).
		Msg("review submitted")

	return added, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, r model.Review) error {
	if r.ID == "" {
		return model.Invalidf("review ID is required")
	}
	if !r.Status.Valid() {
		return model.Invalidf("unknown review status %q", r.Status)
	}
	return s.reviewRepo.UpdateReview(ctx, r)
}

// Moderate approves or rejects a review. A review cannot be moved back to
// Pending.
func (s *reviewService) Moderate(ctx context.Context, id string, status model.ReviewStatus) error {
	if status != model.ReviewStatusApproved && status != model.ReviewStatusRejected {
		s.logger.Warn().Str("review_id", id).Str("status", string(status)).Msg("invalid moderation status")
		return model.Invalidf("moderation status must be %s or %s", model.ReviewStatusApproved, model.ReviewStatusRejected)
	}
	return s.reviewRepo.SetStatus(ctx, id, status)
}

func (s *reviewService) DeleteReview(ctx context.Context, id string) error {
	if err := s.reviewRepo.DeleteReview(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("review_id", id).Msg("review deleted")

	return nil
}

// ProductRating averages the approved ratings of a product, rounded to one
// decimal place.
func (s *reviewService) ProductRating(ctx context.Context, productID string) (model.RatingSummary, error) {
	reviews, err := s.reviewRepo.ListReviews(ctx, model.ReviewFilter{
		ProductID: productID,
		Status:    model.ReviewStatusApproved,
	})
	if err != nil {
		return model.RatingSummary{}, fmt.Errorf("failed to list reviews: %w", err)
	}

	summary := model.RatingSummary{ProductID: productID, Count: len(reviews)}
	if len(reviews) == 0 {
		return summary, nil
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	summary.Average = math.Round(float64(total)/float64(len(reviews))*10) / 10

	return summary, nil
}
