package repository

import (
	"context"
	"sync"

	"simusmart/internal/model"

	"github.com/rs/zerolog"
)

// reviewRepository implements ReviewRepository in memory.
type reviewRepository struct {
	mu      sync.RWMutex
	reviews []model.Review
	logger  zerolog.Logger
}

// NewReviewRepository creates an in-memory review store seeded with reviews.
func NewReviewRepository(reviews []model.Review, logger zerolog.Logger) ReviewRepository {
	r := &reviewRepository{
		reviews: make([]model.Review, len(reviews)),
		logger:  logger.With().Str("repository", "review").Logger(),
	}
	copy(r.reviews, reviews)
	return r
}

// ListReviews returns the reviews matching filter, in insertion order.
func (r *reviewRepository) ListReviews(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]model.Review, 0, len(r.reviews))
	for _, rev := range r.reviews {
		if filter.ProductID != "" && rev.ProductID != filter.ProductID {
			continue
		}
		if filter.Status != "" && rev.Status != filter.Status {
			continue
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

// GetReview retrieves a review by its ID.
func (r *reviewRepository) GetReview(ctx context.Context, id string) (*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.index(id)
	if i < 0 {
		return nil, model.NotFoundf("review %s not found", id)
	}

	rev := r.reviews[i]
	return &rev, nil
}

// AddReview stores a new review, assigning an ID when it has none.
func (r *reviewRepository) AddReview(ctx context.Context, rev model.Review) (model.Review, error) {
	if err := checkRating(rev.Rating); err != nil {
		return model.Review{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if rev.ID == "" {
		rev.ID = newID(prefixReview)
	} else if r.index(rev.ID) >= 0 {
		return model.Review{}, model.Invalidf("review %s already exists", rev.ID)
	}

	r.reviews = append(r.reviews, rev)

	r.logger.Debug().Str("review_id", rev.ID).Str("product_id", rev.ProductID).Msg("review added")

	return rev, nil
}

// UpdateReview replaces the review with the same ID.
func (r *reviewRepository) UpdateReview(ctx context.Context, rev model.Review) error {
	if err := checkRating(rev.Rating); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(rev.ID)
	if i < 0 {
		return model.NotFoundf("review %s not found", rev.ID)
	}

	r.reviews[i] = rev
	return nil
}

// SetStatus sets the moderation status of a review.
func (r *reviewRepository) SetStatus(ctx context.Context, id string, status model.ReviewStatus) error {
	if !status.Valid() {
		return model.Invalidf("unknown review status %q", status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return model.NotFoundf("review %s not found", id)
	}

	r.reviews[i].Status = status

	r.logger.Debug().Str("review_id", id).Str("status", string(status)).Msg("review moderated")

	return nil
}

// DeleteReview removes a review by ID.
func (r *reviewRepository) DeleteReview(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return model.NotFoundf("review %s not found", id)
	}

	r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
	return nil
}

func (r *reviewRepository) index(id string) int {
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			return i
		}
	}
	return -1
}

func checkRating(rating int) error {
	if rating < model.MinRating || rating > model.MaxRating {
		return model.Invalidf("rating must be between %d and %d, got %d", model.MinRating, model.MaxRating, rating)
	}
	return nil
}
