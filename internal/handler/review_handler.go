package handler

import (
	"net/http"

	"simusmart/internal/model"
	"simusmart/internal/service"

	"github.com/rs/zerolog"
)

// ReviewHandler handles review HTTP requests.
type ReviewHandler struct {
	service service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("handler", "review").Logger(),
	}
}

// productReviews is the public review listing of a product.
type productReviews struct {
	Rating  model.RatingSummary `json:"rating"`
	Reviews []model.Review      `json:"reviews"`
}

type moderationRequest struct {
	Status model.ReviewStatus `json:"status"`
}

// ListForProduct handles GET /api/products/{id}/reviews requests. Only
// approved reviews are returned.
func (h *ReviewHandler) ListForProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	stop := timed(r, "reviews")
	reviews, err := h.service.ListReviews(r.Context(), model.ReviewFilter{
		ProductID: id,
		Status:    model.ReviewStatusApproved,
	})
	if err != nil {
		stop()
		writeServiceError(w, err, h.logger)
		return
	}
	rating, err := h.service.ProductRating(r.Context(), id)
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, productReviews{Rating: rating, Reviews: reviews})
}

// Submit handles POST /api/reviews requests.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var rev model.Review
	if err := decodeJSON(w, r, &rev); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	added, err := h.service.SubmitReview(r.Context(), rev)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, added)
}

// List handles GET /api/admin/reviews?productId=&status= requests.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.ReviewFilter{
		ProductID: r.URL.Query().Get("productId"),
		Status:    model.ReviewStatus(r.URL.Query().Get("status")),
	}

	stop := timed(r, "reviews")
	reviews, err := h.service.ListReviews(r.Context(), filter)
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

// Moderate handles PUT /api/admin/reviews/{id}/status requests.
func (h *ReviewHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req moderationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	if err := h.service.Moderate(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	rev, err := h.service.GetReview(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, rev)
}

// Update handles PUT /api/admin/reviews/{id} requests. The whole review is
// replaced; the rating must stay within 1 to 5.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var rev model.Review
	if err := decodeJSON(w, r, &rev); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}
	if rev.ID != "" && rev.ID != id {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "review ID does not match path", h.logger)
		return
	}
	rev.ID = id

	if err := h.service.UpdateReview(r.Context(), rev); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rev)
}

// Delete handles DELETE /api/admin/reviews/{id} requests.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.service.DeleteReview(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
