package handler

import (
	"net/http"

	"simusmart/internal/model"
	"simusmart/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles shopping cart HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, r, http.StatusOK)
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.service.Clear(r.Context())
	h.writeCart(w, r, http.StatusOK)
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var item model.CartItem
	if err := decodeJSON(w, r, &item); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	if err := h.service.Add(r.Context(), item.ProductID, item.Quantity); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.writeCart(w, r, http.StatusCreated)
}

// SetItem handles PUT /api/cart/items/{productId} requests. A quantity of
// zero removes the item.
func (h *CartHandler) SetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "productId", h.logger)
	if !ok {
		return
	}

	var req quantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	if err := h.service.SetQuantity(r.Context(), id, req.Quantity); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.writeCart(w, r, http.StatusOK)
}

// RemoveItem handles DELETE /api/cart/items/{productId} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "productId", h.logger)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.writeCart(w, r, http.StatusOK)
}

func (h *CartHandler) writeCart(w http.ResponseWriter, r *http.Request, status int) {
	stop := timed(r, "cart")
	view, err := h.service.View(r.Context())
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, status, view)
}
