package handler

import (
	"net/http"

	"simusmart/internal/model"
	"simusmart/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

type statusRequest struct {
	Status model.OrderStatus `json:"status"`
}

type paymentStatusRequest struct {
	PaymentStatus model.PaymentStatus `json:"paymentStatus"`
}

// List handles GET /api/admin/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	stop := timed(r, "orders")
	orders, err := h.service.ListOrders(r.Context())
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// Get handles GET /api/admin/orders/{id} requests. Items are resolved
// against the catalogue.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	stop := timed(r, "orders")
	details, err := h.service.GetOrderDetails(r.Context(), id)
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, details)
}

// SetStatus handles PUT /api/admin/orders/{id}/status requests.
func (h *OrderHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	if err := h.service.SetStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.writeOrder(w, r, id)
}

// SetPaymentStatus handles PUT /api/admin/orders/{id}/payment-status requests.
func (h *OrderHandler) SetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req paymentStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	if err := h.service.SetPaymentStatus(r.Context(), id, req.PaymentStatus); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.writeOrder(w, r, id)
}

// DeductStock handles POST /api/admin/orders/{id}/deduct-stock requests.
func (h *OrderHandler) DeductStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	stop := timed(r, "stock")
	result, err := h.service.DeductStock(r.Context(), id)
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *OrderHandler) writeOrder(w http.ResponseWriter, r *http.Request, id string) {
	order, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
