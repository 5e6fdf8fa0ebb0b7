package handler

import (
	"net/http"

	"simusmart/internal/model"
	"simusmart/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles product and category HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// ListProducts handles GET /api/products?q=&category= requests.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := model.ProductFilter{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	stop := timed(r, "catalog")
	products, err := h.service.ListProducts(r.Context(), filter)
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{id} requests.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	stop := timed(r, "catalog")
	product, err := h.service.GetProduct(r.Context(), id)
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /api/admin/products requests.
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if err := decodeJSON(w, r, &p); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	stop := timed(r, "catalog")
	added, err := h.service.AddProduct(r.Context(), p)
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, added)
}

// UpdateProduct handles PUT /api/admin/products/{id} requests.
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var p model.Product
	if err := decodeJSON(w, r, &p); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}
	if p.ID != "" && p.ID != id {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "product ID does not match path", h.logger)
		return
	}
	p.ID = id

	stop := timed(r, "catalog")
	err := h.service.UpdateProduct(r.Context(), p)
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// DeleteProduct handles DELETE /api/admin/products/{id} requests.
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCategories handles GET /api/categories requests.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	stop := timed(r, "catalog")
	categories, err := h.service.ListCategories(r.Context())
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /api/admin/categories requests.
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var c model.Category
	if err := decodeJSON(w, r, &c); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	added, err := h.service.AddCategory(r.Context(), c)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, added)
}

// UpdateCategory handles PUT /api/admin/categories/{id} requests.
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var c model.Category
	if err := decodeJSON(w, r, &c); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}
	if c.ID != "" && c.ID != id {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "category ID does not match path", h.logger)
		return
	}
	c.ID = id

	if err := h.service.UpdateCategory(r.Context(), c); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

// DeleteCategory handles DELETE /api/admin/categories/{id} requests. A
// category still used by products answers 409 with the blocking count.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
