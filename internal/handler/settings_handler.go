package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"simusmart/internal/model"
	"simusmart/internal/service"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
)

// SettingsHandler handles store settings HTTP requests.
type SettingsHandler struct {
	service service.SettingsService
	logger  zerolog.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(service service.SettingsService, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		logger:  logger.With().Str("handler", "settings").Logger(),
	}
}

// Get handles GET /api/settings requests. The response carries a weak ETag
// of the snapshot and a matching If-None-Match answers 304.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stop := timed(r, "settings")
	settings, err := h.service.Get(r.Context())
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	body, err := json.Marshal(settings)
	if err != nil {
		writeServiceError(w, fmt.Errorf("failed to encode settings: %w", err), h.logger)
		return
	}
	etag := settingsETag(body)

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Save handles PUT /api/admin/settings requests with a full settings record.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var s model.StoreSettings
	if err := decodeJSON(w, r, &s); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	stop := timed(r, "settings")
	saved, err := h.service.Save(r.Context(), s)
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

// AddSocialLink handles POST /api/admin/settings/socials requests.
func (h *SettingsHandler) AddSocialLink(w http.ResponseWriter, r *http.Request) {
	var l model.SocialLink
	if err := decodeJSON(w, r, &l); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}
	added, err := h.service.AddSocialLink(r.Context(), l)
	h.writeCreated(w, added, err)
}

// UpdateSocialLink handles PUT /api/admin/settings/socials/{id} requests.
func (h *SettingsHandler) UpdateSocialLink(w http.ResponseWriter, r *http.Request) {
	var l model.SocialLink
	if !h.decodeItem(w, r, &l, &l.ID) {
		return
	}
	h.writeUpdated(w, l, h.service.UpdateSocialLink(r.Context(), l))
}

// DeleteSocialLink handles DELETE /api/admin/settings/socials/{id} requests.
func (h *SettingsHandler) DeleteSocialLink(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.service.DeleteSocialLink)
}

// AddQuickLink handles POST /api/admin/settings/quick-links requests.
func (h *SettingsHandler) AddQuickLink(w http.ResponseWriter, r *http.Request) {
	var l model.QuickLink
	if err := decodeJSON(w, r, &l); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}
	added, err := h.service.AddQuickLink(r.Context(), l)
	h.writeCreated(w, added, err)
}

// UpdateQuickLink handles PUT /api/admin/settings/quick-links/{id} requests.
func (h *SettingsHandler) UpdateQuickLink(w http.ResponseWriter, r *http.Request) {
	var l model.QuickLink
	if !h.decodeItem(w, r, &l, &l.ID) {
		return
	}
	h.writeUpdated(w, l, h.service.UpdateQuickLink(r.Context(), l))
}

// DeleteQuickLink handles DELETE /api/admin/settings/quick-links/{id} requests.
func (h *SettingsHandler) DeleteQuickLink(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.service.DeleteQuickLink)
}

// AddPaymentMethod handles POST /api/admin/settings/payment-methods requests.
func (h *SettingsHandler) AddPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var m model.PaymentMethod
	if err := decodeJSON(w, r, &m); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}
	added, err := h.service.AddPaymentMethod(r.Context(), m)
	h.writeCreated(w, added, err)
}

// UpdatePaymentMethod handles PUT /api/admin/settings/payment-methods/{id} requests.
func (h *SettingsHandler) UpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var m model.PaymentMethod
	if !h.decodeItem(w, r, &m, &m.ID) {
		return
	}
	h.writeUpdated(w, m, h.service.UpdatePaymentMethod(r.Context(), m))
}

// DeletePaymentMethod handles DELETE /api/admin/settings/payment-methods/{id} requests.
func (h *SettingsHandler) DeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.service.DeletePaymentMethod)
}

// decodeItem decodes a list item and pins its ID to the path.
func (h *SettingsHandler) decodeItem(w http.ResponseWriter, r *http.Request, v any, id *string) bool {
	pathValue, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return false
	}
	if err := decodeJSON(w, r, v); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return false
	}
	if *id != "" && *id != pathValue {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "item ID does not match path", h.logger)
		return false
	}
	*id = pathValue
	return true
}

func (h *SettingsHandler) writeCreated(w http.ResponseWriter, item any, err error) {
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *SettingsHandler) writeUpdated(w http.ResponseWriter, item any, err error) {
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *SettingsHandler) delete(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, id string) error) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}
	if err := del(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// settingsETag returns a weak validator for an encoded settings snapshot.
func settingsETag(body []byte) string {
	return fmt.Sprintf(`W/"%016x"`, xxhash.Sum64(body))
}
