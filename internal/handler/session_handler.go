package handler

import (
	"net/http"

	"simusmart/internal/model"
	"simusmart/internal/service"

	"github.com/rs/zerolog"
)

// SessionHandler handles shopper and admin session HTTP requests.
type SessionHandler struct {
	service service.SessionService
	logger  zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(service service.SessionService, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger.With().Str("handler", "session").Logger(),
	}
}

type lastPathRequest struct {
	Path string `json:"path"`
}

// Get handles GET /api/session requests.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Snapshot(r.Context()))
}

// Login handles POST /api/session/login requests.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	if _, err := h.service.Login(r.Context(), creds); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Snapshot(r.Context()))
}

// Logout handles POST /api/session/logout requests.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	writeJSON(w, http.StatusOK, h.service.Snapshot(r.Context()))
}

// UpdateUser handles PATCH /api/session/user requests. Without a signed-in
// user the patch is ignored.
func (h *SessionHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var patch model.UserPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	if _, err := h.service.UpdateUser(r.Context(), patch); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Snapshot(r.Context()))
}

// RecordPath handles PUT /api/session/last-path requests.
func (h *SessionHandler) RecordPath(w http.ResponseWriter, r *http.Request) {
	var req lastPathRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	h.service.RecordPath(r.Context(), req.Path)
	writeJSON(w, http.StatusOK, h.service.Snapshot(r.Context()))
}

// AdminLogin handles POST /api/admin/login requests.
func (h *SessionHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	if err := h.service.AdminLogin(r.Context(), creds); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Snapshot(r.Context()))
}

// AdminLogout handles POST /api/admin/logout requests.
func (h *SessionHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	h.service.AdminLogout(r.Context())
	writeJSON(w, http.StatusOK, h.service.Snapshot(r.Context()))
}
