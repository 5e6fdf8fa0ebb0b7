// Package handler exposes the stores over JSON HTTP endpoints.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"simusmart/internal/model"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/rs/zerolog"
)

// maxBodyBytes bounds request bodies. Settings may carry inline data: URL
// logos, so the limit is generous.
const maxBodyBytes = 8 << 20

// writeJSON writes a JSON response with the given status code. The status is
// committed before encoding, so an encoding failure leaves a truncated body.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code, error code
// and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).Str("error", message).Int("status", status).Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps a service error onto a status code and writes it.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var inUse *model.CategoryInUseError
	var domainErr *model.DomainError

	switch {
	case errors.As(err, &inUse):
		logger.Warn().Str("category", inUse.CategoryName).Int("blocking_count", inUse.BlockingCount).Msg("handler error")
		writeJSON(w, http.StatusConflict, model.ErrorResponse{
			Error:         model.ErrCodeConstraintBlocked,
			Message:       inUse.Error(),
			BlockingCount: inUse.BlockingCount,
		})
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, err.Error(), logger)
	case errors.Is(err, model.ErrValidationFailed):
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, err.Error(), logger)
	case errors.Is(err, model.ErrConstraintBlocked):
		writeError(w, http.StatusConflict, model.ErrCodeConstraintBlocked, err.Error(), logger)
	case errors.As(err, &domainErr):
		writeError(w, http.StatusBadRequest, domainErr.Code, domainErr.Message, logger)
	default:
		logger.Error().Err(err).Msg("unexpected service error")
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
	}
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// readBody returns the raw request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

// timed starts a Server-Timing metric and returns the func that stops it.
// Metrics must be stopped before the response header is written.
func timed(r *http.Request, name string) func() {
	timing := servertiming.FromContext(r.Context())
	if timing == nil {
		return func() {}
	}
	metric := timing.NewMetric(name).Start()
	return func() { metric.Stop() }
}

// pathID returns the named path value, writing a 400 when it is empty.
func pathID(w http.ResponseWriter, r *http.Request, name string, logger zerolog.Logger) (string, bool) {
	id := r.PathValue(name)
	if id == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, name+" is required", logger)
		return "", false
	}
	return id, true
}

func writeInvalidJSON(w http.ResponseWriter, err error, logger zerolog.Logger) {
	writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, err.Error(), logger)
}
