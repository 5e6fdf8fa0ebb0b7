package handler

import (
	"net/http"

	"simusmart/internal/editor"

	"github.com/rs/zerolog"
)

// FormHandler submits admin edit forms of any kind.
type FormHandler struct {
	committer editor.Committer
	logger    zerolog.Logger
}

// NewFormHandler creates a new form handler.
func NewFormHandler(committer editor.Committer, logger zerolog.Logger) *FormHandler {
	return &FormHandler{
		committer: committer,
		logger:    logger.With().Str("handler", "form").Logger(),
	}
}

// Submit handles POST /api/admin/forms/{kind} requests. The body is the
// edited entity; an empty id creates it.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	kind, err := editor.ParseKind(r.PathValue("kind"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		writeInvalidJSON(w, err, h.logger)
		return
	}

	draft, err := editor.Decode(kind, body)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	modal := editor.NewModal(h.committer)
	modal.Open(draft)

	stop := timed(r, "form")
	result, err := modal.Save(r.Context())
	stop()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, result)
}
