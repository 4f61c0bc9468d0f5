// Package handler exposes identity issuance to the admin facade.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/latest"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/models"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/service"
	dErrors "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/domain-errors"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/platform/sentinel"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/requestcontext"
)

// Handler serves identity issuance and the advisory latest-identity view.
type Handler struct {
	tracker *service.Tracker
	mirror  *latest.RedisMirror // nil when no Redis is configured
	logger  *slog.Logger
}

func New(tracker *service.Tracker, mirror *latest.RedisMirror, logger *slog.Logger) *Handler {
	return &Handler{tracker: tracker, mirror: mirror, logger: logger}
}

// Register mounts the identity routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/admin/identities", h.issue)
	r.Get("/admin/identities/latest", h.latest)
}

type issueRequest struct {
	EventTypeID int    `json:"event_type_id"`
	Comment     string `json:"comment"`
	CreatedBy   int64  `json:"created_by"`
}

func (h *Handler) issue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eventType, err := models.ParseEventType(req.EventTypeID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	createdBy := req.CreatedBy
	if createdBy == 0 {
		createdBy = requestcontext.ActorID(r.Context())
	}

	record, err := h.tracker.Issue(r.Context(), eventType, req.Comment, createdBy)
	if err != nil {
		status := http.StatusInternalServerError
		if dErrors.HasCode(err, dErrors.CodeValidation) {
			status = http.StatusBadRequest
		}
		h.logger.ErrorContext(r.Context(), "identity issuance failed", "error", err)
		writeError(w, status, "identity issuance failed")
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

type latestResponse struct {
	UUID        string `json:"uuid"`
	EventTypeID int    `json:"event_type_id"`
}

// latest reports the most recently issued identity from the Redis mirror.
// The value is advisory: last-write-wins across the deployment.
func (h *Handler) latest(w http.ResponseWriter, r *http.Request) {
	if h.mirror == nil {
		writeError(w, http.StatusNotFound, "latest-identity mirror not configured")
		return
	}

	id, eventType, err := h.mirror.Last(r.Context())
	if errors.Is(err, sentinel.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no identity issued yet")
		return
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "latest identity lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "latest identity lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, latestResponse{UUID: id, EventTypeID: int(eventType)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
