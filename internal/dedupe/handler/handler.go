// Package handler exposes the deduplication engine to the admin facade.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/dedupe/canonical"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/dedupe/service"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/platform/sentinel"
)

// Handler serves slug resolution and duplicate checks.
type Handler struct {
	resolver *service.Resolver
	checker  service.UniquenessChecker
	logger   *slog.Logger
}

func New(resolver *service.Resolver, checker service.UniquenessChecker, logger *slog.Logger) *Handler {
	return &Handler{resolver: resolver, checker: checker, logger: logger}
}

// Register mounts the dedupe routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/admin/slugs/resolve", h.resolveSlug)
	r.Post("/admin/duplicates/check", h.checkDuplicate)
}

type resolveSlugRequest struct {
	Table     string `json:"table"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	ExcludeID int64  `json:"exclude_id"`
}

type resolveSlugResponse struct {
	Slug      string `json:"slug"`
	Exhausted bool   `json:"exhausted"`
}

func (h *Handler) resolveSlug(w http.ResponseWriter, r *http.Request) {
	var req resolveSlugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Table == "" {
		writeError(w, http.StatusBadRequest, "table is required")
		return
	}

	slug, err := h.resolver.Resolve(r.Context(), req.Table, req.Title, req.Slug, req.ExcludeID)
	if err != nil && !errors.Is(err, sentinel.ErrSlugExhausted) {
		h.logger.ErrorContext(r.Context(), "slug resolution failed", "table", req.Table, "error", err)
		writeError(w, http.StatusInternalServerError, "slug resolution failed")
		return
	}

	// Exhaustion is reported, not hidden: the candidate still collides and
	// only the store constraint will reject it.
	writeJSON(w, http.StatusOK, resolveSlugResponse{
		Slug:      slug,
		Exhausted: errors.Is(err, sentinel.ErrSlugExhausted),
	})
}

type checkDuplicateRequest struct {
	Kind      string            `json:"kind"`
	Table     string            `json:"table"`
	Field     string            `json:"field"`
	ExcludeID int64             `json:"exclude_id"`
	Fields    map[string]string `json:"fields"`
}

type checkDuplicateResponse struct {
	Key    string `json:"key"`
	Unique bool   `json:"unique"`
}

func (h *Handler) checkDuplicate(w http.ResponseWriter, r *http.Request) {
	var req checkDuplicateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Table == "" || req.Field == "" {
		writeError(w, http.StatusBadRequest, "table and field are required")
		return
	}

	kind, err := canonical.ParseKind(req.Kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	keyer, err := canonical.FromFields(kind, req.Fields)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := keyer.Key()
	unique, err := h.checker.IsUnique(r.Context(), req.Table, req.Field, key, req.ExcludeID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "duplicate check failed", "table", req.Table, "error", err)
		writeError(w, http.StatusInternalServerError, "duplicate check failed")
		return
	}

	writeJSON(w, http.StatusOK, checkDuplicateResponse{Key: key, Unique: unique})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
