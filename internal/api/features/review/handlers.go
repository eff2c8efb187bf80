package review

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arytiwari/jioastro-sub006/internal/api/features/common"
	"github.com/arytiwari/jioastro-sub006/internal/engine"
	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// Handlers provides HTTP handlers for the review queue feature.
type Handlers struct {
	engine *engine.Engine
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(eng *engine.Engine, logger *slog.Logger) *Handlers {
	return &Handlers{engine: eng, logger: logger}
}

// ListResponse is the body for GET /api/review.
type ListResponse struct {
	Count   int                 `json:"count"`
	Entries []*core.ReviewEntry `json:"entries"`
}

// ResolveRequest is the body for POST /api/review/{id}/resolve.
type ResolveRequest struct {
	Canonical string `json:"canonical"`
}

// List returns review queue entries. The status parameter filters by
// pending, resolved, or dismissed; it defaults to pending, and "all"
// lists every entry.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	var status core.ReviewStatus
	switch s := r.URL.Query().Get("status"); s {
	case "", "pending":
		status = core.ReviewPending
	case "all":
		status = ""
	case "resolved":
		status = core.ReviewResolved
	case "dismissed":
		status = core.ReviewDismissed
	default:
		common.WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("unknown status %q (valid: pending, resolved, dismissed, all)", s))
		return
	}

	entries, err := h.engine.Store().ListReview(r.Context(), status)
	if err != nil {
		h.storeFailure(w, err)
		return
	}
	if entries == nil {
		entries = []*core.ReviewEntry{}
	}

	common.WriteJSON(w, http.StatusOK, ListResponse{Count: len(entries), Entries: entries})
}

// Resolve maps a review entry to a canonical catalog name. The name is
// validated against the catalog first, so variant spellings are accepted
// and typos are rejected with suggestions.
func (h *Handlers) Resolve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ResolveRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Canonical == "" {
		common.WriteError(w, http.StatusBadRequest, "canonical is required")
		return
	}

	def, err := h.engine.Lookup(req.Canonical)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.engine.Store().ResolveReview(r.Context(), id, def.CanonicalName); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			common.WriteError(w, http.StatusNotFound, fmt.Sprintf("no review entry with id %q", id))
			return
		}
		h.storeFailure(w, err)
		return
	}

	entry, err := h.engine.Store().GetReview(r.Context(), id)
	if err != nil {
		h.storeFailure(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, entry)
}

// Dismiss marks a review entry as not catalog material.
func (h *Handlers) Dismiss(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.engine.Store().DismissReview(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			common.WriteError(w, http.StatusNotFound, fmt.Sprintf("no review entry with id %q", id))
			return
		}
		h.storeFailure(w, err)
		return
	}

	entry, err := h.engine.Store().GetReview(r.Context(), id)
	if err != nil {
		h.storeFailure(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, entry)
}

// storeFailure maps store errors onto the wire. A missing state store is a
// deployment condition, not a client mistake.
func (h *Handlers) storeFailure(w http.ResponseWriter, err error) {
	if errors.Is(err, core.ErrStoreNotConfigured) {
		common.WriteError(w, http.StatusServiceUnavailable, "review queue needs a state store")
		return
	}
	h.logger.Error("review store failure", "error", err)
	common.WriteError(w, http.StatusInternalServerError, err.Error())
}
