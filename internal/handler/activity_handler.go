package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/service"
	"github.com/devfolio/backend/pkg/auth"
)

// ActivityHandler handles the audit ledger endpoints.
type ActivityHandler struct {
	svc service.ActivityService
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// Recent handles GET /api/admin/activity/recent?limit=N (admin only).
func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	items, err := h.svc.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "activity_failed")
		return
	}
	if items == nil {
		items = []*model.Activity{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"activities": items})
}

// List handles GET /api/admin/activity (admin only).
// Query params: page, pageSize, type, includeViews.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	q := r.URL.Query()
	opts := model.ActivityListOptions{
		Type:         q.Get("type"),
		IncludeViews: q.Get("includeViews") == "true",
		Page:         1,
		PageSize:     10,
	}
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.Page = n
		}
	}
	if v := q.Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.PageSize = n
		}
	}

	page, err := h.svc.List(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "activity_failed")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Record handles POST /api/activity.
// "view" and "create" actions may be recorded anonymously; anything else
// requires an admin session.
func (h *ActivityHandler) Record(w http.ResponseWriter, r *http.Request) {
	var in model.ActivityInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	actor := auth.UserFromContext(r.Context())
	if in.Action != model.ActionView && in.Action != model.ActionCreate {
		var ok bool
		if actor, ok = requireAdmin(w, r); !ok {
			return
		}
	}

	event, skipped, err := h.svc.Record(r.Context(), in, actor)
	if err != nil {
		respondServiceError(w, err, "record_failed")
		return
	}
	if skipped {
		writeJSON(w, http.StatusOK, map[string]any{"skipped": true})
		return
	}
	writeJSON(w, http.StatusCreated, event)
}
