package handler

import (
	"encoding/json"
	"net/http"

	"github.com/devfolio/backend/internal/service"
)

// PageViewHandler handles the public page-view counter endpoints.
type PageViewHandler struct {
	svc service.PageViewService
}

// NewPageViewHandler creates a PageViewHandler.
func NewPageViewHandler(svc service.PageViewService) *PageViewHandler {
	return &PageViewHandler{svc: svc}
}

// Increment handles POST /api/views. Body: {"path": string}.
func (h *PageViewHandler) Increment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	count, err := h.svc.Increment(r.Context(), req.Path)
	if err != nil {
		respondServiceError(w, err, "increment_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"path": req.Path, "count": count})
}

// Count handles GET /api/views?path=/about. Unknown paths report 0.
func (h *PageViewHandler) Count(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")

	count, err := h.svc.Count(r.Context(), path)
	if err != nil {
		respondServiceError(w, err, "count_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"path": path, "count": count})
}
