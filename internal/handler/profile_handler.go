package handler

import (
	"net/http"

	"github.com/devfolio/backend/internal/service"
)

// ProfileHandler serves the public typed profile derived from site settings.
type ProfileHandler struct {
	svc service.ProfileService
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Get handles GET /api/profile (public, cached).
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Profile(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "profile_failed")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
