package handler

import (
	"encoding/json"
	"net/http"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/service"
)

// SettingsHandler handles the admin site-settings endpoints. Successful
// writes invalidate the cached profile so the public site picks up changes
// immediately.
type SettingsHandler struct {
	svc     service.SettingsService
	profile service.ProfileService
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc service.SettingsService, profile service.ProfileService) *SettingsHandler {
	return &SettingsHandler{svc: svc, profile: profile}
}

// List handles GET /api/admin/settings (admin only).
func (h *SettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	settings, err := h.svc.All(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "settings_failed")
		return
	}
	if settings == nil {
		settings = []*model.Setting{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"settings": settings})
}

// Get handles GET /api/admin/settings/{key} (admin only).
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	setting, err := h.svc.GetByKey(r.Context(), r.PathValue("key"))
	if err != nil {
		respondServiceError(w, err, "settings_failed")
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

// Update handles PUT /api/admin/settings/{key} (admin only).
// Body: {"value": string}. Creates the setting when absent.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireAdmin(w, r)
	if !ok {
		return
	}

	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	setting, err := h.svc.Update(r.Context(), r.PathValue("key"), req.Value, actor)
	if err != nil {
		respondServiceError(w, err, "update_failed")
		return
	}

	h.profile.Invalidate()
	writeJSON(w, http.StatusOK, setting)
}

// Delete handles DELETE /api/admin/settings/{key} (admin only).
func (h *SettingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireAdmin(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), r.PathValue("key"), actor); err != nil {
		respondServiceError(w, err, "delete_failed")
		return
	}

	h.profile.Invalidate()
	writeJSON(w, http.StatusOK, map[string]string{"deleted": r.PathValue("key")})
}
