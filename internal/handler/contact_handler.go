package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/service"
	"github.com/devfolio/backend/pkg/auth"
)

// ContactHandler handles the public contact form and the admin triage
// endpoints.
type ContactHandler struct {
	svc service.ContactService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=300"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Submit handles POST /api/contact (public).
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.svc.Submit(r.Context(), msg, auth.UserFromContext(r.Context())); err != nil {
		respondServiceError(w, err, "submit_failed")
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// AdminList handles GET /api/admin/messages (admin only).
// Query params: status (all/new/read/replied/archived/deleted), limit, offset.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	opts := model.ContactListOptions{
		Status: r.URL.Query().Get("status"),
		Limit:  20,
		Offset: 0,
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	messages, err := h.svc.List(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

// Get handles GET /api/admin/messages/{id} (admin only).
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	msg, err := h.svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err, "get_failed")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// Counts handles GET /api/admin/messages/counts (admin only).
func (h *ContactHandler) Counts(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	counts, err := h.svc.CountByStatus(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "counts_failed")
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// MarkRead handles PATCH /api/admin/messages/{id}/read (admin only).
// Body: {"read": bool}.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireAdmin(w, r)
	if !ok {
		return
	}

	var req struct {
		Read bool `json:"read"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	msg, err := h.svc.MarkAsRead(r.Context(), r.PathValue("id"), req.Read, actor)
	if err != nil {
		respondServiceError(w, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// MarkReplied handles PATCH /api/admin/messages/{id}/replied (admin only).
// Body: {"replied": bool}. Toggles the flag without a full reply.
func (h *ContactHandler) MarkReplied(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var req struct {
		Replied bool `json:"replied"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	msg, err := h.svc.MarkAsReplied(r.Context(), r.PathValue("id"), req.Replied)
	if err != nil {
		respondServiceError(w, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// replyRequest is the expected JSON body for POST /api/admin/messages/{id}/reply.
type replyRequest struct {
	Content string `json:"content" validate:"required"`
	By      string `json:"by"`
}

// Reply handles POST /api/admin/messages/{id}/reply (admin only).
func (h *ContactHandler) Reply(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireAdmin(w, r)
	if !ok {
		return
	}

	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}

	msg, err := h.svc.Reply(r.Context(), r.PathValue("id"), req.Content, req.By, actor)
	if err != nil {
		respondServiceError(w, err, "reply_failed")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// Archive handles PATCH /api/admin/messages/{id}/archive (admin only).
func (h *ContactHandler) Archive(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireAdmin(w, r)
	if !ok {
		return
	}

	msg, err := h.svc.Archive(r.Context(), r.PathValue("id"), actor)
	if err != nil {
		respondServiceError(w, err, "archive_failed")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// Delete handles DELETE /api/admin/messages/{id} (admin only). The message
// is soft-deleted: marked with status "deleted" but kept in the collection.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireAdmin(w, r)
	if !ok {
		return
	}

	msg, err := h.svc.SoftDelete(r.Context(), r.PathValue("id"), actor)
	if err != nil {
		respondServiceError(w, err, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// AddTag handles POST /api/admin/messages/{id}/tags (admin only).
// Body: {"tag": string}.
func (h *ContactHandler) AddTag(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var req struct {
		Tag string `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	msg, err := h.svc.AddTag(r.Context(), r.PathValue("id"), req.Tag)
	if err != nil {
		respondServiceError(w, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// priorityRequest is the expected JSON body for PATCH /api/admin/messages/{id}/priority.
type priorityRequest struct {
	Priority string `json:"priority" validate:"required,oneof=low medium high"`
}

// SetPriority handles PATCH /api/admin/messages/{id}/priority (admin only).
func (h *ContactHandler) SetPriority(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var req priorityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}

	msg, err := h.svc.SetPriority(r.Context(), r.PathValue("id"), req.Priority)
	if err != nil {
		respondServiceError(w, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}
