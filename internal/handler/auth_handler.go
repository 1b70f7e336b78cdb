package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/devfolio/backend/internal/service"
	"github.com/devfolio/backend/pkg/auth"
)

// AuthHandler handles admin login, logout and identity lookup.
type AuthHandler struct {
	authSvc       *service.AuthService
	sessionSvc    *service.SessionService
	secureCookies bool
}

// NewAuthHandler creates an AuthHandler. secureCookies should be true behind
// HTTPS.
func NewAuthHandler(authSvc *service.AuthService, sessionSvc *service.SessionService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, sessionSvc: sessionSvc, secureCookies: secureCookies}
}

// loginRequest is the expected JSON body for POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}

	user, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err, "login_failed")
		return
	}

	session, err := h.sessionSvc.CreateSession(r.Context(), user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "login_failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil {
		_ = h.sessionSvc.DeleteSession(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Me handles GET /api/me (auth required).
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"id":   user.ID,
		"name": user.Name,
		"role": user.Role,
	})
}
