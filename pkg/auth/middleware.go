package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

// SessionValidator resolves a session token to the authenticated user.
type SessionValidator interface {
	Identify(ctx context.Context, token string) (*User, error)
}

// RequireAuth rejects requests without a valid session and stores the
// resolved user in the context.
func RequireAuth(v SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				writeAuthError(w, "unauthorized")
				return
			}

			user, err := v.Identify(r.Context(), cookie.Value)
			if err != nil {
				writeAuthError(w, "invalid_session")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// OptionalAuth resolves the session when a cookie is present but lets
// anonymous requests through. Used on public routes whose side effects are
// attributed differently for logged-in admins.
func OptionalAuth(v SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(SessionCookieName()); err == nil {
				if user, err := v.Identify(r.Context(), cookie.Value); err == nil {
					r = r.WithContext(WithUser(r.Context(), user))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
