package auth

import (
	"context"
	"strings"
)

// User is the authenticated identity carried through the request context.
type User struct {
	ID   string
	Name string
	Role string
}

// IsAdmin reports whether the role carries the "ADMIN" marker
// (case-insensitive).
func (u *User) IsAdmin() bool {
	return u != nil && strings.Contains(strings.ToUpper(u.Role), "ADMIN")
}

type contextKey string

const userKey contextKey = "auth_user"

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext returns the authenticated user, or nil when the request is
// anonymous.
func UserFromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userKey).(*User)
	return u
}
