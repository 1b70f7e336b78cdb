package repository

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// SessionRepository handles persistence for login sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	FindByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID string) error
}
