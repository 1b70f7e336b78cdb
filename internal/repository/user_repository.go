package repository

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// UserRepository handles persistence for admin panel accounts.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Count(ctx context.Context) (int64, error)
}
