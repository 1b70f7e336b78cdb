package repository

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// SettingsRepository handles persistence for the siteSettings key/value
// collection.
type SettingsRepository interface {
	All(ctx context.Context) ([]*model.Setting, error)
	FindByKey(ctx context.Context, key string) (*model.Setting, error)
	// Upsert writes value under key, creating the document if absent, and
	// returns the post-write document.
	Upsert(ctx context.Context, key, value string) (*model.Setting, error)
	Delete(ctx context.Context, key string) error
}
