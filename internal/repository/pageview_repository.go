package repository

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// PageViewRepository handles persistence for per-path hit counters.
// Paths are expected to be normalized (lowercase) by the caller.
type PageViewRepository interface {
	// Increment atomically adds 1 to the counter for path, creating it at 1
	// if absent, and returns the new count.
	Increment(ctx context.Context, path string) (int64, error)
	// Get returns the counter for path, or ErrNotFound.
	Get(ctx context.Context, path string) (*model.PageView, error)
}
