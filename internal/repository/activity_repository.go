package repository

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// ActivityRepository handles persistence for the append-only activity ledger.
// There is deliberately no update or delete method.
type ActivityRepository interface {
	// Insert appends a new ledger entry and populates a.ID.
	Insert(ctx context.Context, a *model.Activity) error
	// ListRecent returns the newest entries across all types, unfiltered.
	ListRecent(ctx context.Context, limit int) ([]*model.Activity, error)
	// List returns one page of entries matching opts plus the filtered total.
	List(ctx context.Context, opts model.ActivityListOptions) ([]*model.Activity, int64, error)
}
