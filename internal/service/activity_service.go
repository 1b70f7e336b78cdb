package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/pkg/auth"
)

// adminPathMarker identifies administrative URLs whose page views are noise
// and must never reach the ledger.
const adminPathMarker = "/admin"

const (
	defaultRecentLimit = 10
	defaultPageSize    = 10
	maxPageSize        = 100
)

// ActivityService provides the append-only audit ledger. Entries can be
// recorded and read but never changed.
type ActivityService interface {
	// Record appends one ledger entry. The returned bool is true when the
	// entry was suppressed (admin page view) and nothing was written.
	Record(ctx context.Context, in model.ActivityInput, actor *auth.User) (*model.Activity, bool, error)
	// Recent returns the newest entries, unfiltered. limit <= 0 means 10.
	Recent(ctx context.Context, limit int) ([]*model.Activity, error)
	// List returns one page of filtered entries with pagination metadata.
	List(ctx context.Context, opts model.ActivityListOptions) (*model.ActivityPage, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

// NewActivityService creates an ActivityService.
func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) Record(ctx context.Context, in model.ActivityInput, actor *auth.User) (*model.Activity, bool, error) {
	if strings.TrimSpace(in.Type) == "" ||
		strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Action) == "" {
		return nil, false, fmt.Errorf("%w: type, title and action are required", ErrValidation)
	}

	// Admin page views are suppressed before the write, reported as skipped
	// rather than failed.
	if in.Action == model.ActionView &&
		strings.Contains(strings.ToLower(in.Path), adminPathMarker) {
		return nil, true, nil
	}

	a := &model.Activity{
		Type:        in.Type,
		Action:      in.Action,
		Title:       in.Title,
		Description: in.Description,
		Details:     in.Details,
		Path:        in.Path,
		User:        resolveActor(in.User, actor),
		Timestamp:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, false, err
	}
	return a, false, nil
}

// resolveActor applies the attribution rules: an explicit name wins, then the
// session's display name, then "Admin" for anonymous-named sessions, then
// "Visitor".
func resolveActor(explicit string, actor *auth.User) string {
	if explicit != "" {
		return explicit
	}
	if actor == nil {
		return "Visitor"
	}
	if actor.Name != "" {
		return actor.Name
	}
	return "Admin"
}

func (s *activityService) Recent(ctx context.Context, limit int) ([]*model.Activity, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *activityService) List(ctx context.Context, opts model.ActivityListOptions) (*model.ActivityPage, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = defaultPageSize
	}
	if opts.PageSize > maxPageSize {
		opts.PageSize = maxPageSize
	}

	items, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*model.Activity{}
	}

	totalPages := int((total + int64(opts.PageSize) - 1) / int64(opts.PageSize))
	return &model.ActivityPage{
		Items:      items,
		Total:      total,
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		TotalPages: totalPages,
	}, nil
}
