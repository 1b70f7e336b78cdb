package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// PageViewService tracks per-path hit counts. Each increment is also
// mirrored into the ledger as a "view" event, where admin paths are
// suppressed.
type PageViewService interface {
	// Increment bumps the counter for path and returns the new count.
	Increment(ctx context.Context, path string) (int64, error)
	// Count returns the current count for path; 0 when the path has never
	// been visited.
	Count(ctx context.Context, path string) (int64, error)
}

type pageViewService struct {
	repo     repository.PageViewRepository
	activity ActivityService
}

// NewPageViewService creates a PageViewService.
func NewPageViewService(repo repository.PageViewRepository, activity ActivityService) PageViewService {
	return &pageViewService{repo: repo, activity: activity}
}

func (s *pageViewService) Increment(ctx context.Context, path string) (int64, error) {
	path, err := normalizePath(path)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.Increment(ctx, path)
	if err != nil {
		return 0, err
	}

	// The ledger applies its own suppression for admin paths; a failed view
	// entry must not fail the count.
	if _, _, err := s.activity.Record(ctx, model.ActivityInput{
		Type:   model.TypeOther,
		Action: model.ActionView,
		Title:  path,
		Path:   path,
	}, nil); err != nil {
		slog.Error("pageview: activity log failed", "path", path, "error", err)
	}

	return count, nil
}

func (s *pageViewService) Count(ctx context.Context, path string) (int64, error) {
	path, err := normalizePath(path)
	if err != nil {
		return 0, err
	}

	pv, err := s.repo.Get(ctx, path)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return pv.Count, nil
}

func normalizePath(path string) (string, error) {
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return "", fmt.Errorf("%w: path is required", ErrValidation)
	}
	return path, nil
}
