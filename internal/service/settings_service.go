package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/pkg/auth"
)

// SettingsService manages the siteSettings key/value store. Changes are
// mirrored into the ledger as "profile" events.
type SettingsService interface {
	All(ctx context.Context) ([]*model.Setting, error)
	GetByKey(ctx context.Context, key string) (*model.Setting, error)
	// Update upserts value under key and returns the stored setting.
	Update(ctx context.Context, key, value string, actor *auth.User) (*model.Setting, error)
	Delete(ctx context.Context, key string, actor *auth.User) error
}

type settingsService struct {
	repo     repository.SettingsRepository
	activity ActivityService
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(repo repository.SettingsRepository, activity ActivityService) SettingsService {
	return &settingsService{repo: repo, activity: activity}
}

func (s *settingsService) All(ctx context.Context) ([]*model.Setting, error) {
	return s.repo.All(ctx)
}

func (s *settingsService) GetByKey(ctx context.Context, key string) (*model.Setting, error) {
	return s.repo.FindByKey(ctx, key)
}

func (s *settingsService) Update(ctx context.Context, key, value string, actor *auth.User) (*model.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: key is required", ErrValidation)
	}

	setting, err := s.repo.Upsert(ctx, key, value)
	if err != nil {
		return nil, err
	}

	s.logChange(ctx, actor, model.ActionUpdate, key)
	return setting, nil
}

func (s *settingsService) Delete(ctx context.Context, key string, actor *auth.User) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: key is required", ErrValidation)
	}

	if err := s.repo.Delete(ctx, key); err != nil {
		return err
	}

	s.logChange(ctx, actor, model.ActionDelete, key)
	return nil
}

func (s *settingsService) logChange(ctx context.Context, actor *auth.User, action, key string) {
	if _, _, err := s.activity.Record(ctx, model.ActivityInput{
		Type:        model.TypeProfile,
		Action:      action,
		Title:       key,
		Description: fmt.Sprintf("Site setting %q %sd", key, action),
	}, actor); err != nil {
		slog.Error("settings: activity log failed", "key", key, "action", action, "error", err)
	}
}
