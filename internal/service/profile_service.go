package service

import (
	"context"
	"time"

	"github.com/devfolio/backend/internal/cache"
	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

const profileCacheKey = "profile"

// DefaultProfileTTL is how long the derived profile stays cached between
// settings reads.
const DefaultProfileTTL = 5 * time.Minute

// ProfileService serves the typed public profile derived from site settings,
// cached with a TTL. Invalidate must be called after settings change.
type ProfileService interface {
	Profile(ctx context.Context) (*model.Profile, error)
	Invalidate()
}

type profileService struct {
	settings repository.SettingsRepository
	cache    *cache.TTL
	ttl      time.Duration
}

// NewProfileService creates a ProfileService using the given cache instance.
func NewProfileService(settings repository.SettingsRepository, c *cache.TTL, ttl time.Duration) ProfileService {
	if ttl <= 0 {
		ttl = DefaultProfileTTL
	}
	return &profileService{settings: settings, cache: c, ttl: ttl}
}

func (s *profileService) Profile(ctx context.Context) (*model.Profile, error) {
	v, err := s.cache.Get(profileCacheKey, s.ttl, func() (any, error) {
		settings, err := s.settings.All(ctx)
		if err != nil {
			return nil, err
		}
		return model.ProfileFromSettings(settings), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Profile), nil
}

func (s *profileService) Invalidate() {
	s.cache.Invalidate(profileCacheKey)
}
