package services

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/rs/zerolog"
)

type SettingsService struct {
	repo domain.Document[domain.Settings]
	log  zerolog.Logger

	mu sync.Mutex
}

func NewSettingsService(repo domain.Document[domain.Settings], log zerolog.Logger) *SettingsService {
	return &SettingsService{
		repo: repo,
		log:  log.With().Str("component", "settings").Logger(),
	}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, _, err := s.repo.Load(ctx)
	return settings, err
}

func (s *SettingsService) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _, err := s.repo.Load(ctx)
	if err != nil {
		return current, err
	}

	updated, err := current.Apply(patch)
	if err != nil {
		return current, err
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		return current, err
	}
	return updated, nil
}

// NotificationsEnabled defaults to true when settings cannot be read.
func (s *SettingsService) NotificationsEnabled(ctx context.Context) bool {
	settings, err := s.Get(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("could not read settings, keeping notifications on")
		return true
	}
	return settings.Notifications
}
