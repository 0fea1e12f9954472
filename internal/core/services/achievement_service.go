package services

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/rs/zerolog"
)

type AchievementEvaluator interface {
	Evaluate(ctx context.Context, habits []domain.Habit) ([]domain.Achievement, error)
}

type AchievementUnlocker interface {
	Unlock(ctx context.Context, id string) ([]domain.Achievement, error)
}

// AchievementService owns the achievements key.
type AchievementService struct {
	repo  domain.Repository[domain.Achievement]
	clock Clock
	log   zerolog.Logger

	mu sync.Mutex
}

func NewAchievementService(repo domain.Repository[domain.Achievement], clock Clock, log zerolog.Logger) *AchievementService {
	return &AchievementService{
		repo:  repo,
		clock: clock,
		log:   log.With().Str("component", "achievements").Logger(),
	}
}

// load returns the persisted list with missing catalog entries appended.
// Seeded lists are written back right away.
func (s *AchievementService) load(ctx context.Context) ([]domain.Achievement, error) {
	stored, found, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	seeded := domain.SeedAchievements(stored)
	if !found || len(seeded) != len(stored) {
		if err := s.repo.Save(ctx, seeded); err != nil {
			return nil, err
		}
		s.log.Debug().Int("count", len(seeded)).Msg("achievement catalog seeded")
	}
	return seeded, nil
}

func (s *AchievementService) List(ctx context.Context) ([]domain.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Evaluate runs the habit rules and returns the achievements unlocked by
// this call.
func (s *AchievementService) Evaluate(ctx context.Context, habits []domain.Habit) ([]domain.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	updated := domain.CheckAchievements(habits, current, s.clock.now())
	return s.commit(ctx, current, updated)
}

func (s *AchievementService) Unlock(ctx context.Context, id string) ([]domain.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	updated, _ := domain.UnlockAchievement(current, id, s.clock.now())
	return s.commit(ctx, current, updated)
}

func (s *AchievementService) commit(ctx context.Context, before, after []domain.Achievement) ([]domain.Achievement, error) {
	fresh := domain.NewlyUnlocked(before, after)
	if len(fresh) == 0 {
		return nil, nil
	}

	if err := s.repo.Save(ctx, after); err != nil {
		return nil, err
	}
	for _, a := range fresh {
		s.log.Info().Str("achievement", a.ID).Msg("achievement unlocked")
	}
	return fresh, nil
}
