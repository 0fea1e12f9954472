package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/rs/zerolog"
)

// HabitService owns the habits key. Every mutation is persisted before it
// returns and then re-evaluates achievements.
type HabitService struct {
	repo         domain.Repository[domain.Habit]
	achievements AchievementEvaluator
	clock        Clock
	log          zerolog.Logger

	mu sync.Mutex
}

func NewHabitService(repo domain.Repository[domain.Habit], achievements AchievementEvaluator, clock Clock, log zerolog.Logger) *HabitService {
	return &HabitService{
		repo:         repo,
		achievements: achievements,
		clock:        clock,
		log:          log.With().Str("component", "habits").Logger(),
	}
}

type CreateHabitInput struct {
	Name     string
	Category string
	Target   int
	Unit     string
}

type HabitChange struct {
	Habit    domain.Habit         `json:"habit"`
	Unlocked []domain.Achievement `json:"unlocked"`
}

func (s *HabitService) load(ctx context.Context) ([]domain.Habit, error) {
	habits, _, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if habits == nil {
		habits = []domain.Habit{}
	}
	return habits, nil
}

// evaluate runs after the habits key is committed. A failure here leaves
// the habit change persisted and is returned to the caller; the store has
// no multi-key transactions.
func (s *HabitService) evaluate(ctx context.Context, habits []domain.Habit) ([]domain.Achievement, error) {
	if s.achievements == nil {
		return nil, nil
	}
	unlocked, err := s.achievements.Evaluate(ctx, habits)
	if err != nil {
		s.log.Error().Err(err).Msg("achievement evaluation failed")
		return nil, fmt.Errorf("habits saved but achievements not updated: %w", err)
	}
	return unlocked, nil
}

// List returns habits in insertion order with streaks derived for today.
func (s *HabitService) List(ctx context.Context) ([]domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	for i := range habits {
		habits[i], _ = domain.RefreshStreak(habits[i], now)
	}
	return habits, nil
}

func (s *HabitService) Get(ctx context.Context, id string) (*domain.Habit, error) {
	habits, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	i, ok := domain.FindHabit(habits, id)
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	return &habits[i], nil
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*HabitChange, error) {
	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	habit, err := domain.NewHabit(input.Name, category, s.clock.now())
	if err != nil {
		return nil, err
	}
	if input.Target > 0 {
		habit.Target = input.Target
	}
	if input.Unit != "" {
		unit := input.Unit
		habit.Unit = &unit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	habits = append(habits, *habit)
	if err := s.repo.Save(ctx, habits); err != nil {
		return nil, err
	}

	s.log.Info().Str("habit_id", habit.ID).Str("category", string(category)).Msg("habit created")

	unlocked, err := s.evaluate(ctx, habits)
	if err != nil {
		return nil, err
	}
	return &HabitChange{Habit: *habit, Unlocked: unlocked}, nil
}

func (s *HabitService) Toggle(ctx context.Context, id string) (*HabitChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	i, ok := domain.FindHabit(habits, id)
	if !ok {
		return nil, domain.ErrHabitNotFound
	}

	now := s.clock.now()
	habits[i] = domain.ToggleCompletion(habits[i], now)
	if err := s.repo.Save(ctx, habits); err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("habit_id", id).
		Bool("completed", domain.IsCompletedOn(habits[i], now)).
		Int("streak", habits[i].Streak).
		Msg("habit toggled")

	unlocked, err := s.evaluate(ctx, habits)
	if err != nil {
		return nil, err
	}
	return &HabitChange{Habit: habits[i], Unlocked: unlocked}, nil
}

func (s *HabitService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.load(ctx)
	if err != nil {
		return err
	}

	i, ok := domain.FindHabit(habits, id)
	if !ok {
		return domain.ErrHabitNotFound
	}

	habits = append(habits[:i], habits[i+1:]...)
	if err := s.repo.Save(ctx, habits); err != nil {
		return err
	}

	s.log.Info().Str("habit_id", id).Msg("habit deleted")
	return nil
}

type HabitDetail struct {
	domain.Habit
	CompletedToday bool `json:"completedToday"`
	LongestRun     int  `json:"longestRun"`
}

func (s *HabitService) Detail(ctx context.Context, id string) (*HabitDetail, error) {
	habit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &HabitDetail{
		Habit:          *habit,
		CompletedToday: domain.IsCompletedOn(*habit, s.clock.now()),
		LongestRun:     domain.LongestRun(habit.CompletedDates),
	}, nil
}

// ResolveMonth parses a YYYY-MM value in the service timezone. An empty
// value means the current month.
func (s *HabitService) ResolveMonth(raw string) (time.Time, error) {
	now := s.clock.now()
	if raw == "" {
		return now, nil
	}
	return domain.ParseMonth(raw, now.Location())
}

// Calendar returns the day grid of the month containing month.
func (s *HabitService) Calendar(ctx context.Context, id string, month time.Time) ([]domain.DayCompletion, error) {
	habit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.MonthlyCompletions(*habit, month, s.clock.now()), nil
}

type RefreshResult struct {
	Changed  int
	Unlocked []domain.Achievement
}

// RefreshStreaks recomputes every stored streak for the current day and
// persists the list when at least one value moved.
func (s *HabitService) RefreshStreaks(ctx context.Context) (*RefreshResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	result := &RefreshResult{}
	for i := range habits {
		var changed bool
		habits[i], changed = domain.RefreshStreak(habits[i], now)
		if changed {
			result.Changed++
		}
	}

	if result.Changed > 0 {
		if err := s.repo.Save(ctx, habits); err != nil {
			return nil, err
		}
	}

	result.Unlocked, err = s.evaluate(ctx, habits)
	if err != nil {
		return nil, err
	}
	return result, nil
}
