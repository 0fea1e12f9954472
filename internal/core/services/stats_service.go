package services

import (
	"context"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
)

type HabitLister interface {
	List(ctx context.Context) ([]domain.Habit, error)
}

type AchievementLister interface {
	List(ctx context.Context) ([]domain.Achievement, error)
}

type StatsService struct {
	habits       HabitLister
	achievements AchievementLister
	clock        Clock
}

func NewStatsService(habits HabitLister, achievements AchievementLister, clock Clock) *StatsService {
	return &StatsService{
		habits:       habits,
		achievements: achievements,
		clock:        clock,
	}
}

type Overview struct {
	Stats        domain.HabitStats    `json:"stats"`
	Radar        []domain.RadarPoint  `json:"radar"`
	Achievements []domain.Achievement `json:"achievements"`
}

func (s *StatsService) Summary(ctx context.Context) (*domain.HabitStats, error) {
	habits, err := s.habits.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := domain.CalculateHabitStats(habits, s.clock.now())
	return &stats, nil
}

func (s *StatsService) Radar(ctx context.Context) ([]domain.RadarPoint, error) {
	habits, err := s.habits.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.RadarChartData(habits, s.clock.now()), nil
}

func (s *StatsService) Overview(ctx context.Context) (*Overview, error) {
	habits, err := s.habits.List(ctx)
	if err != nil {
		return nil, err
	}
	achievements, err := s.achievements.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	return &Overview{
		Stats:        domain.CalculateHabitStats(habits, now),
		Radar:        domain.RadarChartData(habits, now),
		Achievements: achievements,
	}, nil
}
