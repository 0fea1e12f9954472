package services

import (
	"context"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
)

type RoutineLister interface {
	List(ctx context.Context) ([]domain.RoutineTask, error)
}

type SettingsReader interface {
	Get(ctx context.Context) (domain.Settings, error)
}

// StateService assembles the full application state for the UI shell.
type StateService struct {
	habits       HabitLister
	achievements AchievementLister
	routines     RoutineLister
	settings     SettingsReader
}

func NewStateService(habits HabitLister, achievements AchievementLister, routines RoutineLister, settings SettingsReader) *StateService {
	return &StateService{
		habits:       habits,
		achievements: achievements,
		routines:     routines,
		settings:     settings,
	}
}

func (s *StateService) Snapshot(ctx context.Context) (*domain.AppState, error) {
	habits, err := s.habits.List(ctx)
	if err != nil {
		return nil, err
	}
	achievements, err := s.achievements.List(ctx)
	if err != nil {
		return nil, err
	}
	routines, err := s.routines.List(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.AppState{
		Habits:       habits,
		Achievements: achievements,
		RoutineTasks: routines,
		Settings:     settings,
	}, nil
}
