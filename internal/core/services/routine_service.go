package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/rs/zerolog"
)

// ReminderScheduler arms and disarms the reminder of a routine task.
type ReminderScheduler interface {
	Schedule(task domain.RoutineTask) error
	Cancel(taskID string)
}

// RoutineService owns the routineTasks key.
type RoutineService struct {
	repo         domain.Repository[domain.RoutineTask]
	achievements AchievementUnlocker
	reminders    ReminderScheduler
	log          zerolog.Logger

	mu sync.Mutex
}

func NewRoutineService(repo domain.Repository[domain.RoutineTask], achievements AchievementUnlocker, reminders ReminderScheduler, log zerolog.Logger) *RoutineService {
	return &RoutineService{
		repo:         repo,
		achievements: achievements,
		reminders:    reminders,
		log:          log.With().Str("component", "routines").Logger(),
	}
}

type RoutineChange struct {
	Task     domain.RoutineTask   `json:"task"`
	Unlocked []domain.Achievement `json:"unlocked"`
}

func (s *RoutineService) load(ctx context.Context) ([]domain.RoutineTask, error) {
	tasks, _, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.RoutineTask{}
	}
	return tasks, nil
}

// List returns the tasks ordered by start time.
func (s *RoutineService) List(ctx context.Context) ([]domain.RoutineTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SortByStartTime(tasks), nil
}

// Add persists the task, unlocks routine-master and arms the reminder. When
// the achievements write fails the task stays saved and the error is
// returned.
func (s *RoutineService) Add(ctx context.Context, input domain.RoutineTaskInput) (*RoutineChange, error) {
	task, err := domain.NewRoutineTask(input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, domain.AddTask(tasks, *task)); err != nil {
		return nil, err
	}
	s.log.Info().Str("task_id", task.ID).Str("start", task.StartTime).Msg("routine task added")

	change := &RoutineChange{Task: *task}
	if s.achievements != nil {
		unlocked, err := s.achievements.Unlock(ctx, domain.AchievementRoutineMaster)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to unlock routine achievement")
			s.schedule(*task)
			return nil, fmt.Errorf("routine task saved but achievements not updated: %w", err)
		}
		change.Unlocked = unlocked
	}

	s.schedule(*task)
	return change, nil
}

func (s *RoutineService) Toggle(ctx context.Context, id string) (*domain.RoutineTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	updated, ok := domain.ToggleTask(tasks, id)
	if !ok {
		return nil, domain.ErrRoutineTaskNotFound
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	for i := range updated {
		if updated[i].ID == id {
			return &updated[i], nil
		}
	}
	return nil, domain.ErrRoutineTaskNotFound
}

func (s *RoutineService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load(ctx)
	if err != nil {
		return err
	}

	remaining, ok := domain.RemoveTask(tasks, id)
	if !ok {
		return domain.ErrRoutineTaskNotFound
	}
	if err := s.repo.Save(ctx, remaining); err != nil {
		return err
	}

	if s.reminders != nil {
		s.reminders.Cancel(id)
	}
	s.log.Info().Str("task_id", id).Msg("routine task removed")
	return nil
}

// RestoreReminders arms the reminders of persisted tasks at startup.
// Completed one-shot tasks are skipped; an open one-shot task is armed for
// its next occurrence.
func (s *RoutineService) RestoreReminders(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	armed := 0
	for _, t := range tasks {
		if t.Recurrence == domain.RecurrenceNone && t.Completed {
			continue
		}
		if s.schedule(t) {
			armed++
		}
	}
	return armed, nil
}

func (s *RoutineService) schedule(task domain.RoutineTask) bool {
	if s.reminders == nil {
		return false
	}
	if err := s.reminders.Schedule(task); err != nil {
		s.log.Warn().Err(err).Str("task_id", task.ID).Msg("failed to schedule reminder")
		return false
	}
	return true
}
