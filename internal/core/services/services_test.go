package services_test

import (
	"context"
	"errors"
	"time"

	"github.com/comitanigiacomo/streak-radar/internal/adapters/kvstore"
	"github.com/comitanigiacomo/streak-radar/internal/adapters/repository"
	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/comitanigiacomo/streak-radar/internal/core/services"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

var errDiskFull = errors.New("disk full")

type fixture struct {
	store        *kvstore.MemoryStore
	now          time.Time
	achievements *services.AchievementService
	habits       *services.HabitService
	routines     *services.RoutineService
	settings     *services.SettingsService
	stats        *services.StatsService
	state        *services.StateService
	reminders    *MockReminders
}

func newFixture() *fixture {
	f := &fixture{
		store:     kvstore.NewMemoryStore(),
		now:       time.Date(2024, 1, 3, 9, 30, 0, 0, time.UTC),
		reminders: new(MockReminders),
	}
	clock := services.Clock{Now: func() time.Time { return f.now }, Location: time.UTC}
	log := zerolog.Nop()

	f.achievements = services.NewAchievementService(repository.NewAchievementRepository(f.store, log), clock, log)
	f.habits = services.NewHabitService(repository.NewHabitRepository(f.store, log), f.achievements, clock, log)
	f.routines = services.NewRoutineService(repository.NewRoutineRepository(f.store, log), f.achievements, f.reminders, log)
	f.settings = services.NewSettingsService(repository.NewSettingsRepository(f.store, log), log)
	f.stats = services.NewStatsService(f.habits, f.achievements, clock)
	f.state = services.NewStateService(f.habits, f.achievements, f.routines, f.settings)
	return f
}

func (f *fixture) advance(days int) {
	f.now = f.now.AddDate(0, 0, days)
}

type MockReminders struct {
	mock.Mock
}

func (m *MockReminders) Schedule(task domain.RoutineTask) error {
	return m.Called(task).Error(0)
}

func (m *MockReminders) Cancel(taskID string) {
	m.Called(taskID)
}

// FailingRepo fails every call with err.
type FailingRepo[T any] struct {
	err error
}

func (r FailingRepo[T]) Load(ctx context.Context) ([]T, bool, error) {
	return nil, false, r.err
}

func (r FailingRepo[T]) Save(ctx context.Context, items []T) error {
	return r.err
}

func (r FailingRepo[T]) Clear(ctx context.Context) error {
	return r.err
}

// ReadOnlyRepo loads from its embedded collection and refuses writes.
type ReadOnlyRepo[T any] struct {
	domain.Repository[T]
}

func (r ReadOnlyRepo[T]) Save(ctx context.Context, items []T) error {
	return errDiskFull
}
