package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/comitanigiacomo/streak-radar/internal/adapters/repository"
	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/comitanigiacomo/streak-radar/internal/core/services"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// readOnlyAchievements seeds the catalog and returns an achievement service
// whose writes fail, so only unlocks hit the error.
func (f *fixture) readOnlyAchievements(t *testing.T) *services.AchievementService {
	t.Helper()
	_, err := f.achievements.List(context.Background())
	require.NoError(t, err)

	log := zerolog.Nop()
	clock := services.Clock{Now: func() time.Time { return f.now }, Location: time.UTC}
	repo := ReadOnlyRepo[domain.Achievement]{repository.NewAchievementRepository(f.store, log)}
	return services.NewAchievementService(repo, clock, log)
}

func (f *fixture) storedAchievement(t *testing.T, id string) domain.Achievement {
	t.Helper()
	list, err := f.achievements.List(context.Background())
	require.NoError(t, err)
	for _, a := range list {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("achievement %s not stored", id)
	return domain.Achievement{}
}

func TestHabitService_AchievementWriteFailure(t *testing.T) {
	ctx := context.Background()
	clock := func(f *fixture) services.Clock {
		return services.Clock{Now: func() time.Time { return f.now }, Location: time.UTC}
	}

	t.Run("Create reports the failed unlock and keeps the habit", func(t *testing.T) {
		f := newFixture()
		habitRepo := repository.NewHabitRepository(f.store, zerolog.Nop())
		svc := services.NewHabitService(habitRepo, f.readOnlyAchievements(t), clock(f), zerolog.Nop())

		change, err := svc.Create(ctx, services.CreateHabitInput{Name: "Drink water", Category: "health"})

		assert.ErrorIs(t, err, errDiskFull)
		assert.Nil(t, change)
		assert.False(t, f.storedAchievement(t, domain.AchievementFirstHabit).Unlocked)

		stored, _, err := habitRepo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "Drink water", stored[0].Name)
	})

	t.Run("Toggle reports the failed unlock", func(t *testing.T) {
		f := newFixture()
		created, err := f.habits.Create(ctx, services.CreateHabitInput{Name: "Run", Category: "health"})
		require.NoError(t, err)

		habitRepo := repository.NewHabitRepository(f.store, zerolog.Nop())
		svc := services.NewHabitService(habitRepo, f.readOnlyAchievements(t), clock(f), zerolog.Nop())

		_, err = svc.Toggle(ctx, created.Habit.ID)

		assert.ErrorIs(t, err, errDiskFull)
		assert.False(t, f.storedAchievement(t, domain.AchievementPerfectDay).Unlocked)
	})
}

func TestRoutineService_AchievementWriteFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	routineRepo := repository.NewRoutineRepository(f.store, zerolog.Nop())
	svc := services.NewRoutineService(routineRepo, f.readOnlyAchievements(t), nil, zerolog.Nop())

	change, err := svc.Add(ctx, domain.RoutineTaskInput{Name: "Stretch", StartTime: "07:00", Duration: 10})

	assert.ErrorIs(t, err, errDiskFull)
	assert.Nil(t, change)
	assert.False(t, f.storedAchievement(t, domain.AchievementRoutineMaster).Unlocked)

	tasks, _, err := routineRepo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	f.reminders.On("Schedule", mock.Anything).Return(nil)

	// A later add retries the unlock once the store accepts writes.
	retry, err := f.routines.Add(ctx, domain.RoutineTaskInput{Name: "Read", StartTime: "21:00", Duration: 30})
	require.NoError(t, err)
	require.Len(t, retry.Unlocked, 1)
	assert.Equal(t, domain.AchievementRoutineMaster, retry.Unlocked[0].ID)
}
