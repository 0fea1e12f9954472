package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/comitanigiacomo/streak-radar/internal/adapters/kvstore"
	"github.com/comitanigiacomo/streak-radar/internal/adapters/repository"
	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/comitanigiacomo/streak-radar/internal/core/services"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Persists habit and unlocks first-habit", func(t *testing.T) {
		f := newFixture()

		change, err := f.habits.Create(ctx, services.CreateHabitInput{Name: "Drink water", Category: "Health"})

		require.NoError(t, err)
		assert.Equal(t, "Drink water", change.Habit.Name)
		assert.Equal(t, domain.CategoryHealth, change.Habit.Category)
		require.Len(t, change.Unlocked, 1)
		assert.Equal(t, domain.AchievementFirstHabit, change.Unlocked[0].ID)

		stored, err := f.habits.List(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, change.Habit.ID, stored[0].ID)
	})

	t.Run("Success: Second habit unlocks nothing new", func(t *testing.T) {
		f := newFixture()
		_, err := f.habits.Create(ctx, services.CreateHabitInput{Name: "Read", Category: "learning"})
		require.NoError(t, err)

		change, err := f.habits.Create(ctx, services.CreateHabitInput{Name: "Meditate", Category: "mindfulness", Target: 2, Unit: "sessions"})

		require.NoError(t, err)
		assert.Empty(t, change.Unlocked)
		assert.Equal(t, 2, change.Habit.Target)
		require.NotNil(t, change.Habit.Unit)
		assert.Equal(t, "sessions", *change.Habit.Unit)
	})

	t.Run("Error: Validation failures are not persisted", func(t *testing.T) {
		f := newFixture()

		_, err := f.habits.Create(ctx, services.CreateHabitInput{Name: "", Category: "health"})
		assert.ErrorIs(t, err, domain.ErrHabitNameEmpty)

		_, err = f.habits.Create(ctx, services.CreateHabitInput{Name: "Gym", Category: "fitness"})
		assert.ErrorIs(t, err, domain.ErrInvalidCategory)

		_, err = f.store.Get(ctx, domain.KeyHabits)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Error: Store failure is surfaced", func(t *testing.T) {
		svc := services.NewHabitService(FailingRepo[domain.Habit]{err: errDiskFull}, nil, services.SystemClock(time.UTC), zerolog.Nop())

		_, err := svc.Create(ctx, services.CreateHabitInput{Name: "Run", Category: "health"})
		assert.ErrorIs(t, err, errDiskFull)
	})
}

func TestHabitService_Toggle(t *testing.T) {
	ctx := context.Background()

	t.Run("Scenario: Toggle twice on the same day", func(t *testing.T) {
		f := newFixture()
		created, err := f.habits.Create(ctx, services.CreateHabitInput{Name: "Drink water", Category: "health"})
		require.NoError(t, err)

		done, err := f.habits.Toggle(ctx, created.Habit.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-01-03"}, done.Habit.CompletedDates)
		assert.Equal(t, 1, done.Habit.Streak)
		require.Len(t, done.Unlocked, 1)
		assert.Equal(t, domain.AchievementPerfectDay, done.Unlocked[0].ID)

		undone, err := f.habits.Toggle(ctx, created.Habit.ID)
		require.NoError(t, err)
		assert.Empty(t, undone.Habit.CompletedDates)
		assert.Equal(t, 0, undone.Habit.Streak)

		achievements, err := f.achievements.List(ctx)
		require.NoError(t, err)
		for _, a := range achievements {
			if a.ID == domain.AchievementPerfectDay {
				assert.True(t, a.Unlocked, "unlocks are never reverted")
			}
		}
	})

	t.Run("Scenario: Seven consecutive days unlock week-warrior once", func(t *testing.T) {
		f := newFixture()
		created, err := f.habits.Create(ctx, services.CreateHabitInput{Name: "Run", Category: "health"})
		require.NoError(t, err)

		var warriorAt *time.Time
		for day := 0; day < 7; day++ {
			change, err := f.habits.Toggle(ctx, created.Habit.ID)
			require.NoError(t, err)
			assert.Equal(t, day+1, change.Habit.Streak)
			for _, a := range change.Unlocked {
				if a.ID == domain.AchievementWeekWarrior {
					assert.Equal(t, 6, day)
					warriorAt = a.UnlockedAt
				}
			}
			f.advance(1)
		}
		require.NotNil(t, warriorAt)

		change, err := f.habits.Toggle(ctx, created.Habit.ID)
		require.NoError(t, err)
		assert.Empty(t, change.Unlocked)
	})

	t.Run("Error: Unknown habit", func(t *testing.T) {
		f := newFixture()
		_, err := f.habits.Toggle(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Error: Save failure leaves stored state untouched", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		log := zerolog.Nop()
		writable := repository.NewHabitRepository(store, log)
		seed := domain.Habit{ID: "h1", Name: "Run", Category: domain.CategoryHealth, CompletedDates: []string{}}
		require.NoError(t, writable.Save(ctx, []domain.Habit{seed}))

		svc := services.NewHabitService(ReadOnlyRepo[domain.Habit]{writable}, nil, services.SystemClock(time.UTC), log)

		_, err := svc.Toggle(ctx, "h1")
		assert.ErrorIs(t, err, errDiskFull)

		stored, _, err := writable.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, stored[0].CompletedDates)
	})
}

func TestHabitService_ListRefreshesStreaks(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	created, err := f.habits.Create(ctx, services.CreateHabitInput{Name: "Run", Category: "health"})
	require.NoError(t, err)
	_, err = f.habits.Toggle(ctx, created.Habit.ID)
	require.NoError(t, err)

	f.advance(1)

	habits, err := f.habits.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, habits[0].Streak, "streak is anchored at today")
}

func TestHabitService_RefreshStreaks(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	created, err := f.habits.Create(ctx, services.CreateHabitInput{Name: "Run", Category: "health"})
	require.NoError(t, err)
	_, err = f.habits.Toggle(ctx, created.Habit.ID)
	require.NoError(t, err)

	same, err := f.habits.RefreshStreaks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, same.Changed)

	f.advance(1)
	result, err := f.habits.RefreshStreaks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Changed)

	raw, _, err := repository.NewHabitRepository(f.store, zerolog.Nop()).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, raw[0].Streak)
}

func TestHabitService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	a, err := f.habits.Create(ctx, services.CreateHabitInput{Name: "A", Category: "health"})
	require.NoError(t, err)
	b, err := f.habits.Create(ctx, services.CreateHabitInput{Name: "B", Category: "social"})
	require.NoError(t, err)

	require.NoError(t, f.habits.Delete(ctx, a.Habit.ID))

	habits, err := f.habits.List(ctx)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, b.Habit.ID, habits[0].ID)

	assert.ErrorIs(t, f.habits.Delete(ctx, a.Habit.ID), domain.ErrHabitNotFound)

	_, err = f.habits.Get(ctx, a.Habit.ID)
	assert.ErrorIs(t, err, domain.ErrHabitNotFound)
}

func TestHabitService_Calendar(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	created, err := f.habits.Create(ctx, services.CreateHabitInput{Name: "Run", Category: "health"})
	require.NoError(t, err)
	_, err = f.habits.Toggle(ctx, created.Habit.ID)
	require.NoError(t, err)

	days, err := f.habits.Calendar(ctx, created.Habit.ID, f.now)
	require.NoError(t, err)
	require.Len(t, days, 31)
	assert.True(t, days[2].Completed)
	assert.True(t, days[2].IsToday)

	_, err = f.habits.Calendar(ctx, "missing", f.now)
	assert.ErrorIs(t, err, domain.ErrHabitNotFound)
}

func TestHabitService_Detail(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	created, err := f.habits.Create(ctx, services.CreateHabitInput{Name: "Run", Category: "health"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = f.habits.Toggle(ctx, created.Habit.ID)
		require.NoError(t, err)
		f.advance(1)
	}

	detail, err := f.habits.Detail(ctx, created.Habit.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, detail.Streak)
	assert.False(t, detail.CompletedToday)
	assert.Equal(t, 3, detail.LongestRun)
}

func TestHabitService_ResolveMonth(t *testing.T) {
	f := newFixture()

	current, err := f.habits.ResolveMonth("")
	require.NoError(t, err)
	assert.Equal(t, time.January, current.Month())

	feb, err := f.habits.ResolveMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, time.February, feb.Month())

	_, err = f.habits.ResolveMonth("Feb")
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
}
