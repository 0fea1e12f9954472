package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/comitanigiacomo/streak-radar/internal/core/services"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoutineService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Persists, unlocks routine-master and schedules reminder", func(t *testing.T) {
		f := newFixture()
		f.reminders.On("Schedule", mock.AnythingOfType("domain.RoutineTask")).Return(nil)

		change, err := f.routines.Add(ctx, domain.RoutineTaskInput{Name: "Stretch", StartTime: "07:00", Duration: 15})

		require.NoError(t, err)
		assert.Equal(t, "07:15", change.Task.EndTime)
		require.Len(t, change.Unlocked, 1)
		assert.Equal(t, domain.AchievementRoutineMaster, change.Unlocked[0].ID)
		f.reminders.AssertNumberOfCalls(t, "Schedule", 1)

		second, err := f.routines.Add(ctx, domain.RoutineTaskInput{Name: "Journal", StartTime: "21:00", Duration: 10})
		require.NoError(t, err)
		assert.Empty(t, second.Unlocked)
	})

	t.Run("Reminder failure does not fail the add", func(t *testing.T) {
		f := newFixture()
		f.reminders.On("Schedule", mock.Anything).Return(errors.New("scheduler stopped"))

		change, err := f.routines.Add(ctx, domain.RoutineTaskInput{Name: "Stretch", StartTime: "07:00", Duration: 15})
		require.NoError(t, err)

		tasks, err := f.routines.List(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, change.Task.ID, tasks[0].ID)
	})

	t.Run("Error: Invalid input is rejected before any write", func(t *testing.T) {
		f := newFixture()

		_, err := f.routines.Add(ctx, domain.RoutineTaskInput{Name: "Stretch", StartTime: "7am", Duration: 15})
		assert.ErrorIs(t, err, domain.ErrInvalidStartTime)

		_, err = f.store.Get(ctx, domain.KeyRoutineTasks)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
		f.reminders.AssertNotCalled(t, "Schedule", mock.Anything)
	})
}

func TestRoutineService_ListToggleRemove(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.reminders.On("Schedule", mock.Anything).Return(nil)

	late, err := f.routines.Add(ctx, domain.RoutineTaskInput{Name: "Read", StartTime: "22:00", Duration: 30})
	require.NoError(t, err)
	early, err := f.routines.Add(ctx, domain.RoutineTaskInput{Name: "Coffee", StartTime: "06:30", Duration: 10})
	require.NoError(t, err)

	t.Run("List is ordered by start time", func(t *testing.T) {
		tasks, err := f.routines.List(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, early.Task.ID, tasks[0].ID)
		assert.Equal(t, late.Task.ID, tasks[1].ID)
	})

	t.Run("Toggle flips completion", func(t *testing.T) {
		task, err := f.routines.Toggle(ctx, late.Task.ID)
		require.NoError(t, err)
		assert.True(t, task.Completed)

		task, err = f.routines.Toggle(ctx, late.Task.ID)
		require.NoError(t, err)
		assert.False(t, task.Completed)

		_, err = f.routines.Toggle(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrRoutineTaskNotFound)
	})

	t.Run("Remove cancels the reminder", func(t *testing.T) {
		f.reminders.On("Cancel", early.Task.ID).Return()

		require.NoError(t, f.routines.Remove(ctx, early.Task.ID))
		f.reminders.AssertCalled(t, "Cancel", early.Task.ID)

		tasks, err := f.routines.List(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)

		assert.ErrorIs(t, f.routines.Remove(ctx, early.Task.ID), domain.ErrRoutineTaskNotFound)
	})
}

func TestRoutineService_RestoreReminders(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.reminders.On("Schedule", mock.Anything).Return(nil)

	for _, start := range []string{"08:00", "12:00", "18:00"} {
		_, err := f.routines.Add(ctx, domain.RoutineTaskInput{Name: "Task " + start, StartTime: start, Duration: 5})
		require.NoError(t, err)
	}

	armed, err := f.routines.RestoreReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, armed)

	t.Run("Completed one-shot tasks stay disarmed", func(t *testing.T) {
		f := newFixture()
		f.reminders.On("Schedule", mock.Anything).Return(nil)

		done, err := f.routines.Add(ctx, domain.RoutineTaskInput{Name: "Dentist", StartTime: "10:00", Duration: 60, Recurrence: domain.RecurrenceNone})
		require.NoError(t, err)
		_, err = f.routines.Toggle(ctx, done.Task.ID)
		require.NoError(t, err)
		open, err := f.routines.Add(ctx, domain.RoutineTaskInput{Name: "Call bank", StartTime: "11:00", Duration: 15, Recurrence: domain.RecurrenceNone})
		require.NoError(t, err)
		daily, err := f.routines.Add(ctx, domain.RoutineTaskInput{Name: "Walk", StartTime: "18:00", Duration: 30})
		require.NoError(t, err)

		armed, err := f.routines.RestoreReminders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, armed)

		f.reminders.AssertCalled(t, "Schedule", mock.MatchedBy(func(task domain.RoutineTask) bool { return task.ID == open.Task.ID }))
		f.reminders.AssertCalled(t, "Schedule", mock.MatchedBy(func(task domain.RoutineTask) bool { return task.ID == daily.Task.ID }))
		// Three adds plus two restores.
		f.reminders.AssertNumberOfCalls(t, "Schedule", 5)
	})

	withoutScheduler := services.NewRoutineService(FailingRepo[domain.RoutineTask]{err: errDiskFull}, nil, nil, zerolog.Nop())
	_, err = withoutScheduler.RestoreReminders(ctx)
	assert.ErrorIs(t, err, errDiskFull)
}
