package domain_test

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyCompletions(t *testing.T) {
	january := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	habit := domain.Habit{ID: "h1", CompletedDates: []string{"2024-01-01", "2024-01-31", "2024-02-01"}}

	t.Run("January 2024 has 31 ascending entries", func(t *testing.T) {
		days := domain.MonthlyCompletions(habit, january, refNow)

		require.Len(t, days, 31)
		assert.Equal(t, "2024-01-01", days[0].Day)
		assert.Equal(t, "2024-01-31", days[30].Day)
		for i := 1; i < len(days); i++ {
			assert.True(t, days[i-1].Date.Before(days[i].Date))
		}

		assert.True(t, days[0].Completed)
		assert.False(t, days[1].Completed)
		assert.True(t, days[30].Completed)
	})

	t.Run("Exactly one today entry when now is inside the month", func(t *testing.T) {
		days := domain.MonthlyCompletions(habit, january, refNow)

		today := 0
		for _, d := range days {
			if d.IsToday {
				today++
				assert.Equal(t, "2024-01-03", d.Day)
			}
		}
		assert.Equal(t, 1, today)
	})

	t.Run("No today entry when now is outside the month", func(t *testing.T) {
		days := domain.MonthlyCompletions(habit, january, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
		for _, d := range days {
			assert.False(t, d.IsToday)
		}
	})

	t.Run("Leap February has 29 days", func(t *testing.T) {
		days := domain.MonthlyCompletions(habit, time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC), refNow)
		require.Len(t, days, 29)
		assert.True(t, days[0].Completed)
	})

	t.Run("Common February has 28 days", func(t *testing.T) {
		days := domain.MonthlyCompletions(habit, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), refNow)
		assert.Len(t, days, 28)
	})
}

func TestParseMonth(t *testing.T) {
	m, err := domain.ParseMonth("2024-02", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.February, m.Month())
	assert.Equal(t, 2024, m.Year())

	_, err = domain.ParseMonth("02/2024", time.UTC)
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
}
