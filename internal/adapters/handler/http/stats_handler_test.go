package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/comitanigiacomo/streak-radar/internal/core/services"
)

func TestStatsEndpoints(t *testing.T) {
	app := setupRouter(t, nil)

	t.Run("Empty state has zero rate and six radar points", func(t *testing.T) {
		stats := decode[domain.HabitStats](t, app.do(t, http.MethodGet, "/api/v1/stats", ""))
		assert.Equal(t, domain.HabitStats{}, stats)

		radar := decode[[]domain.RadarPoint](t, app.do(t, http.MethodGet, "/api/v1/stats/radar", ""))
		require.Len(t, radar, 6)
		assert.Equal(t, "Health", radar[0].Category)
	})

	run := createHabit(t, app, `{"name": "Run", "category": "health"}`)
	createHabit(t, app, `{"name": "Read", "category": "learning"}`)
	app.do(t, http.MethodPost, "/api/v1/habits/"+run.ID+"/toggle", "")

	t.Run("Summary reflects today's completions", func(t *testing.T) {
		stats := decode[domain.HabitStats](t, app.do(t, http.MethodGet, "/api/v1/stats", ""))

		assert.Equal(t, 2, stats.TotalHabits)
		assert.Equal(t, 1, stats.CompletedToday)
		assert.InDelta(t, 50.0, stats.CompletionRate, 0.001)
	})

	t.Run("Overview bundles stats, radar and achievements", func(t *testing.T) {
		overview := decode[services.Overview](t, app.do(t, http.MethodGet, "/api/v1/stats/overview", ""))

		assert.Equal(t, 2, overview.Stats.TotalHabits)
		assert.Len(t, overview.Radar, 6)
		assert.Len(t, overview.Achievements, len(domain.AchievementCatalog()))
	})

	t.Run("Achievements list the whole catalog", func(t *testing.T) {
		list := decode[[]domain.Achievement](t, app.do(t, http.MethodGet, "/api/v1/achievements", ""))

		require.Len(t, list, len(domain.AchievementCatalog()))
		unlocked := map[string]bool{}
		for _, a := range list {
			unlocked[a.ID] = a.Unlocked
		}
		assert.True(t, unlocked[domain.AchievementFirstHabit])
		assert.False(t, unlocked[domain.AchievementPerfectDay])
	})
}
