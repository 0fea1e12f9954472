package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/streak-radar/internal/app"
	"github.com/comitanigiacomo/streak-radar/internal/config"
)

type habitResponse struct {
	Habit struct {
		ID             string   `json:"id"`
		Name           string   `json:"name"`
		Streak         int      `json:"streak"`
		CompletedDates []string `json:"completedDates"`
	} `json:"habit"`
	Unlocked []struct {
		ID string `json:"id"`
	} `json:"unlocked"`
}

func setupApp(t *testing.T) (*app.App, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Backend:         config.BackendSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "e2e.db"),
		MetricsEnabled:  true,
		WorkerQueueSize: 8,
		RemindersOn:     true,
	}

	ctx := context.Background()
	a, err := app.New(ctx, cfg, app.Options{Background: true}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, a.Start(ctx))
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = a.Close(stopCtx)
	})

	return a, newRouter(a, zerolog.Nop(), time.Now())
}

func send(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEndToEnd_HabitLifecycle(t *testing.T) {
	a, router := setupApp(t)

	var habitID string

	t.Run("1. Create Habit", func(t *testing.T) {
		w := send(t, router, http.MethodPost, "/api/v1/habits", `{"name": "Morning Run", "category": "health"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp habitResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Morning Run", resp.Habit.Name)
		require.Len(t, resp.Unlocked, 1)
		assert.Equal(t, "first-habit", resp.Unlocked[0].ID)
		habitID = resp.Habit.ID
	})

	t.Run("2. Toggle Today", func(t *testing.T) {
		require.NotEmpty(t, habitID)
		w := send(t, router, http.MethodPost, fmt.Sprintf("/api/v1/habits/%s/toggle", habitID), "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp habitResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Habit.Streak)
		assert.Len(t, resp.Habit.CompletedDates, 1)
	})

	t.Run("3. Persisted State Survives Reads", func(t *testing.T) {
		w := send(t, router, http.MethodGet, "/api/v1/state", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"perfect-day"`)
		assert.Contains(t, w.Body.String(), `"Morning Run"`)

		raw, err := a.Store.Store.Get(context.Background(), "habits")
		require.NoError(t, err)
		assert.Contains(t, string(raw), habitID)
	})

	t.Run("4. Routine Reminder Armed", func(t *testing.T) {
		w := send(t, router, http.MethodPost, "/api/v1/routines", `{"name": "Stretch", "startTime": "07:00", "duration": 10, "recurrence": "daily"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, 1, a.Scheduler.Armed())
	})

	t.Run("5. Delete Habit", func(t *testing.T) {
		w := send(t, router, http.MethodDelete, "/api/v1/habits/"+habitID, "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = send(t, router, http.MethodGet, "/api/v1/habits/"+habitID, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("6. Health And Metrics", func(t *testing.T) {
		w := send(t, router, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"connected"`)

		w = send(t, router, http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "streak_radar_store_operations_total")
	})
}
