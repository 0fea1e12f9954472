// Package app assembles the store, services and background workers from a
// Config. The API server and the CLI share it.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/comitanigiacomo/streak-radar/internal/adapters/kvstore"
	"github.com/comitanigiacomo/streak-radar/internal/adapters/notify"
	"github.com/comitanigiacomo/streak-radar/internal/adapters/repository"
	"github.com/comitanigiacomo/streak-radar/internal/config"
	"github.com/comitanigiacomo/streak-radar/internal/core/services"
	"github.com/comitanigiacomo/streak-radar/internal/core/workers"
)

type Options struct {
	// Background builds the streak worker and the reminder scheduler.
	// One-shot commands leave it off.
	Background bool
}

type App struct {
	Config   *config.Config
	Store    *kvstore.Handle
	Registry *prometheus.Registry
	Clock    services.Clock

	Achievements *services.AchievementService
	Habits       *services.HabitService
	Routines     *services.RoutineService
	Settings     *services.SettingsService
	Stats        *services.StatsService
	State        *services.StateService

	Worker    *workers.StreakWorker
	Scheduler *workers.Scheduler

	log    zerolog.Logger
	cancel context.CancelFunc
}

func New(ctx context.Context, cfg *config.Config, opts Options, log zerolog.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Clock:  services.SystemClock(cfg.Location()),
		log:    log,
	}

	var reg prometheus.Registerer
	if cfg.MetricsEnabled {
		a.Registry = prometheus.NewRegistry()
		a.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		reg = a.Registry
	}

	store, err := kvstore.Open(ctx, cfg, reg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	a.Store = store

	a.Achievements = services.NewAchievementService(repository.NewAchievementRepository(store.Store, log), a.Clock, log)
	a.Habits = services.NewHabitService(repository.NewHabitRepository(store.Store, log), a.Achievements, a.Clock, log)
	a.Settings = services.NewSettingsService(repository.NewSettingsRepository(store.Store, log), log)

	var reminders services.ReminderScheduler
	if opts.Background {
		a.Worker = workers.NewStreakWorker(a.Habits, cfg.WorkerQueueSize, log)
		if cfg.RemindersOn {
			a.Scheduler = workers.NewScheduler(workers.SchedulerOptions{
				Location:  cfg.Location(),
				Refresher: a.Worker,
				Notifier:  notify.NewLogNotifier(log),
				Gate:      a.Settings,
				Log:       log,
			})
			reminders = a.Scheduler
		}
	}

	a.Routines = services.NewRoutineService(repository.NewRoutineRepository(store.Store, log), a.Achievements, reminders, log)
	a.Stats = services.NewStatsService(a.Habits, a.Achievements, a.Clock)
	a.State = services.NewStateService(a.Habits, a.Achievements, a.Routines, a.Settings)

	return a, nil
}

// Start runs the background workers, refreshes stale streaks once and
// re-arms persisted reminders.
func (a *App) Start(ctx context.Context) error {
	if a.Worker == nil {
		return nil
	}

	ctx, a.cancel = context.WithCancel(ctx)
	a.Worker.Start(ctx)
	a.Worker.Enqueue("startup")

	if a.Scheduler == nil {
		return nil
	}
	if err := a.Scheduler.Start(); err != nil {
		return err
	}

	armed, err := a.Routines.RestoreReminders(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to restore reminders")
		return nil
	}
	a.log.Info().Int("armed", armed).Msg("reminders restored")
	return nil
}

// Close stops the workers within ctx and releases the store.
func (a *App) Close(ctx context.Context) error {
	if a.Scheduler != nil {
		a.Scheduler.Stop(ctx)
	}
	if a.cancel != nil {
		a.cancel()
		select {
		case <-a.Worker.Done():
		case <-ctx.Done():
			a.log.Warn().Msg("streak worker did not stop in time")
		}
	}

	var errs []error
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	return errors.Join(errs...)
}
