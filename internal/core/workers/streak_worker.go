package workers

import (
	"context"

	"github.com/comitanigiacomo/streak-radar/internal/core/services"
	"github.com/rs/zerolog"
)

type StreakRefresher interface {
	RefreshStreaks(ctx context.Context) (*services.RefreshResult, error)
}

type StreakJob struct {
	Reason string
}

// StreakWorker recomputes stored streaks off the request path, typically
// after the calendar day rolls over.
type StreakWorker struct {
	habits StreakRefresher
	jobs   chan StreakJob
	log    zerolog.Logger
	done   chan struct{}
}

func NewStreakWorker(habits StreakRefresher, queueSize int, log zerolog.Logger) *StreakWorker {
	if queueSize <= 0 {
		queueSize = 100
	}
	return &StreakWorker{
		habits: habits,
		jobs:   make(chan StreakJob, queueSize),
		log:    log.With().Str("component", "streak_worker").Logger(),
		done:   make(chan struct{}),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		defer close(w.done)
		w.log.Info().Msg("streak worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				w.log.Info().Msg("streak worker shutting down")
				return
			}
		}
	}()
}

// Done is closed once the worker loop has returned.
func (w *StreakWorker) Done() <-chan struct{} {
	return w.done
}

// Enqueue never blocks; jobs are dropped when the queue is full.
func (w *StreakWorker) Enqueue(reason string) bool {
	select {
	case w.jobs <- StreakJob{Reason: reason}:
		return true
	default:
		w.log.Warn().Str("reason", reason).Msg("streak worker queue full, dropping job")
		return false
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	result, err := w.habits.RefreshStreaks(ctx)
	if err != nil {
		w.log.Error().Err(err).Str("reason", job.Reason).Msg("streak refresh failed")
		return
	}

	evt := w.log.Info()
	if result.Changed == 0 && len(result.Unlocked) == 0 {
		evt = w.log.Debug()
	}
	evt.Str("reason", job.Reason).
		Int("changed", result.Changed).
		Int("unlocked", len(result.Unlocked)).
		Msg("streaks refreshed")
}
