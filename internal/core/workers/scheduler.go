package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DailyRefreshSpec fires at local midnight, when stored streaks go stale.
const DailyRefreshSpec = "0 0 * * *"

type Enqueuer interface {
	Enqueue(reason string) bool
}

type NotificationGate interface {
	NotificationsEnabled(ctx context.Context) bool
}

type SchedulerOptions struct {
	Location  *time.Location
	Now       func() time.Time
	Refresher Enqueuer
	Notifier  domain.Notifier
	Gate      NotificationGate
	Log       zerolog.Logger
}

// Scheduler wraps cron for the midnight streak refresh and routine
// reminders. It satisfies services.ReminderScheduler.
type Scheduler struct {
	cron      *cron.Cron
	loc       *time.Location
	now       func() time.Time
	refresher Enqueuer
	notifier  domain.Notifier
	gate      NotificationGate
	log       zerolog.Logger

	mu        sync.Mutex
	reminders map[string]cron.EntryID
}

func NewScheduler(opts SchedulerOptions) *Scheduler {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		loc:       loc,
		now:       now,
		refresher: opts.Refresher,
		notifier:  opts.Notifier,
		gate:      opts.Gate,
		log:       opts.Log.With().Str("component", "scheduler").Logger(),
		reminders: make(map[string]cron.EntryID),
	}
}

func (s *Scheduler) Start() error {
	if s.refresher != nil {
		if _, err := s.cron.AddFunc(DailyRefreshSpec, s.refreshStreaks); err != nil {
			return fmt.Errorf("failed to schedule daily refresh: %w", err)
		}
	}
	s.cron.Start()
	s.log.Info().Str("timezone", s.loc.String()).Msg("scheduler started")
	return nil
}

// Stop waits for running jobs or for ctx, whichever ends first.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) refreshStreaks() {
	s.refresher.Enqueue("midnight")
}

// Schedule replaces any reminder already armed for task.
func (s *Scheduler) Schedule(task domain.RoutineTask) error {
	spec, err := ReminderSpec(task, s.now().In(s.loc))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.reminders[task.ID]; ok {
		s.cron.Remove(id)
	}

	id, err := s.cron.AddFunc(spec, func() { s.fire(task) })
	if err != nil {
		delete(s.reminders, task.ID)
		return fmt.Errorf("failed to schedule reminder for %s: %w", task.ID, err)
	}
	s.reminders[task.ID] = id

	s.log.Debug().Str("task_id", task.ID).Str("spec", spec).Msg("reminder scheduled")
	return nil
}

func (s *Scheduler) Cancel(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.reminders[taskID]; ok {
		s.cron.Remove(id)
		delete(s.reminders, taskID)
	}
}

// Armed reports how many reminders are currently scheduled.
func (s *Scheduler) Armed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reminders)
}

func (s *Scheduler) NextReminder(taskID string) (time.Time, bool) {
	s.mu.Lock()
	id, ok := s.reminders[taskID]
	s.mu.Unlock()
	if !ok {
		return time.Time{}, false
	}
	return s.cron.Entry(id).Next, true
}

func (s *Scheduler) fire(task domain.RoutineTask) {
	if task.Recurrence == domain.RecurrenceNone {
		s.Cancel(task.ID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.gate != nil && !s.gate.NotificationsEnabled(ctx) {
		s.log.Debug().Str("task_id", task.ID).Msg("notifications disabled, skipping reminder")
		return
	}
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, domain.NewReminder(task, s.now().In(s.loc))); err != nil {
		s.log.Warn().Err(err).Str("task_id", task.ID).Msg("reminder delivery failed")
	}
}

// ReminderSpec derives a five field cron spec from the task recurrence,
// anchored on the next occurrence of its start time. One shot reminders
// are removed after they fire.
func ReminderSpec(task domain.RoutineTask, now time.Time) (string, error) {
	next, err := domain.NextOccurrence(task, now)
	if err != nil {
		return "", err
	}

	minute, hour := next.Minute(), next.Hour()
	switch task.Recurrence {
	case domain.RecurrenceNone:
		return fmt.Sprintf("%d %d %d %d *", minute, hour, next.Day(), int(next.Month())), nil
	case domain.RecurrenceWeekly:
		return fmt.Sprintf("%d %d * * %d", minute, hour, int(next.Weekday())), nil
	case domain.RecurrenceMonthly:
		return fmt.Sprintf("%d %d %d * *", minute, hour, next.Day()), nil
	case domain.RecurrenceDaily, "":
		return fmt.Sprintf("%d %d * * *", minute, hour), nil
	}
	return "", domain.ErrInvalidRecurrence
}
