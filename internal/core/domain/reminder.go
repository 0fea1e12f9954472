package domain

import (
	"context"
	"time"
)

const ReminderTitle = "Streak Radar Reminder"

type Reminder struct {
	TaskID string    `json:"taskId"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	At     time.Time `json:"at"`
}

func NewReminder(task RoutineTask, at time.Time) Reminder {
	return Reminder{
		TaskID: task.ID,
		Title:  ReminderTitle,
		Body:   "Time for: " + task.Name,
		At:     at,
	}
}

// Notifier delivers reminders. Delivery is best effort.
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}
