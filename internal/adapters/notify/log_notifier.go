package notify

import (
	"context"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/rs/zerolog"
)

var _ domain.Notifier = (*LogNotifier)(nil)

// LogNotifier writes reminders to the log. Platform delivery is left to
// the UI shell, which can tail the log or poll the API.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "notifier").Logger()}
}

func (n *LogNotifier) Notify(ctx context.Context, r domain.Reminder) error {
	n.log.Info().
		Str("task_id", r.TaskID).
		Str("title", r.Title).
		Time("at", r.At).
		Msg(r.Body)
	return nil
}
