package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-event-planner/internal/config"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/internal/service"
)

// ReminderWorker polls the reminder queue and fires due reminders.
type ReminderWorker struct {
	reminders service.ReminderService
	interval  time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func NewReminderWorker(reminders service.ReminderService, interval time.Duration, log *logger.Logger) *ReminderWorker {
	if interval <= 0 {
		interval = config.DefaultReminderPollInterval
	}

	return &ReminderWorker{
		reminders: reminders,
		interval:  interval,
		now:       time.Now,
		logger:    log,
	}
}

// Run polls once immediately, so reminders that fell due while the process
// was down fire on start, and then once per interval until ctx is done.
func (w *ReminderWorker) Run(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)
	w.logger.Info().Dur("interval", w.interval).Msg("reminder worker started")

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		w.poll(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("reminder worker stopped")
			return
		case <-t.C:
		}
	}
}

func (w *ReminderWorker) poll(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	if _, err := w.reminders.FireDue(ctx, w.now()); err != nil && ctx.Err() == nil {
		w.logger.Err(err).Msg("firing due reminders failed")
	}
}
