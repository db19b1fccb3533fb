package jobs

import (
	"context"
	"log/slog"

	"tailoring/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// deadlineLookaheadDays is how far ahead the reminder job looks for due orders.
const deadlineLookaheadDays = 3

// DeadlineReminderJob periodically scans for open orders whose deadline is
// close and logs a reminder for each. Runs every hour.
type DeadlineReminderJob struct {
	handler queries.GetApproachingDeadlinesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeadlineReminderJob creates a new job for deadline reminders.
// Uses GetApproachingDeadlinesQueryHandler to find orders due soon.
func NewDeadlineReminderJob(
	handler queries.GetApproachingDeadlinesQueryHandler,
	logger *slog.Logger,
) *DeadlineReminderJob {
	return &DeadlineReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "deadline_reminder_job"),
	}
}

// Start begins the deadline reminder job to run at the top of every hour.
func (j *DeadlineReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetApproachingDeadlinesQuery(deadlineLookaheadDays)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Deadline reminder job failed", "error", queryErr)
			return
		}

		orders, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Deadline reminder job failed", "error", handleErr)
			return
		}

		for _, o := range orders {
			j.logger.WarnContext(ctx, "Order deadline approaching",
				"order_id", o.OrderID.String(),
				"order_number", o.Number,
				"status", o.Status,
				"deadline", o.Deadline,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Deadline reminder job started (running hourly)")
	return nil
}

// Stop stops the deadline reminder job.
func (j *DeadlineReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Deadline reminder job stopped")
}
