package jobs

import (
	"context"
	"log/slog"
	"time"

	"printshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// reminderWindow is how far ahead the reminder job looks for deadlines.
const reminderWindow = 48 * time.Hour

// DueDateReminderJob periodically scans for unfinished orders whose due date
// is near and logs a reminder for each. Overdue orders keep appearing until
// they are finished or deleted.
type DueDateReminderJob struct {
	handler queries.GetDueSoonOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDueDateReminderJob creates a new job for due date reminders.
func NewDueDateReminderJob(handler queries.GetDueSoonOrdersQueryHandler, logger *slog.Logger) *DueDateReminderJob {
	return &DueDateReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "due_date_reminder_job"),
	}
}

// Start begins the due date reminder job to run at the top of every hour.
func (j *DueDateReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetDueSoonOrdersQuery(reminderWindow)
		if err != nil {
			j.logger.ErrorContext(ctx, "Due date reminder job misconfigured", "error", err)
			return
		}

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Due date reminder job failed", "error", err)
			return
		}

		for _, o := range orders {
			j.logger.WarnContext(ctx, "Order is due soon",
				"orderId", o.ID.String(),
				"ownerId", o.OwnerID,
				"title", o.Title,
				"dueDate", o.DueDate,
				"status", o.Status.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Due date reminder job started (running hourly)")
	return nil
}

// Stop stops the due date reminder job.
func (j *DueDateReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Due date reminder job stopped")
}
