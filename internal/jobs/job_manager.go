package jobs

import (
	"fmt"
	"log/slog"

	"printshop/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dueDateReminderJob *DueDateReminderJob
	spoolStockJob      *SpoolStockJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	dueSoonHandler queries.GetDueSoonOrdersQueryHandler,
	depletedHandler queries.GetDepletedMaterialsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dueDateReminderJob: NewDueDateReminderJob(dueSoonHandler, logger),
		spoolStockJob:      NewSpoolStockJob(depletedHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dueDateReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start due date reminder job: %w", err)
	}

	if err := jm.spoolStockJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dueDateReminderJob.Stop()
		return fmt.Errorf("failed to start spool stock job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.spoolStockJob.Stop()
	jm.dueDateReminderJob.Stop()
}
