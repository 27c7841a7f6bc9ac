// Package jobs provides scheduled background tasks for the printshop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic housekeeping the workshop needs.
//
// # Available Jobs
//
// 1. DueDateReminderJob - Runs hourly and logs every unfinished order whose
// due date falls within the reminder window, overdue ones included.
// 2. SpoolStockJob - Runs daily and logs every visible material that has no
// spools left, so the owner can restock before prints stall.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dueSoonHandler, depletedHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs only read projections; a failed run is logged and retried on the
// next tick. Failed job starts will stop any already running jobs.
package jobs
