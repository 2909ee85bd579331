// Package jobs provides scheduled background tasks for the execution system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required on the shop floor.
//
// # Available Jobs
//
// 1. StaleLaborClockOutJob - Sweeps labor assignments that stayed clocked in
// past the configured shift length and forces them out through the normal
// clock-out path.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(clockOutStaleHandler, schedule, maxShiftLength, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule is a standard five-field cron expression taken from
// configuration, so operators can align it with shift boundaries.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed sweep
// never blocks the request-driven core.
package jobs
