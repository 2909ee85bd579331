package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"mes/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleLaborClockOutJob *StaleLaborClockOutJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	clockOutStaleHandler commands.ClockOutStaleAssignmentsCommandHandler,
	sweepSchedule string,
	maxShiftLength time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleLaborClockOutJob: NewStaleLaborClockOutJob(clockOutStaleHandler, sweepSchedule, maxShiftLength, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleLaborClockOutJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale labor clock-out job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleLaborClockOutJob.Stop()
}
