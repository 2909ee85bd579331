package jobs

import (
	"context"
	"log/slog"
	"time"

	"mes/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleLaborClockOutJob manages the scheduled close-out of forgotten shifts.
// On each tick it clocks out every assignment that has been Active or
// OnBreak longer than the configured shift length.
type StaleLaborClockOutJob struct {
	handler        commands.ClockOutStaleAssignmentsCommandHandler
	schedule       string
	maxShiftLength time.Duration
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewStaleLaborClockOutJob creates a new job for closing out stale shifts.
// The schedule is a five-field cron expression; maxShiftLength is how long
// an operator may stay clocked in before the sweep forces them out.
func NewStaleLaborClockOutJob(
	handler commands.ClockOutStaleAssignmentsCommandHandler,
	schedule string,
	maxShiftLength time.Duration,
	logger *slog.Logger,
) *StaleLaborClockOutJob {
	return &StaleLaborClockOutJob{
		handler:        handler,
		schedule:       schedule,
		maxShiftLength: maxShiftLength,
		cron:           cron.New(),
		logger:         logger.With("component", "stale_labor_clockout_job"),
	}
}

// Start begins the shift close-out sweep on the configured schedule.
func (j *StaleLaborClockOutJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewClockOutStaleAssignmentsCommand(j.maxShiftLength)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale labor clock-out job misconfigured", "error", err)
			return
		}

		closed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale labor clock-out job failed", "error", err)
			return
		}

		if closed > 0 {
			j.logger.InfoContext(ctx, "Closed out stale labor assignments", "count", closed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale labor clock-out job started",
		"schedule", j.schedule, "maxShiftLength", j.maxShiftLength)
	return nil
}

// Stop stops the shift close-out sweep.
func (j *StaleLaborClockOutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale labor clock-out job stopped")
}
