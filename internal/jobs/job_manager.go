package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"deliverysys/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// With auto-close disabled there are no jobs, and StartAll/StopAll are no-ops;
// the request path stays fully synchronous.
type JobManager struct {
	shiftAutoCloseJob *ShiftAutoCloseJob
}

// NewJobManager creates a job manager. A non-positive maxShiftOpen disables
// the shift auto-close job.
func NewJobManager(
	closeStaleShiftsHandler commands.CloseStaleShiftsCommandHandler,
	maxShiftOpen time.Duration,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}

	if maxShiftOpen > 0 {
		jm.shiftAutoCloseJob = NewShiftAutoCloseJob(closeStaleShiftsHandler, maxShiftOpen, logger)
	}

	return jm
}

// StartAll starts all configured jobs.
func (jm *JobManager) StartAll() error {
	if jm.shiftAutoCloseJob == nil {
		return nil
	}

	if err := jm.shiftAutoCloseJob.Start(); err != nil {
		return fmt.Errorf("failed to start shift auto-close job: %w", err)
	}

	return nil
}

// StopAll stops all configured jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.shiftAutoCloseJob != nil {
		jm.shiftAutoCloseJob.Stop()
	}
}
