package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"deliverysys/internal/core/application/usecases/commands"
)

// ShiftAutoCloseJob force-closes shifts whose courier never checked out.
// Runs hourly and closes every shift open longer than maxOpen.
type ShiftAutoCloseJob struct {
	handler commands.CloseStaleShiftsCommandHandler
	maxOpen time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShiftAutoCloseJob creates a job that closes shifts open longer than
// maxOpen.
func NewShiftAutoCloseJob(
	handler commands.CloseStaleShiftsCommandHandler,
	maxOpen time.Duration,
	logger *slog.Logger,
) *ShiftAutoCloseJob {
	return &ShiftAutoCloseJob{
		handler: handler,
		maxOpen: maxOpen,
		cron:    cron.New(),
		logger:  logger.With("component", "shift_autoclose_job"),
	}
}

// Start schedules the job to run hourly.
func (j *ShiftAutoCloseJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shift auto-close job started (running hourly)",
		"max_open", j.maxOpen.String())
	return nil
}

// Stop stops the job.
func (j *ShiftAutoCloseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shift auto-close job stopped")
}

func (j *ShiftAutoCloseJob) run() {
	ctx := context.Background()
	now := time.Now()

	cmd, err := commands.NewCloseStaleShiftsCommand(now.Add(-j.maxOpen), now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Shift auto-close job misconfigured", "error", err)
		return
	}

	closed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Shift auto-close job failed", "error", err)
		return
	}

	if closed > 0 {
		j.logger.InfoContext(ctx, "Closed stale shifts", "count", closed)
	}
}
