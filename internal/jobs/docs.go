// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(closeStaleShiftsHandler, maxOpen, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job is ShiftAutoCloseJob, which runs hourly and closes shifts
// whose courier forgot to check out. It is opt-in: when the configured
// maximum open duration is zero the manager schedules nothing, keeping the
// whole service synchronous request/response.
package jobs
