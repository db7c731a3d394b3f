// Package jobs provides scheduled background tasks for the order desk.
//
// Jobs run on github.com/robfig/cron/v3 with second-resolution schedules and
// live outside the order core: they only call query handlers.
//
// # Available Jobs
//
// 1. OverdueOrdersJob - lists pending and in-progress orders whose deadline has
// passed and logs each one as a warning. Runs hourly unless OVERDUE_SCAN_SCHEDULE
// says otherwise.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(overdueOrdersHandler, cfg.OverdueScanSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed scan is logged and retried on the next tick. An invalid schedule
// fails StartAll.
package jobs
