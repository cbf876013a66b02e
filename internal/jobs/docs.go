// Package jobs provides scheduled background tasks for the delivery system.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// NotificationRelayJob moves notifications written by delivery transitions to the
// message broker. Each run locks a batch of unpublished rows, publishes them and marks
// them published in one transaction, so several instances can relay side by side.
//
// # Usage
//
//	relay := jobs.NewNotificationRelayJob(publishHandler, "*/5 * * * * *", 100, nil, logger)
//	jobManager := jobs.NewJobManager(relay)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Runs never overlap.
package jobs
