// Package jobs provides scheduled background tasks for the catering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the catering service.
//
// # Available Jobs
//
// 1. NotificationRelayJob - Runs every five seconds to deliver pending
// outbox notifications produced by lifecycle state changes
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(relayHandler, logger)
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
// The relay job uses the cron expression "*/5 * * * * *", one run every five
// seconds. Notifications are best-effort and asynchronous, so a short relay
// delay never blocks a state change.
//
// # Error Handling
//
// An empty outbox is a normal run, not an error. Relay failures are logged
// and the rows stay pending for the next run.
package jobs
