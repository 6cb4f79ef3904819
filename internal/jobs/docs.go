// Package jobs provides scheduled background tasks for the travel-order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the out-of-band lifecycle upkeep the API does not cover.
//
// # Available Jobs
//
// 1. ExpiredOrdersJob - Runs hourly to cancel orders still awaiting a decision
// after their travel window has already started
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cancelExpiredHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiry job uses the cron expression "0 0 * * * *" (top of every hour).
// Travel windows have day granularity, so hourly sweeps are more than enough
// to keep the backlog clean.
//
// # Error Handling
//
// The sweep is idempotent: an order that loses the status compare-and-swap to
// a concurrent administrator decision is skipped and never retried, because it
// is no longer awaiting a decision. Sweep failures are logged and retried on
// the next tick.
package jobs
