// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep store delivery quotas consistent over time.
//
// # Available Jobs
//
// 1. PackExpiryJob - drops packs whose validity elapsed and notifies the store (PACK_EXPIRY_SCHEDULE, every minute by default)
// 2. LowQuotaJob - notifies stores whose remaining deliveries are at or below LOW_QUOTA_THRESHOLD (LOW_QUOTA_SCHEDULE, hourly by default)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expirePacksHandler, notifyLowQuotaHandler, 10,
//		jobs.Schedules{PackExpiry: "0 * * * * *", LowQuota: "0 0 * * * *"}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields, seconds first, as accepted by cron.WithSeconds.
//
// # Error Handling
//
// - A failed pass is logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
