package jobs

import (
	"fmt"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
)

// Schedules holds the cron expressions (with a seconds field) of every job.
type Schedules struct {
	PackExpiry string
	LowQuota   string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	packExpiryJob *PackExpiryJob
	lowQuotaJob   *LowQuotaJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expirePacksHandler commands.ExpirePacksCommandHandler,
	notifyLowQuotaHandler commands.NotifyLowQuotaCommandHandler,
	lowQuotaThreshold int,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		packExpiryJob: NewPackExpiryJob(expirePacksHandler, schedules.PackExpiry, logger),
		lowQuotaJob:   NewLowQuotaJob(notifyLowQuotaHandler, lowQuotaThreshold, schedules.LowQuota, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.packExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start pack expiry job: %w", err)
	}

	if err := jm.lowQuotaJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.packExpiryJob.Stop()
		return fmt.Errorf("failed to start low quota job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowQuotaJob.Stop()
	jm.packExpiryJob.Stop()
}
