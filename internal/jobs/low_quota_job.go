package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LowQuotaJob notifies stores whose remaining deliveries fell to the threshold.
type LowQuotaJob struct {
	handler   commands.NotifyLowQuotaCommandHandler
	threshold int
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowQuotaJob creates the job; schedule is a six-field cron expression and
// threshold the remaining-deliveries count at which a store is alerted.
func NewLowQuotaJob(
	handler commands.NotifyLowQuotaCommandHandler,
	threshold int,
	schedule string,
	logger *slog.Logger,
) *LowQuotaJob {
	return &LowQuotaJob{
		handler:   handler,
		threshold: threshold,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_quota_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *LowQuotaJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low quota job started", "schedule", j.schedule)
	return nil
}

// Run performs a single alerting pass.
func (j *LowQuotaJob) Run(ctx context.Context) {
	cmd, err := commands.NewNotifyLowQuotaCommand(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low quota job misconfigured", "threshold", j.threshold, "error", err)
		return
	}

	alerted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low quota job failed", "error", err)
		return
	}
	if alerted > 0 {
		j.logger.InfoContext(ctx, "Stores alerted about low quota", "count", alerted)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *LowQuotaJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low quota job stopped")
}
