package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PackExpiryJob drops delivery packs whose validity has elapsed.
type PackExpiryJob struct {
	handler  commands.ExpirePacksCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPackExpiryJob creates the job; schedule is a six-field cron expression.
func NewPackExpiryJob(handler commands.ExpirePacksCommandHandler, schedule string, logger *slog.Logger) *PackExpiryJob {
	return &PackExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pack_expiry_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *PackExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pack expiry job started", "schedule", j.schedule)
	return nil
}

// Run performs a single expiry pass.
func (j *PackExpiryJob) Run(ctx context.Context) {
	expired, err := j.handler.Handle(ctx, commands.NewExpirePacksCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pack expiry job failed", "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Packs expired", "count", expired)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *PackExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pack expiry job stopped")
}
