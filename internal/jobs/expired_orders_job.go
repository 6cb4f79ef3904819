package jobs

import (
	"context"
	"log/slog"

	"travelorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpiredOrdersJob cancels travel orders that are still awaiting a decision
// after their travel window has already started. Runs hourly; the
// requested -> canceled transition is legal, so the sweep goes through the
// ordinary state machine.
type ExpiredOrdersJob struct {
	handler commands.CancelExpiredTravelOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExpiredOrdersJob creates a new job for expiring stale travel orders.
// Uses CancelExpiredTravelOrdersCommandHandler to process the sweep.
func NewExpiredOrdersJob(
	handler commands.CancelExpiredTravelOrdersCommandHandler,
	logger *slog.Logger,
) *ExpiredOrdersJob {
	return &ExpiredOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "expired_orders_job"),
	}
}

// Start begins the expiry job to run at the top of every hour.
func (j *ExpiredOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCancelExpiredTravelOrdersCommand()

		canceled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Expired orders sweep failed", "error", err)
			return
		}

		if canceled > 0 {
			j.logger.InfoContext(ctx, "Canceled expired travel orders", "count", canceled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expired orders job started (running hourly)")
	return nil
}

// Stop stops the expiry job.
func (j *ExpiredOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expired orders job stopped")
}
