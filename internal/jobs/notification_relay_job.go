package jobs

import (
	"context"
	"log/slog"

	"catering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// relayBatchSize bounds how many outbox rows one relay run processes.
const relayBatchSize = 100

// NotificationRelayJob manages the scheduled relay of outbox notifications.
// Runs every five seconds to deliver pending lifecycle events.
type NotificationRelayJob struct {
	handler commands.RelayNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationRelayJob creates a new job for relaying notifications.
// Uses RelayNotificationsCommandHandler to drain the outbox in batches.
func NewNotificationRelayJob(
	handler commands.RelayNotificationsCommandHandler,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_relay_job"),
	}
}

// Start begins the notification relay job to run every five seconds.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRelayNotificationsCommand(relayBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build relay command", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Notification relay job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every 5 seconds)")
	return nil
}

// Stop stops the notification relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
