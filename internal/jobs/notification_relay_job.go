package jobs

import (
	"context"
	"log/slog"
	"time"

	"fastfeet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRelaySchedule runs the relay every five seconds.
const DefaultRelaySchedule = "*/5 * * * * *"

const relayTimeout = 30 * time.Second

type notificationPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishNotificationsCommand) (int, error)
}

// NotificationRelayJob periodically hands unpublished notifications to the broker.
type NotificationRelayJob struct {
	handler     notificationPublisher
	schedule    string
	batchSize   int
	onPublished func(n int)
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewNotificationRelayJob creates the relay. schedule is a six-field cron expression
// (seconds first) or a descriptor such as "@every 5s"; empty means DefaultRelaySchedule.
func NewNotificationRelayJob(
	handler notificationPublisher,
	schedule string,
	batchSize int,
	onPublished func(n int),
	logger *slog.Logger,
) *NotificationRelayJob {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}
	if onPublished == nil {
		onPublished = func(int) {}
	}

	return &NotificationRelayJob{
		handler:     handler,
		schedule:    schedule,
		batchSize:   batchSize,
		onPublished: onPublished,
		cron:        cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:      logger.With("component", "notification_relay_job"),
	}
}

func (j *NotificationRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), relayTimeout)
		defer cancel()
		j.RunOnce(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started", "schedule", j.schedule)
	return nil
}

func (j *NotificationRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}

// RunOnce relays a single batch. Failures are logged; the rows stay unpublished and
// are picked up by the next run.
func (j *NotificationRelayJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewPublishNotificationsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid notification relay batch size", "batch_size", j.batchSize, "error", err)
		return
	}

	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification relay failed", "error", err)
		return
	}

	if published > 0 {
		j.onPublished(published)
		j.logger.DebugContext(ctx, "Notifications relayed", "count", published)
	}
}
