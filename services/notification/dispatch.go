package notification

import (
	"context"
	"fmt"

	notificationRepo "gramzo/database/repository/notification"
	"gramzo/models"
	"gramzo/services/tasks"

	"github.com/hibiken/asynq"
)

// AsynqDispatcher enqueues notification records for the background worker.
// Enqueue failures are visible to the caller (logged there), not fatal.
type AsynqDispatcher struct {
	Client *asynq.Client
}

func (d *AsynqDispatcher) Dispatch(ctx context.Context, notification models.Notification) error {
	task, opts, err := tasks.NewDeliverTask(notification)
	if err != nil {
		return fmt.Errorf("dispatch: failed to build deliver task: %w", err)
	}
	if _, err := d.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("dispatch: failed to enqueue notification: %w", err)
	}
	return nil
}

// StoreDispatcher writes the record synchronously. Used when no queue is
// configured and by tests.
type StoreDispatcher struct {
	Repo notificationRepo.NotificationRepository
}

func (d *StoreDispatcher) Dispatch(ctx context.Context, notification models.Notification) error {
	return d.Repo.Create(ctx, notification)
}
