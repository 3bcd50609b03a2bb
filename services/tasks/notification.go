package tasks

import (
	"encoding/json"

	"gramzo/models"

	"github.com/hibiken/asynq"
)

const TypeNotificationDeliver = "notification:deliver"

// NewDeliverTask wraps a notification record into an asynq task. The record
// is fully formed by the producer; the worker only persists it.
func NewDeliverTask(notification models.Notification) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(notification)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeNotificationDeliver, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Queue("default")}

	return task, opts, nil
}
