package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gramzo/config"
	notificationRepo "gramzo/database/repository/notification"
	"gramzo/models"
	"gramzo/services/tasks"

	"github.com/hibiken/asynq"
)

// InitNotificationWorker runs the async outbox worker in the background. It
// drains notification:deliver tasks enqueued by the booking engine and
// persists the records; asynq retries failed deliveries.
func InitNotificationWorker(repo notificationRepo.NotificationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeNotificationDeliver, handleDeliverTask(repo))

	// Start async worker with retry logic
	go func() {
		log.Println("[NotificationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleDeliverTask(repo notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var n models.Notification
		if err := json.Unmarshal(task.Payload(), &n); err != nil {
			log.Printf("[NotificationWorker] invalid payload: %v", err)
			return err
		}

		if err := repo.Create(ctx, n); err != nil {
			log.Printf("[NotificationWorker] failed to persist notification %s: %v", n.ID, err)
			return err
		}
		return nil
	}
}
