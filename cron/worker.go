package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"alabraar/config"
	"alabraar/models"
	"alabraar/services/booking"
	"alabraar/services/notification"
)

const (
	TypeReminderSend = "lesson:reminder"
	TypeBookingSweep = "bookings:sweep"
)

const sweepInterval = "@every 10m"

// InitWorker runs the async worker and the periodic sweep scheduler in the
// background.
func InitWorker(notifSvc notification.NotificationService, bookingSvc booking.BookingService) {
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
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))
	mux.HandleFunc(TypeBookingSweep, handleSweepTask(bookingSvc))

	go func() {
		log.Println("[Worker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runSweepScheduler(redisOpts)
}

// runSweepScheduler enqueues the sweep task on a fixed interval. The sweep
// marks past scheduled slots missed and completes bookings whose final lesson
// has passed.
func runSweepScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})

	if _, err := scheduler.Register(sweepInterval, asynq.NewTask(TypeBookingSweep, nil)); err != nil {
		log.Printf("[Worker] failed to register sweep task: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[Worker] sweep scheduler stopped: %v", err)
	}
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[Worker] invalid reminder payload: %v", err)
			return err
		}

		data := map[string]string{
			"type":      "reminder",
			"bookingId": p.BookingID,
			"slotId":    p.SlotID,
			"fireDate":  p.FireDate,
		}
		if err := notifSvc.SendPush(ctx, p.UserID, p.Title, p.Body, data); err != nil {
			log.Printf("[Worker] failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}

func handleSweepTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		swept, err := bookingSvc.SweepMissedSlots(ctx, time.Now())
		if err != nil {
			log.Printf("[Worker] booking sweep failed: %v", err)
			return err
		}
		if swept > 0 {
			log.Printf("[Worker] booking sweep updated %d slots", swept)
		}
		return nil
	}
}
