package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"vetly/config"
	"vetly/services/schedule"

	"github.com/hibiken/asynq"
)

const TypeTimelineWarm = "timeline:warm"

// WarmPayload names one doctor-day whose schedule should be prefetched into
// the day cache.
type WarmPayload struct {
	DoctorPimsID string `json:"doctorPimsId"`
	Date         string `json:"date"`
}

// Warmer enqueues timeline warm tasks. Implements handlers.TimelineWarmer.
type Warmer struct {
	client *asynq.Client
}

func NewWarmer() *Warmer {
	return &Warmer{client: asynq.NewClient(warmRedisOpts())}
}

func (w *Warmer) EnqueueWarm(doctorPimsID, date string) error {
	payload, err := json.Marshal(WarmPayload{DoctorPimsID: doctorPimsID, Date: date})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeTimelineWarm, payload)
	// Dedup per doctor-day so browsing back and forth does not pile up tasks.
	_, err = w.client.Enqueue(task,
		asynq.TaskID(TypeTimelineWarm+":"+doctorPimsID+":"+date),
		asynq.Retention(time.Minute))
	if err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		return err
	}
	return nil
}

// InitWarmWorker runs the async warm worker in background.
func InitWarmWorker(timelineSvc schedule.TimelineService) {
	srv := asynq.NewServer(
		warmRedisOpts(),
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeTimelineWarm, handleWarmTask(timelineSvc))

	go func() {
		log.Println("[TimelineWarmWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TimelineWarmWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TimelineWarmWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleWarmTask(timelineSvc schedule.TimelineService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p WarmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[TimelineWarmWorker] invalid payload: %v", err)
			return err
		}

		// Computing the timeline pulls the day record through the cache,
		// which is the whole point; the result itself is discarded.
		if _, err := timelineSvc.DayTimeline(ctx, p.DoctorPimsID, p.Date); err != nil {
			log.Printf("[TimelineWarmWorker] warm failed for %s %s: %v", p.DoctorPimsID, p.Date, err)
			return err
		}
		return nil
	}
}

func warmRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWarmQueueDB,
	}
}
