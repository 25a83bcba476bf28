package cron

import (
	"context"
	"log"
	"time"

	"flywise/config"
	"flywise/services/session"
	"flywise/services/ticketcache"
	"flywise/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const (
	TypeSessionSweep  = "session:sweep"
	TypeTicketCleanup = "ticket:cleanup"
)

// InitMaintenanceWorker runs the periodic sweep/cleanup tasks in background.
// The store and cache methods stay directly callable; the worker only
// schedules them.
func InitMaintenanceWorker(sessions *session.Store, tickets ticketcache.Cache) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSchedulerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionSweep, handleSessionSweep(sessions))
	mux.HandleFunc(TypeTicketCleanup, handleTicketCleanup(tickets))

	go monitorRedisConnection()
	go startScheduler(redisOpts)

	go func() {
		log.Println("[MaintenanceWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MaintenanceWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MaintenanceWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func startScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})

	sweepSpec := "*/5 * * * *"
	if config.AppConfig.SweepIntervalMinutes > 0 && config.AppConfig.SweepIntervalMinutes != 5 {
		sweepSpec = "@every " + time.Duration(config.AppConfig.SweepIntervalMinutes*int(time.Minute)).String()
	}

	if _, err := scheduler.Register(sweepSpec, asynq.NewTask(TypeSessionSweep, nil)); err != nil {
		log.Printf("[MaintenanceWorker] ❌ Failed to register session sweep: %v", err)
	}
	if _, err := scheduler.Register("@hourly", asynq.NewTask(TypeTicketCleanup, nil)); err != nil {
		log.Printf("[MaintenanceWorker] ❌ Failed to register ticket cleanup: %v", err)
	}

	if err := scheduler.Run(); err != nil {
		log.Printf("[MaintenanceWorker] ❌ Scheduler stopped: %v", err)
	}
}

func handleSessionSweep(sessions *session.Store) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		removed := sessions.SweepExpired()
		if removed > 0 {
			utils.SessionsSwept.Add(float64(removed))
			log.Printf("[SessionSweep] 🧹 Removed %d expired sessions", removed)
		}
		return nil
	}
}

func handleTicketCleanup(tickets ticketcache.Cache) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		removed, err := tickets.CleanupExpired(ctx)
		if err != nil {
			log.Printf("[TicketCleanup] ❌ Cleanup failed: %v", err)
			return err
		}
		if removed > 0 {
			log.Printf("[TicketCleanup] 🧹 Removed %d expired ticket records", removed)
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSchedulerDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[MaintenanceWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
