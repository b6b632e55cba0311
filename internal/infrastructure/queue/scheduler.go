package queue

import (
	"fmt"

	"github.com/hibiken/asynq"
)

// Scheduler registers periodic tasks on asynq's cron scheduler.
type Scheduler struct {
	inner *asynq.Scheduler
}

func NewScheduler(redisAddr, redisPassword string, redisDB int) *Scheduler {
	return &Scheduler{
		inner: asynq.NewScheduler(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}, nil),
	}
}

// RegisterPeriodicTasks wires the daily analytics digest (08:00 UTC).
func (s *Scheduler) RegisterPeriodicTasks() error {
	if _, err := s.inner.Register("0 8 * * *", asynq.NewTask(TaskAnalyticsDigest, nil)); err != nil {
		return fmt.Errorf("register %s: %w", TaskAnalyticsDigest, err)
	}
	return nil
}

func (s *Scheduler) Run() error {
	return s.inner.Run()
}

func (s *Scheduler) Shutdown() {
	s.inner.Shutdown()
}
