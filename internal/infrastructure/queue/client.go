package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Client enqueues background tasks. Enqueue failures are the caller's to
// swallow: a lost notification must never fail the originating request.
type Client struct {
	inner *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		inner: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

func (c *Client) EnqueueLeadNotify(payload LeadNotifyPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal lead notify payload: %w", err)
	}
	task := asynq.NewTask(TaskLeadNotify, raw)
	if _, err := c.inner.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(30*time.Second)); err != nil {
		return fmt.Errorf("enqueue %s: %w", TaskLeadNotify, err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.inner.Close()
}
