package queue

import (
	"context"
	"errors"
	"fmt"

	"parcel_tracking/internal/config"
	"parcel_tracking/internal/email"

	"github.com/redis/go-redis/v9"
)

var (
	ErrClosed = errors.New("queue closed")
	ErrFull   = errors.New("queue full")
)

// Queue buffers outgoing e-mails between request handlers and the delivery worker.
type Queue interface {
	Enqueue(ctx context.Context, m email.Message) error
	// Dequeue blocks until a message is available or ctx is done.
	Dequeue(ctx context.Context) (email.Message, error)
	Close() error
}

const defaultBuffer = 256

// New creates a queue for the configured backend.
func New(ctx context.Context, qc config.QueueConfig, rc config.RedisConfig) (Queue, error) {
	switch qc.Backend {
	case "", "memory":
		return NewMemoryQueue(qc.Buffer), nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     rc.Addr,
			Password: rc.Password,
			DB:       rc.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("connect redis at %s: %w", rc.Addr, err)
		}
		return NewRedisQueue(rdb, rc.Key), nil
	default:
		return nil, fmt.Errorf("unknown queue backend: %s", qc.Backend)
	}
}
