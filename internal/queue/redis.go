package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"parcel_tracking/internal/email"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisKey = "parceltrack:notifications"
	// popTimeout bounds each BRPOP so cancellation is noticed promptly.
	popTimeout = time.Second
)

// listClient is the subset of *redis.Client the queue uses.
type listClient interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
	Close() error
}

// RedisQueue stores JSON-encoded messages in a Redis list (LPUSH / BRPOP),
// so queued mail survives a restart of the API process.
type RedisQueue struct {
	rdb listClient
	key string
}

func NewRedisQueue(rdb listClient, key string) *RedisQueue {
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisQueue{rdb: rdb, key: key}
}

var _ Queue = (*RedisQueue)(nil)

func (q *RedisQueue) Enqueue(ctx context.Context, m email.Message) error {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	if err := q.rdb.LPush(ctx, q.key, b).Err(); err != nil {
		return fmt.Errorf("lpush %s: %w", q.key, err)
	}
	return nil
}

func (q *RedisQueue) Dequeue(ctx context.Context) (email.Message, error) {
	for {
		if err := ctx.Err(); err != nil {
			return email.Message{}, err
		}
		res, err := q.rdb.BRPop(ctx, popTimeout, q.key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // timed out with an empty list
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return email.Message{}, ctxErr
			}
			return email.Message{}, fmt.Errorf("brpop %s: %w", q.key, err)
		}
		// res is [key, value]
		if len(res) < 2 || res[1] == "" {
			continue
		}
		var m email.Message
		if err := json.Unmarshal([]byte(res[1]), &m); err != nil {
			return email.Message{}, fmt.Errorf("decode message: %w", err)
		}
		return m, nil
	}
}

func (q *RedisQueue) Close() error { return q.rdb.Close() }
