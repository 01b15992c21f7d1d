package queue

import (
	"context"
	"sync"

	"parcel_tracking/internal/email"
)

// MemoryQueue is an in-process buffered queue. Enqueue never blocks.
type MemoryQueue struct {
	ch     chan email.Message
	done   chan struct{}
	closed sync.Once
}

func NewMemoryQueue(buffer int) *MemoryQueue {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &MemoryQueue{
		ch:   make(chan email.Message, buffer),
		done: make(chan struct{}),
	}
}

var _ Queue = (*MemoryQueue)(nil)

func (q *MemoryQueue) Enqueue(ctx context.Context, m email.Message) error {
	select {
	case <-q.done:
		return ErrClosed
	default:
	}
	select {
	case q.ch <- m:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrFull
	}
}

func (q *MemoryQueue) Dequeue(ctx context.Context) (email.Message, error) {
	select {
	case m := <-q.ch:
		return m, nil
	case <-q.done:
		return email.Message{}, ErrClosed
	case <-ctx.Done():
		return email.Message{}, ctx.Err()
	}
}

// Len reports the number of buffered messages.
func (q *MemoryQueue) Len() int { return len(q.ch) }

func (q *MemoryQueue) Close() error {
	q.closed.Do(func() { close(q.done) })
	return nil
}
