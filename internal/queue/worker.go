package queue

import (
	"context"
	"errors"
	"time"

	"parcel_tracking/internal/email"
	"parcel_tracking/internal/logger"
)

const (
	// errorBackoff pauses the loop after a queue read error.
	errorBackoff = time.Second
	// drainTimeout bounds delivery of in-process messages left at shutdown.
	drainTimeout = 5 * time.Second
)

// buffered is implemented by queues that hold messages in process memory.
type buffered interface {
	Len() int
}

// Worker drains a queue and hands each message to a sender.
// Failed deliveries are logged and dropped.
type Worker struct {
	q      Queue
	sender email.Sender
	log    *logger.Logger
}

func NewWorker(q Queue, sender email.Sender, log *logger.Logger) *Worker {
	return &Worker{q: q, sender: sender, log: logger.OrNop(log)}
}

// Run processes messages until ctx is canceled or the queue is closed.
// On cancellation, messages still buffered in memory are delivered first.
func (w *Worker) Run(ctx context.Context) {
	for {
		m, err := w.q.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrClosed) {
				return
			}
			if ctx.Err() != nil {
				w.drain()
				return
			}
			w.log.Errorw("notification_dequeue_failed", "err", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(errorBackoff):
			}
			continue
		}
		w.deliver(ctx, m)
	}
}

func (w *Worker) drain() {
	b, ok := w.q.(buffered)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	for b.Len() > 0 {
		m, err := w.q.Dequeue(ctx)
		if err != nil {
			w.log.Warnw("notification_drain_stopped", "left", b.Len(), "err", err)
			return
		}
		w.deliver(ctx, m)
	}
}

func (w *Worker) deliver(ctx context.Context, m email.Message) {
	if err := w.sender.Send(ctx, m); err != nil {
		w.log.Errorw("notification_send_failed", "to", m.To, "subject", m.Subject, "err", err)
		return
	}
	w.log.Debugw("notification_sent", "to", m.To, "subject", m.Subject)
}
