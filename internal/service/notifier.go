package service

import (
	"context"
	"errors"

	"parcel_tracking/internal/email"
	"parcel_tracking/internal/logger"
	"parcel_tracking/internal/models"
	"parcel_tracking/internal/queue"
)

var (
	errNoAdminEmail          = errors.New("admin e-mail is not configured")
	errNotificationsDisabled = errors.New("notifications are disabled")
)

// Notifier turns domain events into queued e-mails.
// Enqueue failures are logged and never fail the calling operation.
type Notifier struct {
	q          queue.Queue
	adminEmail string
	log        *logger.Logger
}

func NewNotifier(q queue.Queue, adminEmail string, log *logger.Logger) *Notifier {
	return &Notifier{q: q, adminEmail: adminEmail, log: logger.OrNop(log)}
}

func (n *Notifier) enqueue(ctx context.Context, event string, msgs ...email.Message) int {
	if n == nil || n.q == nil {
		return 0
	}
	queued := 0
	for _, m := range msgs {
		if !IsValidEmail(m.To) {
			n.log.Warnw("notification_skipped_invalid_address", "event", event, "to", m.To)
			continue
		}
		if err := n.q.Enqueue(ctx, m); err != nil {
			n.log.Errorw("notification_enqueue_failed", "event", event, "to", m.To, "err", err)
			continue
		}
		queued++
	}
	return queued
}

func (n *Notifier) ParcelRegistered(ctx context.Context, p models.Parcel) int {
	return n.enqueue(ctx, "parcel_registered", RegistrationMessages(p, n.contact())...)
}

func (n *Notifier) StatusChanged(ctx context.Context, p models.Parcel, oldStatus string) int {
	return n.enqueue(ctx, "status_changed", StatusUpdateMessages(p, oldStatus, n.contact())...)
}

func (n *Notifier) FeedbackReceived(ctx context.Context, f models.Feedback) int {
	if n.contact() == "" {
		return 0
	}
	return n.enqueue(ctx, "feedback_received", FeedbackAdminMessage(f, n.adminEmail))
}

func (n *Notifier) SupportReceived(ctx context.Context, r models.SupportRequest) int {
	msgs := []email.Message{SupportConfirmationMessage(r, n.contact())}
	if n.contact() != "" {
		msgs = append([]email.Message{SupportAdminMessage(r, n.adminEmail)}, msgs...)
	}
	return n.enqueue(ctx, "support_received", msgs...)
}

// Test enqueues a test message to the administrator; unlike the other
// notifications its failure is reported to the caller.
func (n *Notifier) Test(ctx context.Context) error {
	if n == nil || n.q == nil {
		return errNotificationsDisabled
	}
	if n.adminEmail == "" {
		return errNoAdminEmail
	}
	return n.q.Enqueue(ctx, TestMessage(n.adminEmail))
}

func (n *Notifier) contact() string {
	if n == nil {
		return ""
	}
	return n.adminEmail
}
