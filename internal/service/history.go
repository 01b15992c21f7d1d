package service

import (
	"context"
	"strings"
	"time"

	"parcel_tracking/internal/models"
	"parcel_tracking/internal/repository"
)

// HistoryService reads the tracking history of a single parcel.
type HistoryService struct {
	events repository.EventRepo
}

func NewHistoryService(events repository.EventRepo) *HistoryService {
	return &HistoryService{events: events}
}

var _ History = (*HistoryService)(nil)

// utc converts t to UTC; the zero time stays zero so it keeps meaning "unbounded".
func utc(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// clean returns the filter with bounds in UTC and the event type upper-cased.
// A reversed range or an unknown event type is rejected.
func (f HistoryFilter) clean() (HistoryFilter, error) {
	out := HistoryFilter{
		From: utc(f.From),
		To:   utc(f.To),
		Type: strings.ToUpper(strings.TrimSpace(f.Type)),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return HistoryFilter{}, ErrInvalidTimeRange
	}
	if out.Type != "" && !models.IsValidEventType(out.Type) {
		return HistoryFilter{}, invalid("unknown event type %q", out.Type)
	}
	return out, nil
}

// ListHistory returns a parcel's events, oldest first. A tracking id without
// events yields an empty list.
func (s *HistoryService) ListHistory(ctx context.Context, trackingID string, f HistoryFilter) ([]models.ParcelEvent, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, invalid("tracking ID is required")
	}
	f, err := f.clean()
	if err != nil {
		return nil, err
	}
	return s.events.List(ctx, trackingID, f.From, f.To, f.Type)
}
