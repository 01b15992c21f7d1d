package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"parcel_tracking/internal/logger"
	"parcel_tracking/internal/models"
	"parcel_tracking/internal/repository"
)

// DefaultWatchTick is how often the watcher scans when no tick is configured.
const DefaultWatchTick = time.Minute

// WatcherService flags in-transit parcels that have not been updated for
// staleAfter. Each parcel is flagged once per UpdatedAt value.
type WatcherService struct {
	parcelRepo repository.ParcelRepo
	eventRepo  repository.EventRepo
	staleAfter time.Duration
	log        *logger.Logger

	mu      sync.Mutex
	flagged map[int64]time.Time // parcel ID -> UpdatedAt already flagged
}

func NewWatcherService(parcelRepo repository.ParcelRepo, eventRepo repository.EventRepo, staleAfter time.Duration, log *logger.Logger) *WatcherService {
	if staleAfter <= 0 {
		staleAfter = defaultStaleAfter
	}
	return &WatcherService{
		parcelRepo: parcelRepo,
		eventRepo:  eventRepo,
		staleAfter: staleAfter,
		log:        logger.OrNop(log),
		flagged:    make(map[int64]time.Time),
	}
}

var _ Watcher = (*WatcherService)(nil)

// Run ticks at the given interval until ctx is canceled.
func (s *WatcherService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultWatchTick
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if _, err := s.Scan(ctx, now.UTC()); err != nil && ctx.Err() == nil {
				s.log.Errorw("watcher_scan_failed", "err", err)
			}
		}
	}
}

// Scan flags parcels stale at now and returns how many were newly flagged.
func (s *WatcherService) Scan(ctx context.Context, now time.Time) (int, error) {
	stale, err := s.parcelRepo.ListStale(ctx, models.StatusInTransit, now.Add(-s.staleAfter))
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]struct{}, len(stale))
	flagged := 0
	for _, p := range stale {
		seen[p.ID] = struct{}{}
		if last, ok := s.flagged[p.ID]; ok && last.Equal(p.UpdatedAt) {
			continue
		}
		if s.flag(ctx, p, now) {
			s.flagged[p.ID] = p.UpdatedAt
			flagged++
		}
	}
	// forget parcels that moved on so a later stall is flagged again
	for id := range s.flagged {
		if _, ok := seen[id]; !ok {
			delete(s.flagged, id)
		}
	}
	return flagged, nil
}

func (s *WatcherService) flag(ctx context.Context, p models.Parcel, now time.Time) bool {
	idle := now.Sub(p.UpdatedAt).Truncate(time.Minute)
	err := s.eventRepo.Append(ctx, models.ParcelEvent{
		ParcelID:    p.ID,
		TrackingID:  p.TrackingID,
		OccurredAt:  now,
		Type:        models.EventAttention,
		Location:    p.CurrentLocation,
		Description: fmt.Sprintf("No update for %s while in transit", idle),
		Metadata:    map[string]any{"lastUpdate": p.UpdatedAt, "staleAfter": s.staleAfter.String()},
	})
	if err != nil {
		s.log.Errorw("watcher_event_append_failed", "tracking_id", p.TrackingID, "err", err)
		return false
	}
	s.log.Warnw("parcel_needs_attention", "tracking_id", p.TrackingID, "idle", idle.String(), "location", p.CurrentLocation)
	return true
}
