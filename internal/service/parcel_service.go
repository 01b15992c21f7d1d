package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"parcel_tracking/internal/logger"
	"parcel_tracking/internal/models"
	"parcel_tracking/internal/repository"
)

const (
	trackingIDPrefix   = "TRK"
	maxTrackingIDTries = 5
	defaultStaleAfter  = 72 * time.Hour
)

type ParcelService struct {
	parcels    repository.ParcelRepo
	events     repository.EventRepo
	notifier   *Notifier
	staleAfter time.Duration
	log        *logger.Logger

	now           func() time.Time
	newTrackingID func() string
}

func NewParcelService(parcels repository.ParcelRepo, events repository.EventRepo, notifier *Notifier, staleAfter time.Duration, log *logger.Logger) *ParcelService {
	if staleAfter <= 0 {
		staleAfter = defaultStaleAfter
	}
	return &ParcelService{
		parcels:       parcels,
		events:        events,
		notifier:      notifier,
		staleAfter:    staleAfter,
		log:           logger.OrNop(log),
		now:           func() time.Time { return time.Now().UTC() },
		newTrackingID: generateTrackingID,
	}
}

var _ Parcels = (*ParcelService)(nil)

// generateTrackingID returns TRK + the last 8 digits of the unix-millis clock + 0..999.
func generateTrackingID() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return trackingIDPrefix + ms + strconv.Itoa(rand.IntN(1000))
}

// CreateParcel validates p, assigns a unique tracking ID and defaults,
// records a REGISTERED event and queues the registration e-mails.
func (s *ParcelService) CreateParcel(ctx context.Context, p models.Parcel) (*models.Parcel, error) {
	normalizeParcel(&p)
	if err := validateParcel(p); err != nil {
		return nil, err
	}

	trackingID, err := s.uniqueTrackingID(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	p.ID = 0
	p.TrackingID = trackingID
	p.Status = models.StatusRegistered
	p.DeliveryAttempts = 0
	p.CreatedAt = now
	p.UpdatedAt = now
	p.DeliveredAt = nil

	id, err := s.parcels.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id

	s.appendEvent(ctx, models.ParcelEvent{
		ParcelID:    p.ID,
		TrackingID:  p.TrackingID,
		OccurredAt:  now,
		Type:        models.EventRegistered,
		ToStatus:    p.Status,
		Location:    p.CurrentLocation,
		Description: "Parcel registered",
		Metadata:    map[string]any{"serviceType": p.ServiceType, "priority": p.Priority},
	})
	s.notifier.ParcelRegistered(ctx, p)

	s.log.Infow("parcel_created", "tracking_id", p.TrackingID, "parcel_id", p.ID)
	return &p, nil
}

func (s *ParcelService) uniqueTrackingID(ctx context.Context) (string, error) {
	for i := 0; i < maxTrackingIDTries; i++ {
		id := s.newTrackingID()
		existing, err := s.parcels.GetByTrackingID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique tracking ID after %d attempts", maxTrackingIDTries)
}

func (s *ParcelService) GetParcel(ctx context.Context, id int64) (*models.Parcel, error) {
	p, err := s.parcels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrParcelNotFound
	}
	return p, nil
}

func (s *ParcelService) Track(ctx context.Context, trackingID string) (*models.Parcel, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, invalid("tracking ID is required")
	}
	p, err := s.parcels.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, parcelNotFound(trackingID)
	}
	return p, nil
}

func (s *ParcelService) ListParcels(ctx context.Context) ([]models.Parcel, error) {
	return s.parcels.List(ctx)
}

func (s *ParcelService) ListByUser(ctx context.Context, email string) ([]models.Parcel, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, invalid("email is required")
	}
	return s.parcels.ListByUserEmail(ctx, email)
}

func (s *ParcelService) ListByStatus(ctx context.Context, status string) ([]models.Parcel, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !models.IsValidStatus(status) {
		return nil, invalid("invalid status: %s", status)
	}
	return s.parcels.ListByStatus(ctx, status)
}

func (s *ParcelService) RecentParcels(ctx context.Context) ([]models.Parcel, error) {
	return s.parcels.ListRecent(ctx, RecentParcelsLimit)
}

func (s *ParcelService) SearchParcels(ctx context.Context, term string) ([]models.Parcel, error) {
	if strings.TrimSpace(term) == "" {
		return s.parcels.List(ctx)
	}
	return s.parcels.Search(ctx, term)
}

// NeedingAttention lists in-transit parcels not updated within the stale window.
func (s *ParcelService) NeedingAttention(ctx context.Context) ([]models.Parcel, error) {
	return s.parcels.ListStale(ctx, models.StatusInTransit, s.now().Add(-s.staleAfter))
}

// UpdateParcel replaces the editable details of a parcel. The tracking ID,
// creation time and delivery attempts are kept.
func (s *ParcelService) UpdateParcel(ctx context.Context, id int64, in models.Parcel) (*models.Parcel, error) {
	cur, err := s.GetParcel(ctx, id)
	if err != nil {
		return nil, err
	}

	normalizeParcel(&in)
	if err := validateParcel(in); err != nil {
		return nil, err
	}
	newStatus := in.Status
	if newStatus == "" {
		newStatus = cur.Status
	}
	if !models.IsValidStatus(newStatus) {
		return nil, invalid("invalid status: %s", newStatus)
	}

	oldStatus := cur.Status
	in.ID = cur.ID
	in.TrackingID = cur.TrackingID
	in.CreatedAt = cur.CreatedAt
	in.DeliveryAttempts = cur.DeliveryAttempts
	in.DeliveredAt = cur.DeliveredAt
	in.Status = oldStatus

	return s.apply(ctx, in, newStatus, "Parcel details updated")
}

// UpdateStatus moves a parcel to a new status, optionally updating location and notes.
func (s *ParcelService) UpdateStatus(ctx context.Context, id int64, u StatusUpdate) (*models.Parcel, error) {
	status := strings.ToUpper(strings.TrimSpace(u.Status))
	if status == "" {
		return nil, invalid("status is required")
	}
	if !models.IsValidStatus(status) {
		return nil, invalid("invalid status: %s", status)
	}

	p, err := s.GetParcel(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc := strings.TrimSpace(u.CurrentLocation); loc != "" {
		p.CurrentLocation = loc
	}
	if notes := strings.TrimSpace(u.Notes); notes != "" {
		p.Notes = notes
	}
	return s.apply(ctx, *p, status, "Parcel details updated")
}

// apply persists p moved to newStatus and records the matching history
// event. A status change also stamps delivery time and queues notifications.
func (s *ParcelService) apply(ctx context.Context, p models.Parcel, newStatus, updateMsg string) (*models.Parcel, error) {
	now := s.now()
	oldStatus := p.Status
	changed := newStatus != oldStatus

	p.Status = newStatus
	p.UpdatedAt = now
	if changed {
		switch {
		case newStatus == models.StatusDelivered:
			p.DeliveredAt = &now
		case oldStatus == models.StatusDelivered:
			p.DeliveredAt = nil
		}
		if newStatus == models.StatusOutForDelivery {
			p.DeliveryAttempts++
		}
	}

	if err := s.parcels.Update(ctx, p); err != nil {
		return nil, err
	}

	ev := models.ParcelEvent{
		ParcelID:    p.ID,
		TrackingID:  p.TrackingID,
		OccurredAt:  now,
		Type:        models.EventUpdated,
		Location:    p.CurrentLocation,
		Description: updateMsg,
	}
	if changed {
		ev.Type = models.EventStatusChange
		ev.FromStatus = oldStatus
		ev.ToStatus = newStatus
		ev.Description = fmt.Sprintf("Status changed from %s to %s", oldStatus, newStatus)
		if p.Notes != "" {
			ev.Metadata = map[string]any{"notes": p.Notes}
		}
	}
	s.appendEvent(ctx, ev)

	if changed {
		s.notifier.StatusChanged(ctx, p, oldStatus)
		s.log.Infow("parcel_status_changed", "tracking_id", p.TrackingID, "from", oldStatus, "to", newStatus)
	}
	return &p, nil
}

func (s *ParcelService) DeleteParcel(ctx context.Context, id int64) error {
	ok, err := s.parcels.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrParcelNotFound
	}
	s.log.Infow("parcel_deleted", "parcel_id", id)
	return nil
}

func (s *ParcelService) ParcelStats(ctx context.Context) (models.ParcelStats, error) {
	counts, err := s.parcels.CountByStatus(ctx)
	if err != nil {
		return models.ParcelStats{}, err
	}
	var st models.ParcelStats
	for _, n := range counts {
		st.TotalParcels += n
	}
	st.Registered = counts[models.StatusRegistered]
	st.InTransit = counts[models.StatusInTransit]
	st.OutForDelivery = counts[models.StatusOutForDelivery]
	st.Delivered = counts[models.StatusDelivered]
	st.Returned = counts[models.StatusReturned]
	return st, nil
}

func (s *ParcelService) SendTestEmail(ctx context.Context) error {
	return s.notifier.Test(ctx)
}

// appendEvent records history; a failure is logged and does not undo the change.
func (s *ParcelService) appendEvent(ctx context.Context, ev models.ParcelEvent) {
	if err := s.events.Append(ctx, ev); err != nil {
		s.log.Errorw("parcel_event_append_failed", "tracking_id", ev.TrackingID, "type", ev.Type, "err", err)
	}
}

func normalizeParcel(p *models.Parcel) {
	trim := func(fs ...*string) {
		for _, f := range fs {
			*f = strings.TrimSpace(*f)
		}
	}
	trim(&p.SenderName, &p.SenderPhone, &p.SenderAddress,
		&p.RecipientName, &p.RecipientPhone, &p.RecipientAddress,
		&p.Description, &p.Weight, &p.Dimensions, &p.Category, &p.Value,
		&p.CurrentLocation, &p.Notes, &p.EstimatedDeliveryDate, &p.DeliveryInstructions)

	p.SenderEmail = normalizeEmail(p.SenderEmail)
	p.RecipientEmail = normalizeEmail(p.RecipientEmail)
	p.Status = strings.ToUpper(strings.TrimSpace(p.Status))
	p.Priority = strings.ToUpper(strings.TrimSpace(p.Priority))
	p.ServiceType = strings.ToUpper(strings.TrimSpace(p.ServiceType))
	p.PackageSize = strings.ToUpper(strings.TrimSpace(p.PackageSize))
	if p.Priority == "" {
		p.Priority = models.PriorityNormal
	}
	if p.ServiceType == "" {
		p.ServiceType = models.ServiceStandard
	}
}

func validateParcel(p models.Parcel) error {
	if field := firstMissing(
		"sender name", p.SenderName,
		"sender email", p.SenderEmail,
		"sender phone", p.SenderPhone,
		"sender address", p.SenderAddress,
		"recipient name", p.RecipientName,
		"recipient email", p.RecipientEmail,
		"recipient phone", p.RecipientPhone,
		"recipient address", p.RecipientAddress,
		"description", p.Description,
		"weight", p.Weight,
		"dimensions", p.Dimensions,
		"category", p.Category,
		"value", p.Value,
	); field != "" {
		return invalid("%s is required", field)
	}
	if !emailPattern.MatchString(p.SenderEmail) {
		return invalid("invalid sender email: %s", p.SenderEmail)
	}
	if !emailPattern.MatchString(p.RecipientEmail) {
		return invalid("invalid recipient email: %s", p.RecipientEmail)
	}
	if !oneOf(p.Priority, models.Priorities) {
		return invalid("invalid priority: %s", p.Priority)
	}
	if !oneOf(p.ServiceType, models.ServiceTypes) {
		return invalid("invalid service type: %s", p.ServiceType)
	}
	return nil
}

func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if a == s {
			return true
		}
	}
	return false
}
