package service

import (
	"context"
	"strings"
	"time"

	"parcel_tracking/internal/logger"
	"parcel_tracking/internal/models"
	"parcel_tracking/internal/repository"
)

type SupportService struct {
	support  repository.SupportRepo
	notifier *Notifier
	log      *logger.Logger
	now      func() time.Time
}

func NewSupportService(support repository.SupportRepo, notifier *Notifier, log *logger.Logger) *SupportService {
	return &SupportService{
		support:  support,
		notifier: notifier,
		log:      logger.OrNop(log),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

var _ Support = (*SupportService)(nil)

// SubmitSupport stores a request as OPEN and queues the admin mail and the user confirmation.
func (s *SupportService) SubmitSupport(ctx context.Context, r models.SupportRequest) (*models.SupportRequest, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
	r.TrackingID = strings.TrimSpace(r.TrackingID)
	r.IssueType = strings.ToUpper(strings.TrimSpace(r.IssueType))
	r.Priority = strings.ToUpper(strings.TrimSpace(r.Priority))

	switch {
	case r.Name == "":
		return nil, invalid("Name is required")
	case r.Email == "":
		return nil, invalid("Email is required")
	case !emailPattern.MatchString(r.Email):
		return nil, invalid("Invalid email format")
	case r.Message == "":
		return nil, invalid("Message is required")
	}
	if r.IssueType == "" {
		r.IssueType = models.DefaultIssueType
	}
	if r.Priority == "" {
		r.Priority = models.DefaultSupportPriority
	}
	r.Status = models.SupportOpen
	r.AdminResponse = ""
	r.ResolvedAt = nil
	r.CreatedAt = s.now()

	id, err := s.support.Create(ctx, r)
	if err != nil {
		return nil, err
	}
	r.ID = id

	s.notifier.SupportReceived(ctx, r)
	s.log.Infow("support_request_submitted", "support_id", r.ID, "priority", r.Priority)
	return &r, nil
}

func (s *SupportService) ListSupport(ctx context.Context) ([]models.SupportRequest, error) {
	return s.support.List(ctx)
}

func (s *SupportService) SupportByEmail(ctx context.Context, email string) ([]models.SupportRequest, error) {
	return s.support.ListByEmail(ctx, normalizeEmail(email))
}

// UpdateSupportStatus sets the status and optional admin response.
// RESOLVED and CLOSED stamp the resolution time.
func (s *SupportService) UpdateSupportStatus(ctx context.Context, id int64, status, adminResponse string) (*models.SupportRequest, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !models.IsValidSupportStatus(status) {
		return nil, invalid("invalid support status: %s", status)
	}

	r, err := s.support.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrSupportNotFound
	}

	r.Status = status
	if resp := strings.TrimSpace(adminResponse); resp != "" {
		r.AdminResponse = resp
	}
	if models.IsClosing(status) {
		now := s.now()
		r.ResolvedAt = &now
	}

	if err := s.support.UpdateStatus(ctx, *r); err != nil {
		return nil, err
	}
	s.log.Infow("support_status_updated", "support_id", r.ID, "status", r.Status)
	return r, nil
}

func (s *SupportService) SupportStats(ctx context.Context) (models.SupportStats, error) {
	counts, err := s.support.CountByStatus(ctx)
	if err != nil {
		return models.SupportStats{}, err
	}
	st := models.SupportStats{
		Open:       counts[models.SupportOpen],
		InProgress: counts[models.SupportInProgress],
		Resolved:   counts[models.SupportResolved],
		Closed:     counts[models.SupportClosed],
	}
	for _, n := range counts {
		st.Total += n
	}
	return st, nil
}
