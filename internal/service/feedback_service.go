package service

import (
	"context"
	"strings"
	"time"

	"parcel_tracking"
	"parcel_tracking/internal/logger"
	"parcel_tracking/internal/models"
	"parcel_tracking/internal/repository"
)

// Eligibility reasons.
const (
	reasonParcelNotFound  = "Parcel not found"
	reasonNotDelivered    = "Parcel is not delivered yet"
	reasonNotAuthorized   = "Not authorized"
	reasonAlreadySent     = "Feedback already submitted"
	reasonCanGiveFeedback = "Can submit feedback"
)

type FeedbackService struct {
	feedback repository.FeedbackRepo
	parcels  repository.ParcelRepo
	notifier *Notifier
	log      *logger.Logger
	now      func() time.Time
}

func NewFeedbackService(feedback repository.FeedbackRepo, parcels repository.ParcelRepo, notifier *Notifier, log *logger.Logger) *FeedbackService {
	return &FeedbackService{
		feedback: feedback,
		parcels:  parcels,
		notifier: notifier,
		log:      logger.OrNop(log),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

var _ Feedback = (*FeedbackService)(nil)

// SubmitFeedback stores a rating. Checks run in order: e-mail, tracking ID,
// rating range, parcel exists, parcel delivered, caller involved, not yet rated.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, f models.Feedback) (*models.Feedback, error) {
	f.UserEmail = normalizeEmail(f.UserEmail)
	f.TrackingID = strings.TrimSpace(f.TrackingID)
	f.Remarks = strings.TrimSpace(f.Remarks)

	switch {
	case f.UserEmail == "":
		return nil, invalid("User email is required")
	case f.TrackingID == "":
		return nil, invalid("Tracking ID is required")
	case f.Rating < models.MinRating || f.Rating > models.MaxRating:
		return nil, invalid("Rating must be between %d and %d", models.MinRating, models.MaxRating)
	}

	p, err := s.parcels.GetByTrackingID(ctx, f.TrackingID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, invalid("Parcel not found with this tracking ID")
	}
	if !p.IsDelivered() {
		return nil, invalid("Feedback can only be submitted for delivered parcels")
	}
	if !p.InvolvesEmail(f.UserEmail) {
		return nil, invalid("You are not authorized to give feedback for this parcel")
	}
	exists, err := s.feedback.Exists(ctx, f.UserEmail, f.TrackingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, invalid("You have already submitted feedback for this parcel")
	}

	f.ParcelID = p.ID
	f.CreatedAt = s.now()
	id, err := s.feedback.Create(ctx, f)
	if err != nil {
		return nil, err
	}
	f.ID = id

	s.notifier.FeedbackReceived(ctx, f)
	s.log.Infow("feedback_submitted", "tracking_id", f.TrackingID, "rating", f.Rating)
	return &f, nil
}

// Eligibility answers whether userEmail may rate the parcel, using the same rules as SubmitFeedback.
func (s *FeedbackService) Eligibility(ctx context.Context, trackingID, userEmail string) (parcel_tracking.FeedbackEligibility, error) {
	userEmail = normalizeEmail(userEmail)
	trackingID = strings.TrimSpace(trackingID)

	p, err := s.parcels.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return parcel_tracking.FeedbackEligibility{}, err
	}
	switch {
	case p == nil:
		return parcel_tracking.FeedbackEligibility{Reason: reasonParcelNotFound}, nil
	case !p.IsDelivered():
		return parcel_tracking.FeedbackEligibility{Reason: reasonNotDelivered}, nil
	case !p.InvolvesEmail(userEmail):
		return parcel_tracking.FeedbackEligibility{Reason: reasonNotAuthorized}, nil
	}

	exists, err := s.feedback.Exists(ctx, userEmail, trackingID)
	if err != nil {
		return parcel_tracking.FeedbackEligibility{}, err
	}
	if exists {
		return parcel_tracking.FeedbackEligibility{Reason: reasonAlreadySent, ExistingFeedback: true}, nil
	}
	return parcel_tracking.FeedbackEligibility{CanGiveFeedback: true, Reason: reasonCanGiveFeedback}, nil
}

func (s *FeedbackService) FeedbackByParcel(ctx context.Context, trackingID string) ([]models.Feedback, error) {
	return s.feedback.ListByTrackingID(ctx, strings.TrimSpace(trackingID))
}

func (s *FeedbackService) FeedbackByUser(ctx context.Context, email string) ([]models.Feedback, error) {
	return s.feedback.ListByUserEmail(ctx, normalizeEmail(email))
}

func (s *FeedbackService) RecentFeedback(ctx context.Context) ([]models.Feedback, error) {
	return s.feedback.ListRecent(ctx, RecentFeedbackLimit)
}

func (s *FeedbackService) FeedbackStats(ctx context.Context) (models.FeedbackStats, error) {
	counts, err := s.feedback.CountByRating(ctx)
	if err != nil {
		return models.FeedbackStats{}, err
	}
	st := models.FeedbackStats{
		Rating1Count: counts[1],
		Rating2Count: counts[2],
		Rating3Count: counts[3],
		Rating4Count: counts[4],
		Rating5Count: counts[5],
	}
	var sum int64
	for rating, n := range counts {
		st.TotalFeedback += n
		sum += int64(rating) * n
	}
	st.LowRatingCount = st.Rating1Count + st.Rating2Count
	st.HighRatingCount = st.Rating4Count + st.Rating5Count
	if st.TotalFeedback > 0 {
		st.AverageRating = float64(sum) / float64(st.TotalFeedback)
	}
	return st, nil
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, id int64) error {
	ok, err := s.feedback.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFeedbackNotFound
	}
	return nil
}
