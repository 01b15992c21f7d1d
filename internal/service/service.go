package service

import (
	"context"
	"time"

	"parcel_tracking"
	"parcel_tracking/internal/models"
	"parcel_tracking/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*parcel_tracking.LoginResponse, error)
	ParseToken(accessToken string) (*Claims, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
}

// Users exposes account administration.
type Users interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, in UserUpdate, asAdmin bool) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// Parcels exposes parcel registration, lookup and status changes.
type Parcels interface {
	CreateParcel(ctx context.Context, p models.Parcel) (*models.Parcel, error)
	GetParcel(ctx context.Context, id int64) (*models.Parcel, error)
	Track(ctx context.Context, trackingID string) (*models.Parcel, error)
	ListParcels(ctx context.Context) ([]models.Parcel, error)
	ListByUser(ctx context.Context, email string) ([]models.Parcel, error)
	ListByStatus(ctx context.Context, status string) ([]models.Parcel, error)
	RecentParcels(ctx context.Context) ([]models.Parcel, error)
	SearchParcels(ctx context.Context, term string) ([]models.Parcel, error)
	NeedingAttention(ctx context.Context) ([]models.Parcel, error)
	UpdateParcel(ctx context.Context, id int64, p models.Parcel) (*models.Parcel, error)
	UpdateStatus(ctx context.Context, id int64, u StatusUpdate) (*models.Parcel, error)
	DeleteParcel(ctx context.Context, id int64) error
	ParcelStats(ctx context.Context) (models.ParcelStats, error)
	SendTestEmail(ctx context.Context) error
}

// History exposes a parcel's append-only tracking events.
type History interface {
	ListHistory(ctx context.Context, trackingID string, f HistoryFilter) ([]models.ParcelEvent, error)
}

type Feedback interface {
	SubmitFeedback(ctx context.Context, f models.Feedback) (*models.Feedback, error)
	Eligibility(ctx context.Context, trackingID, userEmail string) (parcel_tracking.FeedbackEligibility, error)
	FeedbackByParcel(ctx context.Context, trackingID string) ([]models.Feedback, error)
	FeedbackByUser(ctx context.Context, email string) ([]models.Feedback, error)
	RecentFeedback(ctx context.Context) ([]models.Feedback, error)
	FeedbackStats(ctx context.Context) (models.FeedbackStats, error)
	DeleteFeedback(ctx context.Context, id int64) error
}

type Support interface {
	SubmitSupport(ctx context.Context, r models.SupportRequest) (*models.SupportRequest, error)
	ListSupport(ctx context.Context) ([]models.SupportRequest, error)
	SupportByEmail(ctx context.Context, email string) ([]models.SupportRequest, error)
	UpdateSupportStatus(ctx context.Context, id int64, status, adminResponse string) (*models.SupportRequest, error)
	SupportStats(ctx context.Context) (models.SupportStats, error)
}

// Watcher runs the background loop that flags stale in-transit parcels.
// Stop via context cancellation in main() for graceful shutdown.
type Watcher interface {
	Run(ctx context.Context, tick time.Duration)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Users
	Parcels
	History
	Feedback
	Support
	Watcher
}

// NewService wires the repository layer and notifier into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	notifier := NewNotifier(opts.Queue, opts.Admin.Email, opts.Log)
	return &Service{
		Authorization: NewAuthService(repos.Users, opts.SigningKey, opts.TokenTTL, opts.Admin),
		Users:         NewUserService(repos.Users, opts.Admin.Email),
		Parcels:       NewParcelService(repos.Parcels, repos.Events, notifier, opts.StaleAfter, opts.Log),
		History:       NewHistoryService(repos.Events),
		Feedback:      NewFeedbackService(repos.Feedback, repos.Parcels, notifier, opts.Log),
		Support:       NewSupportService(repos.Support, notifier, opts.Log),
		Watcher:       NewWatcherService(repos.Parcels, repos.Events, opts.StaleAfter, opts.Log),
	}
}
