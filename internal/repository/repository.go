package repository

import (
	"context"
	"database/sql"
	"time"

	"parcel_tracking/internal/models"
)

type UserRepo interface {
	Create(ctx context.Context, u models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u models.User) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type ParcelRepo interface {
	Create(ctx context.Context, p models.Parcel) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Parcel, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*models.Parcel, error)
	List(ctx context.Context) ([]models.Parcel, error)
	ListByUserEmail(ctx context.Context, email string) ([]models.Parcel, error)
	ListByStatus(ctx context.Context, status string) ([]models.Parcel, error)
	ListRecent(ctx context.Context, limit int) ([]models.Parcel, error)
	ListStale(ctx context.Context, status string, cutoff time.Time) ([]models.Parcel, error)
	Search(ctx context.Context, term string) ([]models.Parcel, error)
	Update(ctx context.Context, p models.Parcel) error
	Delete(ctx context.Context, id int64) (bool, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.ParcelEvent) error
	List(ctx context.Context, trackingID string, from, to time.Time, typ string) ([]models.ParcelEvent, error)
}

type FeedbackRepo interface {
	Create(ctx context.Context, f models.Feedback) (int64, error)
	Exists(ctx context.Context, userEmail, trackingID string) (bool, error)
	ListByTrackingID(ctx context.Context, trackingID string) ([]models.Feedback, error)
	ListByUserEmail(ctx context.Context, email string) ([]models.Feedback, error)
	ListRecent(ctx context.Context, limit int) ([]models.Feedback, error)
	CountByRating(ctx context.Context) (map[int]int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type SupportRepo interface {
	Create(ctx context.Context, r models.SupportRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.SupportRequest, error)
	List(ctx context.Context) ([]models.SupportRequest, error)
	ListByEmail(ctx context.Context, email string) ([]models.SupportRequest, error)
	UpdateStatus(ctx context.Context, r models.SupportRequest) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type Repository struct {
	Users    UserRepo
	Parcels  ParcelRepo
	Events   EventRepo
	Feedback FeedbackRepo
	Support  SupportRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Parcels:  NewParcelSQLite(db),
		Events:   NewEventSQLite(db),
		Feedback: NewFeedbackSQLite(db),
		Support:  NewSupportSQLite(db),
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// nullString stores empty strings as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// nullTime stores nil times as NULL and normalises the rest to UTC.
func nullTime(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

// timePtr converts a scanned NullTime back to an optional UTC time.
func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}

// utcOrNow returns t in UTC, or the current UTC time when t is zero.
func utcOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
