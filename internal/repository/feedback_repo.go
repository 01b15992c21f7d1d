package repository

import (
	"context"
	"database/sql"
	"fmt"

	"parcel_tracking/internal/models"
)

type FeedbackSQLite struct {
	db *sql.DB
}

func NewFeedbackSQLite(db *sql.DB) *FeedbackSQLite {
	return &FeedbackSQLite{db: db}
}

var _ FeedbackRepo = (*FeedbackSQLite)(nil)

const (
	feedbackColumns = `id, user_email, tracking_id, parcel_id, rating, remarks, created_at`

	insertFeedbackSQL   = `INSERT INTO parcel_feedback (user_email, tracking_id, parcel_id, rating, remarks, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	existsFeedbackSQL   = `SELECT EXISTS(SELECT 1 FROM parcel_feedback WHERE user_email = ? AND tracking_id = ?)`
	selectFeedbackSQL   = `SELECT ` + feedbackColumns + ` FROM parcel_feedback`
	countFeedbackSQL    = `SELECT rating, COUNT(*) FROM parcel_feedback GROUP BY rating`
	deleteFeedbackSQL   = `DELETE FROM parcel_feedback WHERE id = ?`
	feedbackNewestFirst = ` ORDER BY created_at DESC, id DESC`
)

func (r *FeedbackSQLite) Create(ctx context.Context, f models.Feedback) (int64, error) {
	var parcelID sql.NullInt64
	if f.ParcelID > 0 {
		parcelID = sql.NullInt64{Int64: f.ParcelID, Valid: true}
	}
	res, err := r.db.ExecContext(ctx, insertFeedbackSQL,
		f.UserEmail, f.TrackingID, parcelID, f.Rating, nullString(f.Remarks), utcOrNow(f.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("insert feedback for %q by %q: %w", f.TrackingID, f.UserEmail, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for feedback: %w", err)
	}
	return id, nil
}

// Exists reports whether userEmail already rated trackingID.
func (r *FeedbackSQLite) Exists(ctx context.Context, userEmail, trackingID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsFeedbackSQL, userEmail, trackingID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check feedback for %q by %q: %w", trackingID, userEmail, err)
	}
	return exists, nil
}

func (r *FeedbackSQLite) ListByTrackingID(ctx context.Context, trackingID string) ([]models.Feedback, error) {
	return r.query(ctx, selectFeedbackSQL+` WHERE tracking_id = ?`+feedbackNewestFirst, trackingID)
}

func (r *FeedbackSQLite) ListByUserEmail(ctx context.Context, email string) ([]models.Feedback, error) {
	return r.query(ctx, selectFeedbackSQL+` WHERE user_email = ?`+feedbackNewestFirst, email)
}

func (r *FeedbackSQLite) ListRecent(ctx context.Context, limit int) ([]models.Feedback, error) {
	return r.query(ctx, selectFeedbackSQL+feedbackNewestFirst+` LIMIT ?`, limit)
}

// CountByRating returns the number of feedback rows per rating value.
func (r *FeedbackSQLite) CountByRating(ctx context.Context) (map[int]int64, error) {
	rows, err := r.db.QueryContext(ctx, countFeedbackSQL)
	if err != nil {
		return nil, fmt.Errorf("count feedback by rating: %w", err)
	}
	defer rows.Close()

	out := make(map[int]int64, models.MaxRating)
	for rows.Next() {
		var (
			rating int
			n      int64
		)
		if err := rows.Scan(&rating, &n); err != nil {
			return nil, fmt.Errorf("scan feedback count: %w", err)
		}
		out[rating] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FeedbackSQLite) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteFeedbackSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete feedback %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for feedback %d: %w", id, err)
	}
	return n > 0, nil
}

func (r *FeedbackSQLite) query(ctx context.Context, q string, args ...any) ([]models.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}
	defer rows.Close()

	out := make([]models.Feedback, 0, 16)
	for rows.Next() {
		var (
			f        models.Feedback
			parcelID sql.NullInt64
			remarks  sql.NullString
		)
		if err := rows.Scan(&f.ID, &f.UserEmail, &f.TrackingID, &parcelID, &f.Rating, &remarks, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		f.ParcelID = parcelID.Int64
		f.Remarks = remarks.String
		f.CreatedAt = f.CreatedAt.UTC()
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
