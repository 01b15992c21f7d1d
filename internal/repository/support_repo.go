package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"parcel_tracking/internal/models"
)

type SupportSQLite struct {
	db *sql.DB
}

func NewSupportSQLite(db *sql.DB) *SupportSQLite {
	return &SupportSQLite{db: db}
}

var _ SupportRepo = (*SupportSQLite)(nil)

const (
	supportColumns = `id, name, email, phone, subject, message, issue_type, priority, tracking_id, status, admin_response, created_at, resolved_at`

	insertSupportSQL = `
		INSERT INTO support_requests (name, email, phone, subject, message, issue_type, priority, tracking_id, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	selectSupportSQL       = `SELECT ` + supportColumns + ` FROM support_requests`
	updateSupportStatusSQL = `UPDATE support_requests SET status = ?, admin_response = ?, resolved_at = ? WHERE id = ?`
	countSupportSQL        = `SELECT status, COUNT(*) FROM support_requests GROUP BY status`
	supportNewestFirst     = ` ORDER BY created_at DESC, id DESC`
)

func (r *SupportSQLite) Create(ctx context.Context, s models.SupportRequest) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertSupportSQL,
		s.Name, s.Email, nullString(s.Phone), nullString(s.Subject), s.Message,
		nullString(s.IssueType), nullString(s.Priority), nullString(s.TrackingID), s.Status, utcOrNow(s.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("insert support request from %q: %w", s.Email, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for support request: %w", err)
	}
	return id, nil
}

// GetByID returns (nil, nil) when the request does not exist.
func (r *SupportSQLite) GetByID(ctx context.Context, id int64) (*models.SupportRequest, error) {
	s, err := scanSupport(r.db.QueryRowContext(ctx, selectSupportSQL+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select support request %d: %w", id, err)
	}
	return s, nil
}

func (r *SupportSQLite) List(ctx context.Context) ([]models.SupportRequest, error) {
	return r.query(ctx, selectSupportSQL+supportNewestFirst)
}

func (r *SupportSQLite) ListByEmail(ctx context.Context, email string) ([]models.SupportRequest, error) {
	return r.query(ctx, selectSupportSQL+` WHERE email = ?`+supportNewestFirst, email)
}

// UpdateStatus persists status, admin response and resolution time.
func (r *SupportSQLite) UpdateStatus(ctx context.Context, s models.SupportRequest) error {
	if _, err := r.db.ExecContext(ctx, updateSupportStatusSQL,
		s.Status, nullString(s.AdminResponse), nullTime(s.ResolvedAt), s.ID); err != nil {
		return fmt.Errorf("update support request %d: %w", s.ID, err)
	}
	return nil
}

func (r *SupportSQLite) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, countSupportSQL)
	if err != nil {
		return nil, fmt.Errorf("count support requests: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int64, len(models.SupportStatuses))
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan support count: %w", err)
		}
		out[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SupportSQLite) query(ctx context.Context, q string, args ...any) ([]models.SupportRequest, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query support requests: %w", err)
	}
	defer rows.Close()

	out := make([]models.SupportRequest, 0, 16)
	for rows.Next() {
		s, err := scanSupport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan support request: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSupport(row rowScanner) (*models.SupportRequest, error) {
	var (
		s                                                     models.SupportRequest
		phone, subject, issueType, priority, trackingID, resp sql.NullString
		resolvedAt                                            sql.NullTime
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &phone, &subject, &s.Message, &issueType, &priority,
		&trackingID, &s.Status, &resp, &s.CreatedAt, &resolvedAt); err != nil {
		return nil, err
	}
	s.Phone = phone.String
	s.Subject = subject.String
	s.IssueType = issueType.String
	s.Priority = priority.String
	s.TrackingID = trackingID.String
	s.AdminResponse = resp.String
	s.CreatedAt = s.CreatedAt.UTC()
	s.ResolvedAt = timePtr(resolvedAt)
	return &s, nil
}
