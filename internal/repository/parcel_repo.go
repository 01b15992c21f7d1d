package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"parcel_tracking/internal/models"
)

type ParcelSQLite struct {
	db *sql.DB
}

func NewParcelSQLite(db *sql.DB) *ParcelSQLite {
	return &ParcelSQLite{db: db}
}

var _ ParcelRepo = (*ParcelSQLite)(nil)

const (
	parcelColumns = `id, tracking_id,
		sender_name, sender_email, sender_phone, sender_address,
		recipient_name, recipient_email, recipient_phone, recipient_address,
		description, weight, dimensions, category, value,
		status, current_location, notes, priority, service_type,
		estimated_delivery_date, delivery_attempts, package_size, is_fragile, requires_signature, delivery_instructions,
		created_at, updated_at, delivered_at`

	selectParcelsSQL = `SELECT ` + parcelColumns + ` FROM parcels`

	insertParcelSQL = `
		INSERT INTO parcels (tracking_id,
			sender_name, sender_email, sender_phone, sender_address,
			recipient_name, recipient_email, recipient_phone, recipient_address,
			description, weight, dimensions, category, value,
			status, current_location, notes, priority, service_type,
			estimated_delivery_date, delivery_attempts, package_size, is_fragile, requires_signature, delivery_instructions,
			created_at, updated_at, delivered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	updateParcelSQL = `
		UPDATE parcels SET
			sender_name = ?, sender_email = ?, sender_phone = ?, sender_address = ?,
			recipient_name = ?, recipient_email = ?, recipient_phone = ?, recipient_address = ?,
			description = ?, weight = ?, dimensions = ?, category = ?, value = ?,
			status = ?, current_location = ?, notes = ?, priority = ?, service_type = ?,
			estimated_delivery_date = ?, delivery_attempts = ?, package_size = ?, is_fragile = ?,
			requires_signature = ?, delivery_instructions = ?,
			updated_at = ?, delivered_at = ?
		WHERE id = ?
	`

	deleteParcelSQL = `DELETE FROM parcels WHERE id = ?`

	countParcelsByStatusSQL = `SELECT status, COUNT(*) FROM parcels GROUP BY status`

	searchParcelsWhere = ` WHERE LOWER(tracking_id) LIKE ?
		OR LOWER(sender_name) LIKE ?
		OR LOWER(recipient_name) LIKE ?
		OR LOWER(sender_email) LIKE ?
		OR LOWER(recipient_email) LIKE ?
		OR LOWER(description) LIKE ?
		OR LOWER(COALESCE(current_location, '')) LIKE ?`

	orderNewestFirst = ` ORDER BY created_at DESC, id DESC`
)

// Create inserts a parcel and returns its ID. Timestamps default to now (UTC).
func (r *ParcelSQLite) Create(ctx context.Context, p models.Parcel) (int64, error) {
	created := utcOrNow(p.CreatedAt)
	updated := p.UpdatedAt
	if updated.IsZero() {
		updated = created
	}
	res, err := r.db.ExecContext(ctx, insertParcelSQL,
		p.TrackingID,
		p.SenderName, p.SenderEmail, p.SenderPhone, p.SenderAddress,
		p.RecipientName, p.RecipientEmail, p.RecipientPhone, p.RecipientAddress,
		p.Description, p.Weight, p.Dimensions, p.Category, p.Value,
		p.Status, nullString(p.CurrentLocation), nullString(p.Notes), p.Priority, p.ServiceType,
		nullString(p.EstimatedDeliveryDate), p.DeliveryAttempts, nullString(p.PackageSize), p.IsFragile, p.RequiresSignature,
		nullString(p.DeliveryInstructions),
		created, updated.UTC(), nullTime(p.DeliveredAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert parcel %q: %w", p.TrackingID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for parcel %q: %w", p.TrackingID, err)
	}
	return id, nil
}

// GetByID returns (nil, nil) when the parcel does not exist.
func (r *ParcelSQLite) GetByID(ctx context.Context, id int64) (*models.Parcel, error) {
	p, err := scanParcel(r.db.QueryRowContext(ctx, selectParcelsSQL+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select parcel %d: %w", id, err)
	}
	return p, nil
}

// GetByTrackingID returns (nil, nil) when the parcel does not exist.
func (r *ParcelSQLite) GetByTrackingID(ctx context.Context, trackingID string) (*models.Parcel, error) {
	p, err := scanParcel(r.db.QueryRowContext(ctx, selectParcelsSQL+` WHERE tracking_id = ?`, trackingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select parcel %q: %w", trackingID, err)
	}
	return p, nil
}

func (r *ParcelSQLite) List(ctx context.Context) ([]models.Parcel, error) {
	return r.query(ctx, selectParcelsSQL+orderNewestFirst)
}

// ListByUserEmail returns parcels where email is the sender or the recipient.
func (r *ParcelSQLite) ListByUserEmail(ctx context.Context, email string) ([]models.Parcel, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.query(ctx, selectParcelsSQL+` WHERE sender_email = ? OR recipient_email = ?`+orderNewestFirst, email, email)
}

func (r *ParcelSQLite) ListByStatus(ctx context.Context, status string) ([]models.Parcel, error) {
	return r.query(ctx, selectParcelsSQL+` WHERE status = ?`+orderNewestFirst, status)
}

func (r *ParcelSQLite) ListRecent(ctx context.Context, limit int) ([]models.Parcel, error) {
	return r.query(ctx, selectParcelsSQL+orderNewestFirst+` LIMIT ?`, limit)
}

// ListStale returns parcels in status whose last update is before cutoff, oldest first.
func (r *ParcelSQLite) ListStale(ctx context.Context, status string, cutoff time.Time) ([]models.Parcel, error) {
	return r.query(ctx, selectParcelsSQL+` WHERE status = ? AND updated_at < ? ORDER BY updated_at ASC`, status, cutoff.UTC())
}

// Search matches term case-insensitively against ids, names, e-mails, description and location.
func (r *ParcelSQLite) Search(ctx context.Context, term string) ([]models.Parcel, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	args := make([]any, 7)
	for i := range args {
		args[i] = pattern
	}
	return r.query(ctx, selectParcelsSQL+searchParcelsWhere+orderNewestFirst, args...)
}

func (r *ParcelSQLite) Update(ctx context.Context, p models.Parcel) error {
	_, err := r.db.ExecContext(ctx, updateParcelSQL,
		p.SenderName, p.SenderEmail, p.SenderPhone, p.SenderAddress,
		p.RecipientName, p.RecipientEmail, p.RecipientPhone, p.RecipientAddress,
		p.Description, p.Weight, p.Dimensions, p.Category, p.Value,
		p.Status, nullString(p.CurrentLocation), nullString(p.Notes), p.Priority, p.ServiceType,
		nullString(p.EstimatedDeliveryDate), p.DeliveryAttempts, nullString(p.PackageSize), p.IsFragile,
		p.RequiresSignature, nullString(p.DeliveryInstructions),
		utcOrNow(p.UpdatedAt), nullTime(p.DeliveredAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update parcel %d: %w", p.ID, err)
	}
	return nil
}

// Delete removes a parcel (history and feedback cascade) and reports whether it existed.
func (r *ParcelSQLite) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteParcelSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete parcel %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for parcel %d: %w", id, err)
	}
	return n > 0, nil
}

func (r *ParcelSQLite) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, countParcelsByStatusSQL)
	if err != nil {
		return nil, fmt.Errorf("count parcels by status: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int64, len(models.Statuses))
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan parcel count: %w", err)
		}
		out[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ParcelSQLite) query(ctx context.Context, q string, args ...any) ([]models.Parcel, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query parcels: %w", err)
	}
	defer rows.Close()

	out := make([]models.Parcel, 0, 32)
	for rows.Next() {
		p, err := scanParcel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan parcel: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanParcel(s rowScanner) (*models.Parcel, error) {
	var (
		p                                        models.Parcel
		location, notes, eta, size, instructions sql.NullString
		deliveredAt                              sql.NullTime
	)
	if err := s.Scan(
		&p.ID, &p.TrackingID,
		&p.SenderName, &p.SenderEmail, &p.SenderPhone, &p.SenderAddress,
		&p.RecipientName, &p.RecipientEmail, &p.RecipientPhone, &p.RecipientAddress,
		&p.Description, &p.Weight, &p.Dimensions, &p.Category, &p.Value,
		&p.Status, &location, &notes, &p.Priority, &p.ServiceType,
		&eta, &p.DeliveryAttempts, &size, &p.IsFragile, &p.RequiresSignature, &instructions,
		&p.CreatedAt, &p.UpdatedAt, &deliveredAt,
	); err != nil {
		return nil, err
	}
	p.CurrentLocation = location.String
	p.Notes = notes.String
	p.EstimatedDeliveryDate = eta.String
	p.PackageSize = size.String
	p.DeliveryInstructions = instructions.String
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	p.DeliveredAt = timePtr(deliveredAt)
	return &p, nil
}
