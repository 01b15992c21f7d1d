package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"parcel_tracking/internal/models"

	"github.com/google/uuid"
)

type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

var _ EventRepo = (*EventSQLite)(nil)

const insertEventSQL = `
		INSERT INTO parcel_events (id, parcel_id, tracking_id, occurred_at, type, from_status, to_status, location, message, meta)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

// Append inserts a new event. If EventID or OccurredAt are empty, they’re set.
func (r *EventSQLite) Append(ctx context.Context, e models.ParcelEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}

	var metaPtr *string
	if e.Metadata != nil {
		b, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("encode metadata of %s event for parcel %q: %w", e.Type, e.TrackingID, err)
		}
		s := string(b)
		metaPtr = &s
	}

	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EventID,
		e.ParcelID,
		e.TrackingID,
		utcOrNow(e.OccurredAt),
		strings.ToUpper(strings.TrimSpace(e.Type)),
		nullString(e.FromStatus),
		nullString(e.ToStatus),
		nullString(e.Location),
		e.Description,
		metaPtr,
	)
	if err != nil {
		return fmt.Errorf("insert event for parcel %q: %w", e.TrackingID, err)
	}
	return nil
}

// List returns a parcel's events filtered by [from, to] (inclusive) and/or type, ordered ASC.
func (r *EventSQLite) List(ctx context.Context, trackingID string, from, to time.Time, typ string) ([]models.ParcelEvent, error) {
	conds := []string{"tracking_id = ?"}
	args := []any{trackingID}

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := `SELECT id, parcel_id, tracking_id, occurred_at, type, from_status, to_status, location, message, meta FROM parcel_events`
	q += " WHERE " + strings.Join(conds, " AND ")
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query events for parcel %q: %w", trackingID, err)
	}
	defer rows.Close()

	out := make([]models.ParcelEvent, 0, 16)
	for rows.Next() {
		var (
			ev                         models.ParcelEvent
			fromSt, toSt, loc, metaStr sql.NullString
		)
		if err := rows.Scan(&ev.EventID, &ev.ParcelID, &ev.TrackingID, &ev.OccurredAt, &ev.Type,
			&fromSt, &toSt, &loc, &ev.Description, &metaStr); err != nil {
			return nil, fmt.Errorf("scan event for parcel %q: %w", trackingID, err)
		}
		ev.OccurredAt = ev.OccurredAt.UTC()
		ev.FromStatus = fromSt.String
		ev.ToStatus = toSt.String
		ev.Location = loc.String

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				ev.Metadata = v
			} else {
				ev.Metadata = metaStr.String // keep raw if malformed
			}
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events for parcel %q: %w", trackingID, err)
	}
	return out, nil
}
