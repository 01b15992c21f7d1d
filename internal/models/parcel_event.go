package models

import "time"

// History event types.
const (
	EventRegistered   = "REGISTERED"
	EventStatusChange = "STATUS_CHANGE"
	EventUpdated      = "UPDATED"
	EventAttention    = "ATTENTION"
)

// EventTypes lists every history event type in lifecycle order.
var EventTypes = []string{EventRegistered, EventStatusChange, EventUpdated, EventAttention}

// IsValidEventType reports whether s is one of EventTypes.
func IsValidEventType(s string) bool {
	for _, t := range EventTypes {
		if s == t {
			return true
		}
	}
	return false
}

// ParcelEvent is a single entry in a parcel's tracking history.
type ParcelEvent struct {
	EventID     string    `json:"eventId"`
	ParcelID    int64     `json:"parcelId"`
	TrackingID  string    `json:"trackingId"`
	OccurredAt  time.Time `json:"occurredAt"`
	Type        string    `json:"type"` // REGISTERED | STATUS_CHANGE | UPDATED | ATTENTION
	FromStatus  string    `json:"fromStatus,omitempty"`
	ToStatus    string    `json:"toStatus,omitempty"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}
