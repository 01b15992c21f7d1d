package models

import (
	"strings"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a rating left by the sender or recipient of a delivered parcel.
type Feedback struct {
	ID         int64     `json:"id"`
	UserEmail  string    `json:"userEmail"`
	TrackingID string    `json:"trackingId"`
	ParcelID   int64     `json:"parcelId,omitempty"`
	Rating     int       `json:"rating"`
	Remarks    string    `json:"remarks,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (f Feedback) IsHighRating() bool { return f.Rating >= 4 }
func (f Feedback) IsLowRating() bool  { return f.Rating > 0 && f.Rating <= 2 }
func (f Feedback) HasRemarks() bool   { return strings.TrimSpace(f.Remarks) != "" }
