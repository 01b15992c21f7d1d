package parcel_tracking

import (
	"time"

	"parcel_tracking/internal/models"
)

// MessageResponse is the body of plain successful mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse carries the profile the console keeps after login.
type LoginResponse struct {
	ID        int64  `json:"id,omitempty"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Name      string `json:"name"`
	Role      string `json:"role"` // USER | ADMIN
	Token     string `json:"token"`
}

// ParcelCreatedResponse is returned by POST /api/parcels/add.
type ParcelCreatedResponse struct {
	Message     string        `json:"message"`
	TrackingID  string        `json:"trackingId"`
	Parcel      models.Parcel `json:"parcel"`
	EmailStatus string        `json:"emailStatus"`
}

// FeedbackSubmittedResponse is returned by POST /api/feedback/submit.
type FeedbackSubmittedResponse struct {
	Message    string    `json:"message"`
	FeedbackID int64     `json:"feedbackId"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// FeedbackEligibility answers whether a user may rate a parcel.
type FeedbackEligibility struct {
	CanGiveFeedback  bool   `json:"canGiveFeedback"`
	Reason           string `json:"reason"`
	ExistingFeedback bool   `json:"existingFeedback,omitempty"`
}

// EventsResponse wraps a parcel's tracking history.
type EventsResponse struct {
	Count  int                  `json:"count"`
	Events []models.ParcelEvent `json:"events"`
}

// StatusUpdateRequest is the body of PUT /api/parcels/status/:id.
type StatusUpdateRequest struct {
	Status          string `json:"status" binding:"required"`
	CurrentLocation string `json:"currentLocation,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// SupportStatusRequest is the body of PUT /api/support/admin/:id/status.
type SupportStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	AdminResponse string `json:"adminResponse,omitempty"`
}

// WSEnvelope is a single websocket frame of the tracking stream.
type WSEnvelope struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}
