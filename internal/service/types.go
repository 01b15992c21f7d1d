package service

import (
	"time"

	"parcel_tracking/internal/config"
	"parcel_tracking/internal/logger"
	"parcel_tracking/internal/queue"
)

// Options carries the configuration and collaborators services need.
type Options struct {
	SigningKey string
	TokenTTL   time.Duration
	Admin      config.AdminConfig
	StaleAfter time.Duration
	Queue      queue.Queue // nil disables notifications
	Log        *logger.Logger
}

// HistoryFilter narrows a parcel's history by time range and event type.
type HistoryFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "REGISTERED", "STATUS_CHANGE", "UPDATED", "ATTENTION"
}

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
}

// UserUpdate replaces a user's profile. An empty Password keeps the current one.
type UserUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
}

type StatusUpdate struct {
	Status          string
	CurrentLocation string
	Notes           string
}

// Recent list sizes.
const (
	RecentParcelsLimit  = 10
	RecentFeedbackLimit = 20
)
