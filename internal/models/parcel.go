package models

import "time"

// Parcel lifecycle statuses.
const (
	StatusRegistered     = "REGISTERED"
	StatusInTransit      = "IN_TRANSIT"
	StatusOutForDelivery = "OUT_FOR_DELIVERY"
	StatusDelivered      = "DELIVERED"
	StatusReturned       = "RETURNED"
)

// Statuses lists every parcel status in lifecycle order.
var Statuses = []string{
	StatusRegistered,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
	StatusReturned,
}

const (
	PriorityLow    = "LOW"
	PriorityNormal = "NORMAL"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

var Priorities = []string{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}

const (
	ServiceStandard  = "STANDARD"
	ServiceExpress   = "EXPRESS"
	ServiceOvernight = "OVERNIGHT"
)

var ServiceTypes = []string{ServiceStandard, ServiceExpress, ServiceOvernight}

// Parcel is a shipment record identified by its tracking ID.
type Parcel struct {
	ID         int64  `json:"id"`
	TrackingID string `json:"trackingId"`

	SenderName    string `json:"senderName"`
	SenderEmail   string `json:"senderEmail"`
	SenderPhone   string `json:"senderPhone"`
	SenderAddress string `json:"senderAddress"`

	RecipientName    string `json:"recipientName"`
	RecipientEmail   string `json:"recipientEmail"`
	RecipientPhone   string `json:"recipientPhone"`
	RecipientAddress string `json:"recipientAddress"`

	Description string `json:"description"`
	Weight      string `json:"weight"`     // kg
	Dimensions  string `json:"dimensions"` // LxWxH cm
	Category    string `json:"category"`
	Value       string `json:"value"`

	Status          string `json:"status"` // REGISTERED | IN_TRANSIT | OUT_FOR_DELIVERY | DELIVERED | RETURNED
	CurrentLocation string `json:"currentLocation,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Priority        string `json:"priority"`    // LOW | NORMAL | HIGH | URGENT
	ServiceType     string `json:"serviceType"` // STANDARD | EXPRESS | OVERNIGHT

	EstimatedDeliveryDate string `json:"estimatedDeliveryDate,omitempty"`
	DeliveryAttempts      int    `json:"deliveryAttempts"`
	PackageSize           string `json:"packageSize,omitempty"` // SMALL | MEDIUM | LARGE | EXTRA_LARGE
	IsFragile             bool   `json:"isFragile"`
	RequiresSignature     bool   `json:"requiresSignature"`
	DeliveryInstructions  string `json:"deliveryInstructions,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

// IsValidStatus reports whether s is one of the known statuses.
func IsValidStatus(s string) bool {
	for _, st := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}

func (p Parcel) IsDelivered() bool { return p.Status == StatusDelivered }

// IsPending reports whether the parcel has not reached a final status yet.
func (p Parcel) IsPending() bool {
	switch p.Status {
	case StatusRegistered, StatusInTransit, StatusOutForDelivery:
		return true
	}
	return false
}

// InvolvesEmail reports whether email is the sender or the recipient.
func (p Parcel) InvolvesEmail(email string) bool {
	return email != "" && (email == p.SenderEmail || email == p.RecipientEmail)
}
