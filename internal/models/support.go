package models

import "time"

// Support request statuses.
const (
	SupportOpen       = "OPEN"
	SupportInProgress = "IN_PROGRESS"
	SupportResolved   = "RESOLVED"
	SupportClosed     = "CLOSED"
)

var SupportStatuses = []string{SupportOpen, SupportInProgress, SupportResolved, SupportClosed}

const (
	DefaultIssueType       = "GENERAL"
	DefaultSupportPriority = "MEDIUM"
)

// IssueTypes lists the categories offered on the support form.
var IssueTypes = []string{
	DefaultIssueType, "TRACKING_ISSUE", "DELIVERY_PROBLEM", "BILLING_QUESTION",
	"TECHNICAL_ISSUE", "ACCOUNT_HELP", "COMPLAINT", "SUGGESTION", "OTHER",
}

var SupportPriorities = []string{"LOW", DefaultSupportPriority, "HIGH", "URGENT"}

type SupportRequest struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	Subject       string     `json:"subject,omitempty"`
	Message       string     `json:"message"`
	IssueType     string     `json:"issueType"`
	Priority      string     `json:"priority"`
	TrackingID    string     `json:"trackingId,omitempty"`
	Status        string     `json:"status"`
	AdminResponse string     `json:"adminResponse,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	ResolvedAt    *time.Time `json:"resolvedAt,omitempty"`
}

// IsValidSupportStatus reports whether s is a known support status.
func IsValidSupportStatus(s string) bool {
	for _, st := range SupportStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// IsClosing reports whether moving to status s resolves the request.
func IsClosing(s string) bool {
	return s == SupportResolved || s == SupportClosed
}
