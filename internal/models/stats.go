package models

// ParcelStats counts parcels per status.
type ParcelStats struct {
	TotalParcels   int64 `json:"totalParcels"`
	Registered     int64 `json:"registered"`
	InTransit      int64 `json:"inTransit"`
	OutForDelivery int64 `json:"outForDelivery"`
	Delivered      int64 `json:"delivered"`
	Returned       int64 `json:"returned"`
}

// FeedbackStats summarises ratings.
type FeedbackStats struct {
	TotalFeedback   int64   `json:"totalFeedback"`
	Rating1Count    int64   `json:"rating1Count"`
	Rating2Count    int64   `json:"rating2Count"`
	Rating3Count    int64   `json:"rating3Count"`
	Rating4Count    int64   `json:"rating4Count"`
	Rating5Count    int64   `json:"rating5Count"`
	LowRatingCount  int64   `json:"lowRatingCount"`
	HighRatingCount int64   `json:"highRatingCount"`
	AverageRating   float64 `json:"averageRating"`
}

// SupportStats counts support requests per status.
type SupportStats struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"inProgress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
}
