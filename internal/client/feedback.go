package client

import (
	"context"
	"net/http"
	"strconv"

	"parcel_tracking"
	"parcel_tracking/internal/models"
)

type FeedbackRequest struct {
	UserEmail  string `json:"userEmail,omitempty"`
	TrackingID string `json:"trackingId"`
	Rating     int    `json:"rating"`
	Remarks    string `json:"remarks,omitempty"`
}

func (c *Client) SubmitFeedback(ctx context.Context, in FeedbackRequest) (*parcel_tracking.FeedbackSubmittedResponse, error) {
	var out parcel_tracking.FeedbackSubmittedResponse
	if err := c.do(ctx, http.MethodPost, "/api/feedback/submit", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CanGiveFeedback(ctx context.Context, trackingID, userEmail string) (parcel_tracking.FeedbackEligibility, error) {
	var out parcel_tracking.FeedbackEligibility
	err := c.do(ctx, http.MethodGet, "/api/feedback/can-give-feedback/"+seg(trackingID)+"/"+seg(userEmail), nil, nil, &out)
	return out, err
}

func (c *Client) FeedbackByParcel(ctx context.Context, trackingID string) ([]models.Feedback, error) {
	return c.feedbackList(ctx, "/api/feedback/parcel/"+seg(trackingID))
}

func (c *Client) FeedbackByUser(ctx context.Context, email string) ([]models.Feedback, error) {
	return c.feedbackList(ctx, "/api/feedback/user/"+seg(email))
}

func (c *Client) RecentFeedback(ctx context.Context) ([]models.Feedback, error) {
	return c.feedbackList(ctx, "/api/feedback/recent")
}

func (c *Client) FeedbackStats(ctx context.Context) (models.FeedbackStats, error) {
	var out models.FeedbackStats
	err := c.do(ctx, http.MethodGet, "/api/feedback/stats", nil, nil, &out)
	return out, err
}

func (c *Client) DeleteFeedback(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/feedback/delete/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) feedbackList(ctx context.Context, path string) ([]models.Feedback, error) {
	var out []models.Feedback
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
