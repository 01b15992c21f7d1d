package client

import (
	"context"
	"net/http"
	"strconv"

	"parcel_tracking"
	"parcel_tracking/internal/models"
)

func (c *Client) SubmitSupport(ctx context.Context, r models.SupportRequest) (*models.SupportRequest, error) {
	var out models.SupportRequest
	if err := c.do(ctx, http.MethodPost, "/api/support/submit", nil, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SupportByUser(ctx context.Context, email string) ([]models.SupportRequest, error) {
	var out []models.SupportRequest
	if err := c.do(ctx, http.MethodGet, "/api/support/user/"+seg(email), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListSupport(ctx context.Context) ([]models.SupportRequest, error) {
	var out []models.SupportRequest
	if err := c.do(ctx, http.MethodGet, "/api/support/admin/all", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateSupportStatus(ctx context.Context, id int64, in parcel_tracking.SupportStatusRequest) (*models.SupportRequest, error) {
	var out models.SupportRequest
	path := "/api/support/admin/" + strconv.FormatInt(id, 10) + "/status"
	if err := c.do(ctx, http.MethodPut, path, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SupportStats(ctx context.Context) (models.SupportStats, error) {
	var out models.SupportStats
	err := c.do(ctx, http.MethodGet, "/api/support/admin/stats", nil, nil, &out)
	return out, err
}
