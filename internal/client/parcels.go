package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"parcel_tracking"
	"parcel_tracking/internal/models"
)

func parcelPath(parts ...string) string {
	p := "/api/parcels"
	for _, s := range parts {
		p += "/" + s
	}
	return p
}

func (c *Client) AddParcel(ctx context.Context, p models.Parcel) (*parcel_tracking.ParcelCreatedResponse, error) {
	var out parcel_tracking.ParcelCreatedResponse
	if err := c.do(ctx, http.MethodPost, parcelPath("add"), nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListParcels(ctx context.Context) ([]models.Parcel, error) {
	return c.parcels(ctx, parcelPath("all"), nil)
}

func (c *Client) GetParcel(ctx context.Context, id int64) (*models.Parcel, error) {
	return c.parcel(ctx, http.MethodGet, parcelPath("id", strconv.FormatInt(id, 10)), nil)
}

// TrackParcel looks a parcel up by tracking id; no token is needed.
func (c *Client) TrackParcel(ctx context.Context, trackingID string) (*models.Parcel, error) {
	return c.parcel(ctx, http.MethodGet, parcelPath("track", seg(trackingID)), nil)
}

// ParcelEvents returns the tracking history of a parcel, oldest first.
func (c *Client) ParcelEvents(ctx context.Context, trackingID string) (*parcel_tracking.EventsResponse, error) {
	var out parcel_tracking.EventsResponse
	if err := c.do(ctx, http.MethodGet, parcelPath("track", seg(trackingID), "events"), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateParcel(ctx context.Context, id int64, p models.Parcel) (*models.Parcel, error) {
	return c.parcel(ctx, http.MethodPut, parcelPath("update", strconv.FormatInt(id, 10)), p)
}

func (c *Client) UpdateParcelStatus(ctx context.Context, id int64, in parcel_tracking.StatusUpdateRequest) (*models.Parcel, error) {
	return c.parcel(ctx, http.MethodPut, parcelPath("status", strconv.FormatInt(id, 10)), in)
}

func (c *Client) DeleteParcel(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, parcelPath("delete", strconv.FormatInt(id, 10)), nil, nil, nil)
}

func (c *Client) ParcelsByUser(ctx context.Context, email string) ([]models.Parcel, error) {
	return c.parcels(ctx, parcelPath("user", seg(email)), nil)
}

func (c *Client) ParcelsByStatus(ctx context.Context, status string) ([]models.Parcel, error) {
	return c.parcels(ctx, parcelPath("status", seg(status)), nil)
}

func (c *Client) RecentParcels(ctx context.Context) ([]models.Parcel, error) {
	return c.parcels(ctx, parcelPath("recent"), nil)
}

func (c *Client) SearchParcels(ctx context.Context, term string) ([]models.Parcel, error) {
	return c.parcels(ctx, parcelPath("search"), url.Values{"q": {term}})
}

func (c *Client) ParcelsNeedingAttention(ctx context.Context) ([]models.Parcel, error) {
	return c.parcels(ctx, parcelPath("attention"), nil)
}

func (c *Client) ParcelStats(ctx context.Context) (models.ParcelStats, error) {
	var out models.ParcelStats
	err := c.do(ctx, http.MethodGet, parcelPath("stats"), nil, nil, &out)
	return out, err
}

func (c *Client) SendTestEmail(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, parcelPath("test-email"), nil, nil, nil)
}

func (c *Client) parcel(ctx context.Context, method, path string, in any) (*models.Parcel, error) {
	var p models.Parcel
	if err := c.do(ctx, method, path, nil, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) parcels(ctx context.Context, path string, q url.Values) ([]models.Parcel, error) {
	var out []models.Parcel
	if err := c.do(ctx, http.MethodGet, path, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
