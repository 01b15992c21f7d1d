package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"parcel_tracking"
	"parcel_tracking/internal/models"
)

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
}

// UserUpdate replaces a profile; an empty Password keeps the current one.
type UserUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
}

func (c *Client) Register(ctx context.Context, in RegisterRequest) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/api/users/register", nil, in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*parcel_tracking.LoginResponse, error) {
	in := map[string]string{"email": email, "password": password}
	var out parcel_tracking.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email, newPassword string) error {
	q := url.Values{"email": {email}, "newPassword": {newPassword}}
	return c.do(ctx, http.MethodPut, "/api/users/forgot-password", q, nil, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, http.MethodGet, "/api/users/all", nil, nil, &out)
	return out, err
}

func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/admin/user/"+strconv.FormatInt(id, 10), nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser updates the caller's own account.
func (c *Client) UpdateUser(ctx context.Context, id int64, in UserUpdate) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPut, "/api/users/update/"+strconv.FormatInt(id, 10), nil, in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// AdminUpdateUser updates any account, including its role.
func (c *Client) AdminUpdateUser(ctx context.Context, id int64, in UserUpdate) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPut, "/api/users/admin/user/"+strconv.FormatInt(id, 10), nil, in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/users/delete/"+strconv.FormatInt(id, 10), nil, nil, nil)
}
