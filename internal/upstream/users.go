package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sibaproject/siba-gateway/internal/user"
)

// ListUsers fetches all accounts. Upstream restricts this to admins.
func (c *Client) ListUsers(ctx context.Context, token string) ([]user.User, error) {
	var out []user.User
	if err := c.do(ctx, http.MethodGet, "/api/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser fetches one account by id.
func (c *Client) GetUser(ctx context.Context, token string, id int64) (*user.User, error) {
	var out user.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser edits an account.
func (c *Client) UpdateUser(ctx context.Context, token string, id int64, in user.UpdateInput) (*user.User, error) {
	var out user.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), token, nil, nil)
}
