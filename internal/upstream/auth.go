package upstream

import (
	"context"
	"net/http"

	"github.com/sibaproject/siba-gateway/internal/session"
)

// Credentials is the login payload forwarded to the upstream verbatim.
// The gateway never inspects or stores the password.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the account-creation payload.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the upstream response to a successful login.
type LoginResult struct {
	Token string          `json:"token"`
	User  session.Profile `json:"user"`
}

// Login exchanges credentials for a token and user profile.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates a new account upstream.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", "", reg, nil)
}
