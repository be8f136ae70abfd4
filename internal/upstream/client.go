// Package upstream is the HTTP client for the remote booking API. All
// business state lives behind that API; the gateway only forwards calls,
// attaching the session's bearer token when it is still valid.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sibaproject/siba-gateway/internal/pkg/apperror"
	"github.com/sibaproject/siba-gateway/internal/session"
)

var (
	// ErrSessionExpired is returned on an upstream 401. The middleware
	// reacts to it by clearing the session, at most once per request.
	ErrSessionExpired = apperror.New(http.StatusUnauthorized, "session expired, please log in again")

	// ErrForbidden is returned on an upstream 403.
	ErrForbidden = apperror.New(http.StatusForbidden, "you do not have access to this resource")

	// ErrUnreachable is returned when no response was received at all.
	ErrUnreachable = apperror.New(http.StatusBadGateway, "booking server unreachable")
)

// Client calls the remote booking API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// errorBody is the message shape upstream error responses use.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs one JSON round trip. The token is attached as a bearer
// header only when it decodes and has not expired; an expired token is
// left off and the request goes out unauthenticated, letting the
// upstream's 401 drive the session reset.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s body failed: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request failed: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	if token != "" && !session.TokenExpired(token, time.Now()) {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		zap.L().Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.asError(resp, method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response failed: %w", method, path, err)
	}
	return nil
}

// asError maps an upstream error response onto the gateway's taxonomy.
func (c *Client) asError(resp *http.Response, method, path string) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrSessionExpired
	case http.StatusForbidden:
		return ErrForbidden
	}

	var body errorBody
	msg := ""
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			msg = body.Message
		} else {
			msg = body.Error
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("booking server error (%d)", resp.StatusCode)
	}

	zap.L().Debug("upstream error response",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)
	return apperror.New(resp.StatusCode, msg)
}
