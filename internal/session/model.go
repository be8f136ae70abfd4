package session

import (
	"net/http"
	"time"

	"github.com/sibaproject/siba-gateway/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusUnauthorized, "authentication required")
	ErrExpired  = apperror.New(http.StatusUnauthorized, "session expired, please log in again")
)

// Roles carried by the upstream token's role claim. The decoded role is a
// display/UX hint only; the upstream API remains the authority for
// enforcement.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile is the user object returned by the upstream login endpoint,
// kept alongside the token for the lifetime of the session.
type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is one logged-in browser. The ID doubles as the cookie value;
// Token is the upstream bearer token issued at login.
type Session struct {
	ID        string
	Token     string
	User      Profile
	Role      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsAdmin reports whether the session's decoded role claim is admin.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
